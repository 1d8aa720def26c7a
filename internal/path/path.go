// Package path parses and normalizes filesystem path strings that may mix '/' and '\'
// separators and may start with a drive reference such as "C:".
//
// A Path never touches a filesystem. Every method is a pure function of the wrapped
// string and returns a new value.
package path

import "strings"

const Separator = "/"

// Path is an immutable reference to a root, folder, or file. The zero value is the
// empty path, which stands in for an absent path.
type Path string

func New(s string) Path {
	return Path(s)
}

func (p Path) String() string {
	return string(p)
}

func (p Path) IsEmpty() bool {
	return p == ""
}

func isSeparator(c byte) bool {
	return c == '/' || c == '\\'
}

// NormalizeString converts every '\' to '/', collapses runs of separators, and drops a
// trailing separator unless it belongs to the root ("/" or "C:/").
func NormalizeString(s string) string {
	if s == "" {
		return s
	}

	var builder strings.Builder
	builder.Grow(len(s))

	lastWasSeparator := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isSeparator(c) {
			if !lastWasSeparator {
				builder.WriteByte('/')
			}
			lastWasSeparator = true
			continue
		}

		builder.WriteByte(c)
		lastWasSeparator = false
	}

	result := builder.String()
	if n := len(result); n > 1 && result[n-1] == '/' && result[n-2] != ':' {
		result = result[:n-1]
	}

	return result
}

func (p Path) Normalize() Path {
	return Path(NormalizeString(string(p)))
}

// RootPathString returns the root portion of the path as written: the leading
// separator, or the drive prefix up to and including ':' plus the separator that
// immediately follows it, if any. Unrooted paths return "".
func (p Path) RootPathString() string {
	s := string(p)

	i := strings.IndexAny(s, `/\:`)
	switch {
	case i < 0:
		return ""
	case i == 0:
		if s[0] == ':' {
			return ""
		}
		return s[:1]
	case s[i] == ':':
		if i+1 < len(s) && isSeparator(s[i+1]) {
			return s[:i+2]
		}
		return s[:i+1]
	default:
		return ""
	}
}

func (p Path) RootPath() (Path, bool) {
	root := p.RootPathString()
	if root == "" {
		return "", false
	}
	return Path(root), true
}

func (p Path) IsRooted() bool {
	return p.RootPathString() != ""
}

// SkipRootPath returns the path relative to its root. Unrooted paths are returned as is.
func (p Path) SkipRootPath() Path {
	root := p.RootPathString()
	if root == "" {
		return p
	}
	return p[len(root):]
}

// Segments returns the non-empty names between separators of the normalized path.
func (p Path) Segments() []string {
	parts := strings.Split(NormalizeString(string(p)), Separator)

	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}

	return segments
}

func (p Path) LastSegment() (string, bool) {
	segments := p.Segments()
	if len(segments) == 0 {
		return "", false
	}
	return segments[len(segments)-1], true
}

func (p Path) EndsWithSeparator() bool {
	s := string(p)
	return s != "" && isSeparator(s[len(s)-1])
}

// ParentPath returns the path of the containing folder or root. Roots, empty paths and
// single relative segments have no parent.
func (p Path) ParentPath() (Path, bool) {
	s := string(p)
	if s == "" {
		return "", false
	}

	rootLength := len(p.RootPathString())
	end := len(s)

	for end > rootLength && isSeparator(s[end-1]) {
		end--
	}
	if end <= rootLength {
		return "", false
	}

	for end > rootLength && !isSeparator(s[end-1]) {
		end--
	}
	for end > rootLength && isSeparator(s[end-1]) {
		end--
	}
	if end == 0 {
		return "", false
	}

	return Path(s[:end]), true
}

// Add appends segment, inserting a separator only when the path doesn't already end in
// one. The result is not re-normalized.
func (p Path) Add(segment string) Path {
	switch {
	case p == "":
		return Path(segment)
	case p.EndsWithSeparator():
		return p + Path(segment)
	default:
		return p + Separator + Path(segment)
	}
}

// Equal compares the normalized forms, so "C:/" equals "C:\" but not "C:".
func (p Path) Equal(other Path) bool {
	return p.Normalize() == other.Normalize()
}

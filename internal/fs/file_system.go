// Package fs defines the contract every filesystem backend implements and the
// lightweight Root, Folder and File handles built on top of it.
//
// Failures are reported through sentinel results (false, or a false ok value) rather
// than errors. A malformed path and a valid path that doesn't exist look the same to
// callers.
package fs

import (
	"os"

	"github.com/rwx-research/pathfs/internal/path"
)

type FileSystem interface {
	RootExists(p path.Path) bool
	FolderExists(p path.Path) bool
	FileExists(p path.Path) bool

	// CreateFolder creates the folder and any missing ancestors. It reports whether the
	// folder itself was created by this call.
	CreateFolder(p path.Path) bool
	// CreateFile creates the file and any missing ancestors. It reports whether the
	// file itself was created by this call.
	CreateFile(p path.Path) bool

	DeleteFolder(p path.Path) bool
	DeleteFile(p path.Path) bool

	// ReadFileContentsAsString returns false when the file doesn't exist.
	ReadFileContentsAsString(p path.Path) (string, bool)
	// WriteFileContentsAsString replaces the file's contents, creating the file and its
	// ancestors first when needed.
	WriteFileContentsAsString(p path.Path, contents string)
}

// userHomeDir is swapped out in tests.
var userHomeDir = os.UserHomeDir

// GetRoot returns a handle to the root of p. It fails when p has no root.
func GetRoot(fileSystem FileSystem, p path.Path) (Root, bool) {
	if p.IsEmpty() {
		return Root{}, false
	}

	rootPath, ok := p.RootPath()
	if !ok {
		return Root{}, false
	}

	return Root{fileSystem: fileSystem, path: rootPath}, true
}

// GetFolder returns a handle to the folder at p without touching the backend.
func GetFolder(fileSystem FileSystem, p path.Path) (Folder, bool) {
	if p.IsEmpty() {
		return Folder{}, false
	}

	return Folder{fileSystem: fileSystem, path: p}, true
}

// GetFile returns a handle to the file at p. Paths ending in a separator name folders
// and are rejected.
func GetFile(fileSystem FileSystem, p path.Path) (File, bool) {
	if p.IsEmpty() || p.EndsWithSeparator() {
		return File{}, false
	}

	return File{fileSystem: fileSystem, path: p}, true
}

func GetUserHomeFolder(fileSystem FileSystem) (Folder, bool) {
	home, err := userHomeDir()
	if err != nil {
		return Folder{}, false
	}

	return GetFolder(fileSystem, path.New(home))
}

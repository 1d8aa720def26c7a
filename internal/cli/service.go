package cli

import (
	"fmt"
	"strings"

	"github.com/rwx-research/pathfs/internal/errors"
	"github.com/rwx-research/pathfs/internal/fs"
	"github.com/rwx-research/pathfs/internal/path"
)

// Service holds the main business logic of the CLI.
type Service struct {
	Config
}

func NewService(cfg Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return Service{}, errors.Wrap(err, "validation failed")
	}

	return Service{cfg}, nil
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

// Inspect prints how a path is parsed. It never touches the file system.
func (s Service) Inspect(cfg EntryConfig) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "validation failed")
	}

	p := path.New(cfg.Path)
	parent, _ := p.ParentPath()

	fmt.Fprintf(s.Stdout, "path:       %s\n", p)
	fmt.Fprintf(s.Stdout, "normalized: %s\n", p.Normalize())
	fmt.Fprintf(s.Stdout, "root:       %s\n", orNone(p.RootPathString()))
	fmt.Fprintf(s.Stdout, "segments:   %s\n", orNone(strings.Join(p.Segments(), ", ")))
	fmt.Fprintf(s.Stdout, "parent:     %s\n", orNone(parent.String()))

	return nil
}

// Exists prints whether the path names a file, a folder or a root.
func (s Service) Exists(cfg EntryConfig) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "validation failed")
	}

	p := path.New(cfg.Path)

	kind := ""
	switch {
	case s.FileSystem.FileExists(p):
		kind = "file"
	case s.FileSystem.FolderExists(p):
		kind = "folder"
	case p.RootPathString() == p.String() && s.FileSystem.RootExists(p):
		kind = "root"
	default:
		return errors.Wrapf(errors.ErrNotFound, "nothing exists at %q", cfg.Path)
	}

	fmt.Fprintf(s.Stdout, "%s: %s\n", cfg.Path, kind)
	return nil
}

func (s Service) Mkdir(cfg EntryConfig) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "validation failed")
	}

	folder, ok := fs.GetFolder(s.FileSystem, path.New(cfg.Path))
	if !ok {
		return errors.Wrapf(errors.ErrInvalidPath, "%q is not a folder path", cfg.Path)
	}

	return s.reportCreated(cfg.Path, folder.Create())
}

func (s Service) Touch(cfg EntryConfig) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "validation failed")
	}

	file, ok := fs.GetFile(s.FileSystem, path.New(cfg.Path))
	if !ok {
		return errors.Wrapf(errors.ErrInvalidPath, "%q is not a file path", cfg.Path)
	}

	return s.reportCreated(cfg.Path, file.Create())
}

func (s Service) reportCreated(name string, created bool) error {
	if created {
		fmt.Fprintf(s.Stdout, "Created %s\n", name)
	} else {
		fmt.Fprintf(s.Stdout, "%s already exists\n", name)
	}
	return nil
}

func (s Service) Cat(cfg EntryConfig) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "validation failed")
	}

	file, ok := fs.GetFile(s.FileSystem, path.New(cfg.Path))
	if !ok {
		return errors.Wrapf(errors.ErrInvalidPath, "%q is not a file path", cfg.Path)
	}

	contents, ok := file.ReadContentsAsString()
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "file %q does not exist", cfg.Path)
	}

	_, err := fmt.Fprint(s.Stdout, contents)
	return errors.WithStack(err)
}

func (s Service) Write(cfg WriteConfig) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "validation failed")
	}

	file, ok := fs.GetFile(s.FileSystem, path.New(cfg.Path))
	if !ok {
		return errors.Wrapf(errors.ErrInvalidPath, "%q is not a file path", cfg.Path)
	}

	file.WriteContentsAsString(cfg.Contents)
	if !file.Exists() {
		return errors.Errorf("unable to write %q", cfg.Path)
	}

	return nil
}

func (s Service) Remove(cfg RemoveConfig) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "validation failed")
	}

	p := path.New(cfg.Path)

	var deleted bool
	if cfg.Folder {
		folder, ok := fs.GetFolder(s.FileSystem, p)
		deleted = ok && folder.Delete()
	} else {
		file, ok := fs.GetFile(s.FileSystem, p)
		deleted = ok && file.Delete()
	}

	if !deleted {
		return errors.Wrapf(errors.ErrNotFound, "nothing was deleted at %q", cfg.Path)
	}

	fmt.Fprintf(s.Stdout, "Deleted %s\n", cfg.Path)
	return nil
}

func (s Service) Home() error {
	folder, ok := fs.GetUserHomeFolder(s.FileSystem)
	if !ok {
		return errors.New("unable to determine the home folder")
	}

	fmt.Fprintf(s.Stdout, "%s (exists: %t)\n", folder.Path(), folder.Exists())
	return nil
}

func (s Service) Tree() error {
	if s.TreeWriter == nil {
		return errors.New("listing the tree requires the memory backend")
	}

	return errors.WithStack(s.TreeWriter.WriteTree(s.Stdout))
}

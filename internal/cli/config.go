package cli

import (
	"io"

	"github.com/pkg/errors"

	"github.com/rwx-research/pathfs/internal/fs"
)

type Config struct {
	FileSystem fs.FileSystem
	Stdout     io.Writer
	// Tree is only set for backends that can list their contents.
	TreeWriter TreeWriter
}

func (c Config) Validate() error {
	if c.FileSystem == nil {
		return errors.New("missing file-system interface")
	}

	if c.Stdout == nil {
		return errors.New("missing output writer")
	}

	return nil
}

type EntryConfig struct {
	Path string
}

func (c EntryConfig) Validate() error {
	if c.Path == "" {
		return errors.New("a path must be provided")
	}

	return nil
}

type WriteConfig struct {
	Path     string
	Contents string
}

func (c WriteConfig) Validate() error {
	return EntryConfig{Path: c.Path}.Validate()
}

type RemoveConfig struct {
	Path   string
	Folder bool
}

func (c RemoveConfig) Validate() error {
	return EntryConfig{Path: c.Path}.Validate()
}

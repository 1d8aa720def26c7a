package mocks

import (
	"github.com/rwx-research/pathfs/internal/fs"
	"github.com/rwx-research/pathfs/internal/path"
)

var _ fs.FileSystem = (*FileSystem)(nil)

// FileSystem records every call and answers through the configured Mock* funcs.
// Unconfigured calls fall back to the contract's "not found" results.
type FileSystem struct {
	MockRootExists                func(p path.Path) bool
	MockFolderExists              func(p path.Path) bool
	MockFileExists                func(p path.Path) bool
	MockCreateFolder              func(p path.Path) bool
	MockCreateFile                func(p path.Path) bool
	MockDeleteFolder              func(p path.Path) bool
	MockDeleteFile                func(p path.Path) bool
	MockReadFileContentsAsString  func(p path.Path) (string, bool)
	MockWriteFileContentsAsString func(p path.Path, contents string)

	Calls []Call
}

type Call struct {
	Op   string
	Path path.Path
}

func (f *FileSystem) record(op string, p path.Path) {
	f.Calls = append(f.Calls, Call{Op: op, Path: p})
}

func (f *FileSystem) RootExists(p path.Path) bool {
	f.record("RootExists", p)
	if f.MockRootExists != nil {
		return f.MockRootExists(p)
	}

	return false
}

func (f *FileSystem) FolderExists(p path.Path) bool {
	f.record("FolderExists", p)
	if f.MockFolderExists != nil {
		return f.MockFolderExists(p)
	}

	return false
}

func (f *FileSystem) FileExists(p path.Path) bool {
	f.record("FileExists", p)
	if f.MockFileExists != nil {
		return f.MockFileExists(p)
	}

	return false
}

func (f *FileSystem) CreateFolder(p path.Path) bool {
	f.record("CreateFolder", p)
	if f.MockCreateFolder != nil {
		return f.MockCreateFolder(p)
	}

	return false
}

func (f *FileSystem) CreateFile(p path.Path) bool {
	f.record("CreateFile", p)
	if f.MockCreateFile != nil {
		return f.MockCreateFile(p)
	}

	return false
}

func (f *FileSystem) DeleteFolder(p path.Path) bool {
	f.record("DeleteFolder", p)
	if f.MockDeleteFolder != nil {
		return f.MockDeleteFolder(p)
	}

	return false
}

func (f *FileSystem) DeleteFile(p path.Path) bool {
	f.record("DeleteFile", p)
	if f.MockDeleteFile != nil {
		return f.MockDeleteFile(p)
	}

	return false
}

func (f *FileSystem) ReadFileContentsAsString(p path.Path) (string, bool) {
	f.record("ReadFileContentsAsString", p)
	if f.MockReadFileContentsAsString != nil {
		return f.MockReadFileContentsAsString(p)
	}

	return "", false
}

func (f *FileSystem) WriteFileContentsAsString(p path.Path, contents string) {
	f.record("WriteFileContentsAsString", p)
	if f.MockWriteFileContentsAsString != nil {
		f.MockWriteFileContentsAsString(p, contents)
	}
}

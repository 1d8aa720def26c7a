package fs

import "github.com/rwx-research/pathfs/internal/path"

type Entry interface {
	Path() path.Path
	// Parent returns nil for roots.
	Parent() Container
	Exists() bool
}

// Container is an Entry that can hold folders and files.
type Container interface {
	Entry
	GetFolder(relativePath string) (Folder, bool)
	GetFile(relativePath string) (File, bool)
}

var (
	_ Container = Root{}
	_ Container = Folder{}
	_ Entry     = File{}
)

// parentContainer resolves the handle for the entry that holds p. A parent path that
// itself has no parent is a root.
func parentContainer(fileSystem FileSystem, p path.Path) Container {
	parentPath, ok := p.ParentPath()
	if !ok {
		return nil
	}

	if _, ok := parentPath.ParentPath(); ok {
		return Folder{fileSystem: fileSystem, path: parentPath}
	}

	return Root{fileSystem: fileSystem, path: parentPath}
}

func getRelativeFolder(fileSystem FileSystem, base path.Path, relativePath string) (Folder, bool) {
	if relativePath == "" {
		return Folder{}, false
	}
	return GetFolder(fileSystem, base.Add(relativePath))
}

func getRelativeFile(fileSystem FileSystem, base path.Path, relativePath string) (File, bool) {
	if relativePath == "" {
		return File{}, false
	}
	return GetFile(fileSystem, base.Add(relativePath))
}

// Root is a top-level container such as "/" or "C:/".
type Root struct {
	fileSystem FileSystem
	path       path.Path
}

func NewRoot(fileSystem FileSystem, p path.Path) Root {
	return Root{fileSystem: fileSystem, path: p}
}

func (r Root) Path() path.Path {
	return r.path
}

func (r Root) Parent() Container {
	return nil
}

func (r Root) Exists() bool {
	return r.fileSystem.RootExists(r.path)
}

func (r Root) GetFolder(relativePath string) (Folder, bool) {
	return getRelativeFolder(r.fileSystem, r.path, relativePath)
}

func (r Root) GetFile(relativePath string) (File, bool) {
	return getRelativeFile(r.fileSystem, r.path, relativePath)
}

type Folder struct {
	fileSystem FileSystem
	path       path.Path
}

func NewFolder(fileSystem FileSystem, p path.Path) Folder {
	return Folder{fileSystem: fileSystem, path: p}
}

func (f Folder) Path() path.Path {
	return f.path
}

func (f Folder) Parent() Container {
	return parentContainer(f.fileSystem, f.path)
}

func (f Folder) Exists() bool {
	return f.fileSystem.FolderExists(f.path)
}

func (f Folder) GetFolder(relativePath string) (Folder, bool) {
	return getRelativeFolder(f.fileSystem, f.path, relativePath)
}

func (f Folder) GetFile(relativePath string) (File, bool) {
	return getRelativeFile(f.fileSystem, f.path, relativePath)
}

func (f Folder) Create() bool {
	return f.fileSystem.CreateFolder(f.path)
}

func (f Folder) Delete() bool {
	return f.fileSystem.DeleteFolder(f.path)
}

type File struct {
	fileSystem FileSystem
	path       path.Path
}

func NewFile(fileSystem FileSystem, p path.Path) File {
	return File{fileSystem: fileSystem, path: p}
}

func (f File) Path() path.Path {
	return f.path
}

func (f File) Parent() Container {
	return parentContainer(f.fileSystem, f.path)
}

func (f File) Exists() bool {
	return f.fileSystem.FileExists(f.path)
}

func (f File) Create() bool {
	return f.fileSystem.CreateFile(f.path)
}

func (f File) Delete() bool {
	return f.fileSystem.DeleteFile(f.path)
}

func (f File) ReadContentsAsString() (string, bool) {
	return f.fileSystem.ReadFileContentsAsString(f.path)
}

func (f File) WriteContentsAsString(contents string) {
	f.fileSystem.WriteFileContentsAsString(f.path, contents)
}

// Equal reports whether a and b are the same kind of entry on the same backend with
// equal paths, so "/a/b" and "\a\b" name the same folder.
func Equal(a, b Entry) bool {
	switch a := a.(type) {
	case Root:
		b, ok := b.(Root)
		return ok && a.fileSystem == b.fileSystem && a.path.Equal(b.path)
	case Folder:
		b, ok := b.(Folder)
		return ok && a.fileSystem == b.fileSystem && a.path.Equal(b.path)
	case File:
		b, ok := b.(File)
		return ok && a.fileSystem == b.fileSystem && a.path.Equal(b.path)
	default:
		return false
	}
}

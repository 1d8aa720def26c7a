// Package memoryfs is an in-memory fs.FileSystem for deterministic tests.
//
// Roots own folders and files, folders own further folders and files, and every node is
// reachable from exactly one root. Nodes live in an arena and are addressed by index;
// the Root, Folder and File types are handles into it. A MemoryFS has no internal
// locking and must not be shared between goroutines without external coordination.
package memoryfs

import (
	"github.com/rwx-research/pathfs/internal/fs"
	"github.com/rwx-research/pathfs/internal/path"
)

var _ fs.FileSystem = (*MemoryFS)(nil)

type MemoryFS struct {
	nodes []node
	roots []nodeID
}

func NewFS() *MemoryFS {
	return &MemoryFS{}
}

func (mfs *MemoryFS) alloc(n node) nodeID {
	mfs.nodes = append(mfs.nodes, n)
	return nodeID(len(mfs.nodes) - 1)
}

func (mfs *MemoryFS) root(id nodeID) *Root {
	return &Root{container{mfs: mfs, id: id}}
}

// Roots returns the roots in creation order.
func (mfs *MemoryFS) Roots() []*Root {
	roots := make([]*Root, 0, len(mfs.roots))
	for _, id := range mfs.roots {
		roots = append(roots, mfs.root(id))
	}
	return roots
}

// GetMockRoot returns the root whose path equals the root portion of p.
func (mfs *MemoryFS) GetMockRoot(p path.Path) *Root {
	rootPath, ok := p.RootPath()
	if !ok {
		return nil
	}

	for _, id := range mfs.roots {
		if mfs.nodes[id].path.Equal(rootPath) {
			return mfs.root(id)
		}
	}

	return nil
}

// CreateMockRoot returns the root of p, creating it when it doesn't exist yet.
func (mfs *MemoryFS) CreateMockRoot(p path.Path) *Root {
	if root := mfs.GetMockRoot(p); root != nil {
		return root
	}

	rootPath, ok := p.RootPath()
	if !ok {
		return nil
	}

	id := mfs.alloc(node{name: rootPath.String(), path: rootPath})
	mfs.roots = append(mfs.roots, id)

	return mfs.root(id)
}

// walk descends from the root of p through the given folder names.
func (mfs *MemoryFS) walk(p path.Path, folderNames []string) Container {
	root := mfs.GetMockRoot(p)
	if root == nil {
		return nil
	}

	var current Container = root
	for _, folderName := range folderNames {
		folder := current.GetFolder(folderName)
		if folder == nil {
			return nil
		}
		current = folder
	}

	return current
}

// GetMockContainer returns the root or folder at p.
func (mfs *MemoryFS) GetMockContainer(p path.Path) Container {
	return mfs.walk(p, p.SkipRootPath().Segments())
}

func (mfs *MemoryFS) GetMockFolder(p path.Path) *Folder {
	folder, _ := mfs.GetMockContainer(p).(*Folder)
	return folder
}

// GetMockFile returns the file at p. Paths ending in a separator never name a file.
func (mfs *MemoryFS) GetMockFile(p path.Path) *File {
	if p.IsEmpty() || p.EndsWithSeparator() {
		return nil
	}

	segments := p.SkipRootPath().Segments()
	if len(segments) == 0 {
		return nil
	}

	parent := mfs.walk(p, segments[:len(segments)-1])
	if parent == nil {
		return nil
	}

	return parent.GetFile(segments[len(segments)-1])
}

func (mfs *MemoryFS) RootExists(p path.Path) bool {
	return mfs.GetMockRoot(p) != nil
}

func (mfs *MemoryFS) FolderExists(p path.Path) bool {
	return mfs.GetMockFolder(p) != nil
}

func (mfs *MemoryFS) FileExists(p path.Path) bool {
	return mfs.GetMockFile(p) != nil
}

// createParent creates the root and every folder above p and returns the folder or
// root that should hold p along with p's own name.
func (mfs *MemoryFS) createParent(p path.Path) (Container, string, bool) {
	if p.IsEmpty() {
		return nil, "", false
	}

	parentPath, ok := p.ParentPath()
	if !ok {
		return nil, "", false
	}

	name, ok := p.SkipRootPath().LastSegment()
	if !ok {
		return nil, "", false
	}

	root := mfs.CreateMockRoot(parentPath)
	if root == nil {
		return nil, "", false
	}

	var current Container = root
	for _, folderName := range parentPath.SkipRootPath().Segments() {
		folder := current.CreateFolder(folderName)
		if folder == nil {
			return nil, "", false
		}
		current = folder
	}

	return current, name, true
}

// CreateFolder reports whether the folder at p was created by this call. Missing
// ancestors are created as well but don't affect the result.
func (mfs *MemoryFS) CreateFolder(p path.Path) bool {
	parent, folderName, ok := mfs.createParent(p)
	if !ok || parent.GetFolder(folderName) != nil {
		return false
	}

	return parent.CreateFolder(folderName) != nil
}

// CreateFile reports whether the file at p was created by this call. Missing ancestors
// are created as well but don't affect the result.
func (mfs *MemoryFS) CreateFile(p path.Path) bool {
	if p.EndsWithSeparator() {
		return false
	}

	parent, fileName, ok := mfs.createParent(p)
	if !ok || parent.GetFile(fileName) != nil {
		return false
	}

	return parent.CreateFile(fileName) != nil
}

// deleteTarget finds the existing container that holds p.
func (mfs *MemoryFS) deleteTarget(p path.Path) (Container, string, bool) {
	if p.IsEmpty() {
		return nil, "", false
	}

	parentPath, ok := p.ParentPath()
	if !ok {
		return nil, "", false
	}

	parent := mfs.GetMockContainer(parentPath)
	if parent == nil {
		return nil, "", false
	}

	name, ok := p.SkipRootPath().LastSegment()
	return parent, name, ok
}

func (mfs *MemoryFS) DeleteFolder(p path.Path) bool {
	parent, folderName, ok := mfs.deleteTarget(p)
	return ok && parent.DeleteFolder(folderName)
}

func (mfs *MemoryFS) DeleteFile(p path.Path) bool {
	if p.EndsWithSeparator() {
		return false
	}

	parent, fileName, ok := mfs.deleteTarget(p)
	return ok && parent.DeleteFile(fileName)
}

func (mfs *MemoryFS) ReadFileContentsAsString(p path.Path) (string, bool) {
	file := mfs.GetMockFile(p)
	if file == nil {
		return "", false
	}

	return file.ContentsAsString(), true
}

func (mfs *MemoryFS) WriteFileContentsAsString(p path.Path, contents string) {
	if p.EndsWithSeparator() {
		return
	}

	parent, fileName, ok := mfs.createParent(p)
	if !ok {
		return
	}

	if file := parent.CreateFile(fileName); file != nil {
		file.SetContentsAsString(contents)
	}
}

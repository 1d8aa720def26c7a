package memoryfs

import (
	"slices"
	"strings"

	"github.com/rwx-research/pathfs/internal/path"
)

type nodeID int

// node is one entry in the arena. Children are kept in creation order.
type node struct {
	name     string
	path     path.Path
	folders  []nodeID
	files    []nodeID
	contents string
}

// Container is a mock Root or Folder.
type Container interface {
	Name() string
	Path() path.Path

	GetFolder(folderName string) *Folder
	CreateFolder(folderName string) *Folder
	DeleteFolder(folderName string) bool
	Folders() []*Folder

	GetFile(fileName string) *File
	CreateFile(fileName string) *File
	DeleteFile(fileName string) bool
	Files() []*File
}

var (
	_ Container = (*Root)(nil)
	_ Container = (*Folder)(nil)
)

func validName(name string) bool {
	return name != "" && !strings.ContainsAny(name, `/\`)
}

type container struct {
	mfs *MemoryFS
	id  nodeID
}

func (c container) node() *node {
	return &c.mfs.nodes[c.id]
}

func (c container) Name() string {
	return c.node().name
}

func (c container) Path() path.Path {
	return c.node().path
}

func (c container) find(children []nodeID, name string) (nodeID, bool) {
	for _, child := range children {
		if c.mfs.nodes[child].name == name {
			return child, true
		}
	}
	return 0, false
}

func (c container) GetFolder(folderName string) *Folder {
	if id, ok := c.find(c.node().folders, folderName); ok {
		return &Folder{container{mfs: c.mfs, id: id}}
	}
	return nil
}

// CreateFolder returns the existing folder with this name, if any.
func (c container) CreateFolder(folderName string) *Folder {
	if folder := c.GetFolder(folderName); folder != nil || !validName(folderName) {
		return folder
	}

	id := c.mfs.alloc(node{name: folderName, path: c.Path().Add(folderName)})
	parent := c.node()
	parent.folders = append(parent.folders, id)

	return &Folder{container{mfs: c.mfs, id: id}}
}

func (c container) DeleteFolder(folderName string) bool {
	parent := c.node()
	for i, child := range parent.folders {
		if c.mfs.nodes[child].name == folderName {
			parent.folders = slices.Delete(parent.folders, i, i+1)
			return true
		}
	}
	return false
}

func (c container) Folders() []*Folder {
	folders := make([]*Folder, 0, len(c.node().folders))
	for _, id := range c.node().folders {
		folders = append(folders, &Folder{container{mfs: c.mfs, id: id}})
	}
	return folders
}

func (c container) GetFile(fileName string) *File {
	if id, ok := c.find(c.node().files, fileName); ok {
		return &File{mfs: c.mfs, id: id}
	}
	return nil
}

// CreateFile returns the existing file with this name, if any.
func (c container) CreateFile(fileName string) *File {
	if file := c.GetFile(fileName); file != nil || !validName(fileName) {
		return file
	}

	id := c.mfs.alloc(node{name: fileName, path: c.Path().Add(fileName)})
	parent := c.node()
	parent.files = append(parent.files, id)

	return &File{mfs: c.mfs, id: id}
}

func (c container) DeleteFile(fileName string) bool {
	parent := c.node()
	for i, child := range parent.files {
		if c.mfs.nodes[child].name == fileName {
			parent.files = slices.Delete(parent.files, i, i+1)
			return true
		}
	}
	return false
}

func (c container) Files() []*File {
	files := make([]*File, 0, len(c.node().files))
	for _, id := range c.node().files {
		files = append(files, &File{mfs: c.mfs, id: id})
	}
	return files
}

// Root is named by its full root path, such as "/" or "C:\".
type Root struct {
	container
}

type Folder struct {
	container
}

type File struct {
	mfs *MemoryFS
	id  nodeID
}

func (f *File) node() *node {
	return &f.mfs.nodes[f.id]
}

func (f *File) Name() string {
	return f.node().name
}

func (f *File) Path() path.Path {
	return f.node().path
}

func (f *File) ContentsAsString() string {
	return f.node().contents
}

// SetContentsAsString replaces the whole contents.
func (f *File) SetContentsAsString(contents string) {
	f.node().contents = contents
}

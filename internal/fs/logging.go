package fs

import (
	"github.com/sirupsen/logrus"

	"github.com/rwx-research/pathfs/internal/path"
)

type loggingFileSystem struct {
	next FileSystem
	log  logrus.FieldLogger
}

// WithLogging wraps fileSystem so that every call is logged at debug level.
func WithLogging(fileSystem FileSystem, log logrus.FieldLogger) FileSystem {
	return &loggingFileSystem{next: fileSystem, log: log}
}

func (l *loggingFileSystem) trace(op string, p path.Path, result any) {
	l.log.WithFields(logrus.Fields{"op": op, "path": p.String(), "result": result}).Debug("filesystem call")
}

func (l *loggingFileSystem) RootExists(p path.Path) bool {
	result := l.next.RootExists(p)
	l.trace("root-exists", p, result)
	return result
}

func (l *loggingFileSystem) FolderExists(p path.Path) bool {
	result := l.next.FolderExists(p)
	l.trace("folder-exists", p, result)
	return result
}

func (l *loggingFileSystem) FileExists(p path.Path) bool {
	result := l.next.FileExists(p)
	l.trace("file-exists", p, result)
	return result
}

func (l *loggingFileSystem) CreateFolder(p path.Path) bool {
	result := l.next.CreateFolder(p)
	l.trace("create-folder", p, result)
	return result
}

func (l *loggingFileSystem) CreateFile(p path.Path) bool {
	result := l.next.CreateFile(p)
	l.trace("create-file", p, result)
	return result
}

func (l *loggingFileSystem) DeleteFolder(p path.Path) bool {
	result := l.next.DeleteFolder(p)
	l.trace("delete-folder", p, result)
	return result
}

func (l *loggingFileSystem) DeleteFile(p path.Path) bool {
	result := l.next.DeleteFile(p)
	l.trace("delete-file", p, result)
	return result
}

func (l *loggingFileSystem) ReadFileContentsAsString(p path.Path) (string, bool) {
	contents, ok := l.next.ReadFileContentsAsString(p)
	l.trace("read-file", p, ok)
	return contents, ok
}

func (l *loggingFileSystem) WriteFileContentsAsString(p path.Path, contents string) {
	l.next.WriteFileContentsAsString(p, contents)
	l.log.WithFields(logrus.Fields{"op": "write-file", "path": p.String(), "bytes": len(contents)}).Debug("filesystem call")
}

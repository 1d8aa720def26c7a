package fs

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/rwx-research/pathfs/internal/errors"
	"github.com/rwx-research/pathfs/internal/path"
)

var _ FileSystem = Local{}

// Local maps the FileSystem contract onto an afero.Fs, normally the operating system.
// Native I/O errors are logged at debug level and reported as false.
type Local struct {
	Fs  afero.Fs
	Log logrus.FieldLogger
}

func NewLocal() Local {
	return Local{Fs: afero.NewOsFs()}
}

func (l Local) log() logrus.FieldLogger {
	if l.Log == nil {
		return logrus.StandardLogger()
	}
	return l.Log
}

func (l Local) swallow(op string, name string, err error) {
	if err == nil || errors.Is(err, errors.ErrFileNotExists) {
		return
	}
	l.log().WithError(err).WithFields(logrus.Fields{"op": op, "path": name}).Debug("ignoring filesystem error")
}

func nativePath(p path.Path) string {
	return p.Normalize().String()
}

func (l Local) stat(op string, p path.Path) (os.FileInfo, bool) {
	if p.IsEmpty() {
		return nil, false
	}

	name := nativePath(p)
	info, err := l.Fs.Stat(name)
	if err != nil {
		l.swallow(op, name, err)
		return nil, false
	}

	return info, true
}

func (l Local) RootExists(p path.Path) bool {
	rootPath, ok := p.RootPath()
	if !ok {
		return false
	}

	_, ok = l.stat("root-exists", rootPath)
	return ok
}

func (l Local) FolderExists(p path.Path) bool {
	info, ok := l.stat("folder-exists", p)
	return ok && info.IsDir()
}

func (l Local) FileExists(p path.Path) bool {
	if p.EndsWithSeparator() {
		return false
	}

	info, ok := l.stat("file-exists", p)
	return ok && !info.IsDir()
}

func (l Local) CreateFolder(p path.Path) bool {
	if p.IsEmpty() {
		return false
	}

	name := nativePath(p)
	exists, err := afero.Exists(l.Fs, name)
	if err != nil {
		l.swallow("create-folder", name, err)
		return false
	}
	if exists {
		return false
	}

	if err := l.Fs.MkdirAll(name, os.ModePerm); err != nil {
		l.swallow("create-folder", name, err)
		return false
	}

	return true
}

func (l Local) createParent(op string, p path.Path) bool {
	parentPath, ok := p.ParentPath()
	if !ok {
		return true
	}

	name := nativePath(parentPath)
	if err := l.Fs.MkdirAll(name, os.ModePerm); err != nil {
		l.swallow(op, name, err)
		return false
	}

	return true
}

func (l Local) CreateFile(p path.Path) bool {
	if p.IsEmpty() || p.EndsWithSeparator() {
		return false
	}

	name := nativePath(p)
	exists, err := afero.Exists(l.Fs, name)
	if err != nil {
		l.swallow("create-file", name, err)
		return false
	}
	if exists || !l.createParent("create-file", p) {
		return false
	}

	fd, err := l.Fs.Create(name)
	if err != nil {
		l.swallow("create-file", name, err)
		return false
	}
	if err := fd.Close(); err != nil {
		l.swallow("create-file", name, err)
	}

	return true
}

func (l Local) DeleteFolder(p path.Path) bool {
	if !l.FolderExists(p) {
		return false
	}

	name := nativePath(p)
	if err := l.Fs.RemoveAll(name); err != nil {
		l.swallow("delete-folder", name, err)
		return false
	}

	return true
}

func (l Local) DeleteFile(p path.Path) bool {
	if !l.FileExists(p) {
		return false
	}

	name := nativePath(p)
	if err := l.Fs.Remove(name); err != nil {
		l.swallow("delete-file", name, err)
		return false
	}

	return true
}

func (l Local) ReadFileContentsAsString(p path.Path) (string, bool) {
	if !l.FileExists(p) {
		return "", false
	}

	name := nativePath(p)
	contents, err := afero.ReadFile(l.Fs, name)
	if err != nil {
		l.swallow("read-file", name, err)
		return "", false
	}

	return string(contents), true
}

func (l Local) WriteFileContentsAsString(p path.Path, contents string) {
	if p.IsEmpty() || p.EndsWithSeparator() || !l.createParent("write-file", p) {
		return
	}

	name := nativePath(p)
	if err := afero.WriteFile(l.Fs, name, []byte(contents), 0o644); err != nil {
		l.swallow("write-file", name, err)
	}
}

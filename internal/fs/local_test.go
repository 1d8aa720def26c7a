package fs_test

import (
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/afero"

	"github.com/rwx-research/pathfs/internal/fs"
)

var _ = Describe("Local", func() {
	var (
		backing afero.Fs
		local   fs.Local
	)

	BeforeEach(func() {
		backing = afero.NewMemMapFs()
		Expect(backing.MkdirAll("/", os.ModePerm)).To(Succeed())
		local = fs.Local{Fs: backing}
	})

	Describe("RootExists", func() {
		It("checks the root of the path", func() {
			Expect(local.RootExists("/some/where")).To(BeTrue())
			Expect(local.RootExists("relative")).To(BeFalse())
			Expect(local.RootExists("")).To(BeFalse())
		})
	})

	Describe("FolderExists and FileExists", func() {
		BeforeEach(func() {
			Expect(backing.MkdirAll("/a/b", os.ModePerm)).To(Succeed())
			Expect(afero.WriteFile(backing, "/a/file.txt", []byte("hi"), 0o644)).To(Succeed())
		})

		It("classifies folders and files", func() {
			Expect(local.FolderExists("/a/b")).To(BeTrue())
			Expect(local.FolderExists("\\a\\b\\")).To(BeTrue())
			Expect(local.FolderExists("/a/file.txt")).To(BeFalse())
			Expect(local.FolderExists("/missing")).To(BeFalse())
			Expect(local.FolderExists("")).To(BeFalse())

			Expect(local.FileExists("/a/file.txt")).To(BeTrue())
			Expect(local.FileExists("/a/file.txt/")).To(BeFalse())
			Expect(local.FileExists("/a/b")).To(BeFalse())
			Expect(local.FileExists("/missing.txt")).To(BeFalse())
		})
	})

	Describe("CreateFolder", func() {
		It("reports whether the folder was created now", func() {
			Expect(local.CreateFolder("/a/b/c")).To(BeTrue())
			Expect(local.FolderExists("/a")).To(BeTrue())
			Expect(local.FolderExists("/a/b")).To(BeTrue())
			Expect(local.FolderExists("/a/b/c")).To(BeTrue())

			Expect(local.CreateFolder("/a/b/c")).To(BeFalse())
			Expect(local.CreateFolder("")).To(BeFalse())
		})
	})

	Describe("CreateFile", func() {
		It("creates an empty file with its ancestors", func() {
			Expect(local.CreateFile("/a/b/file.txt")).To(BeTrue())
			Expect(local.FolderExists("/a/b")).To(BeTrue())

			contents, ok := local.ReadFileContentsAsString("/a/b/file.txt")
			Expect(ok).To(BeTrue())
			Expect(contents).To(Equal(""))

			Expect(local.CreateFile("/a/b/file.txt")).To(BeFalse())
		})

		It("rejects folder-shaped paths", func() {
			Expect(local.CreateFile("/a/")).To(BeFalse())
			Expect(local.FolderExists("/a")).To(BeFalse())
		})
	})

	Describe("reading and writing", func() {
		It("returns false for missing files", func() {
			_, ok := local.ReadFileContentsAsString("/x/y.txt")
			Expect(ok).To(BeFalse())
		})

		It("writes through missing ancestors and overwrites", func() {
			local.WriteFileContentsAsString("/x/y.txt", "hi")
			Expect(local.FolderExists("/x")).To(BeTrue())
			Expect(local.FileExists("/x/y.txt")).To(BeTrue())
			Expect(local.FolderExists("/x/y.txt")).To(BeFalse())

			contents, ok := local.ReadFileContentsAsString("/x/y.txt")
			Expect(ok).To(BeTrue())
			Expect(contents).To(Equal("hi"))

			local.WriteFileContentsAsString("/x/y.txt", "")
			contents, ok = local.ReadFileContentsAsString("/x/y.txt")
			Expect(ok).To(BeTrue())
			Expect(contents).To(Equal(""))
		})
	})

	Describe("deleting", func() {
		It("deletes files", func() {
			local.WriteFileContentsAsString("/x/y.txt", "hi")

			Expect(local.DeleteFolder("/x/y.txt")).To(BeFalse())
			Expect(local.DeleteFile("/x/y.txt")).To(BeTrue())
			Expect(local.FileExists("/x/y.txt")).To(BeFalse())
			Expect(local.DeleteFile("/x/y.txt")).To(BeFalse())
		})

		It("deletes folders with their contents", func() {
			local.WriteFileContentsAsString("/x/y/z.txt", "hi")

			Expect(local.DeleteFile("/x/y")).To(BeFalse())
			Expect(local.DeleteFolder("/x/y")).To(BeTrue())
			Expect(local.FolderExists("/x/y")).To(BeFalse())
			Expect(local.FolderExists("/x")).To(BeTrue())
			Expect(local.DeleteFolder("/x/y")).To(BeFalse())
		})
	})

	Describe("error handling", func() {
		It("swallows native errors and logs them", func() {
			logger, hook := test.NewNullLogger()
			logger.SetLevel(logrus.DebugLevel)

			readOnly := fs.Local{Fs: afero.NewReadOnlyFs(backing), Log: logger}
			Expect(readOnly.CreateFolder("/blocked")).To(BeFalse())
			Expect(readOnly.FolderExists("/blocked")).To(BeFalse())

			Expect(hook.LastEntry()).NotTo(BeNil())
			Expect(hook.LastEntry().Data).To(HaveKeyWithValue("op", "create-folder"))
		})
	})
})

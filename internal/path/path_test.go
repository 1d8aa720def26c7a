package path_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rwx-research/pathfs/internal/path"
)

var _ = Describe("Path", func() {
	Describe("String", func() {
		DescribeTable("returns the wrapped string unchanged",
			func(s string) {
				Expect(path.New(s).String()).To(Equal(s))
			},
			Entry("empty", ""),
			Entry("dot", "."),
			Entry("dot dot", ".."),
			Entry("slash", "/"),
			Entry("drive with slash", "C:/"),
			Entry("backslash", "\\"),
			Entry("drive with backslash", "D:\\"),
		)
	})

	Describe("Normalize", func() {
		DescribeTable("normalizes separators",
			func(s string, expected string) {
				Expect(path.New(s).Normalize().String()).To(Equal(expected))
				Expect(path.NormalizeString(s)).To(Equal(expected))
			},
			Entry("empty", "", ""),
			Entry("dot", ".", "."),
			Entry("dot dot", "..", ".."),
			Entry("slash", "/", "/"),
			Entry("drive with slash", "C:/", "C:/"),
			Entry("backslash", "\\", "/"),
			Entry("drive with backslash", "D:\\", "D:/"),
			Entry("repeated trailing slashes", "this/is/a/test///", "this/is/a/test"),
			Entry("single trailing slash", "test/", "test"),
			Entry("repeated slashes", "/a//b///c////", "/a/b/c"),
			Entry("repeated backslashes", "\\a\\\\b\\\\\\c\\\\\\\\", "/a/b/c"),
			Entry("only slashes", "////", "/"),
			Entry("mixed separators after drive", "C:\\/\\a", "C:/a"),
		)

		DescribeTable("is idempotent",
			func(s string) {
				once := path.NormalizeString(s)
				Expect(path.NormalizeString(once)).To(Equal(once))
			},
			Entry("empty", ""),
			Entry("slash", "/"),
			Entry("backslashes", "\\\\"),
			Entry("drive", "C:\\\\"),
			Entry("bare drive", "C:"),
			Entry("relative", "a\\b//c\\"),
			Entry("dots", "./../."),
		)
	})

	Describe("RootPathString", func() {
		DescribeTable("extracts the root as written",
			func(s string, expected string) {
				p := path.New(s)
				Expect(p.RootPathString()).To(Equal(expected))
				Expect(p.IsRooted()).To(Equal(expected != ""))
			},
			Entry("empty", "", ""),
			Entry("relative", "a/b", ""),
			Entry("slash", "/", "/"),
			Entry("backslash", "\\", "\\"),
			Entry("rooted folder", "/a/b", "/"),
			Entry("bare drive", "C:", "C:"),
			Entry("drive with slash", "C:/", "C:/"),
			Entry("drive with backslash", "C:\\", "C:\\"),
			Entry("drive with folder", "C:/folder", "C:/"),
			Entry("drive relative folder", "C:folder", "C:"),
			Entry("colon after separator", "a/b:c", ""),
			Entry("leading colon", ":a", ""),
		)

		It("returns the root as a path", func() {
			root, ok := path.New("D:\\files\\a.txt").RootPath()
			Expect(ok).To(BeTrue())
			Expect(root).To(Equal(path.New("D:\\")))

			_, ok = path.New("files/a.txt").RootPath()
			Expect(ok).To(BeFalse())
		})
	})

	Describe("SkipRootPath", func() {
		It("removes the root", func() {
			Expect(path.New("/a/b").SkipRootPath()).To(Equal(path.New("a/b")))
			Expect(path.New("C:\\a\\b").SkipRootPath()).To(Equal(path.New("a\\b")))
			Expect(path.New("C:a").SkipRootPath()).To(Equal(path.New("a")))
			Expect(path.New("C:/").SkipRootPath()).To(Equal(path.New("")))
		})

		It("returns unrooted paths unchanged", func() {
			Expect(path.New("a/b").SkipRootPath()).To(Equal(path.New("a/b")))
			Expect(path.New("").SkipRootPath()).To(Equal(path.New("")))
		})

		DescribeTable("round trips with the root",
			func(s string) {
				p := path.New(s)
				root, ok := p.RootPath()
				Expect(ok).To(BeTrue())
				Expect(root.Add(p.SkipRootPath().String()).Equal(p)).To(BeTrue())
			},
			Entry("posix", "/a/b/c"),
			Entry("windows", "C:\\a\\b"),
			Entry("mixed", "Z:/a\\\\b/"),
		)
	})

	Describe("Segments", func() {
		DescribeTable("splits on separators without empty segments",
			func(s string, expected []string) {
				Expect(path.New(s).Segments()).To(Equal(expected))
			},
			Entry("empty", "", []string{}),
			Entry("slash", "/", []string{}),
			Entry("relative", "a/b/c", []string{"a", "b", "c"}),
			Entry("repeated separators", "//a\\\\b//c//", []string{"a", "b", "c"}),
			Entry("drive", "C:/a", []string{"C:", "a"}),
			Entry("dots are literal", "./../a", []string{".", "..", "a"}),
		)

		It("returns the last segment", func() {
			last, ok := path.New("/a/b.txt").LastSegment()
			Expect(ok).To(BeTrue())
			Expect(last).To(Equal("b.txt"))

			_, ok = path.New("/").LastSegment()
			Expect(ok).To(BeFalse())
		})
	})

	Describe("ParentPath", func() {
		DescribeTable("with no parent",
			func(s string) {
				_, ok := path.New(s).ParentPath()
				Expect(ok).To(BeFalse())
			},
			Entry("empty", ""),
			Entry("drive with slash", "C:/"),
			Entry("drive with backslash", "C:\\"),
			Entry("bare drive", "C:"),
			Entry("slash", "/"),
			Entry("backslash", "\\"),
			Entry("single relative segment", "a"),
			Entry("single relative segment with trailing slash", "a/"),
		)

		DescribeTable("with a parent",
			func(s string, expected string) {
				parent, ok := path.New(s).ParentPath()
				Expect(ok).To(BeTrue())
				Expect(parent.String()).To(Equal(expected))
			},
			Entry("relative", "a/b/c", "a/b"),
			Entry("relative with backslashes", "a\\b\\c", "a\\b"),
			Entry("under slash root", "/a", "/"),
			Entry("under drive root", "C:/a", "C:/"),
			Entry("under bare drive", "C:a", "C:"),
			Entry("trailing separators", "/a/b//", "/a"),
			Entry("repeated separators", "/a///b", "/a"),
		)
	})

	Describe("Add", func() {
		It("returns the segment when the path is empty", func() {
			Expect(path.New("").Add("a")).To(Equal(path.New("a")))
		})

		It("inserts a separator when needed", func() {
			Expect(path.New("/a").Add("b")).To(Equal(path.New("/a/b")))
			Expect(path.New("/").Add("b")).To(Equal(path.New("/b")))
			Expect(path.New("C:\\").Add("b")).To(Equal(path.New("C:\\b")))
		})

		It("does not re-normalize", func() {
			Expect(path.New("/a/").Add("/b")).To(Equal(path.New("/a//b")))
		})

		It("leaves the receiver unchanged", func() {
			p := path.New("/a")
			_ = p.Add("b")
			Expect(p).To(Equal(path.New("/a")))
		})
	})

	Describe("Equal", func() {
		DescribeTable("compares normalized forms both ways",
			func(lhs string, rhs string, expected bool) {
				Expect(path.New(lhs).Equal(path.New(rhs))).To(Equal(expected))
				Expect(path.New(rhs).Equal(path.New(lhs))).To(Equal(expected))
			},
			Entry("empty and empty", "", "", true),
			Entry("empty and rooted", "", "\\a\\b", false),
			Entry("empty and drive", "", "A:/", false),
			Entry("drive and drive", "C:/", "C:/", true),
			Entry("drive with either separator", "C:/", "C:\\", true),
			Entry("bare drive and rooted drive", "C:", "C:/", false),
			Entry("slash and slash", "/", "/", true),
			Entry("slash and double slash", "/", "//", true),
			Entry("slash and backslash", "/", "\\", true),
			Entry("case sensitive", "/A", "/a", false),
		)

		It("is reflexive", func() {
			for _, s := range []string{"", "/", "C:", "C:\\a//b", "a/b/"} {
				Expect(path.New(s).Equal(path.New(s))).To(BeTrue())
			}
		})
	})
})

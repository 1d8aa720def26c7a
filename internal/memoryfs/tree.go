package memoryfs

import (
	"fmt"
	"io"
	"strings"
)

// WriteTree prints every root with its folders (suffixed by "/") and files, indenting
// two spaces per level. Folders are listed before files, both in creation order.
func (mfs *MemoryFS) WriteTree(w io.Writer) error {
	for _, root := range mfs.Roots() {
		if _, err := fmt.Fprintln(w, root.Name()); err != nil {
			return err
		}
		if err := writeChildren(w, root, 1); err != nil {
			return err
		}
	}

	return nil
}

func writeChildren(w io.Writer, parent Container, depth int) error {
	indent := strings.Repeat("  ", depth)

	for _, folder := range parent.Folders() {
		if _, err := fmt.Fprintf(w, "%s%s/\n", indent, folder.Name()); err != nil {
			return err
		}
		if err := writeChildren(w, folder, depth+1); err != nil {
			return err
		}
	}

	for _, file := range parent.Files() {
		if _, err := fmt.Fprintf(w, "%s%s\n", indent, file.Name()); err != nil {
			return err
		}
	}

	return nil
}

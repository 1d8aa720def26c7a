package cli

import "io"

type TreeWriter interface {
	WriteTree(w io.Writer) error
}

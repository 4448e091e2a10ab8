package formatter

import (
	"fmt"
	"go/ast"
	"go/token"
	"io"
)

// WriteNodeDump prints the label path of a node followed by its full
// syntax tree.
func WriteNodeDump(w io.Writer, path string, fset *token.FileSet, node ast.Node) error {
	if _, err := findingStyle.Fprintf(w, "[+]: %s", path); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return ast.Fprint(w, fset, node, ast.NotNilFilter)
}

package scanner

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"

	goscanner "go/scanner"
)

// ParseFile parses src as a Go source file named filename.
func ParseFile(filename string, src []byte) (*ast.File, *token.FileSet, error) {
	fset := token.NewFileSet()
	node, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, nil, err
	}
	return node, fset, nil
}

// IsParseError reports whether err came from the Go parser rather than
// from I/O.
func IsParseError(err error) bool {
	var list goscanner.ErrorList
	return errors.As(err, &list)
}

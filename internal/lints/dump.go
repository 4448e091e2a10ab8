package lints

import (
	"go/ast"
	"go/token"
	"io"

	"golang.org/x/tools/go/ast/inspector"

	"github.com/gnoswap-labs/gscan/formatter"
	"github.com/gnoswap-labs/gscan/rule"
)

// DumpRule prints every declaration, including ones nested in function
// bodies, together with the label path that leads to it. It is a
// debugging aid and records no findings.
type DumpRule struct {
	rule.Context
	out io.Writer
}

// NewDumpRule returns a DumpRule printing to out.
func NewDumpRule(out io.Writer) *DumpRule {
	return &DumpRule{out: out}
}

// SetOutput redirects the dump, so it shares the writer findings go to.
func (r *DumpRule) SetOutput(out io.Writer) {
	r.out = out
}

// VisitFile dumps every declaration in file under its label path.
func (r *DumpRule) VisitFile(fset *token.FileSet, file *ast.File) {
	insp := inspector.New([]*ast.File{file})

	nodes := []ast.Node{
		(*ast.FuncDecl)(nil),
		(*ast.GenDecl)(nil),
	}
	insp.Nodes(nodes, func(n ast.Node, push bool) bool {
		if !push {
			r.Pop()
			return true
		}
		r.PushNode(n)
		// a failed write only loses debug output
		_ = formatter.WriteNodeDump(r.out, r.Path(), fset, n)
		return true
	})
}

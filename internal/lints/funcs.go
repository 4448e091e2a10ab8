package lints

import (
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/ast/inspector"

	"github.com/gnoswap-labs/gscan/rule"
)

const funcFindingPrefix = "Found function: "

// FuncRule reports every function-like declaration: free functions,
// bodyless (external) functions, methods and the methods of declared
// interface types. Interface literals used as parameter, variable or
// constraint types declare nothing and are not reported. Each finding
// spans the line of the declared identifier.
type FuncRule struct {
	rule.Context
}

// NewFuncRule returns a FuncRule with an empty findings buffer.
func NewFuncRule() *FuncRule {
	return &FuncRule{}
}

// VisitFile records a finding for every function-like declaration in file.
func (r *FuncRule) VisitFile(fset *token.FileSet, file *ast.File) {
	insp := inspector.New([]*ast.File{file})

	nodes := []ast.Node{
		(*ast.FuncDecl)(nil),
		(*ast.GenDecl)(nil),
		(*ast.TypeSpec)(nil),
	}
	insp.Nodes(nodes, func(n ast.Node, push bool) bool {
		switch x := n.(type) {
		case *ast.FuncDecl:
			if !push {
				r.Pop()
				return true
			}
			r.PushNode(x)
			r.report(fset, x.Name)
		case *ast.GenDecl:
			if !push {
				r.Pop()
				return true
			}
			r.PushNode(x)
		case *ast.TypeSpec:
			if iface, ok := x.Type.(*ast.InterfaceType); ok && push {
				r.reportInterfaceMethods(fset, iface)
			}
		}
		return true
	})
}

func (r *FuncRule) reportInterfaceMethods(fset *token.FileSet, iface *ast.InterfaceType) {
	if iface.Methods == nil {
		return
	}
	for _, field := range iface.Methods.List {
		// embedded interfaces and type-set terms have no names
		if _, ok := field.Type.(*ast.FuncType); !ok {
			continue
		}
		for _, name := range field.Names {
			r.report(fset, name)
		}
	}
}

func (r *FuncRule) report(fset *token.FileSet, name *ast.Ident) {
	if name == nil {
		return
	}
	r.AddFinding(rule.Finding{
		Text:      funcFindingPrefix + name.Name,
		StartLine: fset.Position(name.Pos()).Line,
		EndLine:   fset.Position(name.End()).Line,
	})
}

package rule

import (
	"fmt"
	"go/ast"
	"strings"
)

// ItemName derives a short label for n: the node kind, followed by the
// declared name when the node has one.
//
//	FuncDecl main
//	FuncDecl (*Server).Run
//	GenDecl type Config
//	TypeSpec Config
//
// It is meant for diagnostics, not for printing source.
func ItemName(n ast.Node) string {
	kind := strings.TrimPrefix(fmt.Sprintf("%T", n), "*ast.")
	if name := declName(n); name != "" {
		return kind + " " + name
	}
	return kind
}

func declName(n ast.Node) string {
	switch x := n.(type) {
	case *ast.File:
		return identName(x.Name)
	case *ast.FuncDecl:
		if x.Recv != nil && len(x.Recv.List) > 0 {
			return "(" + recvTypeName(x.Recv.List[0].Type) + ")." + identName(x.Name)
		}
		return identName(x.Name)
	case *ast.GenDecl:
		name := x.Tok.String()
		if len(x.Specs) == 1 {
			if spec := specName(x.Specs[0]); spec != "" {
				name += " " + spec
			}
		}
		return name
	case *ast.TypeSpec, *ast.ValueSpec, *ast.ImportSpec:
		return specName(x.(ast.Spec))
	case *ast.Field:
		if len(x.Names) > 0 {
			return identName(x.Names[0])
		}
	case *ast.Ident:
		return x.Name
	}
	return ""
}

func specName(spec ast.Spec) string {
	switch s := spec.(type) {
	case *ast.TypeSpec:
		return identName(s.Name)
	case *ast.ValueSpec:
		names := make([]string, 0, len(s.Names))
		for _, id := range s.Names {
			names = append(names, id.Name)
		}
		return strings.Join(names, ", ")
	case *ast.ImportSpec:
		if s.Path != nil {
			return s.Path.Value
		}
	}
	return ""
}

func recvTypeName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.StarExpr:
		return "*" + recvTypeName(t.X)
	case *ast.Ident:
		return t.Name
	case *ast.IndexExpr:
		return recvTypeName(t.X)
	case *ast.IndexListExpr:
		return recvTypeName(t.X)
	case *ast.ParenExpr:
		return recvTypeName(t.X)
	}
	return "?"
}

func identName(id *ast.Ident) string {
	if id == nil {
		return ""
	}
	return id.Name
}

package rule

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemName(t *testing.T) {
	t.Parallel()
	code := `
package main

import "fmt"

const limit = 10

var a, b int

type Server struct{}

type (
	A int
	B int
)

func (s *Server) Run() {}

func (s Server) Stop() {}

func main() {
	fmt.Println(limit)
}
`
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "test.go", code, 0)
	require.NoError(t, err)

	var names []string
	for _, decl := range f.Decls {
		names = append(names, ItemName(decl))
	}

	expected := []string{
		`GenDecl import "fmt"`,
		"GenDecl const limit",
		"GenDecl var a, b",
		"GenDecl type Server",
		"GenDecl type",
		"FuncDecl (*Server).Run",
		"FuncDecl (Server).Stop",
		"FuncDecl main",
	}
	assert.Equal(t, expected, names)
	assert.Equal(t, "File main", ItemName(f))
}

func TestItemNameFallsBackToKind(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "IfStmt", ItemName(&ast.IfStmt{}))
	assert.Equal(t, "FuncLit", ItemName(&ast.FuncLit{}))
	assert.Equal(t, "TypeSpec Config", ItemName(&ast.TypeSpec{Name: ast.NewIdent("Config")}))
}

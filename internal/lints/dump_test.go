package lints

import (
	"bytes"
	"go/parser"
	"go/token"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestDumpRule(t *testing.T) {
	t.Parallel()
	code := `
package main

import "fmt"

type Server struct{}

func (s *Server) Run() {
	const retries = 3
	fmt.Println(retries)
}
`
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "test.go", code, 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	r := NewDumpRule(&buf)
	r.VisitFile(fset, f)

	output := buf.String()
	assert.Contains(t, output, "[+]: GenDecl import \"fmt\"\n")
	assert.Contains(t, output, "[+]: GenDecl type Server\n")
	assert.Contains(t, output, "[+]: FuncDecl (*Server).Run\n")
	assert.Contains(t, output, "[+]: FuncDecl (*Server).Run -> GenDecl const retries\n")
	assert.Contains(t, output, "*ast.FuncDecl")

	assert.Equal(t, 0, r.Depth(), "label stack must be balanced")
	assert.Empty(t, r.ConsumeFindings(), "the dump rule records no findings")
}

package formatter

import (
	"bytes"
	"go/parser"
	"go/token"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoswap-labs/gscan/rule"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestNewSourceCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{name: "empty", content: "", expected: nil},
		{name: "single line", content: "package main", expected: []string{"package main"}},
		{name: "trailing newline", content: "a\nb\n", expected: []string{"a", "b"}},
		{name: "blank last line kept", content: "a\n\n", expected: []string{"a", ""}},
		{name: "crlf", content: "a\r\nb\r\n", expected: []string{"a", "b"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, NewSourceCode([]byte(tt.content)).Lines)
		})
	}
}

func TestWriteFinding(t *testing.T) {
	t.Parallel()
	src := &SourceCode{
		Lines: []string{
			"package main",
			"",
			"func main() {",
			"    x := 1",
			"    if true {}",
			"}",
		},
	}

	tests := []struct {
		name     string
		finding  rule.Finding
		expected string
	}{
		{
			name:    "two lines of trailing context",
			finding: rule.Finding{Text: "Found function: main", StartLine: 3, EndLine: 3},
			expected: `[FINDING] test.go: Found function: main
   3: func main() {
   4:     x := 1
   5:     if true {}
`,
		},
		{
			name:    "multi-line span",
			finding: rule.Finding{Text: "block", StartLine: 1, EndLine: 2},
			expected: `[FINDING] test.go: block
   1: package main
   2: 
   3: func main() {
   4:     x := 1
`,
		},
		{
			name:    "stops at end of file",
			finding: rule.Finding{Text: "tail", StartLine: 5, EndLine: 6},
			expected: `[FINDING] test.go: tail
   5:     if true {}
   6: }
`,
		},
		{
			name:    "entirely past end of file",
			finding: rule.Finding{Text: "gone", StartLine: 40, EndLine: 40},
			expected: `[FINDING] test.go: gone
`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			require.NoError(t, WriteFinding(&buf, "test.go", tt.finding, src))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestWriteSummary(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := WriteSummary(&buf, Summary{
		Findings:   3,
		Dirs:       2,
		DirErrors:  1,
		Files:      5,
		FileErrors: 1,
		Trees:      4,
		TreeErrors: 2,
	})
	require.NoError(t, err)

	expected := `--- Results ---
Findings: 3
Dirs:     2 scanned (1 errors)
Files:    5 scanned (1 errors)
AST:      4 scanned (2 errors)
`
	assert.Equal(t, expected, buf.String())
}

func TestWriteHeader(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf, "./pkg"))
	assert.Equal(t, "Running rule against: ./pkg\n", buf.String())
}

func TestWriteNodeDump(t *testing.T) {
	t.Parallel()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "test.go", "package main\n\nfunc main() {}\n", 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteNodeDump(&buf, "FuncDecl main", fset, f.Decls[0]))

	output := buf.String()
	assert.Contains(t, output, "[+]: FuncDecl main\n")
	assert.Contains(t, output, "*ast.FuncDecl")
	assert.Contains(t, output, `Name: "main"`)
}

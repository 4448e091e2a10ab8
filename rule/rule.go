// Package rule defines the contract every scan rule implements and the
// shared traversal state (a label stack and a findings buffer) that rules
// embed instead of re-implementing.
package rule

import (
	"go/ast"
	"go/token"
)

// Finding is a single observation a rule made about a source file.
// Lines are 1-based and EndLine is never before StartLine.
type Finding struct {
	Text      string
	StartLine int
	EndLine   int
}

// Visitor is implemented by rules that can inspect a parsed file.
type Visitor interface {
	// VisitFile is the entry point the scanner calls once per parsed file.
	VisitFile(fset *token.FileSet, file *ast.File)
}

// FindingsConsumer is implemented by rules that accumulate findings.
type FindingsConsumer interface {
	// ConsumeFindings returns the findings recorded so far and clears them.
	ConsumeFindings() []Finding
}

// Rule is what the scanner drives: visit a file, then drain its findings.
type Rule interface {
	Visitor
	FindingsConsumer
}

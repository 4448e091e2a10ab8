package rule

import (
	"go/ast"
	"strings"
)

const pathSeparator = " -> "

// Context is the state shared by concrete rules. It keeps a stack of
// labels for the nodes currently open on the path from the file root, and
// the findings recorded since the last drain.
//
// Rules embed a Context and bracket every descent with Push/Pop (or Enter).
// A Context is not safe for concurrent use.
type Context struct {
	stack    []string
	findings []Finding
}

// Push opens a new label on the stack.
func (c *Context) Push(label string) {
	c.stack = append(c.stack, label)
}

// PushNode pushes the label derived from n.
func (c *Context) PushNode(n ast.Node) {
	c.Push(ItemName(n))
}

// Pop closes the most recently opened label.
func (c *Context) Pop() (string, bool) {
	if len(c.stack) == 0 {
		return "", false
	}
	last := len(c.stack) - 1
	label := c.stack[last]
	c.stack = c.stack[:last]
	return label, true
}

// Enter pushes the label for n and returns the matching pop, meant to be
// deferred:
//
//	defer ctx.Enter(node)()
func (c *Context) Enter(n ast.Node) (leave func()) {
	c.PushNode(n)
	depth := len(c.stack)
	return func() {
		// unwind anything a callback left open below this node too
		for len(c.stack) >= depth {
			c.Pop()
		}
	}
}

// Depth reports how many labels are open.
func (c *Context) Depth() int {
	return len(c.stack)
}

// Stack returns a copy of the open labels, outermost first.
func (c *Context) Stack() []string {
	return append([]string(nil), c.stack...)
}

// Path renders the open labels as "outer -> inner".
func (c *Context) Path() string {
	return strings.Join(c.stack, pathSeparator)
}

// AddFinding records f. Line numbers are clamped so that the finding
// always spans at least one valid line.
func (c *Context) AddFinding(f Finding) {
	if f.StartLine < 1 {
		f.StartLine = 1
	}
	if f.EndLine < f.StartLine {
		f.EndLine = f.StartLine
	}
	c.findings = append(c.findings, f)
}

// Findings returns a copy of the recorded findings without draining them.
func (c *Context) Findings() []Finding {
	return append([]Finding(nil), c.findings...)
}

// ConsumeFindings returns the recorded findings and starts a new buffer.
// Findings added afterwards never alias the returned slice.
func (c *Context) ConsumeFindings() []Finding {
	findings := c.findings
	c.findings = nil
	return findings
}

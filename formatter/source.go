package formatter

import "strings"

// SourceCode stores the content of a source code file split into lines.
type SourceCode struct {
	Lines []string
}

// NewSourceCode splits content into lines. A trailing newline does not
// produce an extra empty line, and "\r\n" endings are trimmed.
func NewSourceCode(content []byte) *SourceCode {
	text := strings.TrimSuffix(string(content), "\n")
	if text == "" {
		return &SourceCode{}
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return &SourceCode{Lines: lines}
}

// Line returns the 1-based line n, or false past either end of the file.
func (s *SourceCode) Line(n int) (string, bool) {
	if n < 1 || n > len(s.Lines) {
		return "", false
	}
	return s.Lines[n-1], true
}

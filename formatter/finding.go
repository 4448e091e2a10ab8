package formatter

import (
	"fmt"
	"io"

	"github.com/gnoswap-labs/gscan/rule"
)

// trailingContext is how many lines past a finding's end get printed.
const trailingContext = 2

// WriteFinding prints the finding header followed by the numbered source
// lines from f.StartLine through f.EndLine+2. Output stops quietly at the
// end of the file.
func WriteFinding(w io.Writer, path string, f rule.Finding, src *SourceCode) error {
	if _, err := findingStyle.Fprintf(w, "[FINDING] %s: %s", path, f.Text); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	for n := f.StartLine; n <= f.EndLine+trailingContext; n++ {
		line, ok := src.Line(n)
		if !ok {
			break
		}
		if _, err := fmt.Fprintf(w, "%4d: %s\n", n, line); err != nil {
			return err
		}
	}
	return nil
}

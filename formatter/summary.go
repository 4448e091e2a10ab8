package formatter

import (
	"fmt"
	"io"
)

// Summary is the data shown in the closing block of a scan.
type Summary struct {
	Findings   uint
	Dirs       uint
	DirErrors  uint
	Files      uint
	FileErrors uint
	Trees      uint
	TreeErrors uint
}

// WriteHeader announces which directory a rule runs against.
func WriteHeader(w io.Writer, root string) error {
	if _, err := emphasisStyle.Fprintf(w, "Running rule against: %s", root); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

// WriteSummary prints the results block.
func WriteSummary(w io.Writer, s Summary) error {
	_, err := emphasisStyle.Fprintf(w,
		"--- Results ---\n"+
			"Findings: %d\n"+
			"Dirs:     %d scanned (%d errors)\n"+
			"Files:    %d scanned (%d errors)\n"+
			"AST:      %d scanned (%d errors)",
		s.Findings,
		s.Dirs, s.DirErrors,
		s.Files, s.FileErrors,
		s.Trees, s.TreeErrors,
	)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}

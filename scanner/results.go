package scanner

// Stats counts the three kinds of things a scan touches.
type Stats struct {
	Dirs  uint
	Files uint
	AST   uint
}

// Results aggregates one scan. Total counts what was attempted and Errors
// what failed; a directory that could not be listed only shows up in
// Errors.Dirs because it was never yielded.
type Results struct {
	Findings uint
	Total    Stats
	Errors   Stats
}

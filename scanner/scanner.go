// Package scanner walks a directory tree, parses every Go source file it
// finds, runs a rule over each parsed file and reports what the rule
// found together with the surrounding source lines.
package scanner

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/gscan/formatter"
	"github.com/gnoswap-labs/gscan/rule"
)

// Scanner drives one rule over a filesystem tree.
//
// The rule's state is mutated in place while a scan runs, so a Scanner
// must not run more than one Scan at a time.
type Scanner struct {
	fs         billy.Filesystem
	rule       rule.Rule
	out        io.Writer
	logger     *zap.Logger
	extensions []string
}

// New creates a scanner that runs r over files in fsys.
func New(fsys billy.Filesystem, r rule.Rule, opts ...Option) *Scanner {
	s := &Scanner{
		fs:         fsys,
		rule:       r,
		out:        color.Output,
		logger:     zap.NewNop(),
		extensions: []string{defaultExtension},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan walks root, runs the rule over every matching file and prints the
// findings followed by a summary. Failures are tallied in the returned
// Results and never stop the scan.
func (s *Scanner) Scan(root string) Results {
	var results Results

	for entry, err := range NewWalker(s.fs, root).All() {
		if err != nil {
			var walkErr *WalkError
			if errors.As(err, &walkErr) && !walkErr.Dir {
				// listed as a file, gone before it could be read
				results.Total.Files++
				results.Errors.Files++
			} else {
				results.Errors.Dirs++
			}
			s.logger.Debug("Error walking path", zap.String("path", entry.Path), zap.Error(err))
			continue
		}

		if entry.IsDir() {
			results.Total.Dirs++
			continue
		}

		results.Total.Files++
		if !s.isTargetFile(entry.Path) {
			continue
		}

		results.Total.AST++
		n, err := s.scanFile(entry.Path)
		if err != nil {
			if IsParseError(err) {
				results.Errors.AST++
			} else {
				results.Errors.Files++
			}
			s.logger.Debug("Error scanning file", zap.String("path", entry.Path), zap.Error(err))
			continue
		}
		results.Findings += n
	}

	err := formatter.WriteSummary(s.out, formatter.Summary{
		Findings:   results.Findings,
		Dirs:       results.Total.Dirs,
		DirErrors:  results.Errors.Dirs,
		Files:      results.Total.Files,
		FileErrors: results.Errors.Files,
		Trees:      results.Total.AST,
		TreeErrors: results.Errors.AST,
	})
	if err != nil {
		s.logger.Warn("Error writing summary", zap.Error(err))
	}

	return results
}

// scanFile reads, parses and visits one file, then renders whatever the
// rule found. It returns the number of findings.
func (s *Scanner) scanFile(path string) (uint, error) {
	content, err := util.ReadFile(s.fs, path)
	if err != nil {
		return 0, fmt.Errorf("error reading %s: %w", path, err)
	}

	display := s.displayPath(path)
	node, fset, err := ParseFile(display, content)
	if err != nil {
		return 0, fmt.Errorf("error parsing %s: %w", path, err)
	}

	s.logger.Debug("Visiting file", zap.String("path", display))
	s.rule.VisitFile(fset, node)

	findings := s.rule.ConsumeFindings()
	if len(findings) == 0 {
		return 0, nil
	}

	src := formatter.NewSourceCode(content)
	for _, f := range findings {
		if err := formatter.WriteFinding(s.out, display, f, src); err != nil {
			s.logger.Warn("Error writing finding", zap.String("path", display), zap.Error(err))
		}
	}
	return uint(len(findings)), nil
}

func (s *Scanner) isTargetFile(path string) bool {
	if len(s.extensions) == 0 {
		return true
	}

	ext := filepath.Ext(path)
	for _, targetExt := range s.extensions {
		if ext == targetExt {
			return true
		}
	}
	return false
}

// displayPath joins a walker path onto the filesystem root so that
// printed paths start with the directory the user asked for.
func (s *Scanner) displayPath(path string) string {
	root := s.fs.Root()
	if root == "" {
		return path
	}
	return s.fs.Join(root, path)
}

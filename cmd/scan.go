package cmd

import (
	"io"

	"github.com/go-git/go-billy/v5/osfs"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/gscan/formatter"
	"github.com/gnoswap-labs/gscan/rule"
	"github.com/gnoswap-labs/gscan/scanner"
)

// outputSetter is implemented by rules that print on their own.
type outputSetter interface {
	SetOutput(out io.Writer)
}

func runScan(out io.Writer, logger *zap.Logger, r rule.Rule, dir string) scanner.Results {
	if w, ok := r.(outputSetter); ok {
		w.SetOutput(out)
	}
	if err := formatter.WriteHeader(out, dir); err != nil {
		logger.Warn("Error writing header", zap.Error(err))
	}

	fsys := osfs.New(dir)
	s := scanner.New(fsys, r,
		scanner.WithOutput(out),
		scanner.WithLogger(logger),
	)
	return s.Scan(".")
}

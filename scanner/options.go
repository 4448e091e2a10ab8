package scanner

import (
	"io"

	"go.uber.org/zap"
)

const defaultExtension = ".go"

// Option configures a Scanner.
type Option func(*Scanner)

// WithOutput sets where findings and the summary are written.
func WithOutput(w io.Writer) Option {
	return func(s *Scanner) {
		s.out = w
	}
}

// WithLogger sets the logger used for per-entry diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Scanner) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithExtensions replaces the set of file extensions that get parsed.
// Extensions include the leading dot.
func WithExtensions(exts ...string) Option {
	return func(s *Scanner) {
		s.extensions = append([]string(nil), exts...)
	}
}

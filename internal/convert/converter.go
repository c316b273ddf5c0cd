// Package convert turns Markdown note bodies into Zim wiki markup via an
// external converter, and repairs known defects in its output.
package convert

import (
	"bytes"
	"context"
	"fmt"
	"strings"
)

// Converter transforms a Markdown body into the destination wiki dialect.
// It is an interface so the import pipeline and its failure paths are
// testable without spawning a real process.
type Converter interface {
	Convert(ctx context.Context, body string) (string, error)
}

// stderrSnippet trims converter diagnostics to a single log-friendly line.
func stderrSnippet(buf *bytes.Buffer) string {
	s := strings.TrimSpace(buf.String())
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	const max = 200
	if len(s) > max {
		s = s[:max]
	}
	return s
}

// wrapRunError builds a per-note conversion error carrying the converter's
// captured stderr when available.
func wrapRunError(err error, stderr *bytes.Buffer) error {
	if msg := stderrSnippet(stderr); msg != "" {
		return fmt.Errorf("convert: %w: %s", err, msg)
	}
	return fmt.Errorf("convert: %w", err)
}

// Package apperr defines the sentinel errors for configuration-level
// failures that must abort a run before any note is processed.
package apperr

import "errors"

var (
	ErrSourceDirMissing     = errors.New("source notes directory missing")
	ErrNotebookDirMissing   = errors.New("notebook directory missing")
	ErrConverterUnavailable = errors.New("markup converter unavailable")
)

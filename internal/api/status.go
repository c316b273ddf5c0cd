// Package api exposes the watch-mode status endpoints over HTTP.
package api

import (
	"sync"
	"time"

	"github.com/veldrin/notable2zim/internal/models"
)

// RunStatus is the serializable record of the most recent import pass.
type RunStatus struct {
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
	DryRun     bool           `json:"dry_run"`
	Summary    models.Summary `json:"summary"`
}

// Status holds the last run result, updated by the watch loop and read by
// the HTTP handlers.
type Status struct {
	mu   sync.RWMutex
	last *RunStatus
}

// NewStatus returns an empty Status.
func NewStatus() *Status {
	return &Status{}
}

// Set records the result of a finished run.
func (s *Status) Set(r RunStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = &r
}

// Last returns the most recent run, or nil when none completed yet.
func (s *Status) Last() *RunStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.last == nil {
		return nil
	}
	cp := *s.last
	return &cp
}

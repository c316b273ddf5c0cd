// Package models defines the domain types for notable2zim.
package models

import "time"

// Metadata holds the structured fields extracted from a note's YAML
// front matter. Every field is independently optional.
type Metadata struct {
	Title    string
	Tags     []string
	Created  *time.Time // UTC
	Modified *time.Time // UTC
}

// Note represents one source Markdown file.
type Note struct {
	Path        string // absolute path of the source file
	Base        string // file name without extension, title fallback
	Body        string // Markdown body with front matter stripped
	Meta        Metadata
	FileModTime time.Time // filesystem mtime, UTC
}

// ResolvedTitle returns the front-matter title, or the file base name
// when the metadata carries none.
func (n *Note) ResolvedTitle() string {
	if n.Meta.Title != "" {
		return n.Meta.Title
	}
	return n.Base
}

// CreatedAt returns the metadata created timestamp, falling back to the
// filesystem modification time.
func (n *Note) CreatedAt() time.Time {
	if n.Meta.Created != nil {
		return *n.Meta.Created
	}
	return n.FileModTime
}

// ModifiedAt returns the metadata modified timestamp, falling back to the
// filesystem modification time.
func (n *Note) ModifiedAt() time.Time {
	if n.Meta.Modified != nil {
		return *n.Meta.Modified
	}
	return n.FileModTime
}

// Action is the change detector's decision for one note.
type Action int

const (
	ActionSkip Action = iota
	ActionCreate
	ActionUpdate
)

// String returns a log-friendly name for the action.
func (a Action) String() string {
	switch a {
	case ActionCreate:
		return "create"
	case ActionUpdate:
		return "update"
	default:
		return "skip"
	}
}

// Event marks what a journal link entry records about a managed page.
type Event string

const (
	EventCreated Event = "created"
	EventUpdated Event = "updated"
)

// Summary aggregates per-note outcomes for one run.
type Summary struct {
	Total    int `json:"total"`
	Imported int `json:"imported"`
	Updated  int `json:"updated"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

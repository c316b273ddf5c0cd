// Package parser extracts YAML front matter from Notable Markdown files
// into a typed metadata record.
package parser

import (
	"bytes"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/veldrin/notable2zim/internal/models"
)

// envelope mirrors the front-matter fields Notable writes. Timestamps are
// kept as strings so a malformed value degrades per-field instead of
// failing the whole block.
type envelope struct {
	Title    string   `yaml:"title"`
	Tags     []string `yaml:"tags"`
	Created  string   `yaml:"created"`
	Modified string   `yaml:"modified"`
}

// timeLayouts are tried in order when parsing metadata timestamps.
// Notable writes RFC3339 with milliseconds ("2025-08-18T11:21:28.694Z").
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Parse splits raw note text into metadata and body. A missing header
// yields empty metadata and the full text as body. A malformed header is
// not fatal: the fallback result is returned together with the parse
// error so the caller can log a warning and continue.
func Parse(data []byte) (models.Metadata, string, error) {
	var env envelope
	body, err := frontmatter.Parse(bytes.NewReader(data), &env)
	if err != nil {
		return models.Metadata{}, string(data), err
	}

	meta := models.Metadata{
		Title:    strings.TrimSpace(env.Title),
		Tags:     cleanTags(env.Tags),
		Created:  parseTime(env.Created),
		Modified: parseTime(env.Modified),
	}
	return meta, string(body), nil
}

// parseTime parses a metadata timestamp, normalising to UTC. Values
// without a zone are understood as UTC. Unparseable values are dropped.
func parseTime(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			u := t.UTC()
			return &u
		}
	}
	return nil
}

func cleanTags(raw []string) []string {
	var out []string
	for _, t := range raw {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

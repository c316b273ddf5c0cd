// Package zim renders Zim Desktop Wiki pages: managed note pages, the
// per-date journal pages, and the inline tag and link syntax they carry.
package zim

import (
	"fmt"
	"strings"
	"time"
)

const (
	contentTypeLine = "Content-Type: text/x-zim-wiki"
	wikiFormatLine  = "Wiki-Format: zim 0.6"

	journalLinksHeading = "**Journal Links:**"
)

// Header renders the fixed Zim page header followed by the top-level
// heading. created must already be in the local zone; Zim expects a local
// creation stamp.
func Header(title string, created time.Time) string {
	return fmt.Sprintf("%s\n%s\nCreation-Date: %s\n\n====== %s ======\n\n",
		contentTypeLine, wikiFormatLine, created.Format(time.RFC3339), title)
}

// PageSpec carries everything needed to assemble one managed page.
// Created and Modified are local-zone timestamps.
type PageSpec struct {
	Title     string
	Created   time.Time
	Modified  time.Time
	Body      string
	Tags      []string
	JournalNS string // namespace of the journal subtree, e.g. "Journal"
}

// Render assembles the full page: header block, repaired body, journal
// links section, trailing tag line. The result is written wholesale; the
// same spec always renders the same bytes.
func (p PageSpec) Render() string {
	var b strings.Builder
	b.WriteString(Header(p.Title, p.Created))
	b.WriteString(strings.TrimRight(p.Body, " \t\n"))
	b.WriteString("\n")

	if section := p.journalLinksSection(); section != "" {
		b.WriteString(section)
	}

	if line := TagLine(p.Tags); line != "" {
		b.WriteString("\n" + line + "\n")
	}
	return b.String()
}

// journalLinksSection lists the journal days this page is linked from: the
// creation day always, the modification day only when it differs.
func (p PageSpec) journalLinksSection() string {
	if p.Created.IsZero() {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n" + journalLinksHeading + "\n")
	b.WriteString("* " + JournalDayLink(p.JournalNS, p.Created, "Created") + "\n")
	if !p.Modified.IsZero() && !sameDay(p.Created, p.Modified) {
		b.WriteString("* " + JournalDayLink(p.JournalNS, p.Modified, "Modified") + "\n")
	}
	return b.String()
}

// JournalDayLink renders a link to the journal page for t's calendar day,
// labelled e.g. "Created on August 18 2025". t must be local.
func JournalDayLink(ns string, t time.Time, verb string) string {
	y, m, d := t.Date()
	return fmt.Sprintf("[[%s:%04d:%02d:%02d|%s on %s]]", ns, y, int(m), d, verb, t.Format("January 02 2006"))
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Namespace converts a notebook-relative directory into Zim's colon link
// namespace ("raw_ai_notes", "a/b" → "a:b").
func Namespace(dir string) string {
	return strings.ReplaceAll(strings.Trim(dir, "/"), "/", ":")
}

// HumanizeTitle turns a directory-ish name into a page title:
// "raw_ai_notes" → "Raw Ai Notes".
func HumanizeTitle(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

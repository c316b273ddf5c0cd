package zim

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/veldrin/notable2zim/internal/localtime"
	"github.com/veldrin/notable2zim/internal/models"
	"github.com/veldrin/notable2zim/internal/storage"
)

// Journal locates, creates, and appends backlinks to the per-date journal
// pages. Appends are read-modify-write over the whole page and
// deduplicated by the rendered link line, so re-running the importer any
// number of times leaves journal pages byte-for-byte stable.
type Journal struct {
	store   storage.Provider
	root    string // notebook-relative journal subtree, e.g. "Journal"
	section string // section heading text, e.g. "AI Notes"
	norm    *localtime.Normalizer
}

// NewJournal returns a Journal writing under root with the given link
// section heading.
func NewJournal(store storage.Provider, root, section string, norm *localtime.Normalizer) *Journal {
	return &Journal{store: store, root: root, section: section, norm: norm}
}

// Root returns the notebook-relative journal subtree.
func (j *Journal) Root() string {
	return j.root
}

// PagePath returns the notebook-relative path of the journal page for the
// given local time: Journal/2025/08/18.txt.
func (j *Journal) PagePath(local time.Time) string {
	y, m, d := local.Date()
	return path.Join(j.root, fmt.Sprintf("%04d/%02d/%02d.txt", y, int(m), d))
}

// PageTitle returns the fixed human-readable journal title for the given
// local time, e.g. "Monday 18 Aug 2025".
func (j *Journal) PageTitle(local time.Time) string {
	return local.Format("Monday 02 Jan 2006")
}

// FormatLink renders one backlink line. Updated entries carry an explicit
// marker so a creation link and an update link for the same page on the
// same day stay distinct.
func FormatLink(ns, slug, title string, event models.Event) string {
	line := fmt.Sprintf("* [[%s:%s|%s]]", ns, slug, title)
	if event == models.EventUpdated {
		line += " (updated)"
	}
	return line
}

// AddLink appends a backlink to the journal page for when's LOCAL calendar
// date, creating the page and the link section on first need. It reports
// whether a line was actually appended; an already-present link is a
// no-op.
func (j *Journal) AddLink(when time.Time, ns, slug, title string, event models.Event) (bool, error) {
	local := j.norm.ToLocal(when)
	rel := j.PagePath(local)

	exists, err := j.store.Exists(rel)
	if err != nil {
		return false, err
	}

	var content string
	if exists {
		data, err := j.store.Read(rel)
		if err != nil {
			return false, err
		}
		content = string(data)
	} else {
		content = Header(j.PageTitle(local), time.Now().In(j.norm.Location()))
	}

	if hasLink(content, ns, slug, event) {
		return false, nil
	}
	line := FormatLink(ns, slug, title, event)

	heading := "===== " + j.section + " ====="
	if !hasLine(content, heading) {
		if !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		content += "\n" + heading + "\n"
	}
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += line + "\n"

	if err := j.store.Write(rel, []byte(content)); err != nil {
		return false, err
	}
	return true, nil
}

// hasLink reports whether content already carries a backlink for the given
// page and event. The title is not part of the key: a note retitled between
// two same-day imports still has one entry per event.
func hasLink(content, ns, slug string, event models.Event) bool {
	prefix := fmt.Sprintf("* [[%s:%s|", ns, slug)
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, " \t")
		if !strings.HasPrefix(line, prefix) {
			continue
		}
		if strings.HasSuffix(line, " (updated)") == (event == models.EventUpdated) {
			return true
		}
	}
	return false
}

// hasLine reports whether content contains want as a full line, ignoring
// trailing whitespace.
func hasLine(content, want string) bool {
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimRight(line, " \t") == want {
			return true
		}
	}
	return false
}

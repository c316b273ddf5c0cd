// Package slug derives page-safe unique identifiers from note titles and
// resolves collisions deterministically.
package slug

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/veldrin/notable2zim/internal/textutil"
)

var (
	illegalRe    = regexp.MustCompile(`[^a-z0-9\s_-]+`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Slugify normalizes a title into a filesystem/page-safe identifier:
// diacritics folded, lowercased, illegal runes stripped, whitespace runs
// collapsed to a single underscore, leading/trailing separators trimmed.
// An empty result becomes "untitled".
func Slugify(s string) string {
	s = strings.ToLower(textutil.Fold(s))
	s = illegalRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_-")
	if s == "" {
		return "untitled"
	}
	return s
}

// Allocator assigns unique slugs within one output directory. Ownership is
// keyed by source path: re-processing a note reuses its recorded slug,
// while a different note colliding on the same base slug receives the
// smallest unused "-N" suffix, first-seen-wins.
//
// owners maps slug → owning source path. An empty owner marks a page found
// on disk with no ledger record (a prior run interrupted between the page
// write and the record); the first note whose candidate matches adopts it.
type Allocator struct {
	owners map[string]string
	bySrc  map[string]string // source path → slug
}

// NewAllocator builds an allocator from the known slug owners.
func NewAllocator(owners map[string]string) *Allocator {
	a := &Allocator{
		owners: make(map[string]string, len(owners)),
		bySrc:  make(map[string]string, len(owners)),
	}
	for s, src := range owners {
		a.owners[s] = src
		if src != "" {
			a.bySrc[src] = s
		}
	}
	return a
}

// Allocate returns the slug for the note identified by source, deriving it
// from title on first sight. Once allocated, the pairing never changes for
// the lifetime of the allocator.
func (a *Allocator) Allocate(source, title string) string {
	if s, ok := a.bySrc[source]; ok {
		return s
	}

	base := Slugify(title)
	cand := base
	for i := 2; ; i++ {
		owner, taken := a.owners[cand]
		if !taken || owner == "" || owner == source {
			a.owners[cand] = source
			a.bySrc[source] = cand
			return cand
		}
		cand = fmt.Sprintf("%s-%d", base, i)
	}
}

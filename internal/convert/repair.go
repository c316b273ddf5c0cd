package convert

import (
	"regexp"
	"strings"

	"github.com/veldrin/notable2zim/internal/textutil"
)

// headingRe matches a Zim heading line ("====== Title ======" at any
// level) and captures the heading text.
var headingRe = regexp.MustCompile(`^=+\s*(.*?)\s*=+$`)

// RemoveDuplicateHeading strips the redundant top-level heading pandoc
// emits when the Markdown body repeats the note title. Only the first
// non-blank line is considered, and it is removed only when its canonical
// form matches the title or the slug; later headings with the same text
// are body content and stay untouched.
func RemoveDuplicateHeading(body, title, slug string) string {
	lines := strings.Split(body, "\n")

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		m := headingRe.FindStringSubmatch(trimmed)
		if m == nil {
			return body
		}
		if !headingEchoesTitle(m[1], title, slug) {
			return body
		}
		// Drop the heading and the blank run that follows it.
		rest := lines[i+1:]
		for len(rest) > 0 && strings.TrimSpace(rest[0]) == "" {
			rest = rest[1:]
		}
		return strings.Join(rest, "\n")
	}
	return body
}

// headingEchoesTitle compares the heading text against the title and slug
// after Unicode and quote normalization. Canonical form strips every
// non-alphanumeric rune, which also covers underscore-vs-space and
// concatenated-word variations introduced along the Notable/pandoc path.
func headingEchoesTitle(heading, title, slug string) bool {
	h := textutil.Canonical(strings.Trim(heading, `'"`))
	if h == "" {
		return false
	}
	return h == textutil.Canonical(title) || h == textutil.Canonical(slug)
}

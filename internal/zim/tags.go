package zim

import (
	"regexp"
	"strings"

	"github.com/veldrin/notable2zim/internal/textutil"
)

var (
	tagQuotesRe = regexp.MustCompile("['\"`]+")
	tagJoinRe   = regexp.MustCompile(`[^a-z0-9]+`)
)

// FormatTag canonicalizes a free-form tag into Zim's inline tag token:
// folded and lowercased, quotes dropped, every other non-alphanumeric run
// (spaces, hyphens, path separators, punctuation) joined with a single
// underscore. Hierarchical tags keep all their segments, so
// "Projects/AI2Zim" becomes "projects_ai2zim" rather than losing the
// hierarchy. Returns "" when nothing legal remains.
func FormatTag(raw string) string {
	s := strings.ToLower(textutil.Fold(strings.TrimSpace(raw)))
	s = tagQuotesRe.ReplaceAllString(s, "")
	s = tagJoinRe.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// TagLine renders the trailing tag line ("**Tags:** @a @b") from raw tags,
// formatted, order-preserving, and de-duplicated. Returns "" when no tag
// survives formatting.
func TagLine(raw []string) string {
	seen := make(map[string]struct{}, len(raw))
	var tokens []string
	for _, r := range raw {
		t := FormatTag(r)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		tokens = append(tokens, "@"+t)
	}
	if len(tokens) == 0 {
		return ""
	}
	return "**Tags:** " + strings.Join(tokens, " ")
}

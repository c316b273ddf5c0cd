// Package textutil provides Unicode folding helpers shared by the slug,
// tag, and heading-repair code.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer decomposes to NFD, drops combining marks, and recomposes,
// turning "café" into "cafe".
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// typographic maps curly quotes and long dashes to their plain equivalents.
// NFD does not decompose these, so they need an explicit pass.
var typographic = strings.NewReplacer(
	"‘", "'", "’", "'",
	"“", `"`, "”", `"`,
	"–", "-", "—", "-",
)

// Fold replaces typographic punctuation with plain ASCII and strips
// diacritics. Input that cannot be transformed is returned unchanged.
func Fold(s string) string {
	s = typographic.Replace(s)
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return s
	}
	return out
}

// Canonical reduces a string to its comparison form: folded, lowercased,
// with every non-alphanumeric rune removed. Used to decide whether a
// converted heading echoes a note title.
func Canonical(s string) string {
	s = strings.ToLower(Fold(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Package textnorm cleans free-text recipe fields before hashing,
// translation, and annotation.
package textnorm

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)

	// sentence terminator glued to the next Latin or Telugu letter
	missingSentenceGap = regexp.MustCompile(`([.!?])\s*([a-zA-Z\x{0C00}-\x{0C7F}])`)
)

// Clean normalizes text for downstream processing: NFKC so visually
// identical characters compare equal, whitespace runs collapsed to one
// space, surrounding whitespace trimmed, and a space restored between a
// sentence terminator and a letter glued to it. Empty input stays empty.
// Clean is idempotent.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	text = norm.NFKC.String(text)
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)
	text = missingSentenceGap.ReplaceAllString(text, "$1 $2")

	return text
}

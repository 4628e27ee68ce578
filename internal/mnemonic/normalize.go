package mnemonic

import (
	"regexp"
	"strings"
)

//nolint:gochecknoglobals // compiled once, read-only
var (
	// numberedListRegex matches list numbers like "1." "2)" "3:" at the start
	// of a token, whether one per line or several on one line.
	numberedListRegex = regexp.MustCompile(`(?:^|\s)\d+[\.\)\:]`)

	// bulletListRegex matches bullets like "- " "* " "• " at the start of a token.
	bulletListRegex = regexp.MustCompile(`(?:^|\s)[-*•]`)
)

// BlankMarkers overwrites list numbering, bullets and commas in b with spaces,
// in place, and returns b. Splitting the result on whitespace yields the
// phrase tokens. No copy of b is made, so b may live in locked memory.
//
// Digits and punctuation never occur in dictionary words, so a marker glued
// to a word ("1.wrap", "-jar") is removed as well.
func BlankMarkers(b []byte) []byte {
	for _, re := range []*regexp.Regexp{numberedListRegex, bulletListRegex} {
		for _, loc := range re.FindAllIndex(b, -1) {
			blank(b[loc[0]:loc[1]])
		}
	}
	for i, c := range b {
		if c == ',' {
			b[i] = ' '
		}
	}
	return b
}

func blank(b []byte) {
	for i := range b {
		b[i] = ' '
	}
}

// NormalizeInput cleans pasted mnemonic input by:
// - Removing numbered list prefixes (1. 2) 3: etc.), anywhere on a line
// - Removing bullet prefixes (- * •)
// - Replacing commas with spaces
// - Collapsing whitespace and trimming both ends
//
// Case is preserved: word matching stays case-sensitive.
func NormalizeInput(input string) string {
	return strings.Join(strings.Fields(string(BlankMarkers([]byte(input)))), " ")
}

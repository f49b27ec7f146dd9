package parser

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Strip removes every control function from s.
func Strip(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for token := range NewTokenStream(s).All() {
		if token.Type == TokenText {
			b.WriteString(token.Text)
		}
	}
	return b.String()
}

// VisibleWidth returns the number of terminal cells taken by the text of s,
// ignoring control functions.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(Strip(s))
}

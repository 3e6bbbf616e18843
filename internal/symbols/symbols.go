// Package symbols extracts markdown heading symbols from note text.
package symbols

import (
	"regexp"
	"strings"
)

// headingRe matches an ATX heading: optional leading whitespace, 1-6 '#'
// characters, then whitespace before the heading text. A seventh '#' leaves
// the marker group followed by '#' instead of whitespace, so such lines are
// not headings.
var headingRe = regexp.MustCompile(`^\s*(#{1,6})\s+(.*)$`)

// Heading is one extracted heading symbol.
type Heading struct {
	Level   int    // 1-6
	Text    string // trimmed text after the marker
	Line    int    // zero-based line number
	LineLen int    // length of the full source line
}

// Headings scans text line by line and returns every heading in order.
// Headings are reported flat: levels never nest.
func Headings(text string) []Heading {
	var out []Heading
	for i, raw := range strings.Split(text, "\n") {
		m := headingRe.FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		out = append(out, Heading{
			Level:   len(m[1]),
			Text:    strings.TrimSpace(m[2]),
			Line:    i,
			LineLen: len(raw),
		})
	}
	return out
}

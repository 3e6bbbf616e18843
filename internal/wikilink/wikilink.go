// Package wikilink locates [[target]] and [[target|title]] constructs
// around a cursor position within a single line of text.
package wikilink

import (
	"regexp"
	"strings"
)

// linkRe matches one wikilink occurrence. Target and title are non-greedy
// and surrounded by optional whitespace; the target may not contain '|' or
// ']', the title may not contain ']'.
var linkRe = regexp.MustCompile(`\[\[\s*([^|\]]+?)\s*(?:\|\s*([^\]]+?)\s*)?\]\]`)

// Occurrence is one wikilink found on a line. Start and End are character
// offsets forming a half-open span: End is the offset immediately after the
// closing ]].
type Occurrence struct {
	Start  int
	End    int
	Target string
	Title  string
}

// LocateAt scans line left-to-right for wikilink occurrences and returns the
// one containing col. Both delimiters count as inside: the occurrence is
// current iff Start <= col <= End. An occurrence whose trimmed target is
// empty is treated as not a link.
func LocateAt(line string, col int) (Occurrence, bool) {
	for _, idx := range linkRe.FindAllStringSubmatchIndex(line, -1) {
		start, end := idx[0], idx[1]
		if col < start || col > end {
			continue
		}
		target := strings.TrimSpace(line[idx[2]:idx[3]])
		if target == "" {
			return Occurrence{}, false
		}
		occ := Occurrence{Start: start, End: end, Target: target}
		if idx[4] >= 0 {
			occ.Title = strings.TrimSpace(line[idx[4]:idx[5]])
		}
		return occ, true
	}
	return Occurrence{}, false
}

// InsideLink is the coarse gate used to decide whether completions should be
// offered. It finds the nearest [[ before the cursor; if no ]] follows on
// the line the link is still being typed and completions apply, otherwise
// they apply only while the cursor sits at or before the closing delimiter.
func InsideLink(line string, col int) bool {
	if col > len(line) {
		col = len(line)
	}
	prefix := line[:col]
	open := strings.LastIndex(prefix, "[[")
	if open < 0 {
		return false
	}
	closeOffset := strings.Index(line[open:], "]]")
	if closeOffset < 0 {
		// Unterminated, in-progress link.
		return true
	}
	return col <= open+closeOffset
}

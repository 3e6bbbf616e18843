package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gparser "github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

var engine = goldmark.New(
	goldmark.WithExtensions(
		extension.Strikethrough,
		extension.TaskList,
		WikiLinkExt,
	),
)

// Format normalizes a markdown document. The body is parsed, streamed
// through the wiki link transformer and rendered back out, so every
// [[target|alias]] comes out in canonical form and block spacing is
// regular. YAML frontmatter passes through untouched.
func Format(input string) (string, error) {
	front, body := splitFront(input)

	source := []byte(body)
	root := engine.Parser().Parse(text.NewReader(source), gparser.WithContext(gparser.NewContext()))

	out := render(source, NewTransformer(newStream(source, root)))
	out = strings.ReplaceAll(out, `\[[`, `[[`)
	out = strings.TrimRight(out, "\n")
	if out != "" {
		out += "\n"
	}
	return front + out, nil
}

// splitFront peels off a leading YAML frontmatter block, including its
// fences and one following blank line, and returns it verbatim.
func splitFront(input string) (front, body string) {
	if !strings.HasPrefix(input, "---\n") {
		return "", input
	}
	end := strings.Index(input[4:], "\n---")
	if end < 0 {
		return "", input
	}
	rest := input[4+end+4:]
	if rest != "" && rest[0] != '\n' {
		return "", input
	}
	front = input[:4+end+4]
	if strings.HasPrefix(rest, "\n") {
		front += "\n"
		rest = rest[1:]
		if strings.HasPrefix(rest, "\n") {
			front += "\n"
			rest = rest[1:]
		}
	}
	return front, rest
}

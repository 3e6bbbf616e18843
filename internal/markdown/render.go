package markdown

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
)

type listState struct {
	marker  byte
	ordered bool
	number  int
	tight   bool
	items   int
}

// renderer writes an event stream back out as markdown. Block nodes
// open with beginBlock, which inserts a blank separator line unless the
// block directly follows a container marker ("- ", "> ") and continues
// on the marker's line. prefix carries the continuation indent of the
// open containers and is re-inserted after every newline.
type renderer struct {
	sb     strings.Builder
	source []byte

	prefix      string
	prefixes    []string
	afterMarker bool

	lists []listState
}

func render(source []byte, src Source) string {
	r := &renderer{source: source}
	for {
		ev, ok := src.Next()
		if !ok {
			break
		}
		r.event(ev)
	}
	return r.sb.String()
}

func (r *renderer) event(ev Event) {
	switch ev.Kind {
	case EventText:
		r.text(ev.Text)
	case EventLinkStart:
		r.raw("[")
	case EventLinkEnd:
		r.raw("](")
		r.raw(ev.Destination)
		if ev.Title != "" {
			r.raw(` "` + ev.Title + `"`)
		}
		r.raw(")")
	case EventOther:
		r.node(ev.Node, ev.Entering)
	}
}

func (r *renderer) raw(s string) {
	r.sb.WriteString(s)
}

// text writes inline text, restoring the container prefix after any
// embedded line break.
func (r *renderer) text(s string) {
	if r.prefix != "" {
		s = strings.ReplaceAll(s, "\n", "\n"+r.prefix)
	}
	r.sb.WriteString(s)
}

func (r *renderer) beginBlock() {
	if r.afterMarker {
		r.afterMarker = false
		return
	}
	if r.sb.Len() == 0 {
		return
	}
	r.sb.WriteString("\n")
	r.sb.WriteString(strings.TrimRight(r.prefix, " "))
	r.sb.WriteString("\n")
	r.sb.WriteString(r.prefix)
}

func (r *renderer) pushPrefix(add string) {
	r.prefixes = append(r.prefixes, r.prefix)
	r.prefix += add
}

func (r *renderer) popPrefix() {
	if n := len(r.prefixes); n > 0 {
		r.prefix = r.prefixes[n-1]
		r.prefixes = r.prefixes[:n-1]
	}
}

func (r *renderer) node(n ast.Node, entering bool) {
	switch t := n.(type) {
	case *ast.Document:
	case *ast.Paragraph, *ast.TextBlock:
		if entering {
			r.beginBlock()
		}
	case *ast.Heading:
		if entering {
			r.beginBlock()
			r.raw(strings.Repeat("#", t.Level) + " ")
		}
	case *ast.ThematicBreak:
		if entering {
			r.beginBlock()
			r.raw("---")
		}
	case *ast.Blockquote:
		if entering {
			r.beginBlock()
			r.raw("> ")
			r.pushPrefix("> ")
			r.afterMarker = true
		} else {
			r.popPrefix()
		}
	case *ast.List:
		if entering {
			r.lists = append(r.lists, listState{
				marker:  t.Marker,
				ordered: t.IsOrdered(),
				number:  t.Start,
				tight:   t.IsTight,
			})
		} else {
			r.lists = r.lists[:len(r.lists)-1]
		}
	case *ast.ListItem:
		r.listItem(t, entering)
	case *ast.FencedCodeBlock:
		r.fencedCode(t, entering)
	case *ast.CodeBlock:
		// Indented code comes back fenced.
		if entering {
			r.beginBlock()
			r.raw("```")
			r.writeLines(t)
		} else {
			r.raw("\n" + r.prefix + "```")
		}
	case *ast.HTMLBlock:
		if entering {
			r.beginBlock()
			r.writeLinesBare(t)
			if t.HasClosure() {
				r.raw("\n" + r.prefix + string(t.ClosureLine.Value(r.source)))
			}
		}
	case *ast.Emphasis:
		if t.Level >= 2 {
			r.raw("**")
		} else {
			r.raw("*")
		}
	case *east.Strikethrough:
		r.raw("~~")
	case *ast.CodeSpan:
		r.raw("`")
	case *ast.AutoLink:
		if entering {
			r.raw("<" + string(t.Label(r.source)) + ">")
		}
	case *ast.Image:
		if entering {
			r.raw("![")
		} else {
			r.raw("](" + string(t.Destination))
			if len(t.Title) > 0 {
				r.raw(` "` + string(t.Title) + `"`)
			}
			r.raw(")")
		}
	case *ast.RawHTML:
		if entering {
			for i := 0; i < t.Segments.Len(); i++ {
				seg := t.Segments.At(i)
				r.raw(string(seg.Value(r.source)))
			}
		}
	case *east.TaskCheckBox:
		if entering {
			if t.IsChecked {
				r.raw("[x] ")
			} else {
				r.raw("[ ] ")
			}
		}
	}
}

func (r *renderer) listItem(item *ast.ListItem, entering bool) {
	if !entering {
		r.popPrefix()
		return
	}
	ls := &r.lists[len(r.lists)-1]
	list := item.Parent()
	nested := list.Parent() != nil && list.Parent().Kind() == ast.KindListItem

	if ls.items == 0 {
		if nested && ls.tight && !r.afterMarker {
			r.raw("\n" + r.prefix)
		} else {
			r.beginBlock()
		}
	} else if ls.tight {
		r.raw("\n" + r.prefix)
	} else {
		r.raw("\n" + strings.TrimRight(r.prefix, " ") + "\n" + r.prefix)
	}
	ls.items++

	var marker string
	if ls.ordered {
		marker = strconv.Itoa(ls.number) + string(ls.marker) + " "
		ls.number++
	} else {
		marker = string(ls.marker) + " "
	}
	r.raw(marker)
	r.pushPrefix(strings.Repeat(" ", len(marker)))
	r.afterMarker = true
}

func (r *renderer) fencedCode(t *ast.FencedCodeBlock, entering bool) {
	if entering {
		r.beginBlock()
		r.raw("```")
		if t.Info != nil {
			r.raw(string(t.Info.Segment.Value(r.source)))
		}
		r.writeLines(t)
	} else {
		r.raw("\n" + r.prefix + "```")
	}
}

func (r *renderer) writeLines(n ast.Node) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		line := strings.TrimRight(string(seg.Value(r.source)), "\n")
		r.raw("\n" + r.prefix + line)
	}
}

func (r *renderer) writeLinesBare(n ast.Node) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		line := strings.TrimRight(string(seg.Value(r.source)), "\n")
		if i > 0 {
			r.raw("\n" + r.prefix)
		}
		r.raw(line)
	}
}

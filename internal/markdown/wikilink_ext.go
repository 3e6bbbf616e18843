package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// WikiLink is an inline [[target]] or [[target|title]] node. For piped
// links the title is kept as child text nodes; a bare [[target]] has no
// children so rendering it reproduces the input verbatim.
type WikiLink struct {
	ast.BaseInline
	Target []byte
}

// KindWikiLink is the node kind of WikiLink.
var KindWikiLink = ast.NewNodeKind("WikiLink")

// Kind implements ast.Node.
func (n *WikiLink) Kind() ast.NodeKind {
	return KindWikiLink
}

// Dump implements ast.Node.
func (n *WikiLink) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Target": string(n.Target),
	}, nil)
}

type wikiLinkParser struct{}

func (p *wikiLinkParser) Trigger() []byte {
	return []byte{'['}
}

func (p *wikiLinkParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, seg := block.PeekLine()
	// Need at least [[x]].
	if len(line) < 5 || line[1] != '[' {
		return nil
	}
	closing := bytes.Index(line, []byte("]]"))
	if closing < 2 {
		return nil
	}

	inner := line[2:closing]
	pipe := bytes.IndexByte(inner, '|')
	target := inner
	if pipe >= 0 {
		target = inner[:pipe]
	}
	target = bytes.TrimSpace(target)
	if len(target) == 0 {
		// [[]] or [[ |x]] is not a link.
		return nil
	}

	n := &WikiLink{Target: target}
	if pipe >= 0 {
		titleSeg := text.NewSegment(seg.Start+2+pipe+1, seg.Start+closing)
		titleSeg = titleSeg.TrimLeftSpace(block.Source())
		titleSeg = titleSeg.TrimRightSpace(block.Source())
		if titleSeg.Len() > 0 {
			n.AppendChild(n, ast.NewTextSegment(titleSeg))
		}
	}

	block.Advance(closing + 2)
	return n
}

type wikiLinkExtension struct{}

// WikiLinkExt enables [[...]] parsing. It registers ahead of the standard
// link parser so double brackets never reach it.
var WikiLinkExt goldmark.Extender = &wikiLinkExtension{}

func (e *wikiLinkExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(&wikiLinkParser{}, 199),
	))
}

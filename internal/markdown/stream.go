package markdown

import (
	"github.com/yuin/goldmark/ast"
)

type frame struct {
	node     ast.Node
	entering bool
}

// astStream walks a parsed tree depth-first and yields one Event per
// visit. Containers yield an entering and a leaving event; leaf text
// nodes yield a single EventText.
type astStream struct {
	source []byte
	stack  []frame
}

func newStream(source []byte, root ast.Node) *astStream {
	s := &astStream{source: source}
	s.push(root, true)
	return s
}

func (s *astStream) push(n ast.Node, entering bool) {
	s.stack = append(s.stack, frame{node: n, entering: entering})
}

func (s *astStream) pop() (frame, bool) {
	if len(s.stack) == 0 {
		return frame{}, false
	}
	f := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return f, true
}

// Next implements Source.
func (s *astStream) Next() (Event, bool) {
	f, ok := s.pop()
	if !ok {
		return Event{}, false
	}
	n := f.node

	if f.entering {
		switch t := n.(type) {
		case *ast.Text:
			ev := Event{Kind: EventText, Text: string(t.Segment.Value(s.source)), Node: n, Entering: true}
			if t.HardLineBreak() {
				ev.Text += "\\\n"
			} else if t.SoftLineBreak() {
				ev.Text += "\n"
			}
			return ev, true
		case *ast.String:
			return Event{Kind: EventText, Text: string(t.Value), Node: n, Entering: true}, true
		}

		// Schedule the leaving event, then children in reverse so they
		// pop in document order.
		s.push(n, false)
		for c := n.LastChild(); c != nil; c = c.PreviousSibling() {
			s.push(c, true)
		}

		switch t := n.(type) {
		case *WikiLink:
			return Event{
				Kind:        EventLinkStart,
				Link:        LinkWiki,
				Destination: string(t.Target),
				Node:        n,
				Entering:    true,
			}, true
		case *ast.Link:
			return Event{
				Kind:        EventLinkStart,
				Link:        LinkRegular,
				Destination: string(t.Destination),
				Title:       string(t.Title),
				Node:        n,
				Entering:    true,
			}, true
		}
		return Event{Kind: EventOther, Node: n, Entering: true}, true
	}

	switch t := n.(type) {
	case *WikiLink:
		return Event{Kind: EventLinkEnd, Link: LinkWiki, Destination: string(t.Target), Node: n}, true
	case *ast.Link:
		return Event{Kind: EventLinkEnd, Link: LinkRegular, Destination: string(t.Destination), Title: string(t.Title), Node: n}, true
	}
	return Event{Kind: EventOther, Node: n}, true
}

// Package markdown parses, transforms, and re-renders markdown so that
// wiki-link syntax survives a round trip through a generic parser.
//
// The pieces compose as a pull pipeline: the goldmark parser produces an
// AST, the stream flattens it into events, the transformer rewrites
// wiki-link events into literal text, and the renderer serializes the
// resulting stream back to markdown.
package markdown

import "github.com/yuin/goldmark/ast"

// EventKind discriminates the event variants the transformer inspects.
type EventKind int

const (
	// EventText is a run of plain text.
	EventText EventKind = iota
	// EventLinkStart opens a link; Link carries its kind.
	EventLinkStart
	// EventLinkEnd closes the innermost open link.
	EventLinkEnd
	// EventOther relays any other structural boundary opaquely via Node.
	EventOther
)

// LinkKind separates wiki-links from regular markdown links.
type LinkKind int

const (
	LinkRegular LinkKind = iota
	LinkWiki
)

// Event is one step of the markdown stream.
type Event struct {
	Kind        EventKind
	Text        string // EventText content
	Link        LinkKind
	Destination string // EventLinkStart destination
	Title       string // EventLinkStart title, if the source carried one
	Node        ast.Node
	Entering    bool // EventOther: whether the node is being entered
}

// Source is a pull-based event stream.
type Source interface {
	// Next returns the next event, or false when the stream is exhausted.
	Next() (Event, bool)
}

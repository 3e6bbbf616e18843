package lsp

import (
	"os"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/starford/wynn/internal/wikilink"
)

// hover previews the note a wiki link points at.
func (s *Server) hover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	text, ok := s.docText(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	line, ok := lineAt(text, params.Position.Line)
	if !ok {
		return nil, nil
	}

	occ, ok := wikilink.LocateAt(line, int(params.Position.Character))
	if !ok {
		return nil, nil
	}

	abs, err := s.notes.Resolve(occ.Target)
	if err != nil {
		return nil, nil
	}
	content, err := os.ReadFile(abs)
	if err != nil {
		return nil, nil
	}

	hoverRange := protocol.Range{
		Start: protocol.Position{Line: params.Position.Line, Character: uint32(occ.Start)},
		End:   protocol.Position{Line: params.Position.Line, Character: uint32(occ.End)},
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: string(content),
		},
		Range: &hoverRange,
	}, nil
}

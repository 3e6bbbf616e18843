package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/starford/wynn/internal/wikilink"
)

// definition jumps from a wiki link to the top of the note it names.
func (s *Server) definition(ctx *glsp.Context, params *protocol.DefinitionParams) (any, error) {
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

	return protocol.Location{
		URI: pathToURI(abs),
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: 0, Character: 0},
		},
	}, nil
}

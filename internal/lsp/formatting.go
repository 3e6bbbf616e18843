package lsp

import (
	"log/slog"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/starford/wynn/internal/markdown"
	"github.com/starford/wynn/internal/workspace"
)

// formatting executes any workspace directives the document carries,
// strips them, and normalizes the remaining markdown. The reply is a
// single edit replacing the whole document, or nothing when the text is
// already canonical.
func (s *Server) formatting(ctx *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	uri := params.TextDocument.URI
	text, ok := s.docText(uri)
	if !ok {
		return nil, nil
	}

	stripped, directives := workspace.Strip(text)
	note := s.relPath(uri)
	for _, d := range directives {
		if err := s.ws.Execute(d, note); err != nil {
			s.logger.Warn("formatting: directive failed",
				slog.String("cmd", d.Cmd),
				slog.String("workspace", d.Name),
				slog.String("error", err.Error()))
		}
	}

	formatted, err := markdown.Format(stripped)
	if err != nil {
		return nil, err
	}
	if formatted == text {
		return nil, nil
	}

	return []protocol.TextEdit{{
		Range:   fullRange(text),
		NewText: formatted,
	}}, nil
}

// fullRange spans the whole document. The end position points one line
// past the last so the edit also swallows a trailing newline.
func fullRange(text string) protocol.Range {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	return protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End: protocol.Position{
			Line:      uint32(len(lines)),
			Character: uint32(len(lines[len(lines)-1])),
		},
	}
}

package lsp

import (
	"log/slog"
	"sort"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/starford/wynn/internal/symbols"
)

// documentSymbol reports the headings of the open document as a flat
// list spanning their full source line.
func (s *Server) documentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	text, ok := s.docText(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}

	headings := symbols.Headings(text)
	out := make([]protocol.DocumentSymbol, 0, len(headings))
	for _, h := range headings {
		r := protocol.Range{
			Start: protocol.Position{Line: uint32(h.Line), Character: 0},
			End:   protocol.Position{Line: uint32(h.Line), Character: uint32(h.LineLen)},
		}
		out = append(out, protocol.DocumentSymbol{
			Name:           h.Text,
			Kind:           protocol.SymbolKindNamespace,
			Range:          r,
			SelectionRange: r,
		})
	}
	return out, nil
}

type rankedSymbol struct {
	info  protocol.SymbolInformation
	score float64
}

// workspaceSymbol reports every heading in the vault, fuzzy-ranked
// against the query. Notes that cannot be read are skipped.
func (s *Server) workspaceSymbol(ctx *glsp.Context, params *protocol.WorkspaceSymbolParams) ([]protocol.SymbolInformation, error) {
	paths, err := s.notes.List()
	if err != nil {
		return nil, err
	}

	var ranked []rankedSymbol
	for _, rel := range paths {
		content, err := s.notes.Read(rel)
		if err != nil {
			s.logger.Warn("symbols: read failed", slog.String("path", rel), slog.String("error", err.Error()))
			continue
		}
		abs, err := s.notes.Resolve(rel)
		if err != nil {
			continue
		}

		container := rel
		for _, h := range symbols.Headings(content) {
			score := 0.0
			if params.Query != "" {
				sc, ok := s.scorer.Score(params.Query, h.Text)
				if !ok {
					continue
				}
				score = sc
			}
			ranked = append(ranked, rankedSymbol{
				info: protocol.SymbolInformation{
					Name:          h.Text,
					Kind:          protocol.SymbolKindString,
					ContainerName: &container,
					Location: protocol.Location{
						URI: pathToURI(abs),
						Range: protocol.Range{
							Start: protocol.Position{Line: uint32(h.Line), Character: 0},
							End:   protocol.Position{Line: uint32(h.Line), Character: uint32(h.LineLen)},
						},
					},
				},
				score: score,
			})
		}
	}

	if params.Query != "" {
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].score < ranked[j].score
		})
	}

	out := make([]protocol.SymbolInformation, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.info)
	}
	return out, nil
}

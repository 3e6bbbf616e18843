package lsp

import (
	"log/slog"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/starford/wynn/internal/wikilink"
)

// completion offers note titles while the cursor sits inside a [[ link
// that is still being typed. One candidate per vault note, unranked;
// the client's own fuzzy filter narrows them. Notes whose title cannot
// be resolved are skipped.
func (s *Server) completion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	text, ok := s.docText(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	line, ok := lineAt(text, params.Position.Line)
	if !ok {
		return nil, nil
	}
	if !wikilink.InsideLink(line, int(params.Position.Character)) {
		return nil, nil
	}

	paths, err := s.notes.List()
	if err != nil {
		s.logger.Warn("completion: list failed", slog.String("error", err.Error()))
		return nil, nil
	}

	kind := protocol.CompletionItemKindFile
	items := make([]protocol.CompletionItem, 0, len(paths))
	for _, rel := range paths {
		title, err := s.notes.Title(rel)
		if err != nil {
			continue
		}
		detail := rel
		insert := "[[" + title + "]]"
		items = append(items, protocol.CompletionItem{
			Label:      title,
			Kind:       &kind,
			Detail:     &detail,
			InsertText: &insert,
		})
	}
	return &protocol.CompletionList{IsIncomplete: false, Items: items}, nil
}

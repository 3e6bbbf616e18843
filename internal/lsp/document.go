package lsp

import (
	"log/slog"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func (s *Server) didOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	s.docs.Open(string(uri), params.TextDocument.Text)
	s.logger.Debug("lsp: opened", slog.String("uri", string(uri)))
	return nil
}

func (s *Server) didChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEvent:
			// Full sync is advertised, so the range is absent and the
			// event carries the whole document.
			s.docs.Change(string(uri), c.Text)
		case protocol.TextDocumentContentChangeEventWhole:
			s.docs.Change(string(uri), c.Text)
		}
	}
	return nil
}

func (s *Server) didClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	s.docs.Close(string(uri))
	s.logger.Debug("lsp: closed", slog.String("uri", string(uri)))
	return nil
}

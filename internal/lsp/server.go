// Package lsp exposes the note engine over the language server protocol.
package lsp

import (
	"log/slog"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/starford/wynn/internal/notes"
	"github.com/starford/wynn/internal/search"
	"github.com/starford/wynn/internal/session"
	"github.com/starford/wynn/internal/workspace"
)

const serverName = "wynn"

// Must be addressable for the initialize response.
var serverVersion = "0.1.0"

// Server wires the protocol handlers to the document session, the notes
// index and the workspace manager.
type Server struct {
	logger *slog.Logger
	docs   *session.Store
	notes  *notes.Index
	ws     *workspace.Manager
	scorer *search.Scorer

	handler protocol.Handler
	inner   *server.Server
}

func New(logger *slog.Logger, docs *session.Store, idx *notes.Index, ws *workspace.Manager, scorer *search.Scorer) *Server {
	s := &Server{
		logger: logger,
		docs:   docs,
		notes:  idx,
		ws:     ws,
		scorer: scorer,
	}
	s.handler = protocol.Handler{
		Initialize:  s.initialize,
		Initialized: s.initialized,
		Shutdown:    s.shutdown,
		SetTrace:    s.setTrace,

		TextDocumentDidOpen:   s.didOpen,
		TextDocumentDidChange: s.didChange,
		TextDocumentDidClose:  s.didClose,

		TextDocumentCompletion:     s.completion,
		TextDocumentHover:          s.hover,
		TextDocumentDefinition:     s.definition,
		TextDocumentDocumentSymbol: s.documentSymbol,
		WorkspaceSymbol:            s.workspaceSymbol,
		TextDocumentFormatting:     s.formatting,
	}
	s.inner = server.NewServer(&s.handler, serverName, false)
	return s
}

// RunStdio serves the protocol over stdin/stdout and blocks until the
// stream closes.
func (s *Server) RunStdio() error {
	return s.inner.RunStdio()
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	s.logger.Info("lsp: initialize", slog.String("root", s.notes.Root()))

	trueVal := true
	truePtr := &trueVal
	syncFull := protocol.TextDocumentSyncKindFull

	capabilities := protocol.ServerCapabilities{
		TextDocumentSync: &protocol.TextDocumentSyncOptions{
			OpenClose: truePtr,
			Change:    &syncFull,
		},
		CompletionProvider: &protocol.CompletionOptions{
			TriggerCharacters: []string{"["},
		},
		HoverProvider:              truePtr,
		DefinitionProvider:         truePtr,
		DocumentSymbolProvider:     truePtr,
		WorkspaceSymbolProvider:    truePtr,
		DocumentFormattingProvider: truePtr,
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &serverVersion,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	s.logger.Info("lsp: shutdown")
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

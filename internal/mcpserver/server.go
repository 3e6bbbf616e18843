// Package mcpserver exposes the notes vault as MCP (Model Context
// Protocol) tools for LLM integration over streamable HTTP.
package mcpserver

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/wynn/internal/notes"
	"github.com/starford/wynn/internal/search"
	"github.com/starford/wynn/internal/symbols"
)

// Server wraps the MCP server with the vault tools.
type Server struct {
	mcp    *server.MCPServer
	notes  *notes.Index
	scorer *search.Scorer
}

// New creates an MCP server with all vault tools registered.
func New(idx *notes.Index, scorer *search.Scorer) *Server {
	s := &Server{notes: idx, scorer: scorer}

	s.mcp = server.NewMCPServer(
		"Wynn",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	s.mcp.AddTool(mcp.NewTool("list_notes",
		mcp.WithDescription("List all notes or notes in a specific folder."),
		mcp.WithString("folder", mcp.Description("Optional folder to list (empty for all)")),
	), s.listNotes)

	s.mcp.AddTool(mcp.NewTool("read_note",
		mcp.WithDescription("Read the full content of a Markdown note."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Relative path to the note (e.g. folder/note.md)")),
	), s.readNote)

	s.mcp.AddTool(mcp.NewTool("get_backlinks",
		mcp.WithDescription("Find all notes whose [[wikilinks]] point at the specified note."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Path of the note to find backlinks for")),
	), s.getBacklinks)

	s.mcp.AddTool(mcp.NewTool("search_headings",
		mcp.WithDescription("Fuzzy-search headings across all notes in the vault."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
	), s.searchHeadings)

	return s
}

// Handler returns an HTTP handler serving the MCP streamable transport.
func (s *Server) Handler() http.Handler {
	return server.NewStreamableHTTPServer(s.mcp)
}

func (s *Server) listNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	folder := ""
	if f, err := req.RequireString("folder"); err == nil {
		folder = strings.TrimSuffix(f, "/")
	}

	paths, err := s.notes.List()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var out []string
	for _, p := range paths {
		if folder != "" && !strings.HasPrefix(p, folder+"/") {
			continue
		}
		out = append(out, p)
	}
	return mcp.NewToolResultText(strings.Join(out, "\n")), nil
}

func (s *Server) readNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	content, err := s.notes.Read(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", path)), nil
	}
	return mcp.NewToolResultText(content), nil
}

func (s *Server) getBacklinks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	bl, err := s.notes.Backlinks(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(bl) == 0 {
		return mcp.NewToolResultText("no backlinks found"), nil
	}
	return mcp.NewToolResultText(strings.Join(bl, "\n")), nil
}

type headingHit struct {
	path  string
	line  int
	text  string
	score float64
}

func (s *Server) searchHeadings(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	paths, err := s.notes.List()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var hits []headingHit
	for _, p := range paths {
		content, err := s.notes.Read(p)
		if err != nil {
			continue
		}
		for _, h := range symbols.Headings(content) {
			score, ok := s.scorer.Score(query, h.Text)
			if !ok {
				continue
			}
			hits = append(hits, headingHit{path: p, line: h.Line, text: h.Text, score: score})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score < hits[j].score })

	if len(hits) == 0 {
		return mcp.NewToolResultText("no headings found"), nil
	}
	out := make([]string, 0, len(hits))
	for _, h := range hits {
		out = append(out, fmt.Sprintf("%s:%d: %s", h.path, h.line+1, h.text))
	}
	return mcp.NewToolResultText(strings.Join(out, "\n")), nil
}

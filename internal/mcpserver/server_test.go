package mcpserver

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/starford/wynn/internal/notes"
	"github.com/starford/wynn/internal/search"
	"github.com/starford/wynn/internal/testutil"
	"github.com/starford/wynn/internal/vault"
)

func testServer(t *testing.T) (*Server, *vault.FS) {
	t.Helper()
	_, store := testutil.TestVault(t)
	idx := notes.New(store, testutil.Logger())
	return New(idx, search.New(search.DefaultConfig())), store
}

func callTool(t *testing.T, srv *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Name = name
	req.Params.Arguments = args

	var result *mcp.CallToolResult
	var err error
	switch name {
	case "list_notes":
		result, err = srv.listNotes(ctx, req)
	case "read_note":
		result, err = srv.readNote(ctx, req)
	case "get_backlinks":
		result, err = srv.getBacklinks(ctx, req)
	case "search_headings":
		result, err = srv.searchHeadings(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}
	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(t *testing.T, r *mcp.CallToolResult) string {
	t.Helper()
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	t.Fatalf("no text content in %+v", r)
	return ""
}

func mustWrite(t *testing.T, store *vault.FS, rel, content string) {
	t.Helper()
	if err := store.Write(rel, []byte(content)); err != nil {
		t.Fatal(err)
	}
}

func TestListNotes(t *testing.T) {
	srv, store := testServer(t)
	mustWrite(t, store, "a.md", "# A\n")
	mustWrite(t, store, "sub/b.md", "# B\n")

	got := resultText(t, callTool(t, srv, "list_notes", nil))
	if got != "a.md\nsub/b.md" {
		t.Errorf("got %q", got)
	}

	got = resultText(t, callTool(t, srv, "list_notes", map[string]interface{}{"folder": "sub"}))
	if got != "sub/b.md" {
		t.Errorf("got %q", got)
	}
}

func TestReadNote(t *testing.T) {
	srv, store := testServer(t)
	mustWrite(t, store, "a.md", "# A\n\nbody\n")

	got := resultText(t, callTool(t, srv, "read_note", map[string]interface{}{"path": "a.md"}))
	if got != "# A\n\nbody\n" {
		t.Errorf("got %q", got)
	}

	res := callTool(t, srv, "read_note", map[string]interface{}{"path": "missing.md"})
	if !res.IsError {
		t.Error("expected error result")
	}
}

func TestGetBacklinks(t *testing.T) {
	srv, store := testServer(t)
	mustWrite(t, store, "a.md", "see [[b]]\n")
	mustWrite(t, store, "b.md", "# B\n")

	got := resultText(t, callTool(t, srv, "get_backlinks", map[string]interface{}{"path": "b.md"}))
	if got != "a.md" {
		t.Errorf("got %q", got)
	}

	got = resultText(t, callTool(t, srv, "get_backlinks", map[string]interface{}{"path": "a.md"}))
	if got != "no backlinks found" {
		t.Errorf("got %q", got)
	}
}

func TestSearchHeadings(t *testing.T) {
	srv, store := testServer(t)
	mustWrite(t, store, "one.md", "# Design Doc\n")
	mustWrite(t, store, "two.md", "# Random\n")

	got := resultText(t, callTool(t, srv, "search_headings", map[string]interface{}{"query": "Design"}))
	if got != "one.md:1: Design Doc" {
		t.Errorf("got %q", got)
	}
}

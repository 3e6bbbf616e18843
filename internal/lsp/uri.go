package lsp

import (
	"net/url"
	"path/filepath"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func uriToPath(uri protocol.DocumentUri) string {
	u, err := url.Parse(string(uri))
	if err != nil || u.Scheme != "file" {
		return strings.TrimPrefix(string(uri), "file://")
	}
	return u.Path
}

func pathToURI(path string) protocol.DocumentUri {
	u := url.URL{Scheme: "file", Path: path}
	return protocol.DocumentUri(u.String())
}

// relPath maps a document URI to its vault-relative path. Documents
// outside the vault keep their absolute path.
func (s *Server) relPath(uri protocol.DocumentUri) string {
	abs := uriToPath(uri)
	rel, err := filepath.Rel(s.notes.Root(), abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return abs
	}
	return filepath.ToSlash(rel)
}

// lineAt returns the requested zero-based line of text.
func lineAt(text string, line uint32) (string, bool) {
	lines := strings.Split(text, "\n")
	if int(line) >= len(lines) {
		return "", false
	}
	return lines[line], true
}

// docText returns the session text for uri, falling back to disk when
// the document is not open.
func (s *Server) docText(uri protocol.DocumentUri) (string, bool) {
	if text, ok := s.docs.Read(string(uri)); ok {
		return text, true
	}
	content, err := s.notes.Read(s.relPath(uri))
	if err != nil {
		return "", false
	}
	return content, true
}

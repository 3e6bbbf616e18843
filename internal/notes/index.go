// Package notes maintains an in-memory view of the vault: the list of
// markdown files, a checksum-guarded title cache and link lookups.
package notes

import (
	"crypto/sha256"
	"fmt"
	"log/slog"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/starford/wynn/internal/apperr"
	"github.com/starford/wynn/internal/parser"
	"github.com/starford/wynn/internal/vault"
)

type cachedTitle struct {
	sum   [sha256.Size]byte
	title string
}

// Index wraps a vault store. Titles are parsed lazily and cached by
// content checksum, so repeated workspace-symbol queries do not re-parse
// unchanged notes.
type Index struct {
	store  vault.Provider
	logger *slog.Logger

	mu     sync.RWMutex
	titles map[string]cachedTitle
}

func New(store vault.Provider, logger *slog.Logger) *Index {
	return &Index{
		store:  store,
		logger: logger,
		titles: make(map[string]cachedTitle),
	}
}

// Root returns the absolute vault root.
func (n *Index) Root() string {
	return n.store.Root()
}

// List returns the vault-relative paths of all markdown files.
func (n *Index) List() ([]string, error) {
	return n.store.List()
}

// Read returns the on-disk content of one note.
func (n *Index) Read(rel string) (string, error) {
	data, err := n.store.Read(rel)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Title returns the display title of a note: the frontmatter title if
// set, else the first H1, else the filename stem.
func (n *Index) Title(rel string) (string, error) {
	data, err := n.store.Read(rel)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(data)

	n.mu.RLock()
	cached, ok := n.titles[rel]
	n.mu.RUnlock()
	if ok && cached.sum == sum {
		return cached.title, nil
	}

	title := titleOf(rel, data)

	n.mu.Lock()
	n.titles[rel] = cachedTitle{sum: sum, title: title}
	n.mu.Unlock()

	return title, nil
}

func titleOf(rel string, data []byte) string {
	title := ""
	if res, err := parser.Parse(data); err == nil {
		title = res.Title
	}
	if title == "" {
		title = strings.TrimSuffix(path.Base(rel), ".md")
	}
	return title
}

// Resolve maps a wiki link target to the absolute path of the note it
// points at. The target is tried verbatim first, then with a .md
// extension appended.
func (n *Index) Resolve(target string) (string, error) {
	candidates := []string{target}
	if !strings.HasSuffix(target, ".md") {
		candidates = append(candidates, target+".md")
	}
	for _, rel := range candidates {
		if _, err := n.store.Read(rel); err == nil {
			return n.store.Abs(rel)
		}
	}
	return "", fmt.Errorf("resolve %q: %w", target, apperr.ErrNotFound)
}

// Backlinks returns the notes whose wiki links point at rel, sorted.
func (n *Index) Backlinks(rel string) ([]string, error) {
	all, err := n.store.List()
	if err != nil {
		return nil, err
	}

	stem := strings.TrimSuffix(rel, ".md")
	var out []string
	for _, p := range all {
		if p == rel {
			continue
		}
		data, err := n.store.Read(p)
		if err != nil {
			n.logger.Warn("backlinks: read failed", slog.String("path", p), slog.String("error", err.Error()))
			continue
		}
		res, err := parser.Parse(data)
		if err != nil {
			continue
		}
		for _, link := range res.Links {
			if link == rel || link == stem {
				out = append(out, p)
				break
			}
		}
	}
	sort.Strings(out)
	return out, nil
}

// refresh re-reads one note and replaces its cache entry.
func (n *Index) refresh(rel string) error {
	data, err := n.store.Read(rel)
	if err != nil {
		return err
	}

	n.mu.Lock()
	n.titles[rel] = cachedTitle{sum: sha256.Sum256(data), title: titleOf(rel, data)}
	n.mu.Unlock()
	return nil
}

// evict drops the cache entry for a removed note.
func (n *Index) evict(rel string) {
	n.mu.Lock()
	delete(n.titles, rel)
	n.mu.Unlock()
}

// cachedPaths returns the paths currently held in the title cache.
func (n *Index) cachedPaths() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]string, 0, len(n.titles))
	for p := range n.titles {
		out = append(out, p)
	}
	return out
}

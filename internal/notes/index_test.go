package notes

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/starford/wynn/internal/apperr"
	"github.com/starford/wynn/internal/testutil"
)

func newTestIndex(t *testing.T) (string, *Index) {
	t.Helper()
	dir, store := testutil.TestVault(t)
	return dir, New(store, testutil.Logger())
}

func TestTitle(t *testing.T) {
	_, idx := newTestIndex(t)

	mustWrite(t, idx, "front.md", "---\ntitle: From Frontmatter\n---\n\n# Ignored\n")
	mustWrite(t, idx, "h1.md", "# First Heading\n\ntext\n")
	mustWrite(t, idx, "sub/bare.md", "no headings here\n")

	cases := []struct {
		path, want string
	}{
		{"front.md", "From Frontmatter"},
		{"h1.md", "First Heading"},
		{"sub/bare.md", "bare"},
	}
	for _, tc := range cases {
		got, err := idx.Title(tc.path)
		if err != nil {
			t.Fatalf("Title(%s): %v", tc.path, err)
		}
		if got != tc.want {
			t.Errorf("Title(%s) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestTitleFollowsContent(t *testing.T) {
	_, idx := newTestIndex(t)
	mustWrite(t, idx, "a.md", "# Old\n")

	if got, _ := idx.Title("a.md"); got != "Old" {
		t.Fatalf("got %q", got)
	}
	mustWrite(t, idx, "a.md", "# New\n")
	if got, _ := idx.Title("a.md"); got != "New" {
		t.Errorf("got %q after rewrite", got)
	}
}

func TestResolve(t *testing.T) {
	dir, idx := newTestIndex(t)
	mustWrite(t, idx, "plans/roadmap.md", "# Roadmap\n")

	got, err := idx.Resolve("plans/roadmap")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := filepath.Join(dir, "plans", "roadmap.md")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	got, err = idx.Resolve("plans/roadmap.md")
	if err != nil {
		t.Fatalf("Resolve with extension: %v", err)
	}
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if _, err := idx.Resolve("missing"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("want ErrNotFound, got %v", err)
	}
}

func TestBacklinks(t *testing.T) {
	_, idx := newTestIndex(t)
	mustWrite(t, idx, "a.md", "see [[b]]\n")
	mustWrite(t, idx, "c.md", "see [[b.md]] too\n")
	mustWrite(t, idx, "d.md", "unrelated [[a]]\n")
	mustWrite(t, idx, "b.md", "# B\n")

	got, err := idx.Backlinks("b.md")
	if err != nil {
		t.Fatalf("Backlinks: %v", err)
	}
	want := []string{"a.md", "c.md"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func mustWrite(t *testing.T, idx *Index, rel, content string) {
	t.Helper()
	if err := idx.store.Write(rel, []byte(content)); err != nil {
		t.Fatal(err)
	}
}

package wikilink

import "testing"

func TestLocateAt(t *testing.T) {
	line := "see [[a/b|T]] end"

	occ, ok := LocateAt(line, 7)
	if !ok {
		t.Fatal("expected occurrence")
	}
	if occ.Start != 4 || occ.End != 13 {
		t.Errorf("span = [%d,%d]", occ.Start, occ.End)
	}
	if occ.Target != "a/b" || occ.Title != "T" {
		t.Errorf("target = %q, title = %q", occ.Target, occ.Title)
	}

	// Both delimiters count as inside.
	if _, ok := LocateAt(line, 4); !ok {
		t.Error("opening delimiter should be inside")
	}
	if _, ok := LocateAt(line, 13); !ok {
		t.Error("closing delimiter should be inside")
	}
	if _, ok := LocateAt(line, 3); ok {
		t.Error("before the link should be outside")
	}
	if _, ok := LocateAt(line, 14); ok {
		t.Error("after the link should be outside")
	}
}

func TestLocateAtBareTarget(t *testing.T) {
	occ, ok := LocateAt("[[ note ]]", 5)
	if !ok {
		t.Fatal("expected occurrence")
	}
	if occ.Target != "note" || occ.Title != "" {
		t.Errorf("target = %q, title = %q", occ.Target, occ.Title)
	}
}

func TestLocateAtEmptyTarget(t *testing.T) {
	if _, ok := LocateAt("x [[ ]] y", 4); ok {
		t.Error("empty target is not a link")
	}
}

func TestLocateAtPicksContaining(t *testing.T) {
	line := "[[one]] and [[two]]"
	occ, ok := LocateAt(line, 15)
	if !ok || occ.Target != "two" {
		t.Errorf("occ = %+v, %v", occ, ok)
	}
	occ, ok = LocateAt(line, 2)
	if !ok || occ.Target != "one" {
		t.Errorf("occ = %+v, %v", occ, ok)
	}
	if _, ok := LocateAt(line, 9); ok {
		t.Error("between links should be outside")
	}
}

func TestInsideLink(t *testing.T) {
	cases := []struct {
		line string
		col  int
		want bool
	}{
		{"see [[N", 7, true},
		{"see [[N", 3, false},
		{"no link here", 5, false},
		{"[[a]] x", 2, true},
		{"[[a]] x", 3, true},
		{"[[a]] x", 6, false},
		{"[[done]] then [[open", 20, true},
		{"text", 99, false},
	}
	for _, tc := range cases {
		if got := InsideLink(tc.line, tc.col); got != tc.want {
			t.Errorf("InsideLink(%q, %d) = %v, want %v", tc.line, tc.col, got, tc.want)
		}
	}
}

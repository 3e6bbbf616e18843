package symbols

import "testing"

func TestHeadings(t *testing.T) {
	text := "# A\nnot a heading\n### B\n"
	got := Headings(text)
	if len(got) != 2 {
		t.Fatalf("headings = %+v", got)
	}
	if got[0].Level != 1 || got[0].Text != "A" || got[0].Line != 0 {
		t.Errorf("first = %+v", got[0])
	}
	if got[1].Level != 3 || got[1].Text != "B" || got[1].Line != 2 {
		t.Errorf("second = %+v", got[1])
	}
	if got[0].LineLen != 3 {
		t.Errorf("line len = %d", got[0].LineLen)
	}
}

func TestHeadingsRejectsSevenHashes(t *testing.T) {
	if got := Headings("####### too deep\n"); len(got) != 0 {
		t.Errorf("headings = %+v", got)
	}
}

func TestHeadingsRequiresSpace(t *testing.T) {
	if got := Headings("#nospace\n"); len(got) != 0 {
		t.Errorf("headings = %+v", got)
	}
}

func TestHeadingsIndented(t *testing.T) {
	got := Headings("   ## Indented\n")
	if len(got) != 1 || got[0].Text != "Indented" || got[0].Level != 2 {
		t.Errorf("headings = %+v", got)
	}
}

func TestHeadingsEmpty(t *testing.T) {
	if got := Headings(""); len(got) != 0 {
		t.Errorf("headings = %+v", got)
	}
}

package markdown

import "testing"

func TestFormatRoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"heading and link", "# Title\n\nsee [[note]] here\n"},
		{"piped link", "go to [[projects/plan|The Plan]] today\n"},
		{"tight list", "- a\n- b\n- c\n"},
		{"nested list", "- a\n  - b\n- c\n"},
		{"blockquote", "> quoted text\n"},
		{"fenced code", "```go\nfunc main() {}\n```\n"},
		{"soft break", "first line\nsecond line\n"},
		{"emphasis", "some *light* and **heavy** text\n"},
		{"unterminated link", "see [[Meeting\n"},
		{"frontmatter", "---\ntitle: T\n---\n\n# T\n"},
		{"task list", "- [x] done\n- [ ] open\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Format(tc.input)
			if err != nil {
				t.Fatalf("Format: %v", err)
			}
			if got != tc.input {
				t.Errorf("got %q, want %q", got, tc.input)
			}
		})
	}
}

func TestFormatNormalizesLinks(t *testing.T) {
	got, err := Format("see [[ note ]] and [[a| alias text ]]\n")
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	want := "see [[note]] and [[a|alias text]]\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatIdempotent(t *testing.T) {
	input := "# Notes\n\nintro with [[x|X]] link\n\n- one\n- two\n\n> a quote\n\n```sh\nls\n```\n"
	once, err := Format(input)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	twice, err := Format(once)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if once != twice {
		t.Errorf("not idempotent:\nonce  %q\ntwice %q", once, twice)
	}
}

func TestFormatAddsTrailingNewline(t *testing.T) {
	got, err := Format("just text")
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if got != "just text\n" {
		t.Errorf("got %q", got)
	}
}

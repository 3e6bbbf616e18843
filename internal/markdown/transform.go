package markdown

// Transformer rewrites the event stream so every wiki link comes out as
// a single text event in canonical [[target]] or [[target|title]] form.
// Events between a wiki link's start and end are folded into the title.
type Transformer struct {
	src Source

	inside bool
	target string
	title  string
}

// NewTransformer wraps src.
func NewTransformer(src Source) *Transformer {
	return &Transformer{src: src}
}

// Next implements Source.
func (t *Transformer) Next() (Event, bool) {
	for {
		ev, ok := t.src.Next()
		if !ok {
			// An unterminated link at end of input is discarded.
			t.inside = false
			return Event{}, false
		}

		if t.inside {
			switch ev.Kind {
			case EventText:
				t.title += ev.Text
			case EventLinkEnd:
				t.inside = false
				return Event{Kind: EventText, Text: t.render()}, true
			}
			// Nested markup inside a title is dropped, keeping the text.
			continue
		}

		if ev.Kind == EventLinkStart && ev.Link == LinkWiki {
			t.inside = true
			t.target = ev.Destination
			t.title = ""
			continue
		}
		return ev, true
	}
}

func (t *Transformer) render() string {
	if t.title == "" {
		return "[[" + t.target + "]]"
	}
	return "[[" + t.target + "|" + t.title + "]]"
}

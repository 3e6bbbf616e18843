// Package search implements approximate string matching for symbol queries.
//
// The scorer is a bitap search: it finds where a pattern approximately
// occurs within a text and converts error count and distance from the
// expected location into a normalized score in [0,1]. Lower is better;
// scores above the configured threshold are rejected outright.
package search

import "strings"

// Config holds the scorer tunables.
type Config struct {
	// Threshold is the maximum score still accepted as a match.
	Threshold float64
	// Location is the position in the text where the match is expected.
	Location int
	// Distance caps how far from Location a match may stray before the
	// proximity penalty saturates.
	Distance int
	// MaxPatternLength truncates longer patterns.
	MaxPatternLength int
	CaseSensitive    bool
}

// DefaultConfig returns the tunables used by the symbol handlers.
func DefaultConfig() Config {
	return Config{
		Threshold:        0.3,
		Location:         0,
		Distance:         80,
		MaxPatternLength: 32,
		CaseSensitive:    false,
	}
}

// Scorer ranks texts against a pattern.
type Scorer struct {
	cfg Config
}

// New creates a Scorer with the given tunables.
func New(cfg Config) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score returns the score of pattern against text and whether the match
// clears the threshold.
func (s *Scorer) Score(pattern, text string) (float64, bool) {
	if !s.cfg.CaseSensitive {
		pattern = strings.ToLower(pattern)
		text = strings.ToLower(text)
	}
	if len(pattern) > s.cfg.MaxPatternLength {
		pattern = pattern[:s.cfg.MaxPatternLength]
	}
	if pattern == "" || text == "" {
		return 1, false
	}
	if pattern == text {
		return 0, true
	}
	return s.bitap(pattern, text)
}

func (s *Scorer) bitap(pattern, text string) (float64, bool) {
	loc := s.cfg.Location
	if loc > len(text) {
		loc = len(text)
	}
	best := s.cfg.Threshold
	found := false

	// Exact substring hits tighten the running threshold before the
	// error-tolerant passes.
	if idx := strings.Index(text, pattern); idx >= 0 {
		if sc := s.scoreAt(pattern, 0, idx); sc <= best {
			best = sc
			found = true
		}
		if idx2 := strings.LastIndex(text, pattern); idx2 != idx {
			if sc := s.scoreAt(pattern, 0, idx2); sc <= best {
				best = sc
				found = true
			}
		}
	}

	masks := make(map[byte]uint64, len(pattern))
	for i := 0; i < len(pattern); i++ {
		masks[pattern[i]] |= 1 << (len(pattern) - i - 1)
	}

	matchMask := uint64(1) << (len(pattern) - 1)
	binMax := len(pattern) + len(text)
	var lastRd []uint64

	for e := 0; e < len(pattern); e++ {
		// Widest window where a match with e errors could still beat the
		// current best score.
		binMin := 0
		binMid := binMax
		for binMin < binMid {
			if s.scoreAt(pattern, e, loc+binMid) <= best {
				binMin = binMid
			} else {
				binMax = binMid
			}
			binMid = (binMax-binMin)/2 + binMin
		}
		binMax = binMid
		start := max(1, loc-binMid+1)
		finish := min(loc+binMid, len(text)) + len(pattern)

		rd := make([]uint64, finish+2)
		rd[finish+1] = (1 << e) - 1
		for j := finish; j >= start; j-- {
			var charMatch uint64
			if j-1 < len(text) {
				charMatch = masks[text[j-1]]
			}
			if e == 0 {
				rd[j] = ((rd[j+1] << 1) | 1) & charMatch
			} else {
				rd[j] = ((rd[j+1]<<1)|1)&charMatch |
					((lastRd[j+1]|lastRd[j])<<1) | 1 | lastRd[j+1]
			}
			if rd[j]&matchMask == 0 {
				continue
			}
			sc := s.scoreAt(pattern, e, j-1)
			if sc > best {
				continue
			}
			best = sc
			found = true
			if j-1 <= loc {
				// Matches at or before the expected location cannot be
				// beaten by anything further left.
				break
			}
			start = max(1, 2*loc-(j-1))
		}
		if s.scoreAt(pattern, e+1, loc) > best {
			break
		}
		lastRd = rd
	}

	if !found {
		return 1, false
	}
	return best, true
}

// scoreAt combines the error accuracy with the distance of pos from the
// expected location.
func (s *Scorer) scoreAt(pattern string, errors, pos int) float64 {
	accuracy := float64(errors) / float64(len(pattern))
	proximity := pos - s.cfg.Location
	if proximity < 0 {
		proximity = -proximity
	}
	if s.cfg.Distance == 0 {
		if proximity != 0 {
			return 1
		}
		return accuracy
	}
	return accuracy + float64(proximity)/float64(s.cfg.Distance)
}

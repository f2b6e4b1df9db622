package gazetteer

import (
	"strings"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"
)

// Match is one surface occurrence of a known place name in a text
type Match struct {
	Surface   string // original text slice
	Canonical string // canonical name the matched pattern belongs to
	Start     int    // byte offset start
	End       int    // byte offset end
}

// Scanner finds occurrences of every known place name and alias in a
// document with a single Aho-Corasick automaton pass. Matching is
// case-insensitive and restricted to whole words so short names do not
// fire inside longer ones. Safe for concurrent use once built.
type Scanner struct {
	ac        ahocorasick.AhoCorasick
	canonical []string // pattern index -> canonical name
	patterns  []string
}

// NewScanner compiles an automaton over all canonical names and aliases
// in the graph
func NewScanner(graph *Graph) *Scanner {
	var patterns []string
	var canonical []string
	seen := make(map[string]bool)

	add := func(surface, name string) {
		key := strings.ToLower(strings.TrimSpace(surface))
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		patterns = append(patterns, key)
		canonical = append(canonical, name)
	}

	for _, name := range graph.Names() {
		add(name, name)
		if place, ok := graph.Get(name); ok {
			for _, alias := range place.Aliases {
				add(alias, name)
			}
		}
	}

	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: true,
		MatchOnlyWholeWords:  true,
		MatchKind:            ahocorasick.LeftMostLongestMatch,
	})

	return &Scanner{
		ac:        builder.Build(patterns),
		canonical: canonical,
		patterns:  patterns,
	}
}

// Scan returns every place name occurrence in document order
func (s *Scanner) Scan(text string) []Match {
	if text == "" || len(s.patterns) == 0 {
		return nil
	}

	var matches []Match
	for _, m := range s.ac.FindAll(text) {
		matches = append(matches, Match{
			Surface:   text[m.Start():m.End()],
			Canonical: s.canonical[m.Pattern()],
			Start:     m.Start(),
			End:       m.End(),
		})
	}
	return matches
}

// PatternCount returns the number of compiled surface forms
func (s *Scanner) PatternCount() int {
	return len(s.patterns)
}

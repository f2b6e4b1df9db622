package gazetteer

import "strings"

// DefaultFuzzyThreshold is the character-overlap ratio required for a
// fuzzy name match
const DefaultFuzzyThreshold = 0.9

// Resolver maps surface forms onto canonical place names
type Resolver struct {
	graph          *Graph
	fuzzyThreshold float64
}

// NewResolver creates a resolver over the given graph. A threshold
// outside (0,1] falls back to DefaultFuzzyThreshold.
func NewResolver(graph *Graph, fuzzyThreshold float64) *Resolver {
	if fuzzyThreshold <= 0 || fuzzyThreshold > 1 {
		fuzzyThreshold = DefaultFuzzyThreshold
	}
	return &Resolver{
		graph:          graph,
		fuzzyThreshold: fuzzyThreshold,
	}
}

// Resolve maps a surface form onto a canonical name. Matching order,
// first hit wins: exact canonical name, registered alias, fuzzy overlap
// against canonical names. All comparisons are case-insensitive.
func (r *Resolver) Resolve(surface string) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(surface))
	if s == "" {
		return "", false
	}

	if name, ok := r.graph.lower[s]; ok {
		return name, true
	}
	if name, ok := r.graph.aliases[s]; ok {
		return name, true
	}
	for _, name := range r.graph.order {
		if fuzzyMatch(s, strings.ToLower(name), r.fuzzyThreshold) {
			return name, true
		}
	}
	return "", false
}

// fuzzyMatch accepts when one string contains the other or when the
// Jaccard overlap of their character sets meets the threshold. The test
// is order- and length-insensitive, so short names can collide; the 0.9
// default keeps it conservative.
func fuzzyMatch(a, b string, threshold float64) bool {
	if a == "" || b == "" {
		return false
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}

	setA := make(map[rune]bool)
	for _, r := range a {
		setA[r] = true
	}
	setB := make(map[rune]bool)
	for _, r := range b {
		setB[r] = true
	}

	intersection := 0
	for r := range setA {
		if setB[r] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return false
	}
	return float64(intersection)/float64(union) >= threshold
}

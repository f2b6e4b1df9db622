package gazetteer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/localnewslab/placerank/internal/model"
)

// Construction-time error conditions. AddPlace never corrupts the graph:
// a rejected record either leaves the graph untouched or, for
// ErrUnknownParent, registers the place as a root so ancestor queries
// stay consistent.
var (
	ErrDuplicatePlace = errors.New("place already registered")
	ErrUnknownParent  = errors.New("unknown parent")
	ErrAliasConflict  = errors.New("alias already mapped to another place")
)

// Coordinates is a WGS84 point attached to a place
type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Place is a node in the geographic hierarchy
type Place struct {
	Name        string          // canonical name, unique within a graph
	Type        model.PlaceType // administrative level
	Region      string          // optional sub-region label, informational
	Aliases     []string        // alternate surface strings, case-insensitive
	Coordinates *Coordinates    // optional
}

// Graph is a directed acyclic hierarchy of places. An edge parent->child
// means the child is administratively contained in the parent. Once
// constructed the graph is read-only and safe for concurrent use.
type Graph struct {
	places   map[string]*Place   // canonical name -> place
	lower    map[string]string   // lowercased canonical name -> canonical name
	aliases  map[string]string   // lowercased alias -> canonical name
	parents  map[string][]string // child -> direct parents
	children map[string][]string // parent -> direct children
	order    []string            // canonical names in insertion order
}

// NewGraph creates an empty place graph
func NewGraph() *Graph {
	return &Graph{
		places:   make(map[string]*Place),
		lower:    make(map[string]string),
		aliases:  make(map[string]string),
		parents:  make(map[string][]string),
		children: make(map[string][]string),
	}
}

// AddPlace registers a place and, when parent is non-empty, a containment
// edge parent -> place. Parents must be added before their children. An
// unknown parent still registers the place (as a root, so later ancestor
// queries see it) but returns ErrUnknownParent so the caller can reject
// the seed or repair it. Every edge targets a newly added node, which
// keeps the graph acyclic by construction.
func (g *Graph) AddPlace(name string, placeType model.PlaceType, parent string, aliases []string, coords *Coordinates) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("add place: empty name")
	}
	if _, ok := g.places[name]; ok {
		return fmt.Errorf("add place %q: %w", name, ErrDuplicatePlace)
	}

	// Check alias conflicts before any mutation.
	for _, alias := range aliases {
		key := strings.ToLower(strings.TrimSpace(alias))
		if key == "" {
			continue
		}
		if owner, ok := g.aliases[key]; ok && owner != name {
			return fmt.Errorf("add place %q: alias %q: %w (%q)", name, alias, ErrAliasConflict, owner)
		}
	}

	place := &Place{
		Name:        name,
		Type:        placeType,
		Aliases:     append([]string(nil), aliases...),
		Coordinates: coords,
	}
	g.places[name] = place
	g.lower[strings.ToLower(name)] = name
	g.order = append(g.order, name)
	for _, alias := range aliases {
		key := strings.ToLower(strings.TrimSpace(alias))
		if key != "" {
			g.aliases[key] = name
		}
	}

	if parent == "" {
		return nil
	}
	if _, ok := g.places[parent]; !ok {
		return fmt.Errorf("add place %q: parent %q: %w", name, parent, ErrUnknownParent)
	}
	g.parents[name] = append(g.parents[name], parent)
	g.children[parent] = append(g.children[parent], name)
	return nil
}

// Get returns the place registered under the exact canonical name
func (g *Graph) Get(name string) (*Place, bool) {
	place, ok := g.places[name]
	return place, ok
}

// Contains reports whether name is a registered canonical name
func (g *Graph) Contains(name string) bool {
	_, ok := g.places[name]
	return ok
}

// Len returns the number of registered places
func (g *Graph) Len() int {
	return len(g.order)
}

// Names returns all canonical names in insertion order
func (g *Graph) Names() []string {
	return append([]string(nil), g.order...)
}

// TypeOf returns the place type for a canonical name, or PlaceUnknown
func (g *Graph) TypeOf(name string) model.PlaceType {
	if place, ok := g.places[name]; ok {
		return place.Type
	}
	return model.PlaceUnknown
}

// ParentsOf returns the direct parents of a place, empty for unknown
// names and roots
func (g *Graph) ParentsOf(name string) []string {
	return append([]string(nil), g.parents[name]...)
}

// ChildrenOf returns the direct children of a place, empty for unknown
// names and leaves
func (g *Graph) ChildrenOf(name string) []string {
	return append([]string(nil), g.children[name]...)
}

// AncestorsOf returns the transitive closure of parents in breadth-first
// order starting from the direct parents. Unknown names yield an empty
// list, not an error.
func (g *Graph) AncestorsOf(name string) []string {
	var ancestors []string
	seen := map[string]bool{name: true}
	queue := append([]string(nil), g.parents[name]...)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if seen[current] {
			continue
		}
		seen[current] = true
		ancestors = append(ancestors, current)
		queue = append(queue, g.parents[current]...)
	}
	return ancestors
}

// DescendantsOf returns the transitive closure of children in
// breadth-first order
func (g *Graph) DescendantsOf(name string) []string {
	var descendants []string
	seen := map[string]bool{name: true}
	queue := append([]string(nil), g.children[name]...)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if seen[current] {
			continue
		}
		seen[current] = true
		descendants = append(descendants, current)
		queue = append(queue, g.children[current]...)
	}
	return descendants
}

// ResolveAmbiguous picks the interpretation of name most consistent with
// the other place names observed in the same document. Refinement is
// reserved: shared ancestry already adjusts confidence upstream rather
// than renaming, so today the input always comes back unchanged.
func (g *Graph) ResolveAmbiguous(name string, contextNames []string) string {
	if !g.Contains(name) {
		return name
	}
	for _, other := range contextNames {
		if !g.Contains(other) {
			continue
		}
		if containsName(g.AncestorsOf(other), name) || containsName(g.ChildrenOf(other), name) {
			return name
		}
	}
	return name
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

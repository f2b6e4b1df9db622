package gazetteer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/localnewslab/placerank/internal/model"
)

// SeedPlace is one record in a gazetteer seed file. Records must list
// parents before children.
type SeedPlace struct {
	Name        string          `json:"name" yaml:"name"`
	Type        model.PlaceType `json:"type" yaml:"type"`
	Parent      string          `json:"parent,omitempty" yaml:"parent,omitempty"`
	Region      string          `json:"region,omitempty" yaml:"region,omitempty"`
	Aliases     []string        `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Coordinates *Coordinates    `json:"coordinates,omitempty" yaml:"coordinates,omitempty"`
}

// Seed is a loadable gazetteer definition
type Seed struct {
	Places []SeedPlace `json:"places" yaml:"places"`
}

// LoadSeed reads a seed definition from a JSON or YAML file, chosen by
// extension (.json vs .yaml/.yml)
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}

	var seed Seed
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &seed); err != nil {
			return nil, fmt.Errorf("parse seed %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &seed); err != nil {
			return nil, fmt.Errorf("parse seed %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("parse seed %s: unsupported extension (want .json, .yaml or .yml)", path)
	}

	if err := seed.Validate(); err != nil {
		return nil, fmt.Errorf("seed %s: %w", path, err)
	}
	return &seed, nil
}

// Validate checks the structural requirements on a seed: every record
// has a name and type, and at least one root-level state exists so the
// hierarchy has somewhere to hang.
func (s *Seed) Validate() error {
	if len(s.Places) == 0 {
		return fmt.Errorf("no places defined")
	}
	hasState := false
	for i, p := range s.Places {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("place %d: missing name", i)
		}
		if p.Type == "" {
			return fmt.Errorf("place %q: missing type", p.Name)
		}
		if p.Type == model.PlaceState && p.Parent == "" {
			hasState = true
		}
	}
	if !hasState {
		return fmt.Errorf("no root state defined")
	}
	return nil
}

// BuildGraph constructs a place graph from a seed, applying records in
// order. Any record the graph rejects fails the whole build: silently
// dropping a child would corrupt later ancestor queries, so a broken
// seed is reported instead of partially loaded.
func BuildGraph(seed *Seed) (*Graph, error) {
	graph := NewGraph()
	for i, p := range seed.Places {
		if err := graph.AddPlace(p.Name, p.Type, p.Parent, p.Aliases, p.Coordinates); err != nil {
			return nil, fmt.Errorf("place %d: %w", i, err)
		}
		if p.Region != "" {
			if place, ok := graph.Get(p.Name); ok {
				place.Region = p.Region
			}
		}
	}
	return graph, nil
}

// LoadGraph loads a seed file and builds its graph in one step. An empty
// path builds the built-in Pittsburgh region gazetteer.
func LoadGraph(path string) (*Graph, error) {
	if path == "" {
		return BuildGraph(BuiltinSeed())
	}
	seed, err := LoadSeed(path)
	if err != nil {
		return nil, err
	}
	return BuildGraph(seed)
}

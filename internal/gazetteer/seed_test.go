package gazetteer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/localnewslab/placerank/internal/model"
)

func TestLoadSeed_YAML(t *testing.T) {
	content := `places:
  - name: Pennsylvania
    type: state
    aliases: [PA]
  - name: Allegheny County
    type: county
    parent: Pennsylvania
  - name: Pittsburgh
    type: city
    parent: Allegheny County
    coordinates:
      lat: 40.4406
      lng: -79.9959
  - name: Oakland
    type: neighborhood
    parent: Pittsburgh
    region: Central
    aliases: [North Oakland]
`
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	seed, err := LoadSeed(path)
	if err != nil {
		t.Fatalf("LoadSeed failed: %v", err)
	}
	if len(seed.Places) != 4 {
		t.Fatalf("Expected 4 places, got %d", len(seed.Places))
	}

	g, err := BuildGraph(seed)
	if err != nil {
		t.Fatalf("BuildGraph failed: %v", err)
	}
	place, ok := g.Get("Oakland")
	if !ok {
		t.Fatal("Oakland missing from graph")
	}
	if place.Region != "Central" {
		t.Errorf("Expected region Central, got %q", place.Region)
	}
	pittsburgh, _ := g.Get("Pittsburgh")
	if pittsburgh.Coordinates == nil || pittsburgh.Coordinates.Lat != 40.4406 {
		t.Errorf("Expected Pittsburgh coordinates, got %+v", pittsburgh.Coordinates)
	}
}

func TestLoadSeed_JSON(t *testing.T) {
	content := `{
  "places": [
    {"name": "Pennsylvania", "type": "state"},
    {"name": "Allegheny County", "type": "county", "parent": "Pennsylvania"},
    {"name": "Sewickley", "type": "municipality", "parent": "Allegheny County", "aliases": ["Sewickley Borough"]}
  ]
}`
	path := filepath.Join(t.TempDir(), "seed.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	seed, err := LoadSeed(path)
	if err != nil {
		t.Fatalf("LoadSeed failed: %v", err)
	}
	g, err := BuildGraph(seed)
	if err != nil {
		t.Fatalf("BuildGraph failed: %v", err)
	}
	got := g.AncestorsOf("Sewickley")
	if len(got) != 2 || got[0] != "Allegheny County" || got[1] != "Pennsylvania" {
		t.Errorf("Unexpected ancestors: %v", got)
	}
}

func TestLoadSeed_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.txt")
	if err := os.WriteFile(path, []byte("places: []"), 0644); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	if _, err := LoadSeed(path); err == nil {
		t.Error("Expected error for unsupported extension")
	}
}

func TestSeedValidate(t *testing.T) {
	tests := []struct {
		name    string
		seed    Seed
		wantErr bool
	}{
		{
			name: "valid",
			seed: Seed{Places: []SeedPlace{
				{Name: "Pennsylvania", Type: model.PlaceState},
				{Name: "Pittsburgh", Type: model.PlaceCity, Parent: "Pennsylvania"},
			}},
		},
		{name: "empty", seed: Seed{}, wantErr: true},
		{
			name:    "missing name",
			seed:    Seed{Places: []SeedPlace{{Type: model.PlaceState}}},
			wantErr: true,
		},
		{
			name:    "missing type",
			seed:    Seed{Places: []SeedPlace{{Name: "Pennsylvania"}}},
			wantErr: true,
		},
		{
			name:    "no root state",
			seed:    Seed{Places: []SeedPlace{{Name: "Pittsburgh", Type: model.PlaceCity}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		err := tt.seed.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestBuildGraph_ChildBeforeParentFails(t *testing.T) {
	seed := &Seed{Places: []SeedPlace{
		{Name: "Oakland", Type: model.PlaceNeighborhood, Parent: "Pittsburgh"},
		{Name: "Pittsburgh", Type: model.PlaceCity},
	}}
	_, err := BuildGraph(seed)
	if !errors.Is(err, ErrUnknownParent) {
		t.Errorf("Expected ErrUnknownParent, got %v", err)
	}
}

func TestBuiltinSeed(t *testing.T) {
	seed := BuiltinSeed()
	if err := seed.Validate(); err != nil {
		t.Fatalf("Builtin seed invalid: %v", err)
	}

	g, err := BuildGraph(seed)
	if err != nil {
		t.Fatalf("BuildGraph failed: %v", err)
	}

	// Spot-check the hierarchy the classifier relies on.
	checks := []struct {
		name string
		typ  model.PlaceType
		anc  string
	}{
		{"Oakland", model.PlaceNeighborhood, "Pittsburgh"},
		{"Knoxville", model.PlaceNeighborhood, "Pittsburgh"},
		{"Manchester", model.PlaceNeighborhood, "Pittsburgh"},
		{"Sewickley", model.PlaceMunicipality, "Allegheny County"},
		{"Moon Township", model.PlaceMunicipality, "Allegheny County"},
	}
	for _, c := range checks {
		if got := g.TypeOf(c.name); got != c.typ {
			t.Errorf("%s: expected type %s, got %s", c.name, c.typ, got)
		}
		if !containsName(g.AncestorsOf(c.name), c.anc) {
			t.Errorf("%s: expected ancestor %s, got %v", c.name, c.anc, g.AncestorsOf(c.name))
		}
	}

	// Everything except the root must reach Pennsylvania.
	for _, name := range g.Names() {
		if name == "Pennsylvania" {
			continue
		}
		if !containsName(g.AncestorsOf(name), "Pennsylvania") {
			t.Errorf("%s does not reach the root state", name)
		}
	}
}

package extract

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/localnewslab/placerank/internal/gazetteer"
	"github.com/localnewslab/placerank/internal/model"
	"github.com/localnewslab/placerank/internal/ner"
)

type mockRecognizer struct {
	entities  []ner.Entity
	err       error
	available bool
}

func (m *mockRecognizer) Name() string                         { return "mock" }
func (m *mockRecognizer) IsAvailable(ctx context.Context) bool { return m.available }

func (m *mockRecognizer) Recognize(ctx context.Context, text string) ([]ner.Entity, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.entities, nil
}

func newTestGraph(t *testing.T) *gazetteer.Graph {
	t.Helper()
	g := gazetteer.NewGraph()
	must := func(err error) {
		if err != nil {
			t.Fatalf("building graph: %v", err)
		}
	}
	must(g.AddPlace("Pennsylvania", model.PlaceState, "", []string{"PA"}, nil))
	must(g.AddPlace("Allegheny County", model.PlaceCounty, "Pennsylvania", nil, nil))
	must(g.AddPlace("Pittsburgh", model.PlaceCity, "Allegheny County", nil, nil))
	must(g.AddPlace("Oakland", model.PlaceNeighborhood, "Pittsburgh", []string{"North Oakland"}, nil))
	must(g.AddPlace("Shadyside", model.PlaceNeighborhood, "Pittsburgh", nil, nil))
	return g
}

func newTestExtractor(t *testing.T, rec ner.Recognizer) *Extractor {
	t.Helper()
	graph := newTestGraph(t)
	resolver := gazetteer.NewResolver(graph, gazetteer.DefaultFuzzyThreshold)
	return NewExtractor(graph, resolver, rec, 0)
}

func TestExtractorRecognizerPath(t *testing.T) {
	text := "Officials said the fire in Oakland damaged three homes while Tom Murphy visited canada."
	oaklandPos := strings.Index(text, "Oakland")

	rec := &mockRecognizer{
		available: true,
		entities: []ner.Entity{
			{Text: "Oakland", Start: oaklandPos, End: oaklandPos + 7, Label: "GPE", Dep: "pobj"},
			{Text: "Tom Murphy", Start: 62, End: 72, Label: "PERSON", Dep: "nsubj"},
			{Text: "canada", Start: 81, End: 87, Label: "GPE", Dep: "dobj"},
		},
	}

	mentions := newTestExtractor(t, rec).Extract(context.Background(), text)
	if len(mentions) != 1 {
		t.Fatalf("expected 1 mention, got %d", len(mentions))
	}

	m := mentions[0]
	if m.Canonical != "Oakland" {
		t.Errorf("expected canonical Oakland, got %s", m.Canonical)
	}
	if m.Type != model.PlaceNeighborhood {
		t.Errorf("expected neighborhood type, got %s", m.Type)
	}
	if m.Role != model.RoleObject {
		t.Errorf("expected object role, got %s", m.Role)
	}
	if m.Confidence != 0.8 {
		t.Errorf("expected recognizer prior 0.8, got %v", m.Confidence)
	}
	if m.Position != oaklandPos {
		t.Errorf("expected position %d, got %d", oaklandPos, m.Position)
	}
	if m.Label != model.LabelUnknown {
		t.Errorf("expected unvalidated label, got %s", m.Label)
	}
	if !strings.Contains(m.Context, "fire in Oakland") {
		t.Errorf("expected context around the mention, got %q", m.Context)
	}

	wantAncestors := []string{"Pittsburgh", "Allegheny County", "Pennsylvania"}
	if len(m.Ancestors) != len(wantAncestors) {
		t.Fatalf("expected ancestors %v, got %v", wantAncestors, m.Ancestors)
	}
	for i, a := range wantAncestors {
		if m.Ancestors[i] != a {
			t.Errorf("ancestor %d: expected %s, got %s", i, a, m.Ancestors[i])
		}
	}
}

func TestExtractorKeepsOrganizationLabels(t *testing.T) {
	// Recognizers routinely tag neighborhoods as ORG; the gazetteer is
	// the arbiter, not the entity label.
	text := "Shadyside announced a new community plan."
	rec := &mockRecognizer{
		available: true,
		entities:  []ner.Entity{{Text: "Shadyside", Start: 0, End: 9, Label: "ORG", Dep: "nsubj"}},
	}

	mentions := newTestExtractor(t, rec).Extract(context.Background(), text)
	if len(mentions) != 1 {
		t.Fatalf("expected 1 mention, got %d", len(mentions))
	}
	if mentions[0].Role != model.RoleSubject {
		t.Errorf("expected subject role, got %s", mentions[0].Role)
	}
}

func TestExtractorDropsImplausible(t *testing.T) {
	text := "The Pittsburgh Steelers won at home on Sunday."
	rec := &mockRecognizer{
		available: true,
		entities:  []ner.Entity{{Text: "Pittsburgh", Start: 4, End: 14, Label: "GPE", Dep: "compound"}},
	}

	mentions := newTestExtractor(t, rec).Extract(context.Background(), text)
	if len(mentions) != 0 {
		t.Fatalf("expected sports usage to be filtered, got %d mentions", len(mentions))
	}
}

func TestExtractorAliasResolution(t *testing.T) {
	text := "Construction continues in North Oakland this week."
	pos := strings.Index(text, "North Oakland")
	rec := &mockRecognizer{
		available: true,
		entities:  []ner.Entity{{Text: "North Oakland", Start: pos, End: pos + 13, Label: "GPE", Dep: "pobj"}},
	}

	mentions := newTestExtractor(t, rec).Extract(context.Background(), text)
	if len(mentions) != 1 {
		t.Fatalf("expected 1 mention, got %d", len(mentions))
	}
	if mentions[0].Canonical != "Oakland" {
		t.Errorf("expected alias to resolve to Oakland, got %s", mentions[0].Canonical)
	}
	if mentions[0].Surface != "North Oakland" {
		t.Errorf("expected surface form preserved, got %s", mentions[0].Surface)
	}
}

func TestExtractorFallbackWhenUnavailable(t *testing.T) {
	text := "Crews worked in Oakland and Shadyside overnight."

	mentions := newTestExtractor(t, &mockRecognizer{available: false}).Extract(context.Background(), text)
	if len(mentions) != 2 {
		t.Fatalf("expected 2 scanned mentions, got %d", len(mentions))
	}
	for _, m := range mentions {
		if m.Confidence != 0.6 {
			t.Errorf("expected scanner prior 0.6 for %s, got %v", m.Canonical, m.Confidence)
		}
		if m.Role != model.RoleUnknown {
			t.Errorf("expected unknown role for %s, got %s", m.Canonical, m.Role)
		}
	}
}

func TestExtractorFallbackOnError(t *testing.T) {
	text := "Crews worked in Oakland overnight."
	rec := &mockRecognizer{available: true, err: errors.New("model timeout")}

	mentions := newTestExtractor(t, rec).Extract(context.Background(), text)
	if len(mentions) != 1 {
		t.Fatalf("expected scan fallback after recognizer error, got %d mentions", len(mentions))
	}
	if mentions[0].Confidence != 0.6 {
		t.Errorf("expected scanner prior 0.6, got %v", mentions[0].Confidence)
	}
}

func TestExtractorNilRecognizer(t *testing.T) {
	mentions := newTestExtractor(t, nil).Extract(context.Background(), "A ribbon cutting in Shadyside.")
	if len(mentions) != 1 {
		t.Fatalf("expected 1 mention from scan, got %d", len(mentions))
	}
	if mentions[0].Canonical != "Shadyside" {
		t.Errorf("expected Shadyside, got %s", mentions[0].Canonical)
	}
}

func TestExtractorEmptyText(t *testing.T) {
	e := newTestExtractor(t, &mockRecognizer{available: true})
	if got := e.Extract(context.Background(), ""); len(got) != 0 {
		t.Errorf("expected no mentions for empty text, got %d", len(got))
	}
	if got := e.Extract(context.Background(), "   \n\t"); len(got) != 0 {
		t.Errorf("expected no mentions for blank text, got %d", len(got))
	}
}

func TestExtractorEmptyRecognizerOutputDoesNotFallBack(t *testing.T) {
	// A recognizer that finds nothing is a real answer, not a failure.
	text := "Crews worked in Oakland overnight."
	rec := &mockRecognizer{available: true}

	if got := newTestExtractor(t, rec).Extract(context.Background(), text); len(got) != 0 {
		t.Errorf("expected no mentions when recognizer finds none, got %d", len(got))
	}
}

func TestRoleFromDep(t *testing.T) {
	cases := []struct {
		dep  string
		want model.SyntacticRole
	}{
		{"nsubj", model.RoleSubject},
		{"nsubjpass", model.RoleSubject},
		{"dobj", model.RoleObject},
		{"pobj", model.RoleObject},
		{"amod", model.RoleModifier},
		{"compound", model.RoleModifier},
		{"", model.RoleUnknown},
		{"conj", model.SyntacticRole("conj")},
	}

	for _, tc := range cases {
		if got := roleFromDep(tc.dep); got != tc.want {
			t.Errorf("roleFromDep(%q) = %s, expected %s", tc.dep, got, tc.want)
		}
	}
}

func TestContextWindow(t *testing.T) {
	text := "abcdefghij Oakland klmnopqrst"
	pos := strings.Index(text, "Oakland")

	got := contextWindow(text, pos, pos+7, 5)
	if got != "fghij Oakland klmno" {
		t.Errorf("expected clipped window, got %q", got)
	}

	// Window larger than the text clamps to the full string.
	if got := contextWindow(text, pos, pos+7, 500); got != text {
		t.Errorf("expected full text, got %q", got)
	}
}

func TestContextWindowRuneBoundaries(t *testing.T) {
	text := strings.Repeat("é", 10) + "Oakland" + strings.Repeat("é", 10)
	pos := strings.Index(text, "Oakland")

	got := contextWindow(text, pos, pos+7, 5)
	if !utf8.ValidString(got) {
		t.Errorf("window split a rune: %q", got)
	}
	if !strings.Contains(got, "Oakland") {
		t.Errorf("expected window to contain the mention, got %q", got)
	}
}

package embed

import (
	"context"
	"math"
	"testing"
)

func TestLexicalSimilarityIdenticalText(t *testing.T) {
	sim, err := NewLexicalSimilarity(DefaultConfig())
	if err != nil {
		t.Fatalf("creating provider: %v", err)
	}

	got, err := sim.Similarity(context.Background(), "residents of Oakland gathered", "residents of Oakland gathered")
	if err != nil {
		t.Fatalf("Similarity failed: %v", err)
	}
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("expected 1.0 for identical text, got %v", got)
	}
}

func TestLexicalSimilarityDisjointText(t *testing.T) {
	sim, _ := NewLexicalSimilarity(DefaultConfig())

	got, err := sim.Similarity(context.Background(), "quarterly earnings report", "blooming garden flowers")
	if err != nil {
		t.Fatalf("Similarity failed: %v", err)
	}
	if got != 0 {
		t.Errorf("expected 0 for disjoint token sets, got %v", got)
	}
}

func TestLexicalSimilarityPartialOverlap(t *testing.T) {
	sim, _ := NewLexicalSimilarity(DefaultConfig())

	got, err := sim.Similarity(context.Background(), "officials in Oakland announced", "Oakland residents protested")
	if err != nil {
		t.Fatalf("Similarity failed: %v", err)
	}
	if got <= 0 || got >= 1 {
		t.Errorf("expected partial overlap strictly between 0 and 1, got %v", got)
	}
}

func TestLexicalSimilaritySymmetric(t *testing.T) {
	sim, _ := NewLexicalSimilarity(DefaultConfig())
	ctx := context.Background()

	ab, err := sim.Similarity(ctx, "fire in the Hill District", "Hill District community meeting")
	if err != nil {
		t.Fatalf("Similarity failed: %v", err)
	}
	ba, err := sim.Similarity(ctx, "Hill District community meeting", "fire in the Hill District")
	if err != nil {
		t.Fatalf("Similarity failed: %v", err)
	}
	if math.Abs(ab-ba) > 1e-9 {
		t.Errorf("expected symmetric scores, got %v and %v", ab, ba)
	}
}

func TestLexicalSimilarityEmptyText(t *testing.T) {
	sim, _ := NewLexicalSimilarity(DefaultConfig())

	got, err := sim.Similarity(context.Background(), "", "Oakland")
	if err != nil {
		t.Fatalf("Similarity failed: %v", err)
	}
	if got != 0 {
		t.Errorf("expected 0 for empty text, got %v", got)
	}
}

func TestTokenSetCaseAndPunctuation(t *testing.T) {
	set := tokenSet("Oakland's residents, gathered!")
	for _, want := range []string{"oakland", "s", "residents", "gathered"} {
		if _, ok := set[want]; !ok {
			t.Errorf("expected token %q in set", want)
		}
	}
	if _, ok := set["Oakland"]; ok {
		t.Error("expected tokens to be lowercased")
	}
}

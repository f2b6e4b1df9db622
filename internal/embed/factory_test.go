package embed

import (
	"strings"
	"testing"
)

func TestNewSimilarityLexical(t *testing.T) {
	sim, err := NewSimilarity(Config{Provider: "lexical"})
	if err != nil {
		t.Fatalf("expected lexical provider, got error: %v", err)
	}
	if sim == nil {
		t.Fatal("expected provider, got nil")
	}
	if sim.Name() != "lexical" {
		t.Errorf("expected provider name lexical, got %s", sim.Name())
	}
}

func TestNewSimilarityDisabled(t *testing.T) {
	sim, err := NewSimilarity(Config{Provider: ""})
	if err != nil {
		t.Errorf("expected no error for empty provider, got %v", err)
	}
	if sim != nil {
		t.Errorf("expected nil provider for empty provider, got %T", sim)
	}
}

func TestNewSimilarityUnknown(t *testing.T) {
	_, err := NewSimilarity(Config{Provider: "word2vec"})
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
	if !strings.Contains(err.Error(), "word2vec") {
		t.Errorf("expected error to name the provider, got: %v", err)
	}
}

func TestNewSimilarityOpenAIWithoutKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	if _, err := NewSimilarity(Config{Provider: "openai"}); err == nil {
		t.Fatal("expected error when OpenAI key is missing")
	}
}

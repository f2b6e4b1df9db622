package ner

import (
	"strings"
	"testing"
)

func TestNewRecognizerProse(t *testing.T) {
	rec, err := NewRecognizer(Config{Provider: "prose"})
	if err != nil {
		t.Fatalf("expected prose recognizer, got error: %v", err)
	}
	if rec == nil {
		t.Fatal("expected recognizer, got nil")
	}
	if rec.Name() != "prose" {
		t.Errorf("expected provider name prose, got %s", rec.Name())
	}
}

func TestNewRecognizerDisabled(t *testing.T) {
	rec, err := NewRecognizer(Config{Provider: ""})
	if err != nil {
		t.Errorf("expected no error for empty provider, got %v", err)
	}
	if rec != nil {
		t.Errorf("expected nil recognizer for empty provider, got %T", rec)
	}
}

func TestNewRecognizerUnknown(t *testing.T) {
	_, err := NewRecognizer(Config{Provider: "spacy"})
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
	if !strings.Contains(err.Error(), "spacy") {
		t.Errorf("expected error to name the provider, got: %v", err)
	}
}

func TestNewRecognizerOpenAIWithoutKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	if _, err := NewRecognizer(Config{Provider: "openai"}); err == nil {
		t.Fatal("expected error when OpenAI key is missing")
	}
}

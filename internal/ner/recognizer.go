package ner

import (
	"context"

	"github.com/localnewslab/placerank/internal/model"
)

// Entity is one span the recognizer proposes as a possible place reference
type Entity struct {
	Text  string // surface text as it appears in the document
	Start int    // byte offset of the first character
	End   int    // byte offset past the last character
	Label string // entity label, e.g. GPE, LOC, ORG, PERSON
	Dep   string // dependency label of the span head, e.g. nsubj, pobj; empty if unknown
}

// Recognizer defines the named-entity recognition capability. A
// constructed recognizer is read-only and safe for concurrent use.
type Recognizer interface {
	// Name returns the provider name
	Name() string

	// Recognize returns the entities detected in text, in document order
	Recognize(ctx context.Context, text string) ([]Entity, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// Config holds recognizer provider configuration
type Config struct {
	// Provider name: "prose", "openai", ""
	Provider string

	// Model name (provider-specific, remote providers only)
	Model string

	// APIKey for remote providers
	APIKey string

	// BaseURL for custom endpoints
	BaseURL string

	// Timeout for provider requests
	Timeout int // seconds

	// Rate limiting for remote providers
	RequestsPerSecond float64
	BurstSize         int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider: "prose",
		Timeout:  30,
	}
}

// ConfigFromModel builds a provider config from the pipeline configuration
func ConfigFromModel(cfg *model.Config) Config {
	return Config{
		Provider:          cfg.Recognizer.Provider,
		Model:             cfg.Recognizer.Model,
		APIKey:            cfg.Recognizer.APIKey,
		BaseURL:           cfg.Recognizer.BaseURL,
		Timeout:           cfg.Recognizer.Timeout,
		RequestsPerSecond: cfg.RateLimiting.RequestsPerSecond,
		BurstSize:         cfg.RateLimiting.BurstSize,
		HTTPProxy:         cfg.HTTP.HTTPProxy,
		HTTPSProxy:        cfg.HTTP.HTTPSProxy,
		NoProxy:           cfg.HTTP.NoProxy,
	}
}

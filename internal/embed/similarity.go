package embed

import (
	"context"
	"math"

	"github.com/localnewslab/placerank/internal/model"
)

// Similarity scores how close two texts are in meaning. Providers
// return values in [0,1] for natural-language inputs; cosine over raw
// vectors can dip below zero for antipodal pairs.
type Similarity interface {
	// Name returns the provider name
	Name() string
	// Similarity scores the closeness of texts a and b
	Similarity(ctx context.Context, a, b string) (float64, error)
	// IsAvailable checks if the provider is ready to serve
	IsAvailable(ctx context.Context) bool
}

// Config holds similarity provider configuration
type Config struct {
	Provider          string
	Model             string
	APIKey            string
	BaseURL           string
	Timeout           int // seconds
	RequestsPerSecond float64
	BurstSize         int
	CacheEnabled      bool
	CacheDir          string
	HTTPProxy         string
	HTTPSProxy        string
	NoProxy           string
}

// DefaultConfig returns default similarity configuration. The provider
// is empty, which disables semantic validation entirely.
func DefaultConfig() Config {
	return Config{
		Timeout:           30,
		RequestsPerSecond: 2.0,
		BurstSize:         5,
		CacheEnabled:      true,
	}
}

// ConfigFromModel maps application configuration onto provider config
func ConfigFromModel(cfg *model.Config) Config {
	return Config{
		Provider:          cfg.Similarity.Provider,
		Model:             cfg.Similarity.Model,
		APIKey:            cfg.Similarity.APIKey,
		BaseURL:           cfg.Similarity.BaseURL,
		Timeout:           cfg.Similarity.Timeout,
		RequestsPerSecond: cfg.RateLimiting.RequestsPerSecond,
		BurstSize:         cfg.RateLimiting.BurstSize,
		CacheEnabled:      cfg.Cache.Enabled,
		CacheDir:          cfg.Cache.Dir,
		HTTPProxy:         cfg.HTTP.HTTPProxy,
		HTTPSProxy:        cfg.HTTP.HTTPSProxy,
		NoProxy:           cfg.HTTP.NoProxy,
	}
}

// cosine computes cosine similarity between two vectors. Mismatched or
// zero vectors score 0.
func cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

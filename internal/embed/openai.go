package embed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/localnewslab/placerank/internal/cache"
	"github.com/localnewslab/placerank/internal/util"
)

const defaultEmbeddingModel = "text-embedding-3-small"

// OpenAISimilarity scores text pairs by cosine over OpenAI embeddings.
// Vectors are cached per (model, input) pair; template matching asks
// for the same handful of phrasings on every document.
type OpenAISimilarity struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	limiter *rate.Limiter
	cache   cache.Cache
}

// NewOpenAISimilarity creates a new OpenAI-backed similarity provider
func NewOpenAISimilarity(config Config) (*OpenAISimilarity, error) {
	apiKey := config.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key not provided (set OPENAI_API_KEY environment variable or similarity.api_key in config)")
	}

	model := config.Model
	if model == "" {
		model = defaultEmbeddingModel
	}

	timeout := time.Duration(config.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	clientConfig := openai.DefaultConfig(apiKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}
	clientConfig.HTTPClient = &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy: util.NewProxyFunc(config.HTTPProxy, config.HTTPSProxy, config.NoProxy),
		},
	}

	rps := config.RequestsPerSecond
	if rps <= 0 {
		rps = 2.0
	}
	burst := config.BurstSize
	if burst <= 0 {
		burst = 1
	}

	var store cache.Cache
	if config.CacheEnabled {
		if config.CacheDir != "" {
			store = cache.NewLayeredCache(config.CacheDir)
		} else {
			store = cache.NewMemoryCache(cache.DefaultMemoryTTL)
		}
	}

	return &OpenAISimilarity{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   model,
		timeout: timeout,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		cache:   store,
	}, nil
}

// Name returns the provider name
func (o *OpenAISimilarity) Name() string {
	return "openai"
}

// IsAvailable checks if the OpenAI API is reachable
func (o *OpenAISimilarity) IsAvailable(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := o.client.ListModels(ctx)
	return err == nil
}

// Similarity embeds both texts and returns their cosine similarity
func (o *OpenAISimilarity) Similarity(ctx context.Context, a, b string) (float64, error) {
	va, err := o.embed(ctx, a)
	if err != nil {
		return 0, err
	}
	vb, err := o.embed(ctx, b)
	if err != nil {
		return 0, err
	}
	return cosine(va, vb), nil
}

// embed returns the vector for text, consulting the cache first
func (o *OpenAISimilarity) embed(ctx context.Context, text string) ([]float32, error) {
	key := cache.Key(o.model, text)
	if o.cache != nil {
		if data, found := o.cache.Get(key); found {
			var vec []float32
			if err := json.Unmarshal(data, &vec); err == nil {
				return vec, nil
			}
		}
	}

	if err := o.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	resp, err := o.client.CreateEmbeddings(reqCtx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.EmbeddingModel(o.model),
	})
	if err != nil {
		return nil, fmt.Errorf("OpenAI embeddings: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("OpenAI returned no embedding data")
	}

	vec := resp.Data[0].Embedding
	if o.cache != nil {
		if data, err := json.Marshal(vec); err == nil {
			_ = o.cache.Set(key, data, 0)
		}
	}

	return vec, nil
}

package ner

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/localnewslab/placerank/internal/util"
)

const defaultOpenAIModel = "gpt-4o-mini"

const recognizerPrompt = `You are a named entity recognizer for local news articles. Extract every place, organization and facility mentioned in the user's text. Respond with a JSON array only, no prose. Each element must be {"text": "<exact surface form copied from the text>", "label": "<GPE|LOC|ORG|FAC|PERSON>", "dep": "<nsubj|dobj|pobj|compound|amod>"}. Use GPE for cities, neighborhoods and administrative areas, LOC for other physical locations, ORG for organizations, FAC for buildings and facilities. "dep" is the mention's grammatical role in its sentence; use an empty string when unsure. Return [] when the text contains no entities.`

// OpenAIRecognizer tags entities with the OpenAI chat API
type OpenAIRecognizer struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	limiter *rate.Limiter
}

// NewOpenAIRecognizer creates a new OpenAI-backed recognizer
func NewOpenAIRecognizer(config Config) (*OpenAIRecognizer, error) {
	apiKey := config.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key not provided (set OPENAI_API_KEY environment variable or recognizer.api_key in config)")
	}

	model := config.Model
	if model == "" {
		model = defaultOpenAIModel
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

	return &OpenAIRecognizer{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   model,
		timeout: timeout,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}, nil
}

// Name returns the provider name
func (o *OpenAIRecognizer) Name() string {
	return "openai"
}

// IsAvailable checks if the OpenAI API is reachable
func (o *OpenAIRecognizer) IsAvailable(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := o.client.ListModels(ctx)
	return err == nil
}

// Recognize asks the chat model for entity mentions and locates each
// one in the source text
func (o *OpenAIRecognizer) Recognize(ctx context.Context, text string) ([]Entity, error) {
	if err := o.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: recognizerPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("OpenAI chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("OpenAI returned no choices")
	}

	return parseEntities(text, resp.Choices[0].Message.Content)
}

// wireEntity is the JSON shape the model is instructed to return
type wireEntity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
	Dep   string `json:"dep"`
}

// parseEntities decodes the model response and locates each reported
// mention in the source text. Models wrap JSON in prose or code fences
// often enough that everything outside the outermost brackets is
// discarded. Entries that cannot be located in the text are dropped.
func parseEntities(text, response string) ([]Entity, error) {
	start := strings.Index(response, "[")
	end := strings.LastIndex(response, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON array in model response: %q", truncate(response, 120))
	}

	var wire []wireEntity
	if err := json.Unmarshal([]byte(response[start:end+1]), &wire); err != nil {
		return nil, fmt.Errorf("parsing entity array: %w", err)
	}

	var entities []Entity
	pos := 0
	for _, w := range wire {
		if w.Text == "" {
			continue
		}

		// Scan forward from the previous hit so repeated surface forms
		// map to distinct spans, then fall back to a full-text search
		// for out-of-order responses.
		idx := strings.Index(text[pos:], w.Text)
		if idx >= 0 {
			idx += pos
		} else {
			idx = strings.Index(text, w.Text)
		}
		if idx < 0 {
			continue
		}

		entities = append(entities, Entity{
			Text:  w.Text,
			Start: idx,
			End:   idx + len(w.Text),
			Label: strings.ToUpper(strings.TrimSpace(w.Label)),
			Dep:   strings.TrimSpace(w.Dep),
		})
		pos = idx + len(w.Text)
	}

	return entities, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

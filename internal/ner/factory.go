package ner

import (
	"fmt"
	"strings"
)

// NewRecognizer creates a recognizer based on configuration. An empty
// provider name disables recognition (nil, nil) and the extractor falls
// back to gazetteer scanning.
func NewRecognizer(config Config) (Recognizer, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "prose":
		return NewProseRecognizer(config)

	case "openai":
		return NewOpenAIRecognizer(config)

	case "":
		// No provider configured - recognition disabled
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown recognizer provider: %s (supported: prose, openai)", config.Provider)
	}
}

package embed

import "fmt"

// NewSimilarity creates a similarity provider from configuration. An
// empty provider name disables semantic validation.
func NewSimilarity(config Config) (Similarity, error) {
	switch config.Provider {
	case "openai":
		return NewOpenAISimilarity(config)
	case "lexical":
		return NewLexicalSimilarity(config)
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown similarity provider: %s (supported: openai, lexical)", config.Provider)
	}
}

package embed

import (
	"context"
	"math"
	"strings"
	"unicode"
)

// LexicalSimilarity approximates semantic similarity with token-set
// overlap. It needs no API key or network and serves as the offline
// choice when validation is wanted without an embedding provider.
type LexicalSimilarity struct{}

// NewLexicalSimilarity creates a new lexical similarity provider
func NewLexicalSimilarity(config Config) (*LexicalSimilarity, error) {
	return &LexicalSimilarity{}, nil
}

// Name returns the provider name
func (l *LexicalSimilarity) Name() string {
	return "lexical"
}

// IsAvailable always reports true; the provider is in-process
func (l *LexicalSimilarity) IsAvailable(ctx context.Context) bool {
	return true
}

// Similarity scores two texts by cosine over their token sets
func (l *LexicalSimilarity) Similarity(ctx context.Context, a, b string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	ta, tb := tokenSet(a), tokenSet(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0, nil
	}

	common := 0
	for tok := range ta {
		if _, ok := tb[tok]; ok {
			common++
		}
	}
	return float64(common) / math.Sqrt(float64(len(ta))*float64(len(tb))), nil
}

func tokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		set[tok] = struct{}{}
	}
	return set
}

package ner

import (
	"context"
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"
)

// ProseRecognizer tags entities with the prose NLP library. It runs
// fully in-process: no network, API key or external model files.
type ProseRecognizer struct {
	config Config
}

// NewProseRecognizer creates a new prose-backed recognizer
func NewProseRecognizer(config Config) (*ProseRecognizer, error) {
	return &ProseRecognizer{config: config}, nil
}

// Name returns the provider name
func (p *ProseRecognizer) Name() string {
	return "prose"
}

// IsAvailable reports whether the provider can run. The prose model is
// compiled into the binary, so this is always true.
func (p *ProseRecognizer) IsAvailable(ctx context.Context) bool {
	return true
}

// Recognize runs prose tokenization, tagging and entity chunking over
// text. Entities are rebuilt from the token stream rather than
// doc.Entities() because prose reports no character offsets; walking
// tokens gives spans and the neighboring part-of-speech tags used to
// approximate a dependency label.
func (p *ProseRecognizer) Recognize(ctx context.Context, text string) ([]Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, fmt.Errorf("prose document: %w", err)
	}

	tokens := doc.Tokens()
	offsets := tokenOffsets(text, tokens)

	var entities []Entity
	for i := 0; i < len(tokens); i++ {
		label, ok := chunkLabel(tokens[i].Label, "B-")
		if !ok {
			continue
		}

		// Consume the I- continuation tokens of this chunk.
		j := i + 1
		for j < len(tokens) {
			if _, cont := chunkLabel(tokens[j].Label, "I-"); !cont {
				break
			}
			j++
		}

		start := offsets[i]
		end := -1
		if offsets[j-1] >= 0 {
			end = offsets[j-1] + len(tokens[j-1].Text)
		}
		if start >= 0 && end > start {
			entities = append(entities, Entity{
				Text:  text[start:end],
				Start: start,
				End:   end,
				Label: label,
				Dep:   dependencyLabel(tokens, i, j),
			})
		}
		i = j - 1
	}

	return entities, nil
}

// chunkLabel extracts the entity label from an IOB token label with the
// given prefix, e.g. ("B-GPE", "B-") -> ("GPE", true)
func chunkLabel(iob, prefix string) (string, bool) {
	if strings.HasPrefix(iob, prefix) {
		return iob[len(prefix):], true
	}
	return "", false
}

// tokenOffsets locates each token's byte offset by scanning forward
// through the source text. Tokens that cannot be located map to -1.
func tokenOffsets(text string, tokens []prose.Token) []int {
	offsets := make([]int, len(tokens))
	pos := 0
	for i, tok := range tokens {
		idx := strings.Index(text[pos:], tok.Text)
		if idx < 0 {
			offsets[i] = -1
			continue
		}
		offsets[i] = pos + idx
		pos = pos + idx + len(tok.Text)
	}
	return offsets
}

// dependencyLabel approximates a dependency label for the token span
// [start,end) from neighboring part-of-speech tags. prose ships no
// dependency parser; prepositions and verbs adjacent to the span cover
// the cases the role classifier cares about.
func dependencyLabel(tokens []prose.Token, start, end int) string {
	if start > 0 {
		switch tokens[start-1].Tag {
		case "IN", "TO":
			return "pobj"
		}
	}
	if end < len(tokens) {
		tag := tokens[end].Tag
		if strings.HasPrefix(tag, "VB") {
			return "nsubj"
		}
		if strings.HasPrefix(tag, "NN") {
			return "compound"
		}
	}
	if start > 0 && strings.HasPrefix(tokens[start-1].Tag, "VB") {
		return "dobj"
	}
	return ""
}

package extract

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/localnewslab/placerank/internal/gazetteer"
	"github.com/localnewslab/placerank/internal/model"
	"github.com/localnewslab/placerank/internal/ner"
)

// DefaultContextWindow is the number of bytes kept on each side of a
// mention for downstream scoring and validation.
const DefaultContextWindow = 50

// Confidence priors by extraction path. The scorer recomputes
// confidence from scratch; these only matter if scoring is skipped.
const (
	recognizedPrior = 0.8
	scannedPrior    = 0.6
)

// keepLabels are the recognizer entity labels that can denote places.
// ORG and FAC stay in because recognizers routinely mislabel
// neighborhoods; the plausibility filter and gazetteer catch the rest.
var keepLabels = map[string]bool{
	"GPE": true,
	"LOC": true,
	"ORG": true,
	"FAC": true,
}

// Extractor finds candidate place mentions in article text
type Extractor struct {
	graph      *gazetteer.Graph
	resolver   *gazetteer.Resolver
	scanner    *gazetteer.Scanner
	recognizer ner.Recognizer
	window     int
}

// NewExtractor creates an extractor over the given gazetteer. The
// recognizer may be nil, in which case every document takes the
// scanner path.
func NewExtractor(graph *gazetteer.Graph, resolver *gazetteer.Resolver, recognizer ner.Recognizer, window int) *Extractor {
	if window <= 0 {
		window = DefaultContextWindow
	}
	return &Extractor{
		graph:      graph,
		resolver:   resolver,
		scanner:    gazetteer.NewScanner(graph),
		recognizer: recognizer,
		window:     window,
	}
}

// Extract finds place mentions in text. Recognizer candidates pass
// through the plausibility filter and name resolution; when no
// recognizer is configured or reachable, a gazetteer scan supplies
// candidates directly with a lower confidence prior.
func (e *Extractor) Extract(ctx context.Context, text string) []model.Mention {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	if e.recognizer != nil && e.recognizer.IsAvailable(ctx) {
		entities, err := e.recognizer.Recognize(ctx, text)
		if err == nil {
			return e.fromEntities(text, entities)
		}
		fmt.Fprintf(os.Stderr, "Warning: %s recognizer failed, falling back to gazetteer scan: %v\n",
			e.recognizer.Name(), err)
	}

	return e.fromScan(text)
}

func (e *Extractor) fromEntities(text string, entities []ner.Entity) []model.Mention {
	var mentions []model.Mention
	for _, ent := range entities {
		if !keepLabels[ent.Label] {
			continue
		}
		if !Plausible(ent.Text, text) {
			continue
		}
		canonical, ok := e.resolver.Resolve(ent.Text)
		if !ok {
			continue
		}
		mentions = append(mentions, e.newMention(text, ent.Text, canonical, ent.Start, ent.Dep, recognizedPrior))
	}
	return mentions
}

func (e *Extractor) fromScan(text string) []model.Mention {
	var mentions []model.Mention
	for _, match := range e.scanner.Scan(text) {
		mentions = append(mentions, e.newMention(text, match.Surface, match.Canonical, match.Start, "", scannedPrior))
	}
	return mentions
}

func (e *Extractor) newMention(text, surface, canonical string, position int, dep string, prior float64) model.Mention {
	return model.Mention{
		Surface:    surface,
		Canonical:  canonical,
		Type:       e.graph.TypeOf(canonical),
		Confidence: prior,
		Position:   position,
		Context:    contextWindow(text, position, position+len(surface), e.window),
		Role:       roleFromDep(dep),
		Label:      model.LabelUnknown,
		Ancestors:  e.graph.AncestorsOf(canonical),
	}
}

// roleFromDep maps recognizer dependency labels onto syntactic roles.
// Unmapped labels pass through unchanged so downstream consumers still
// see what the recognizer reported.
func roleFromDep(dep string) model.SyntacticRole {
	switch dep {
	case "nsubj", "nsubjpass":
		return model.RoleSubject
	case "dobj", "pobj":
		return model.RoleObject
	case "amod", "compound":
		return model.RoleModifier
	case "":
		return model.RoleUnknown
	default:
		return model.SyntacticRole(dep)
	}
}

// contextWindow slices window bytes either side of [start,end),
// nudging the cut points onto rune boundaries.
func contextWindow(text string, start, end, window int) string {
	lo := start - window
	if lo < 0 {
		lo = 0
	}
	hi := end + window
	if hi > len(text) {
		hi = len(text)
	}
	for lo > 0 && !utf8.RuneStart(text[lo]) {
		lo--
	}
	for hi < len(text) && !utf8.RuneStart(text[hi]) {
		hi++
	}
	return text[lo:hi]
}

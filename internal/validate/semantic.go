package validate

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/localnewslab/placerank/internal/embed"
	"github.com/localnewslab/placerank/internal/model"
)

// Usage templates contrasted against each document. The {place} slot
// takes the mention's surface form, since that is the string actually
// appearing in the article.
var (
	geographicTemplates = []string{
		"residents of {place} gathered",
		"officials in {place} announced",
		"neighborhood of {place} sees",
		"community in {place} organized",
		"{place} area development",
		"near {place} location",
		"from {place} community",
	}

	nonGeographicTemplates = []string{
		"{place} team won championship",
		"University of {place} students",
		"{place} company announced",
		"{place} school district",
		"{place} organization meeting",
	}
)

// Confidence adjustments applied once a mention is labeled. The floor
// keeps validation from zeroing a mention on its own.
const (
	geographicBonus      = 0.2
	nonGeographicPenalty = 0.3
	validatedFloor       = 0.1
)

// Validator labels mentions geographic or non-geographic by comparing
// the document against contrastive usage templates.
type Validator struct {
	sim embed.Similarity
}

// NewValidator creates a validator over the given similarity provider.
// A nil provider makes Apply a pass-through.
func NewValidator(sim embed.Similarity) *Validator {
	return &Validator{sim: sim}
}

// Apply labels each mention by whichever template set sits closer to
// the document and nudges confidence accordingly. Mentions whose
// similarity calls fail keep their prior label and confidence. The
// input slice is never mutated.
func (v *Validator) Apply(ctx context.Context, text string, mentions []model.Mention) []model.Mention {
	if len(mentions) == 0 {
		return mentions
	}

	out := make([]model.Mention, len(mentions))
	copy(out, mentions)

	if v.sim == nil || !v.sim.IsAvailable(ctx) {
		return out
	}

	for i := range out {
		geo, err := v.bestScore(ctx, text, geographicTemplates, out[i].Surface)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: semantic validation failed for %s: %v\n", out[i].Surface, err)
			continue
		}
		nonGeo, err := v.bestScore(ctx, text, nonGeographicTemplates, out[i].Surface)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: semantic validation failed for %s: %v\n", out[i].Surface, err)
			continue
		}

		if geo > nonGeo {
			out[i].Label = model.LabelGeographic
			out[i].Confidence = math.Min(out[i].Confidence+geographicBonus, 1.0)
		} else {
			out[i].Label = model.LabelNonGeographic
			out[i].Confidence = math.Max(out[i].Confidence-nonGeographicPenalty, validatedFloor)
		}
	}

	return out
}

// bestScore returns the maximum similarity between the document and
// the templates instantiated with place
func (v *Validator) bestScore(ctx context.Context, text string, templates []string, place string) (float64, error) {
	best := 0.0
	for _, tpl := range templates {
		phrase := strings.ReplaceAll(tpl, "{place}", place)
		score, err := v.sim.Similarity(ctx, text, phrase)
		if err != nil {
			return 0, err
		}
		if score > best {
			best = score
		}
	}
	return best, nil
}

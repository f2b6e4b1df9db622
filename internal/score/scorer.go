package score

import (
	"strings"

	"github.com/localnewslab/placerank/internal/model"
)

// Feature weights. Scoring starts from the base, adds or subtracts per
// feature, and clamps the result to [0,1].
const (
	baseScore            = 0.5
	earlyPositionBonus   = 0.1
	earlyPositionRatio   = 0.3
	objectRoleBonus      = 0.15
	subjectRoleBonus     = 0.1
	contextBonus         = 0.2
	ancestryBonus        = 0.1
	geographicBonus      = 0.2
	nonGeographicPenalty = 0.3
)

// contextKeywords are the geographic prepositions and community words
// looked for in a mention's context window. Matching is substring, not
// whole-word: "against" satisfies "in".
var contextKeywords = []string{"in", "at", "near", "from", "residents", "community", "neighborhood"}

// Scorer computes the confidence of record for each mention. Earlier
// stages' confidence values are inputs only through the features they
// set (position, role, ancestry, semantic label); the numeric score is
// rebuilt from scratch here.
type Scorer struct{}

// NewScorer creates a new scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score recomputes each mention's confidence from its features. The
// input slice is never mutated.
func (s *Scorer) Score(text string, mentions []model.Mention) []model.Mention {
	if len(mentions) == 0 {
		return mentions
	}

	out := make([]model.Mention, len(mentions))
	copy(out, mentions)

	for i := range out {
		out[i].Confidence = s.scoreMention(text, out[i])
	}
	return out
}

func (s *Scorer) scoreMention(text string, m model.Mention) float64 {
	score := baseScore

	if float64(m.Position) < float64(len(text))*earlyPositionRatio {
		score += earlyPositionBonus
	}

	switch m.Role {
	case model.RoleObject:
		score += objectRoleBonus
	case model.RoleSubject:
		score += subjectRoleBonus
	}

	context := strings.ToLower(m.Context)
	for _, kw := range contextKeywords {
		if strings.Contains(context, kw) {
			score += contextBonus
			break
		}
	}

	if len(m.Ancestors) > 0 {
		score += ancestryBonus
	}

	switch m.Label {
	case model.LabelGeographic:
		score += geographicBonus
	case model.LabelNonGeographic:
		score -= nonGeographicPenalty
	}

	return clamp(score, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package resolve

import (
	"math"

	"github.com/localnewslab/placerank/internal/gazetteer"
	"github.com/localnewslab/placerank/internal/model"
)

// ancestorBonus rewards a mention whose containing place is itself
// mentioned in the same document.
const ancestorBonus = 0.15

// Resolver applies hierarchy evidence across the mentions of one
// document. It runs after scoring so the bonus is not lost to the
// scorer's overwrite.
type Resolver struct {
	graph *gazetteer.Graph
}

// NewResolver creates a hierarchical resolver over the graph
func NewResolver(graph *gazetteer.Graph) *Resolver {
	return &Resolver{graph: graph}
}

// Apply adds the ancestry bonus when another mention in the document
// names one of this mention's ancestors, then routes each canonical
// name through the graph's ambiguity hook. The input slice is never
// mutated.
func (r *Resolver) Apply(mentions []model.Mention) []model.Mention {
	if len(mentions) == 0 {
		return mentions
	}

	out := make([]model.Mention, len(mentions))
	copy(out, mentions)

	for i := range out {
		others := otherCanonicals(out, i)

		for _, other := range others {
			if containsName(out[i].Ancestors, other) {
				out[i].Confidence = math.Min(out[i].Confidence+ancestorBonus, 1.0)
				break
			}
		}

		out[i].Canonical = r.graph.ResolveAmbiguous(out[i].Canonical, others)
	}

	return out
}

func otherCanonicals(mentions []model.Mention, i int) []string {
	others := make([]string, 0, len(mentions)-1)
	for j := range mentions {
		if j == i {
			continue
		}
		others = append(others, mentions[j].Canonical)
	}
	return others
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

package pipeline

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/localnewslab/placerank/internal/embed"
	"github.com/localnewslab/placerank/internal/extract"
	"github.com/localnewslab/placerank/internal/gazetteer"
	"github.com/localnewslab/placerank/internal/model"
	"github.com/localnewslab/placerank/internal/ner"
	"github.com/localnewslab/placerank/internal/resolve"
	"github.com/localnewslab/placerank/internal/score"
	"github.com/localnewslab/placerank/internal/validate"
)

// Pipeline orchestrates the classification stages over one document.
// Instances are stateless per call and safe for concurrent use; the
// place graph and capabilities are read-only after construction.
type Pipeline struct {
	graph     *gazetteer.Graph
	extractor *extract.Extractor
	validator *validate.Validator
	scorer    *score.Scorer
	resolver  *resolve.Resolver
	renderer  *Renderer
	config    *model.Config
}

// NewPipeline creates a pipeline over the given place graph with
// capabilities built from configuration. Optional capabilities that
// fail to initialize are disabled with a warning rather than failing
// construction.
func NewPipeline(cfg *model.Config, graph *gazetteer.Graph) *Pipeline {
	recognizer, err := ner.NewRecognizer(ner.ConfigFromModel(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: recognizer disabled: %v\n", err)
		recognizer = nil
	}

	similarity, err := embed.NewSimilarity(embed.ConfigFromModel(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: semantic validation disabled: %v\n", err)
		similarity = nil
	}

	return NewPipelineWith(cfg, graph, recognizer, similarity)
}

// NewPipelineWith creates a pipeline with explicit capabilities. A nil
// recognizer routes extraction through the gazetteer scanner; a nil
// similarity provider makes semantic validation a pass-through.
func NewPipelineWith(cfg *model.Config, graph *gazetteer.Graph, recognizer ner.Recognizer, similarity embed.Similarity) *Pipeline {
	resolver := gazetteer.NewResolver(graph, cfg.Gazetteer.FuzzyThreshold)

	return &Pipeline{
		graph:     graph,
		extractor: extract.NewExtractor(graph, resolver, recognizer, cfg.Pipeline.ContextWindow),
		validator: validate.NewValidator(similarity),
		scorer:    score.NewScorer(),
		resolver:  resolve.NewResolver(graph),
		renderer:  NewRenderer(cfg.Output.IncludeMentions),
		config:    cfg,
	}
}

// Classify runs the full pipeline over article text. It never returns
// an error: missing capabilities degrade to their fallbacks and text
// with no detectable places yields an empty result.
func (p *Pipeline) Classify(ctx context.Context, text string) *model.Result {
	// 1. Extract candidate mentions
	mentions := p.extractor.Extract(ctx, text)
	if len(mentions) == 0 {
		return model.EmptyResult()
	}

	// 2. Validate semantic context
	mentions = p.validator.Apply(ctx, text, mentions)

	// 3. Score confidence
	mentions = p.scorer.Score(text, mentions)

	// 4. Resolve hierarchy
	mentions = p.resolver.Apply(mentions)

	// 5. Filter, rank and deduplicate
	return p.assemble(mentions)
}

// ClassifyDocument classifies doc.Text and stamps document identity
// onto the result
func (p *Pipeline) ClassifyDocument(ctx context.Context, doc model.Document) *model.Result {
	result := p.Classify(ctx, doc.Text)
	result.DocumentID = doc.ID
	result.Title = doc.Title
	return result
}

// RenderResult writes JSON when a path is given ("-" meaning stdout)
// and prints the human summary otherwise. Writing JSON to stdout
// suppresses the summary so piped output stays parseable.
func (p *Pipeline) RenderResult(result *model.Result, jsonPath string, verbose bool) error {
	if jsonPath == "-" {
		return p.renderer.RenderJSON(result, jsonPath)
	}

	if jsonPath != "" {
		if err := p.renderer.RenderJSON(result, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	p.renderer.RenderSummary(result, os.Stdout)
	return nil
}

// assemble drops mentions below the confidence cutoff, orders the
// survivors by descending confidence and keeps the first occurrence of
// each canonical name.
func (p *Pipeline) assemble(mentions []model.Mention) *model.Result {
	minConfidence := p.config.Pipeline.MinConfidence

	kept := make([]model.Mention, 0, len(mentions))
	for _, m := range mentions {
		if m.Confidence >= minConfidence {
			kept = append(kept, m)
		}
	}

	// Stable sort keeps extraction order among equal confidences.
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Confidence > kept[j].Confidence
	})

	result := model.EmptyResult()
	for _, m := range kept {
		if _, seen := result.Scores[m.Canonical]; seen {
			continue
		}
		result.Places = append(result.Places, m.Canonical)
		result.Scores[m.Canonical] = m.Confidence
		result.Mentions = append(result.Mentions, m)
	}
	return result
}

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/localnewslab/placerank/internal/pipeline"
	"github.com/localnewslab/placerank/internal/worker"
)

var (
	batchConcurrency int
	batchOutputDir   string
	batchTimeout     time.Duration
	batchOpts        pipelineFlags
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <path>",
	Short: "Classify many articles in parallel",
	Long: `Batch classifies every document found at the given path:
- A directory yields one document per .txt, .md, or .html file
- A .json file holds an array of {id, title, text} documents
- Each document gets its own JSON result file in the output directory

Example:
  placerank batch ./articles --output-dir ./results
  placerank batch stories.json --concurrency 8
  placerank batch ./articles --similarity openai --mentions`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&batchOutputDir, "output-dir", "./placerank-results", "output directory for result files")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchOpts.register(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	batchOpts.apply(cfg)
	cfg.Concurrency.Workers = batchConcurrency

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Placerank Batch Processing\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input:       %s\n", path)
	fmt.Fprintf(os.Stderr, "  Workers:     %d\n", cfg.Concurrency.Workers)
	fmt.Fprintf(os.Stderr, "  Output dir:  %s\n", batchOutputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:     %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	// Create output directory
	if err := os.MkdirAll(batchOutputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	graph, err := loadGraph(cfg)
	if err != nil {
		return err
	}

	p := pipeline.NewPipeline(cfg, graph)
	processor := worker.NewBatchProcessor(p, cfg.Concurrency.Workers, cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize)

	results, err := processor.ProcessPath(ctx, path)
	if err != nil {
		return fmt.Errorf("process %s: %w", path, err)
	}

	renderer := pipeline.NewRenderer(cfg.Output.IncludeMentions)
	succeeded := 0
	failed := 0

	for _, res := range results {
		if res.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", res.DocumentID, res.Error)
			continue
		}

		outPath := filepath.Join(batchOutputDir, resultFilename(res.DocumentID))
		if err := renderer.RenderJSON(res.Result, outPath); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: write result: %v\n", res.DocumentID, err)
			continue
		}

		succeeded++
		if len(res.Result.Places) > 0 {
			fmt.Fprintf(os.Stderr, "✓ %s: %s\n", res.DocumentID, strings.Join(res.Result.Places, ", "))
		} else {
			fmt.Fprintf(os.Stderr, "✓ %s: no places\n", res.DocumentID)
		}
	}

	// Summary
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d documents\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", succeeded)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failed)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", batchOutputDir)
	fmt.Fprintf(os.Stderr, "\n")

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(results))
	}

	return nil
}

// resultFilename derives a safe output file name from a document ID
func resultFilename(id string) string {
	name := filepath.Base(id)
	name = strings.TrimSuffix(name, filepath.Ext(name))

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	name = b.String()
	if name == "" || name == "." || name == ".." {
		name = "result"
	}
	if len(name) > 100 {
		name = name[:100]
	}

	return name + ".json"
}

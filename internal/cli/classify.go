package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/localnewslab/placerank/internal/model"
	"github.com/localnewslab/placerank/internal/pipeline"
	"github.com/localnewslab/placerank/internal/worker"
)

var (
	classifyText    string
	classifyJSON    string
	classifyTimeout time.Duration
	classifyOpts    pipelineFlags
)

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify [file]",
	Short: "Classify one article and rank the places it is about",
	Long: `Classify reads one article and runs the geographic entity
resolution pipeline:
- Extract candidate place mentions
- Filter implausible usages (sports teams, universities, companies)
- Validate how each mention is used semantically
- Score contextual signals and resolve against the place hierarchy

The article comes from a file argument, stdin (-), or --text.

Example:
  placerank classify article.txt
  placerank classify article.txt --json result.json --mentions
  cat article.txt | placerank classify -
  placerank classify --text "Oakland residents rallied." --similarity openai`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().StringVar(&classifyText, "text", "", "classify this text instead of reading a file")
	classifyCmd.Flags().StringVar(&classifyJSON, "json", "", "write the result as JSON to this path (- for stdout)")
	classifyCmd.Flags().DurationVar(&classifyTimeout, "timeout", 2*time.Minute, "overall classification timeout")
	classifyOpts.register(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), classifyTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	classifyOpts.apply(cfg)

	doc, err := readClassifyInput(args)
	if err != nil {
		return err
	}

	graph, err := loadGraph(cfg)
	if err != nil {
		return err
	}

	p := pipeline.NewPipeline(cfg, graph)

	if verbose {
		fmt.Fprintf(os.Stderr, "Classifying: %s (%d bytes)\n", doc.ID, len(doc.Text))
	}

	result := p.ClassifyDocument(ctx, doc)

	return p.RenderResult(result, classifyJSON, verbose)
}

// readClassifyInput builds the document from --text, stdin, or a file
func readClassifyInput(args []string) (model.Document, error) {
	if classifyText != "" {
		return model.Document{ID: "inline", Text: classifyText}, nil
	}

	if len(args) == 0 {
		return model.Document{}, fmt.Errorf("no input: pass a file path, -, or --text")
	}

	path := args[0]
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return model.Document{}, fmt.Errorf("read stdin: %w", err)
		}
		return model.Document{ID: "stdin", Text: string(data)}, nil
	}

	docs, err := worker.ReadDocuments(path)
	if err != nil {
		return model.Document{}, err
	}
	if len(docs) != 1 {
		return model.Document{}, fmt.Errorf("expected one document at %s, found %d (use placerank batch for directories)", path, len(docs))
	}

	return docs[0], nil
}

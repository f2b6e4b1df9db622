package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/localnewslab/placerank/internal/pipeline"
	"github.com/localnewslab/placerank/internal/worker"
)

var (
	watchOutputDir string
	watchDebounce  time.Duration
	watchOpts      pipelineFlags
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Watch a directory and classify articles as they arrive",
	Long: `Watch monitors a directory for new or modified article files
(.txt, .md, .html, or a .json array of documents). Each file is
classified once its writes settle and the results are written to the
output directory as JSON.

Runs until interrupted.

Example:
  placerank watch ./incoming --output-dir ./results
  placerank watch ./incoming --debounce 2s --similarity lexical`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&watchOutputDir, "output-dir", "./placerank-results", "output directory for result files")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "settle time before a changed file is classified")
	watchOpts.register(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := args[0]

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("stat watch directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	watchOpts.apply(cfg)

	if err := os.MkdirAll(watchOutputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	graph, err := loadGraph(cfg)
	if err != nil {
		return err
	}

	p := pipeline.NewPipeline(cfg, graph)
	renderer := pipeline.NewRenderer(cfg.Output.IncludeMentions)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(os.Stderr, "Watching %s (results in %s, Ctrl-C to stop)\n", dir, watchOutputDir)

	// Editors and copies fire several events per file; classify only
	// after a path has been quiet for the debounce window.
	settled := make(chan string)
	pending := make(map[string]*time.Timer)
	var mu sync.Mutex

	schedule := func(path string) {
		mu.Lock()
		defer mu.Unlock()

		if timer, ok := pending[path]; ok {
			timer.Reset(watchDebounce)
			return
		}
		pending[path] = time.AfterFunc(watchDebounce, func() {
			mu.Lock()
			delete(pending, path)
			mu.Unlock()

			select {
			case settled <- path:
			case <-ctx.Done():
			}
		})
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case path := <-settled:
			classifyWatchedFile(ctx, p, renderer, path)

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if !watchableFile(event.Name) {
				continue
			}
			schedule(event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Warning: watcher error: %v\n", err)
		}
	}
}

func watchableFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md", ".html", ".json":
		return true
	}
	return false
}

// classifyWatchedFile classifies every document in a settled file; a
// .json drop may carry a whole array of them
func classifyWatchedFile(ctx context.Context, p *pipeline.Pipeline, renderer *pipeline.Renderer, path string) {
	docs, err := worker.ReadDocuments(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ %s: %v\n", path, err)
		return
	}
	if len(docs) == 0 {
		// Empty file, likely still being written.
		return
	}

	for _, doc := range docs {
		result := p.ClassifyDocument(ctx, doc)

		outPath := filepath.Join(watchOutputDir, resultFilename(doc.ID))
		if err := renderer.RenderJSON(result, outPath); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: write result: %v\n", path, err)
			continue
		}

		if len(result.Places) > 0 {
			fmt.Fprintf(os.Stderr, "✓ %s: %s\n", doc.ID, strings.Join(result.Places, ", "))
		} else {
			fmt.Fprintf(os.Stderr, "✓ %s: no places\n", doc.ID)
		}
	}
}

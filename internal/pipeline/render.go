package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/localnewslab/placerank/internal/model"
)

// Renderer writes classification results to files or streams
type Renderer struct {
	includeMentions bool
}

// NewRenderer creates a renderer. includeMentions controls whether
// per-mention detail is kept in JSON output.
func NewRenderer(includeMentions bool) *Renderer {
	return &Renderer{includeMentions: includeMentions}
}

// RenderJSON writes the result as indented JSON. An empty path or "-"
// writes to stdout.
func (r *Renderer) RenderJSON(result *model.Result, path string) error {
	out := *result
	if !r.includeMentions {
		out.Mentions = nil
	}

	data, err := json.MarshalIndent(&out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	data = append(data, '\n')

	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

// RenderSummary writes a short human-readable summary
func (r *Renderer) RenderSummary(result *model.Result, w io.Writer) {
	if result.DocumentID != "" {
		fmt.Fprintf(w, "Document: %s\n", result.DocumentID)
	}
	if len(result.Places) == 0 {
		fmt.Fprintln(w, "No places identified.")
		return
	}

	fmt.Fprintf(w, "Places (%d):\n", len(result.Places))
	for _, place := range result.Places {
		fmt.Fprintf(w, "  %-24s %.2f\n", place, result.Scores[place])
	}
}

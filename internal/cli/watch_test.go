package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/localnewslab/placerank/internal/gazetteer"
	"github.com/localnewslab/placerank/internal/model"
	"github.com/localnewslab/placerank/internal/pipeline"
)

func TestWatchableFile(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"story.txt", true},
		{"story.md", true},
		{"story.html", true},
		{"stories.json", true},
		{"STORY.TXT", true},
		{"story.pdf", false},
		{"story.txt.tmp", false},
		{"story", false},
	}
	for _, c := range cases {
		if got := watchableFile(c.path); got != c.want {
			t.Errorf("watchableFile(%q): expected %v, got %v", c.path, c.want, got)
		}
	}
}

func TestClassifyWatchedFile_JSONDrop(t *testing.T) {
	graph, err := gazetteer.LoadGraph("")
	if err != nil {
		t.Fatalf("loading builtin graph: %v", err)
	}
	p := pipeline.NewPipelineWith(model.DefaultConfig(), graph, nil, nil)
	renderer := pipeline.NewRenderer(false)

	outDir := t.TempDir()
	prev := watchOutputDir
	watchOutputDir = outDir
	defer func() { watchOutputDir = prev }()

	path := filepath.Join(t.TempDir(), "stories.json")
	content := `[
	  {"id": "story-1", "text": "Oakland residents gathered for the community meeting."},
	  {"id": "story-2", "text": "Shadyside residents met with Pittsburgh officials."}
	]`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	classifyWatchedFile(context.Background(), p, renderer, path)

	// Every document in the array gets its own result file.
	var first model.Result
	for i, name := range []string{"story-1.json", "story-2.json"} {
		data, err := os.ReadFile(filepath.Join(outDir, name))
		if err != nil {
			t.Fatalf("expected result file %s: %v", name, err)
		}
		var result model.Result
		if err := json.Unmarshal(data, &result); err != nil {
			t.Fatalf("parsing %s: %v", name, err)
		}
		if i == 0 {
			first = result
		}
	}

	found := false
	for _, place := range first.Places {
		if place == "Oakland" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected Oakland in story-1 result, got %v", first.Places)
	}
}

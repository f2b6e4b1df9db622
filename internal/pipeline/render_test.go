package pipeline

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/localnewslab/placerank/internal/model"
)

func sampleResult() *model.Result {
	return &model.Result{
		DocumentID:   "story-7",
		ClassifiedAt: time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
		Places:       []string{"Oakland", "Pittsburgh"},
		Scores:       map[string]float64{"Oakland": 0.85, "Pittsburgh": 0.6},
		Mentions: []model.Mention{
			{Surface: "Oakland", Canonical: "Oakland", Confidence: 0.85, Role: model.RoleObject, Label: model.LabelGeographic},
			{Surface: "Pittsburgh", Canonical: "Pittsburgh", Confidence: 0.6, Role: model.RoleUnknown, Label: model.LabelUnknown},
		},
	}
}

func TestRenderSummaryListsPlaces(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(false).RenderSummary(sampleResult(), &buf)

	out := buf.String()
	if !strings.Contains(out, "story-7") {
		t.Errorf("expected document id in summary, got %q", out)
	}
	if !strings.Contains(out, "Places (2):") {
		t.Errorf("expected place count header, got %q", out)
	}
	if !strings.Contains(out, "Oakland") || !strings.Contains(out, "0.85") {
		t.Errorf("expected place rows with confidences, got %q", out)
	}
}

func TestRenderSummaryEmptyResult(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(false).RenderSummary(model.EmptyResult(), &buf)

	if !strings.Contains(buf.String(), "No places identified.") {
		t.Errorf("expected empty notice, got %q", buf.String())
	}
}

func TestRenderJSONStripsMentionsByDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	result := sampleResult()

	if err := NewRenderer(false).RenderJSON(result, path); err != nil {
		t.Fatalf("RenderJSON failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !bytes.HasSuffix(data, []byte("\n")) {
		t.Error("expected trailing newline")
	}

	var decoded model.Result
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Mentions) != 0 {
		t.Errorf("expected mentions stripped, got %d", len(decoded.Mentions))
	}
	if len(decoded.Places) != 2 || decoded.Scores["Oakland"] != 0.85 {
		t.Errorf("expected places and scores preserved, got %+v", decoded)
	}

	// Stripping happens on a copy.
	if len(result.Mentions) != 2 {
		t.Errorf("expected caller's result untouched, got %d mentions", len(result.Mentions))
	}
}

func TestRenderJSONKeepsMentionsWhenConfigured(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	if err := NewRenderer(true).RenderJSON(sampleResult(), path); err != nil {
		t.Fatalf("RenderJSON failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	var decoded model.Result
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Mentions) != 2 {
		t.Errorf("expected 2 mentions, got %d", len(decoded.Mentions))
	}
}

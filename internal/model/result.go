package model

import "time"

// Document is one unit of input text to classify
type Document struct {
	ID    string `json:"id"`              // caller-assigned identifier (file name, story id)
	Title string `json:"title,omitempty"` // optional headline
	Text  string `json:"text"`            // full article text, UTF-8
}

// Result is the pipeline output for one document: canonical place names
// ordered by descending confidence plus a name -> confidence map.
// Names are unique; the highest-confidence mention wins after
// deduplication.
type Result struct {
	DocumentID   string             `json:"document_id,omitempty"`
	Title        string             `json:"title,omitempty"`
	ClassifiedAt time.Time          `json:"classified_at"`
	Places       []string           `json:"places"`
	Scores       map[string]float64 `json:"scores"`
	Mentions     []Mention          `json:"mentions,omitempty"` // retained mentions, same order as Places
}

// EmptyResult returns a result with no places, used when extraction
// yields zero candidates.
func EmptyResult() *Result {
	return &Result{
		ClassifiedAt: time.Now().UTC(),
		Places:       []string{},
		Scores:       map[string]float64{},
	}
}

package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"github.com/localnewslab/placerank/internal/model"
)

// Classifier is the slice of the pipeline that batch processing needs
type Classifier interface {
	ClassifyDocument(ctx context.Context, doc model.Document) *model.Result
}

// ClassifyJob classifies one document
type ClassifyJob struct {
	Doc        model.Document
	Classifier Classifier
	Limiter    *Limiter
}

// Execute runs the classification after rate limit clearance
func (j *ClassifyJob) Execute(ctx context.Context) Result {
	if j.Limiter != nil {
		if err := j.Limiter.Wait(ctx); err != nil {
			return &ClassifyResult{DocumentID: j.Doc.ID, Error: err}
		}
	}

	return &ClassifyResult{
		DocumentID: j.Doc.ID,
		Result:     j.Classifier.ClassifyDocument(ctx, j.Doc),
	}
}

// ClassifyResult pairs a document with its classification outcome
type ClassifyResult struct {
	DocumentID string
	Result     *model.Result
	Error      error
}

// GetError returns the error from the classification
func (r *ClassifyResult) GetError() error {
	return r.Error
}

// BatchProcessor classifies many documents concurrently
type BatchProcessor struct {
	classifier  Classifier
	concurrency int
	limiter     *Limiter
}

// NewBatchProcessor creates a batch processor. requestsPerSecond and
// burst throttle job starts; a rate of zero disables throttling.
func NewBatchProcessor(classifier Classifier, concurrency int, requestsPerSecond float64, burst int) *BatchProcessor {
	return &BatchProcessor{
		classifier:  classifier,
		concurrency: concurrency,
		limiter:     NewLimiter(requestsPerSecond, burst),
	}
}

// ProcessDocuments classifies documents concurrently and returns one
// result per document, in completion order
func (b *BatchProcessor) ProcessDocuments(ctx context.Context, docs []model.Document) []*ClassifyResult {
	if len(docs) == 0 {
		return []*ClassifyResult{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	// Submit while Collect drains below. The pool's channels are
	// bounded, so queueing a corpus larger than the buffers before
	// reading any results would deadlock.
	go func() {
		defer pool.Close()
		for _, doc := range docs {
			pool.Submit(&ClassifyJob{
				Doc:        doc,
				Classifier: b.classifier,
				Limiter:    b.limiter,
			})
		}
	}()

	results := pool.Collect()

	classifyResults := make([]*ClassifyResult, len(results))
	for i, result := range results {
		classifyResults[i] = result.(*ClassifyResult)
	}

	return classifyResults
}

// ProcessPath loads documents from path and classifies them
func (b *BatchProcessor) ProcessPath(ctx context.Context, path string) ([]*ClassifyResult, error) {
	docs, err := ReadDocuments(path)
	if err != nil {
		return nil, fmt.Errorf("read documents: %w", err)
	}

	return b.ProcessDocuments(ctx, docs), nil
}

// ReadDocuments loads classification input from path. A directory
// yields one document per .txt, .md, or .html file inside it; a .json
// file holds an array of documents; any other file is read as a single
// plain-text document. Files with no usable text are skipped.
func ReadDocuments(path string) ([]model.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}

	if info.IsDir() {
		return readDocumentDir(path)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return readDocumentArray(path)
	}

	doc, err := readDocumentFile(path)
	if err != nil {
		return nil, err
	}
	if doc.Text == "" {
		return []model.Document{}, nil
	}

	return []model.Document{doc}, nil
}

func readDocumentDir(dir string) ([]model.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	var docs []model.Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".txt", ".md", ".html":
		default:
			continue
		}

		doc, err := readDocumentFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		if doc.Text == "" {
			continue
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

// readDocumentFile reads one file as a document. The file name becomes
// the document ID.
func readDocumentFile(path string) (model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Document{}, fmt.Errorf("read %s: %w", path, err)
	}

	text := string(data)
	if strings.EqualFold(filepath.Ext(path), ".html") {
		text, err = htmlText(text)
		if err != nil {
			return model.Document{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	return model.Document{
		ID:   filepath.Base(path),
		Text: strings.TrimSpace(text),
	}, nil
}

func readDocumentArray(path string) ([]model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var docs []model.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	kept := docs[:0]
	for i, doc := range docs {
		doc.Text = strings.TrimSpace(doc.Text)
		if doc.Text == "" {
			continue
		}
		if doc.ID == "" {
			doc.ID = fmt.Sprintf("doc-%d", i+1)
		}
		kept = append(kept, doc)
	}

	return kept, nil
}

// htmlText extracts visible text from an HTML document, skipping
// script, style, noscript, and iframe subtrees
func htmlText(content string) (string, error) {
	root, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				if buf.Len() > 0 {
					buf.WriteByte(' ')
				}
				buf.WriteString(text)
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return buf.String(), nil
}

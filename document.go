package htmltree

import (
	"context"
	"time"
)

// Document wraps an extracted content forest with source metadata.
// The metadata layer is a consumer of the extraction engine: the engine
// itself produces only the forest.
type Document struct {
	ID          string       `json:"id"`
	SourceURL   string       `json:"sourceUrl,omitempty"`
	Title       string       `json:"title,omitempty"`
	ExtractedAt time.Time    `json:"extractedAt"`
	Content     []Node       `json:"content"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.ID == "" {
		return Errorf(EINVALID, "document ID required")
	}
	if d.Content == nil {
		return Errorf(EINVALID, "document content required")
	}
	return nil
}

// DocumentWriter writes documents to storage or an output stream.
type DocumentWriter interface {
	WriteDocument(ctx context.Context, doc *Document) error
}

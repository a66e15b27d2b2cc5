package mock

import (
	"github.com/fwojciec/htmltree"
	"golang.org/x/net/html"
)

var _ htmltree.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of htmltree.Extractor.
type Extractor struct {
	ExtractFn func(doc *html.Node, opts htmltree.Options) (*htmltree.Result, error)
}

// Extract invokes the mock implementation.
func (m *Extractor) Extract(doc *html.Node, opts htmltree.Options) (*htmltree.Result, error) {
	return m.ExtractFn(doc, opts)
}

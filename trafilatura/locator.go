// Package trafilatura adapts go-trafilatura as a candidate locator for
// the extraction engine.
package trafilatura

import (
	"bytes"

	"github.com/fwojciec/htmltree"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Locator implements htmltree.Locator at compile time.
var _ htmltree.Locator = (*Locator)(nil)

// Locator runs go-trafilatura over the document and offers its content
// node as the sole candidate.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Locate returns the trafilatura content region, or nil when
// trafilatura fails to find one.
func (l *Locator) Locate(doc *html.Node) []*html.Node {
	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return nil
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(&buf, opts)
	if err != nil || result.ContentNode == nil {
		return nil
	}
	return []*html.Node{result.ContentNode}
}

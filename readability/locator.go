// Package readability adapts go-readability as a candidate locator for
// the extraction engine.
package readability

import (
	"bytes"
	"strings"

	"github.com/fwojciec/htmltree"
	"github.com/fwojciec/htmltree/dom"
	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// Ensure Locator implements htmltree.Locator at compile time.
var _ htmltree.Locator = (*Locator)(nil)

// Locator runs go-readability over the document and offers its cleaned
// content region as the sole candidate. Use it when the heuristic
// locator is not wanted; the rest of the pipeline (block collection,
// dedup, sequencing, hierarchy) is unchanged.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Locate returns the readability content region, or nil when
// readability fails to find one.
func (l *Locator) Locate(doc *html.Node) []*html.Node {
	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return nil
	}

	article, err := readability.FromReader(&buf, nil)
	if err != nil || article.Content == "" {
		return nil
	}

	cleaned, err := html.Parse(strings.NewReader(article.Content))
	if err != nil {
		return nil
	}
	body := dom.Body(cleaned)
	if body == nil {
		return nil
	}
	return []*html.Node{body}
}

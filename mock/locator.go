// Package mock provides hand-written mock implementations of the
// domain interfaces for use in tests.
package mock

import (
	"github.com/fwojciec/htmltree"
	"golang.org/x/net/html"
)

var _ htmltree.Locator = (*Locator)(nil)

// Locator is a mock implementation of htmltree.Locator.
type Locator struct {
	LocateFn func(doc *html.Node) []*html.Node
}

// Locate invokes the mock implementation.
func (m *Locator) Locate(doc *html.Node) []*html.Node {
	return m.LocateFn(doc)
}

var _ htmltree.Scorer = (*Scorer)(nil)

// Scorer is a mock implementation of htmltree.Scorer.
type Scorer struct {
	ScoreFn func(n *html.Node) float64
}

// Score invokes the mock implementation.
func (m *Scorer) Score(n *html.Node) float64 {
	return m.ScoreFn(n)
}

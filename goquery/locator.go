// Package goquery implements candidate location and scoring for the
// extraction engine using CSS selectors.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/htmltree"
	"github.com/fwojciec/htmltree/dom"
	"golang.org/x/net/html"
)

// Ensure Locator implements htmltree.Locator at compile time.
var _ htmltree.Locator = (*Locator)(nil)

// Locator finds plausible main-content containers. Four strategies are
// applied and unioned in order: semantic tags, content-pattern class/id
// matches, known CMS container selectors, and text-heavy generic divs.
// Candidates are deduplicated by node identity, first seen wins.
type Locator struct {
	cfg       htmltree.Config
	contentRe *regexp.Regexp
}

// NewLocator creates a Locator with the given configuration.
func NewLocator(cfg htmltree.Config) *Locator {
	return &Locator{
		cfg:       cfg,
		contentRe: htmltree.CompilePatterns(cfg.ContentPatterns),
	}
}

// Locate returns candidate container nodes from the document body in
// first-seen order. It returns nil when the document has no body.
func (l *Locator) Locate(doc *html.Node) []*html.Node {
	body := dom.Body(doc)
	if body == nil {
		return nil
	}

	gdoc := goquery.NewDocumentFromNode(body)

	seen := make(map[*html.Node]bool)
	var candidates []*html.Node
	add := func(n *html.Node) {
		if n == nil || seen[n] {
			return
		}
		seen[n] = true
		candidates = append(candidates, n)
	}

	// Strategy 1: semantic container tags.
	gdoc.Find("article, main, section").Each(func(_ int, sel *goquery.Selection) {
		add(sel.Get(0))
	})

	// Strategy 2: class or id matching a content pattern.
	dom.WalkElements(body, func(el *html.Node) bool {
		if l.contentRe.MatchString(dom.ClassName(el)) || l.contentRe.MatchString(dom.ID(el)) {
			add(el)
		}
		return true
	})

	// Strategy 3: known CMS/framework container selectors.
	gdoc.Find(strings.Join(l.cfg.CMSSelectors, ", ")).Each(func(_ int, sel *goquery.Selection) {
		add(sel.Get(0))
	})

	// Strategy 4: generic divs with enough text and a high
	// text-to-tag ratio.
	dom.WalkElements(body, func(el *html.Node) bool {
		if dom.TagName(el) != "div" {
			return true
		}
		textLen := len(dom.Text(el))
		if textLen < l.cfg.MinCandidateTextLen {
			return true
		}
		tags := dom.CountElements(el)
		if tags == 0 {
			tags = 1
		}
		if float64(textLen)/float64(tags) > l.cfg.MinTextTagRatio {
			add(el)
		}
		return true
	})

	return candidates
}

package goquery

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/htmltree"
	"github.com/fwojciec/htmltree/dom"
	"golang.org/x/net/html"
)

// Ensure Scorer implements htmltree.Scorer at compile time.
var _ htmltree.Scorer = (*Scorer)(nil)

// Scorer ranks candidate containers with an additive heuristic: text
// volume, semantic markup, content/non-content class and id patterns,
// contained structure, and link density.
type Scorer struct {
	cfg          htmltree.Config
	contentRe    *regexp.Regexp
	nonContentRe *regexp.Regexp
}

// NewScorer creates a Scorer with the given configuration.
func NewScorer(cfg htmltree.Config) *Scorer {
	return &Scorer{
		cfg:          cfg,
		contentRe:    htmltree.CompilePatterns(cfg.ContentPatterns),
		nonContentRe: htmltree.CompilePatterns(cfg.NonContentPatterns),
	}
}

// Score returns a non-negative score for the candidate node.
func (s *Scorer) Score(n *html.Node) float64 {
	if !dom.IsElement(n) {
		return 0
	}
	w := s.cfg.Weights
	sel := goquery.NewDocumentFromNode(n).Selection

	var score float64

	text := dom.Text(n)
	textLen := len(text)

	term := float64(textLen) / w.TextLenDivisor
	if term > w.TextLenCap {
		term = w.TextLenCap
	}
	score += term

	switch dom.TagName(n) {
	case "article", "main", "section":
		score += w.SemanticTag
	}

	class, id := dom.ClassName(n), dom.ID(n)
	if s.contentRe.MatchString(class) {
		score += w.ContentClass
	}
	if s.contentRe.MatchString(id) {
		score += w.ContentID
	}
	if s.nonContentRe.MatchString(class) {
		score -= w.NonContentPenalty
	}
	if s.nonContentRe.MatchString(id) {
		score -= w.NonContentPenalty
	}

	score += float64(sel.Find("h1, h2, h3, h4, h5, h6").Length()) * w.HeadingBonus

	paragraphs := sel.Find("p")
	if count := paragraphs.Length(); count > 0 {
		total := 0
		paragraphs.Each(func(_ int, p *goquery.Selection) {
			total += len(dom.Text(p.Get(0)))
		})
		if float64(total)/float64(count) > w.MinAvgParagraphLen {
			score += w.ParagraphBonus
		}
		countTerm := float64(count) / 2
		if countTerm > w.ParagraphCountCap {
			countTerm = w.ParagraphCountCap
		}
		score += countTerm
	}

	score += float64(sel.Find("ul, ol, blockquote, pre, code, table").Length()) * w.StructureBonus

	if textLen > 0 && float64(dom.LinkTextLen(n)) > float64(textLen)/2 {
		score -= w.LinkDensityPenalty
	}

	if score < 0 {
		return 0
	}
	return score
}

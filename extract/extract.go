// Package extract implements the content structure extraction engine:
// candidate ranking, block collection with boilerplate filtering,
// fingerprint deduplication, document-order sequencing, hierarchy
// assembly, and block formatting.
//
// The engine is synchronous and holds no state between calls; each
// invocation owns its candidate list and fingerprint set. Callers that
// want concurrency dispatch separate documents to separate goroutines.
package extract

import (
	"sort"

	"github.com/fwojciec/htmltree"
	"github.com/fwojciec/htmltree/dom"
	"golang.org/x/net/html"
)

// Ensure Engine implements htmltree.Extractor at compile time.
var _ htmltree.Extractor = (*Engine)(nil)

// Engine runs the extraction pipeline over a parsed document.
type Engine struct {
	locator   htmltree.Locator
	scorer    htmltree.Scorer
	cfg       htmltree.Config
	collector *collector
}

// New creates an Engine with the given candidate locator and scorer.
func New(locator htmltree.Locator, scorer htmltree.Scorer, cfg htmltree.Config) *Engine {
	return &Engine{
		locator:   locator,
		scorer:    scorer,
		cfg:       cfg,
		collector: newCollector(cfg),
	}
}

// Extract runs the full pipeline: locate candidates, rank them, collect
// blocks until the sufficiency threshold is met, fall back to the
// whole-document aggressive scan when it is not, then sequence the
// surviving blocks and assemble the section forest.
//
// The only fatal condition is a document with no body element; every
// other failure is per-block and recorded as a diagnostic.
func (e *Engine) Extract(doc *html.Node, opts htmltree.Options) (*htmltree.Result, error) {
	if doc == nil {
		return nil, htmltree.Errorf(htmltree.EUNPROCESSABLE, "nil document")
	}
	body := dom.Body(doc)
	if body == nil {
		return nil, htmltree.Errorf(htmltree.EUNPROCESSABLE, "document has no body element")
	}

	ranked := e.rank(e.locator.Locate(doc))
	if len(ranked) == 0 {
		// Minimal pages offer nothing for the locator to find. The body
		// is the last-resort candidate; the direct-child pass still
		// applies all the usual block filters.
		ranked = []*html.Node{body}
	}

	ctx := newExtractionContext(e.cfg)
	collected := make(map[*html.Node]bool)
	var blocks []block

	admit := func(b block) {
		if collected[b.node] {
			return
		}
		if !ctx.admit(b) {
			return
		}
		collected[b.node] = true
		blocks = append(blocks, b)
	}

	for _, candidate := range ranked {
		for _, b := range e.collector.collect(candidate) {
			admit(b)
		}
		if ctx.sufficient() {
			break
		}
	}

	var diags []htmltree.Diagnostic
	aggressive := false
	if !ctx.sufficient() {
		aggressive = true
		diags = append(diags, htmltree.Diagnostic{
			Stage:  htmltree.StageAggressive,
			Detail: "candidate extraction below sufficiency threshold; scanning whole document",
		})
		for _, b := range e.collector.aggressive(body) {
			admit(b)
		}
	}

	blocks = sequence(blocks)

	f := &formatter{cfg: e.cfg, opts: opts}
	nodes, formatDiags := buildForest(blocks, f)
	diags = append(diags, formatDiags...)

	return &htmltree.Result{
		Nodes:       nodes,
		Diagnostics: diags,
		Aggressive:  aggressive,
	}, nil
}

// rank sorts candidates by descending score. The sort is stable, so
// equal scores keep the locator's first-seen discovery order.
func (e *Engine) rank(candidates []*html.Node) []*html.Node {
	if len(candidates) == 0 {
		return nil
	}
	scores := make(map[*html.Node]float64, len(candidates))
	for _, c := range candidates {
		scores[c] = e.scorer.Score(c)
	}
	ranked := make([]*html.Node, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})
	return ranked
}

package htmltree

import (
	"context"

	"golang.org/x/net/html"
)

// Options controls extraction behavior for a single call.
type Options struct {
	// PreserveStyles keeps inline HTML markup (em, strong, code spans)
	// in extracted text instead of flattening it to plain text.
	PreserveStyles bool
}

// DiagnosticStage identifies the pipeline stage that produced a
// diagnostic.
type DiagnosticStage string

// Diagnostic stages.
const (
	StageFormat     DiagnosticStage = "format"
	StageAggressive DiagnosticStage = "aggressive"
)

// Diagnostic records a non-fatal event during extraction, such as a
// block that failed formatting or the activation of the aggressive
// fallback. Diagnostics never abort an extraction.
type Diagnostic struct {
	Stage  DiagnosticStage `json:"stage"`
	Tag    string          `json:"tag,omitempty"`
	Detail string          `json:"detail"`
}

// Result is the outcome of a single extraction call.
type Result struct {
	// Nodes is the ordered forest of extracted content.
	Nodes []Node `json:"nodes"`

	// Diagnostics lists non-fatal events recorded during extraction.
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`

	// Aggressive reports whether the whole-document fallback scan ran
	// because candidate-based extraction did not reach sufficiency.
	Aggressive bool `json:"aggressive,omitempty"`
}

// Extractor converts a parsed HTML document into a content forest.
// Implementations are synchronous and hold no state between calls; the
// caller owns cancellation and worker dispatch.
type Extractor interface {
	// Extract processes a parsed document and returns the content
	// forest. It returns EUNPROCESSABLE when the document has no body
	// element; individual malformed blocks are dropped and recorded as
	// diagnostics instead of failing the call.
	Extract(doc *html.Node, opts Options) (*Result, error)
}

// Locator finds plausible main-content containers in a parsed document.
// The returned nodes are deduplicated by identity and ordered
// first-seen-wins; they reference the input tree rather than copies.
type Locator interface {
	Locate(doc *html.Node) []*html.Node
}

// Scorer ranks a candidate container. Higher scores indicate a higher
// likelihood of holding the page's main content. Scores are never
// negative.
type Scorer interface {
	Score(n *html.Node) float64
}

// Fetcher retrieves raw HTML from a URL. Retry, rate limiting, and
// caching belong to implementations, never to the extraction engine.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
	Close() error
}

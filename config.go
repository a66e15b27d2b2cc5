package htmltree

import (
	"regexp"
	"strings"
)

// Config externalizes the heuristic constants of the extraction engine.
// The algorithm is fixed; the thresholds are tunable and
// test-overridable. Use DefaultConfig for the calibrated defaults.
type Config struct {
	// SufficientTextLen is the accumulated unique block text length
	// (in characters) above which candidate-based extraction stops.
	SufficientTextLen int

	// SufficientBlocks is the accumulated unique block count above
	// which candidate-based extraction stops. Both sufficiency
	// conditions must hold.
	SufficientBlocks int

	// MinCandidateTextLen is the minimum visible text length for a
	// generic div to qualify as a candidate container.
	MinCandidateTextLen int

	// MinTextTagRatio is the minimum ratio of visible text length to
	// descendant element count for a generic div candidate.
	MinTextTagRatio float64

	// FingerprintEdgeLen is how many characters from the head and tail
	// of a block's flattened text enter its fingerprint.
	FingerprintEdgeLen int

	// MinFingerprintTextLen is the minimum flattened text length for a
	// block to receive a fingerprint. Shorter blocks are never
	// deduplicated and never count toward sufficiency.
	MinFingerprintTextLen int

	// MinSubtreeBlockTextLen filters tiny non-heading elements out of
	// the whole-subtree second pass within a candidate.
	MinSubtreeBlockTextLen int

	// Aggressive-mode minimums.
	MinAggressiveHeadingLen   int
	MinAggressiveParagraphLen int
	MinAggressiveCodeLen      int

	// Scoring weights.
	Weights ScoreWeights

	// ContentPatterns are class/id tokens that suggest main content.
	ContentPatterns []string

	// NonContentPatterns are class/id tokens that suggest boilerplate
	// (navigation, sidebars, ads, comments).
	NonContentPatterns []string

	// CMSSelectors is a fixed allow-list of CSS selectors for known
	// CMS and framework content containers.
	CMSSelectors []string
}

// ScoreWeights holds the additive terms of the content scorer.
type ScoreWeights struct {
	TextLenDivisor    float64 // text length contributes text_len/divisor...
	TextLenCap        float64 // ...capped at this value
	SemanticTag       float64 // bonus for article/main/section tags
	ContentClass      float64 // bonus for a content-pattern class match
	ContentID         float64 // bonus for a content-pattern id match
	NonContentPenalty float64 // penalty per non-content pattern match
	HeadingBonus      float64 // per contained heading
	ParagraphBonus    float64 // when average paragraph length exceeds MinAvgParagraphLen
	ParagraphCountCap float64 // cap on the paragraph_count/2 term
	MinAvgParagraphLen float64
	StructureBonus     float64 // per contained list/blockquote/code/table
	LinkDensityPenalty float64 // when link text exceeds half of total text
}

// DefaultConfig returns the calibrated default configuration.
func DefaultConfig() Config {
	return Config{
		SufficientTextLen:      500,
		SufficientBlocks:       5,
		MinCandidateTextLen:    200,
		MinTextTagRatio:        10,
		FingerprintEdgeLen:     20,
		MinFingerprintTextLen:  15,
		MinSubtreeBlockTextLen: 30,

		MinAggressiveHeadingLen:   10,
		MinAggressiveParagraphLen: 20,
		MinAggressiveCodeLen:      10,

		Weights: ScoreWeights{
			TextLenDivisor:     100,
			TextLenCap:         10,
			SemanticTag:        5,
			ContentClass:       3,
			ContentID:          3,
			NonContentPenalty:  5,
			HeadingBonus:       2,
			ParagraphBonus:     3,
			ParagraphCountCap:  5,
			MinAvgParagraphLen: 40,
			StructureBonus:     1.5,
			LinkDensityPenalty: 4,
		},

		ContentPatterns: []string{
			"content", "main", "article", "post", "entry", "prose",
			"markdown", "body", "text", "blog", "story", "docs",
			"documentation",
		},

		NonContentPatterns: []string{
			"nav", "navigation", "navbar", "menu", "sidebar", "aside",
			"footer", "header", "banner", "breadcrumb", "breadcrumbs",
			"pagination", "pager", "ad", "ads", "advert", "advertisement",
			"promo", "sponsor", "social", "share", "sharing", "comment",
			"comments", "widget", "related", "recommended", "popup",
			"modal", "cookie", "consent", "newsletter", "subscribe",
			"skip", "toolbar", "dropdown",
		},

		CMSSelectors: []string{
			"div.entry-content",
			"div.post-content",
			"div.post-body",
			"div.article-content",
			"div.article-body",
			"div.content-area",
			"div.markdown-body",
			"div.mw-parser-output",
			"div.theme-doc-markdown",
			"div.theme-default-content",
			"div.md-content",
			"div.rst-content",
			"div.td-content",
			"main.main-content",
		},
	}
}

// CompilePatterns builds a case-insensitive, word-boundary-aware
// regular expression matching any of the given tokens. Class values
// such as "main-content" match the "content" token because hyphens and
// underscores are treated as boundaries.
func CompilePatterns(patterns []string) *regexp.Regexp {
	quoted := make([]string, 0, len(patterns))
	for _, p := range patterns {
		quoted = append(quoted, regexp.QuoteMeta(p))
	}
	return regexp.MustCompile(`(?i)(^|[^a-z0-9])(` + strings.Join(quoted, "|") + `)([^a-z0-9]|$)`)
}

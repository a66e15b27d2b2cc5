package extract

import (
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/htmltree"
	"github.com/fwojciec/htmltree/dom"
)

// fingerprint computes a dedup key from a block's tag name and the
// trimmed head and tail of its flattened text. The boolean is false
// when the text is too short to fingerprint; such blocks are never
// deduplicated and never count toward sufficiency.
func fingerprint(tag, text string, edgeLen, minLen int) (uint64, bool) {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) < minLen {
		return 0, false
	}

	edge := min(edgeLen, len(runes))
	head := strings.TrimSpace(string(runes[:edge]))
	tail := strings.TrimSpace(string(runes[len(runes)-edge:]))

	h := xxhash.New()
	_, _ = h.WriteString(tag)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(head)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(tail)
	return h.Sum64(), true
}

// extractionContext threads the per-call dedup state through the
// pipeline: the fingerprint set plus the accumulated unique text length
// and block count used by the sufficiency check. One context exists per
// extraction call; nothing is shared between calls.
type extractionContext struct {
	cfg     htmltree.Config
	seen    map[uint64]struct{}
	textLen int
	blocks  int
}

func newExtractionContext(cfg htmltree.Config) *extractionContext {
	return &extractionContext{
		cfg:  cfg,
		seen: make(map[uint64]struct{}),
	}
}

// admit reports whether the block survives deduplication. Admitted
// fingerprinted blocks update the sufficiency counters; blocks too
// short to fingerprint are always admitted and never counted.
func (ctx *extractionContext) admit(b block) bool {
	text := dom.Text(b.node)
	fp, ok := fingerprint(dom.TagName(b.node), text, ctx.cfg.FingerprintEdgeLen, ctx.cfg.MinFingerprintTextLen)
	if !ok {
		return true
	}
	if _, dup := ctx.seen[fp]; dup {
		return false
	}
	ctx.seen[fp] = struct{}{}
	ctx.textLen += len(text)
	ctx.blocks++
	return true
}

// sufficient reports whether enough unique content has accumulated to
// stop candidate-based extraction.
func (ctx *extractionContext) sufficient() bool {
	return ctx.textLen > ctx.cfg.SufficientTextLen && ctx.blocks > ctx.cfg.SufficientBlocks
}

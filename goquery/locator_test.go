package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/htmltree"
	"github.com/fwojciec/htmltree/dom"
	gq "github.com/fwojciec/htmltree/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var _ htmltree.Locator = (*gq.Locator)(nil)

func parse(t *testing.T, raw string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(raw))
	require.NoError(t, err)
	return doc
}

func TestLocator_Locate(t *testing.T) {
	t.Parallel()

	locator := gq.NewLocator(htmltree.DefaultConfig())

	t.Run("finds semantic container tags", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<!DOCTYPE html>
<html><body>
<nav>menu</nav>
<article><p>Article text.</p></article>
<main><p>Main text.</p></main>
</body></html>`)

		candidates := locator.Locate(doc)

		tags := make([]string, 0, len(candidates))
		for _, c := range candidates {
			tags = append(tags, dom.TagName(c))
		}
		assert.Contains(t, tags, "article")
		assert.Contains(t, tags, "main")
		assert.NotContains(t, tags, "nav")
	})

	t.Run("finds content-pattern class matches", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<!DOCTYPE html>
<html><body>
<div class="main-content"><p>Body text.</p></div>
<div class="sidebar"><p>Links.</p></div>
</body></html>`)

		candidates := locator.Locate(doc)

		require.NotEmpty(t, candidates)
		var classes []string
		for _, c := range candidates {
			classes = append(classes, dom.ClassName(c))
		}
		assert.Contains(t, classes, "main-content")
		assert.NotContains(t, classes, "sidebar")
	})

	t.Run("finds known CMS containers", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<!DOCTYPE html>
<html><body>
<div class="mw-parser-output"><p>Wiki text.</p></div>
</body></html>`)

		candidates := locator.Locate(doc)

		require.NotEmpty(t, candidates)
		assert.Equal(t, "mw-parser-output", dom.ClassName(candidates[0]))
	})

	t.Run("finds text-heavy generic divs", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("Plenty of readable text here. ", 10)
		doc := parse(t, `<!DOCTYPE html>
<html><body><div class="x9z"><p>`+long+`</p></div></body></html>`)

		candidates := locator.Locate(doc)

		require.NotEmpty(t, candidates)
		assert.Equal(t, "x9z", dom.ClassName(candidates[0]))
	})

	t.Run("deduplicates nodes matched by multiple strategies", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<!DOCTYPE html>
<html><body>
<article class="post-content"><p>Text matched twice.</p></article>
</body></html>`)

		candidates := locator.Locate(doc)

		seen := make(map[*html.Node]int)
		for _, c := range candidates {
			seen[c]++
		}
		for _, count := range seen {
			assert.Equal(t, 1, count)
		}
	})

	t.Run("returns nil for a document without a body", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, locator.Locate(nil))
	})
}

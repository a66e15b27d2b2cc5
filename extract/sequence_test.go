package extract

import (
	"strings"
	"testing"

	"github.com/fwojciec/htmltree/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestComparePaths(t *testing.T) {
	t.Parallel()

	t.Run("differs at the shallowest divergent level", func(t *testing.T) {
		t.Parallel()

		assert.Negative(t, comparePaths([]int{0, 5}, []int{1, 0}))
		assert.Positive(t, comparePaths([]int{2}, []int{1, 9, 9}))
	})

	t.Run("ancestors precede descendants", func(t *testing.T) {
		t.Parallel()

		assert.Negative(t, comparePaths([]int{1, 2}, []int{1, 2, 0}))
		assert.Positive(t, comparePaths([]int{1, 2, 0}, []int{1, 2}))
	})

	t.Run("equal paths compare equal", func(t *testing.T) {
		t.Parallel()

		assert.Zero(t, comparePaths([]int{3, 1}, []int{3, 1}))
	})
}

func TestSequence(t *testing.T) {
	t.Parallel()

	doc, err := html.Parse(strings.NewReader(
		`<div><p id="a">first</p><p id="b">second</p><div><p id="c">third</p></div></div>`))
	require.NoError(t, err)

	byID := make(map[string]*html.Node)
	dom.WalkElements(doc, func(el *html.Node) bool {
		if id := dom.ID(el); id != "" {
			byID[id] = el
		}
		return true
	})
	require.Len(t, byID, 3)

	// Deliberately scrambled relative to document order.
	blocks := []block{
		{kind: kindParagraph, node: byID["c"]},
		{kind: kindParagraph, node: byID["a"]},
		{kind: kindParagraph, node: byID["b"]},
	}

	sorted := sequence(blocks)

	var ids []string
	for _, b := range sorted {
		ids = append(ids, dom.ID(b.node))
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

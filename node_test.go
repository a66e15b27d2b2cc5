package htmltree_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/htmltree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("paragraph carries a type discriminator", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(&htmltree.Paragraph{Text: "hello"})

		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"paragraph","text":"hello"}`, string(data))
	})

	t.Run("section serializes content and children recursively", func(t *testing.T) {
		t.Parallel()

		section := &htmltree.Section{
			Level:   1,
			Title:   "Intro",
			Content: []htmltree.Node{&htmltree.Paragraph{Text: "welcome"}},
			Children: []*htmltree.Section{
				{Level: 2, Title: "Details"},
			},
		}

		data, err := json.Marshal(section)

		require.NoError(t, err)
		assert.JSONEq(t, `{
			"type": "section",
			"level": 1,
			"title": "Intro",
			"content": [{"type":"paragraph","text":"welcome"}],
			"children": [{"type":"section","level":2,"title":"Details"}]
		}`, string(data))
	})

	t.Run("list serializes nested lists on items", func(t *testing.T) {
		t.Parallel()

		list := &htmltree.List{
			Ordered: true,
			Items: []*htmltree.ListItem{
				{
					Text: "Item1",
					Nested: &htmltree.List{
						Items: []*htmltree.ListItem{{Text: "Sub1"}},
					},
				},
			},
		}

		data, err := json.Marshal(list)

		require.NoError(t, err)
		assert.JSONEq(t, `{
			"type": "list",
			"ordered": true,
			"items": [{
				"text": "Item1",
				"nested": {"type":"list","ordered":false,"items":[{"text":"Sub1"}]}
			}]
		}`, string(data))
	})

	t.Run("code block omits empty language and caption", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(&htmltree.CodeBlock{Text: "x := 1"})

		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"code","text":"x := 1"}`, string(data))
	})

	t.Run("table cell omits trivial spans", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(&htmltree.TableCell{Text: "a"})

		require.NoError(t, err)
		assert.JSONEq(t, `{"text":"a"}`, string(data))
	})
}

func TestWalk(t *testing.T) {
	t.Parallel()

	t.Run("visits section content and children", func(t *testing.T) {
		t.Parallel()

		forest := []htmltree.Node{
			&htmltree.Section{
				Level:   1,
				Title:   "A",
				Content: []htmltree.Node{&htmltree.Paragraph{Text: "p1"}},
				Children: []*htmltree.Section{
					{Level: 2, Title: "B", Content: []htmltree.Node{&htmltree.Paragraph{Text: "p2"}}},
				},
			},
		}

		var visited int
		htmltree.Walk(forest, func(htmltree.Node) bool {
			visited++
			return true
		})

		assert.Equal(t, 4, visited)
	})

	t.Run("stops early when the callback returns false", func(t *testing.T) {
		t.Parallel()

		forest := []htmltree.Node{
			&htmltree.Paragraph{Text: "one"},
			&htmltree.Paragraph{Text: "two"},
		}

		var visited int
		htmltree.Walk(forest, func(htmltree.Node) bool {
			visited++
			return false
		})

		assert.Equal(t, 1, visited)
	})
}

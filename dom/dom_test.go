package dom_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/htmltree/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func parse(t *testing.T, raw string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(raw))
	require.NoError(t, err)
	return doc
}

func TestText(t *testing.T) {
	t.Parallel()

	t.Run("collapses whitespace runs", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<p>Hello
			  world  and <em>more</em></p>`)

		assert.Equal(t, "Hello world and more", dom.Text(dom.Body(doc)))
	})

	t.Run("excludes script and style text", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<div><script>var x = 1;</script><style>p{}</style>visible</div>`)

		assert.Equal(t, "visible", dom.Text(dom.Body(doc)))
	})
}

func TestRawText(t *testing.T) {
	t.Parallel()

	t.Run("preserves whitespace", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, "<pre>  indented\n    more</pre>")
		pre := dom.FindFirst(doc, "pre")

		assert.Equal(t, "  indented\n    more", dom.RawText(pre))
	})

	t.Run("converts br to newline", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, "<pre>line one<br>line two</pre>")
		pre := dom.FindFirst(doc, "pre")

		assert.Equal(t, "line one\nline two", dom.RawText(pre))
	})
}

func TestAttr(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<div id="main" class="content wrapper">x</div>`)
	div := dom.FindFirst(doc, "div")

	assert.Equal(t, "main", dom.ID(div))
	assert.Equal(t, "content wrapper", dom.ClassName(div))
	assert.Empty(t, dom.Attr(div, "data-role"))
}

func TestHasClassToken(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<span class="sr-only Visually-Hidden">x</span>`)
	span := dom.FindFirst(doc, "span")

	assert.True(t, dom.HasClassToken(span, "sr-only"))
	assert.True(t, dom.HasClassToken(span, "visually-hidden"))
	assert.False(t, dom.HasClassToken(span, "sr"))
}

func TestFindFirst(t *testing.T) {
	t.Parallel()

	t.Run("returns the first match in pre-order", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<div><p id="first">a</p><p id="second">b</p></div>`)

		p := dom.FindFirst(doc, "p")
		require.NotNil(t, p)
		assert.Equal(t, "first", dom.ID(p))
	})

	t.Run("returns nil when absent", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<div>plain</div>`)

		assert.Nil(t, dom.FindFirst(doc, "table"))
	})
}

func TestWalkElements(t *testing.T) {
	t.Parallel()

	t.Run("callback controls descent", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<div><nav><a href="#">skip me</a></nav><p>keep</p></div>`)

		var tags []string
		dom.WalkElements(dom.Body(doc), func(el *html.Node) bool {
			tags = append(tags, dom.TagName(el))
			return dom.TagName(el) != "nav"
		})

		assert.Equal(t, []string{"body", "div", "nav", "p"}, tags)
	})
}

func TestCountElements(t *testing.T) {
	t.Parallel()

	t.Run("excludes the root element", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<div><p>a</p><p>b <em>c</em></p></div>`)
		div := dom.FindFirst(doc, "div")

		assert.Equal(t, 3, dom.CountElements(div))
	})

	t.Run("empty element has zero descendants", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<div></div>`)
		div := dom.FindFirst(doc, "div")

		assert.Equal(t, 0, dom.CountElements(div))
	})
}

func TestLinkTextLen(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<div><a href="#">12345</a> text <a href="#">678</a></div>`)
	div := dom.FindFirst(doc, "div")

	assert.Equal(t, 8, dom.LinkTextLen(div))
}

func TestElementChildren(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<ul> <li>a</li> text <li>b</li> </ul>`)
	ul := dom.FindFirst(doc, "ul")

	children := dom.ElementChildren(ul)
	require.Len(t, children, 2)
	assert.Equal(t, "li", dom.TagName(children[0]))
	assert.Equal(t, "li", dom.TagName(children[1]))
}

func TestInnerHTML(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<p>keep <strong>bold</strong> text</p>`)
	p := dom.FindFirst(doc, "p")

	got, err := dom.InnerHTML(p)
	require.NoError(t, err)
	assert.Equal(t, "keep <strong>bold</strong> text", got)
}

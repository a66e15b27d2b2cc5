// Package dom provides traversal and text helpers over parsed
// golang.org/x/net/html node trees. The extraction engine treats the
// parsed tree as immutable; every helper here is read-only.
package dom

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// invisible tags whose text never counts as visible content.
var invisibleTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"iframe":   true,
	"svg":      true,
	"head":     true,
}

// IsElement reports whether n is an element node.
func IsElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

// TagName returns the lowercase tag name of an element node, or the
// empty string for any other node type.
func TagName(n *html.Node) string {
	if !IsElement(n) {
		return ""
	}
	return strings.ToLower(n.Data)
}

// Attr returns the value of the named attribute, or the empty string
// when the attribute is absent.
func Attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

// ID returns the element's id attribute.
func ID(n *html.Node) string { return Attr(n, "id") }

// ClassName returns the element's class attribute.
func ClassName(n *html.Node) string { return Attr(n, "class") }

// HasClassToken reports whether the element's class attribute contains
// the given token (exact, case-insensitive match against one
// whitespace-separated token).
func HasClassToken(n *html.Node, token string) bool {
	for _, t := range strings.Fields(ClassName(n)) {
		if strings.EqualFold(t, token) {
			return true
		}
	}
	return false
}

// Text returns the flattened visible text of the subtree rooted at n,
// with all whitespace runs collapsed to single spaces and the result
// trimmed. Text inside script, style, and similar invisible elements is
// excluded.
func Text(n *html.Node) string {
	var b strings.Builder
	collectText(&b, n)
	return strings.Join(strings.Fields(b.String()), " ")
}

func collectText(b *strings.Builder, n *html.Node) {
	if n == nil {
		return
	}
	if n.Type == html.ElementNode && invisibleTags[TagName(n)] {
		return
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteString(" ")
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
}

// RawText returns the text of the subtree with original whitespace
// preserved. <br> elements become newlines. Used for preformatted code
// where indentation is significant.
func RawText(n *html.Node) string {
	var b strings.Builder
	collectRawText(&b, n)
	return b.String()
}

func collectRawText(b *strings.Builder, n *html.Node) {
	if n == nil {
		return
	}
	if n.Type == html.ElementNode {
		if invisibleTags[TagName(n)] {
			return
		}
		if TagName(n) == "br" {
			b.WriteString("\n")
			return
		}
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectRawText(b, c)
	}
}

// InnerHTML renders the children of n as an HTML fragment.
func InnerHTML(n *html.Node) (string, error) {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// Body returns the document's body element, or nil when the tree has
// none.
func Body(doc *html.Node) *html.Node {
	return FindFirst(doc, "body")
}

// FindFirst returns the first element with the given tag name in
// pre-order, or nil.
func FindFirst(n *html.Node, tag string) *html.Node {
	var found *html.Node
	WalkElements(n, func(el *html.Node) bool {
		if found != nil {
			return false
		}
		if TagName(el) == tag {
			found = el
			return false
		}
		return true
	})
	return found
}

// WalkElements visits every element in the subtree rooted at n in
// pre-order. The callback's return value controls whether the walk
// descends into the element's children.
func WalkElements(n *html.Node, fn func(*html.Node) bool) {
	if n == nil {
		return
	}
	if n.Type == html.ElementNode {
		if !fn(n) {
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		WalkElements(c, fn)
	}
}

// ElementChildren returns the direct element children of n.
func ElementChildren(n *html.Node) []*html.Node {
	var children []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			children = append(children, c)
		}
	}
	return children
}

// CountElements returns the number of element nodes in the subtree,
// excluding n itself.
func CountElements(n *html.Node) int {
	count := 0
	WalkElements(n, func(*html.Node) bool {
		count++
		return true
	})
	if IsElement(n) && count > 0 {
		count--
	}
	return count
}

// LinkTextLen returns the total visible text length inside anchor
// elements of the subtree.
func LinkTextLen(n *html.Node) int {
	total := 0
	WalkElements(n, func(el *html.Node) bool {
		if TagName(el) == "a" {
			total += len(Text(el))
			return false
		}
		return true
	})
	return total
}

package extract

import (
	"strings"

	"github.com/fwojciec/htmltree"
	"github.com/fwojciec/htmltree/dom"
	"golang.org/x/net/html"
)

// formatter converts raw blocks into typed content nodes. A block that
// fails formatting is dropped with a diagnostic; formatting never
// aborts an extraction.
type formatter struct {
	cfg  htmltree.Config
	opts htmltree.Options
}

// format dispatches on the block's kind. A nil node with a nil error
// means the block was dropped intentionally (empty paragraph, layout
// table, list with no items).
func (f *formatter) format(b block) (htmltree.Node, error) {
	switch b.kind {
	case kindHeading:
		return f.formatHeading(b)
	case kindParagraph:
		return f.formatParagraph(b)
	case kindList:
		return f.formatList(b.node)
	case kindBlockquote:
		return f.formatBlockquote(b)
	case kindCode:
		return f.formatCode(b)
	case kindTable:
		return f.formatTable(b)
	}
	return nil, htmltree.Errorf(htmltree.EINTERNAL, "unknown block kind %d", int(b.kind))
}

// text returns the block's text content: flattened plain text by
// default, or the inline HTML of its children when styles are
// preserved.
func (f *formatter) text(n *html.Node) (string, error) {
	if !f.opts.PreserveStyles {
		return dom.Text(n), nil
	}
	inner, err := dom.InnerHTML(n)
	if err != nil {
		return "", htmltree.Errorf(htmltree.EUNPROCESSABLE, "render inline content: %v", err)
	}
	return strings.TrimSpace(inner), nil
}

func (f *formatter) formatHeading(b block) (htmltree.Node, error) {
	text, err := f.text(b.node)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	return &htmltree.Heading{Level: b.level, Text: text}, nil
}

func (f *formatter) formatParagraph(b block) (htmltree.Node, error) {
	text, err := f.text(b.node)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	return &htmltree.Paragraph{Text: text}, nil
}

func (f *formatter) formatBlockquote(b block) (htmltree.Node, error) {
	// Paragraph children become separate lines; a bare blockquote is a
	// single line.
	var lines []string
	for _, child := range dom.ElementChildren(b.node) {
		if dom.TagName(child) == "p" {
			if t := dom.Text(child); t != "" {
				lines = append(lines, t)
			}
		}
	}
	if len(lines) == 0 {
		if t := dom.Text(b.node); t != "" {
			lines = []string{t}
		}
	}
	if len(lines) == 0 {
		return nil, nil
	}
	if !f.opts.PreserveStyles {
		for i, line := range lines {
			lines[i] = "> " + line
		}
	}
	return &htmltree.Blockquote{Text: strings.Join(lines, "\n")}, nil
}

// formatList enumerates the list's direct li children. An item that
// contains a nested ul/ol gets that list attached recursively, and the
// nested list's text is excluded from the item's own text.
func (f *formatter) formatList(n *html.Node) (*htmltree.List, error) {
	list := &htmltree.List{Ordered: dom.TagName(n) == "ol"}

	for _, child := range dom.ElementChildren(n) {
		if dom.TagName(child) != "li" {
			continue
		}
		item := &htmltree.ListItem{}
		nested := findNestedList(child)
		if nested != nil {
			nestedList, err := f.formatList(nested)
			if err != nil {
				return nil, err
			}
			item.Nested = nestedList
		}
		item.Text = textExcluding(child, nested)
		if item.Text == "" && item.Nested == nil {
			continue
		}
		list.Items = append(list.Items, item)
	}

	if len(list.Items) == 0 {
		return nil, nil
	}
	return list, nil
}

// findNestedList returns the first ul/ol descendant of the item that is
// not buried inside a deeper list item.
func findNestedList(li *html.Node) *html.Node {
	var found *html.Node
	dom.WalkElements(li, func(el *html.Node) bool {
		if el == li {
			return true
		}
		if found != nil {
			return false
		}
		switch dom.TagName(el) {
		case "ul", "ol":
			found = el
			return false
		case "li":
			return false
		}
		return true
	})
	return found
}

// textExcluding flattens the visible text of n while skipping the
// excluded subtree.
func textExcluding(n, excluded *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur == nil || cur == excluded {
			return
		}
		switch cur.Type {
		case html.TextNode:
			b.WriteString(cur.Data)
			b.WriteString(" ")
			return
		case html.ElementNode:
			if ignorableTags[dom.TagName(cur)] {
				return
			}
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

package extract

import (
	"github.com/fwojciec/htmltree/dom"
	"golang.org/x/net/html"
)

// aggressive scans the entire document for content blocks. It runs when
// candidate-based extraction fails to reach the sufficiency threshold.
// The non-content filter applies to the individual block elements only,
// not to their containers, so content buried inside a badly-classed
// wrapper is still recovered.
func (c *collector) aggressive(body *html.Node) []block {
	var all []*html.Node
	dom.WalkElements(body, func(el *html.Node) bool {
		if ignorableTags[dom.TagName(el)] {
			return false
		}
		all = append(all, el)
		return true
	})

	seen := make(map[*html.Node]bool)
	var blocks []block
	add := func(b block) {
		if seen[b.node] {
			return
		}
		seen[b.node] = true
		blocks = append(blocks, b)
	}

	// Headings with their trailing sibling content up to the next
	// heading.
	for _, el := range all {
		level := headingLevel(el)
		if level == 0 {
			continue
		}
		if len(dom.Text(el)) < c.cfg.MinAggressiveHeadingLen || c.nonContent(el) {
			continue
		}
		add(block{kind: kindHeading, level: level, node: el})
		for sib := el.NextSibling; sib != nil; sib = sib.NextSibling {
			if !dom.IsElement(sib) {
				continue
			}
			if headingLevel(sib) > 0 {
				break
			}
			if ignorableTags[dom.TagName(sib)] || c.nonContent(sib) {
				continue
			}
			if b, ok := classify(sib); ok {
				add(b)
			}
		}
	}

	// Standalone paragraphs.
	for _, el := range all {
		if dom.TagName(el) != "p" || c.nonContent(el) {
			continue
		}
		if len(dom.Text(el)) < c.cfg.MinAggressiveParagraphLen {
			continue
		}
		if hasAncestorTag(el, body, "li", "blockquote", "table", "figure") {
			continue
		}
		add(block{kind: kindParagraph, node: el})
	}

	// Lists with at least one item. Nested lists are reached through
	// their parent list's items, never collected on their own.
	for _, el := range all {
		tag := dom.TagName(el)
		if (tag != "ul" && tag != "ol") || c.nonContent(el) {
			continue
		}
		if dom.FindFirst(el, "li") == nil {
			continue
		}
		if hasAncestorTag(el, body, "ul", "ol", "nav", "table") {
			continue
		}
		add(block{kind: kindList, node: el})
	}

	// Code containers.
	for _, el := range all {
		tag := dom.TagName(el)
		if tag != "pre" && tag != "figure" {
			continue
		}
		b, ok := classify(el)
		if !ok || b.kind != kindCode || c.nonContent(el) {
			continue
		}
		if len(dom.Text(el)) < c.cfg.MinAggressiveCodeLen {
			continue
		}
		if tag == "pre" && hasAncestorTag(el, body, "figure") {
			continue
		}
		add(b)
	}

	// Data tables.
	for _, el := range all {
		if dom.TagName(el) != "table" || c.nonContent(el) {
			continue
		}
		if !isDataTable(el) {
			continue
		}
		if hasAncestorTag(el, body, "table", "figure") {
			continue
		}
		add(block{kind: kindTable, node: el})
	}

	return blocks
}

// hasAncestorTag reports whether any ancestor of n, up to and excluding
// root, has one of the given tag names.
func hasAncestorTag(n, root *html.Node, tags ...string) bool {
	for p := n.Parent; p != nil && p != root; p = p.Parent {
		tag := dom.TagName(p)
		for _, t := range tags {
			if tag == t {
				return true
			}
		}
	}
	return false
}

package extract

import (
	"regexp"

	"github.com/fwojciec/htmltree"
	"github.com/fwojciec/htmltree/dom"
	"golang.org/x/net/html"
)

// blockKind is the closed set of block-level content kinds. It is
// determined once during collection so that formatting is a total
// switch rather than repeated tag inspection.
type blockKind int

const (
	kindHeading blockKind = iota
	kindParagraph
	kindList
	kindBlockquote
	kindCode
	kindTable
)

// String returns the kind name for diagnostics.
func (k blockKind) String() string {
	switch k {
	case kindHeading:
		return "heading"
	case kindParagraph:
		return "paragraph"
	case kindList:
		return "list"
	case kindBlockquote:
		return "blockquote"
	case kindCode:
		return "code"
	case kindTable:
		return "table"
	}
	return "unknown"
}

// block is a reference to a block-level DOM node tagged with its kind.
// Blocks are scratch values that live only during a single extraction.
type block struct {
	kind  blockKind
	level int // heading level, 1-6; zero otherwise
	node  *html.Node
}

// ignorableTags are skipped entirely during collection.
var ignorableTags = map[string]bool{
	"script":   true,
	"style":    true,
	"meta":     true,
	"link":     true,
	"noscript": true,
	"template": true,
	"iframe":   true,
	"svg":      true,
	"canvas":   true,
	"form":     true,
	"button":   true,
	"input":    true,
	"select":   true,
	"option":   true,
	"object":   true,
	"embed":    true,
}

// containerTags are plain wrappers that collection recurses into.
var containerTags = map[string]bool{
	"div":     true,
	"section": true,
	"article": true,
	"main":    true,
	"span":    true,
}

// nonContentTags are boilerplate by tag name alone.
var nonContentTags = map[string]bool{
	"nav":    true,
	"header": true,
	"footer": true,
	"aside":  true,
}

// nonContentRoles are ARIA roles that mark boilerplate.
var nonContentRoles = map[string]bool{
	"navigation":  true,
	"banner":      true,
	"contentinfo": true,
}

var headingLevels = map[string]int{
	"h1": 1, "h2": 2, "h3": 3, "h4": 4, "h5": 5, "h6": 6,
}

// headingLevel returns the heading level of the element, or 0.
func headingLevel(n *html.Node) int {
	return headingLevels[dom.TagName(n)]
}

// classify maps an element to a block, if it is a block-level content
// element. Figures are classified by what they wrap.
func classify(n *html.Node) (block, bool) {
	tag := dom.TagName(n)
	if level, ok := headingLevels[tag]; ok {
		return block{kind: kindHeading, level: level, node: n}, true
	}
	switch tag {
	case "p":
		return block{kind: kindParagraph, node: n}, true
	case "ul", "ol":
		return block{kind: kindList, node: n}, true
	case "blockquote":
		return block{kind: kindBlockquote, node: n}, true
	case "pre", "code":
		return block{kind: kindCode, node: n}, true
	case "table":
		return block{kind: kindTable, node: n}, true
	case "figure":
		if dom.FindFirst(n, "pre") != nil || dom.FindFirst(n, "code") != nil {
			return block{kind: kindCode, node: n}, true
		}
		if dom.FindFirst(n, "table") != nil {
			return block{kind: kindTable, node: n}, true
		}
	}
	return block{}, false
}

// collector gathers block-level content nodes out of candidate
// subtrees, applying the non-content filter.
type collector struct {
	cfg          htmltree.Config
	nonContentRe *regexp.Regexp
}

func newCollector(cfg htmltree.Config) *collector {
	return &collector{
		cfg:          cfg,
		nonContentRe: htmltree.CompilePatterns(cfg.NonContentPatterns),
	}
}

// nonContent reports whether the element looks like boilerplate: a
// navigation/header/footer tag, a non-content class or id token, or a
// boilerplate ARIA role.
func (c *collector) nonContent(n *html.Node) bool {
	if nonContentTags[dom.TagName(n)] {
		return true
	}
	if nonContentRoles[dom.Attr(n, "role")] {
		return true
	}
	if class := dom.ClassName(n); class != "" && c.nonContentRe.MatchString(class) {
		return true
	}
	if id := dom.ID(n); id != "" && c.nonContentRe.MatchString(id) {
		return true
	}
	return false
}

// collect returns the blocks found within a single candidate in
// document order. Direct children matching a block tag are taken as-is;
// plain containers are recursed into; ignorable tags are skipped. When
// the direct-child pass yields nothing, a second pass scans the whole
// subtree for block descendants, filtering tiny non-heading elements.
func (c *collector) collect(candidate *html.Node) []block {
	var blocks []block
	c.collectChildren(candidate, &blocks)
	if len(blocks) > 0 {
		return blocks
	}
	return c.collectSubtree(candidate)
}

func (c *collector) collectChildren(n *html.Node, blocks *[]block) {
	for _, child := range dom.ElementChildren(n) {
		tag := dom.TagName(child)
		if ignorableTags[tag] {
			continue
		}
		if c.nonContent(child) {
			continue
		}
		if b, ok := classify(child); ok {
			*blocks = append(*blocks, b)
			continue
		}
		if containerTags[tag] {
			c.collectChildren(child, blocks)
		}
	}
}

func (c *collector) collectSubtree(candidate *html.Node) []block {
	var blocks []block
	dom.WalkElements(candidate, func(el *html.Node) bool {
		if el == candidate {
			return true
		}
		if ignorableTags[dom.TagName(el)] {
			return false
		}
		if c.nonContent(el) {
			return false
		}
		b, ok := classify(el)
		if !ok {
			return true
		}
		if b.kind != kindHeading && len(dom.Text(el)) < c.cfg.MinSubtreeBlockTextLen {
			return false
		}
		blocks = append(blocks, b)
		// Never descend into a collected block; its contents belong
		// to it.
		return false
	})
	return blocks
}

package htmltree

import "encoding/json"

// NodeType identifies the concrete type of a content node.
type NodeType string

// Node type constants for the JSON "type" discriminator.
const (
	NodeTypeHeading    NodeType = "heading"
	NodeTypeParagraph  NodeType = "paragraph"
	NodeTypeList       NodeType = "list"
	NodeTypeBlockquote NodeType = "blockquote"
	NodeTypeCode       NodeType = "code"
	NodeTypeTable      NodeType = "table"
	NodeTypeSection    NodeType = "section"
)

// Node is a single node in the extracted content tree. The set of
// implementations is closed: Heading, Paragraph, List, Blockquote,
// CodeBlock, Table, and Section.
type Node interface {
	// NodeType returns the discriminator used during JSON serialization.
	NodeType() NodeType
}

// Heading is a standalone heading that was not promoted to a section
// title (for example in the flat-list fallback output).
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// NodeType returns NodeTypeHeading.
func (h *Heading) NodeType() NodeType { return NodeTypeHeading }

// MarshalJSON serializes the heading with its type discriminator.
func (h *Heading) MarshalJSON() ([]byte, error) {
	type alias Heading
	return json.Marshal(struct {
		Type NodeType `json:"type"`
		*alias
	}{h.NodeType(), (*alias)(h)})
}

// Paragraph is a block of running text.
type Paragraph struct {
	Text string `json:"text"`
}

// NodeType returns NodeTypeParagraph.
func (p *Paragraph) NodeType() NodeType { return NodeTypeParagraph }

// MarshalJSON serializes the paragraph with its type discriminator.
func (p *Paragraph) MarshalJSON() ([]byte, error) {
	type alias Paragraph
	return json.Marshal(struct {
		Type NodeType `json:"type"`
		*alias
	}{p.NodeType(), (*alias)(p)})
}

// ListItem is a single item in a List. An item may carry a nested list;
// the nested list's text is not part of the item's own text.
type ListItem struct {
	Text   string `json:"text"`
	Nested *List  `json:"nested,omitempty"`
}

// List is an ordered or unordered list.
type List struct {
	Ordered bool        `json:"ordered"`
	Items   []*ListItem `json:"items"`
}

// NodeType returns NodeTypeList.
func (l *List) NodeType() NodeType { return NodeTypeList }

// MarshalJSON serializes the list with its type discriminator.
func (l *List) MarshalJSON() ([]byte, error) {
	type alias List
	return json.Marshal(struct {
		Type NodeType `json:"type"`
		*alias
	}{l.NodeType(), (*alias)(l)})
}

// Blockquote is quoted text.
type Blockquote struct {
	Text string `json:"text"`
}

// NodeType returns NodeTypeBlockquote.
func (b *Blockquote) NodeType() NodeType { return NodeTypeBlockquote }

// MarshalJSON serializes the blockquote with its type discriminator.
func (b *Blockquote) MarshalJSON() ([]byte, error) {
	type alias Blockquote
	return json.Marshal(struct {
		Type NodeType `json:"type"`
		*alias
	}{b.NodeType(), (*alias)(b)})
}

// CodeBlock is a block of preformatted code. Language and Caption are
// empty when they could not be detected.
type CodeBlock struct {
	Language string `json:"language,omitempty"`
	Caption  string `json:"caption,omitempty"`
	Text     string `json:"text"`
}

// NodeType returns NodeTypeCode.
func (c *CodeBlock) NodeType() NodeType { return NodeTypeCode }

// MarshalJSON serializes the code block with its type discriminator.
func (c *CodeBlock) MarshalJSON() ([]byte, error) {
	type alias CodeBlock
	return json.Marshal(struct {
		Type NodeType `json:"type"`
		*alias
	}{c.NodeType(), (*alias)(c)})
}

// TableCell is a single table cell. ColSpan and RowSpan are only set
// when greater than one.
type TableCell struct {
	Text    string `json:"text"`
	ColSpan int    `json:"colspan,omitempty"`
	RowSpan int    `json:"rowspan,omitempty"`
}

// Table is a data table with optional caption, header, and footer rows.
type Table struct {
	Caption string         `json:"caption,omitempty"`
	Header  [][]*TableCell `json:"header,omitempty"`
	Body    [][]*TableCell `json:"body"`
	Footer  [][]*TableCell `json:"footer,omitempty"`
}

// NodeType returns NodeTypeTable.
func (t *Table) NodeType() NodeType { return NodeTypeTable }

// MarshalJSON serializes the table with its type discriminator.
func (t *Table) MarshalJSON() ([]byte, error) {
	type alias Table
	return json.Marshal(struct {
		Type NodeType `json:"type"`
		*alias
	}{t.NodeType(), (*alias)(t)})
}

// Section groups the content that follows a heading. Child sections
// always have a level strictly greater than their parent's level; the
// nesting is enforced by the hierarchy builder's stack discipline.
type Section struct {
	Level    int        `json:"level"`
	Title    string     `json:"title"`
	Content  []Node     `json:"content,omitempty"`
	Children []*Section `json:"children,omitempty"`
}

// NodeType returns NodeTypeSection.
func (s *Section) NodeType() NodeType { return NodeTypeSection }

// MarshalJSON serializes the section with its type discriminator.
func (s *Section) MarshalJSON() ([]byte, error) {
	type alias Section
	return json.Marshal(struct {
		Type NodeType `json:"type"`
		*alias
	}{s.NodeType(), (*alias)(s)})
}

// Walk visits every node in the forest in depth-first order, descending
// into section content and child sections. It stops early when fn
// returns false.
func Walk(nodes []Node, fn func(Node) bool) bool {
	for _, n := range nodes {
		if !fn(n) {
			return false
		}
		if s, ok := n.(*Section); ok {
			if !Walk(s.Content, fn) {
				return false
			}
			for _, child := range s.Children {
				if !Walk([]Node{child}, fn) {
					return false
				}
			}
		}
	}
	return true
}

// Package htmltomarkdown renders an extracted content forest as
// Markdown text.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/htmltree"
)

// Renderer walks a content forest and emits Markdown. Inline HTML left
// in node text by the style-preservation flag is converted through
// html-to-markdown, so emphasis and code spans survive as Markdown
// rather than raw tags.
type Renderer struct {
	conv *converter.Converter
}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Renderer{conv: conv}
}

// Render converts the forest into a Markdown document.
func (r *Renderer) Render(nodes []htmltree.Node) (string, error) {
	var b strings.Builder
	if err := r.renderNodes(&b, nodes, 0); err != nil {
		return "", err
	}
	return strings.TrimSpace(b.String()) + "\n", nil
}

func (r *Renderer) renderNodes(b *strings.Builder, nodes []htmltree.Node, depth int) error {
	for _, n := range nodes {
		switch node := n.(type) {
		case *htmltree.Section:
			b.WriteString(strings.Repeat("#", node.Level) + " " + r.inline(node.Title) + "\n\n")
			if err := r.renderNodes(b, node.Content, depth); err != nil {
				return err
			}
			for _, child := range node.Children {
				if err := r.renderNodes(b, []htmltree.Node{child}, depth); err != nil {
					return err
				}
			}
		case *htmltree.Heading:
			b.WriteString(strings.Repeat("#", node.Level) + " " + r.inline(node.Text) + "\n\n")
		case *htmltree.Paragraph:
			b.WriteString(r.inline(node.Text) + "\n\n")
		case *htmltree.List:
			r.renderList(b, node, 0)
			b.WriteString("\n")
		case *htmltree.Blockquote:
			for _, line := range strings.Split(node.Text, "\n") {
				if !strings.HasPrefix(line, ">") {
					line = "> " + line
				}
				b.WriteString(r.inline(line) + "\n")
			}
			b.WriteString("\n")
		case *htmltree.CodeBlock:
			if node.Caption != "" {
				b.WriteString("*" + r.inline(node.Caption) + "*\n\n")
			}
			b.WriteString("```" + node.Language + "\n" + node.Text + "\n```\n\n")
		case *htmltree.Table:
			r.renderTable(b, node)
			b.WriteString("\n")
		}
	}
	return nil
}

func (r *Renderer) renderList(b *strings.Builder, list *htmltree.List, depth int) {
	indent := strings.Repeat("    ", depth)
	for _, item := range list.Items {
		marker := "-"
		if list.Ordered {
			marker = "1."
		}
		b.WriteString(indent + marker + " " + r.inline(item.Text) + "\n")
		if item.Nested != nil {
			r.renderList(b, item.Nested, depth+1)
		}
	}
}

func (r *Renderer) renderTable(b *strings.Builder, t *htmltree.Table) {
	if t.Caption != "" {
		b.WriteString("*" + r.inline(t.Caption) + "*\n\n")
	}

	width := 0
	for _, row := range t.Header {
		if len(row) > width {
			width = len(row)
		}
	}
	for _, row := range t.Body {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return
	}

	writeRow := func(row []*htmltree.TableCell) {
		cells := make([]string, width)
		for i := range cells {
			if i < len(row) {
				cells[i] = r.inline(row[i].Text)
			}
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}

	if len(t.Header) > 0 {
		for _, row := range t.Header {
			writeRow(row)
		}
	} else {
		writeRow(make([]*htmltree.TableCell, width))
	}
	b.WriteString("|" + strings.Repeat(" --- |", width) + "\n")
	for _, row := range t.Body {
		writeRow(row)
	}
	for _, row := range t.Footer {
		writeRow(row)
	}
}

// inline converts a text fragment that may contain inline HTML into
// Markdown. Plain text passes through with Markdown escaping applied.
func (r *Renderer) inline(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	md, err := r.conv.ConvertString(s)
	if err != nil {
		return s
	}
	return strings.TrimSpace(md)
}

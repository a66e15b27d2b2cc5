package extract

import (
	"github.com/fwojciec/htmltree"
)

// buildForest assembles the ordered block list into a nested section
// forest. A heading of level L closes every open section at level >= L
// and opens a new section attached to whatever remains on the stack (or
// the forest root). Non-heading blocks are formatted and appended to
// the innermost open section. When no headings exist at all, the output
// degrades to a flat list of formatted blocks.
func buildForest(blocks []block, f *formatter) ([]htmltree.Node, []htmltree.Diagnostic) {
	forest := []htmltree.Node{}
	var diags []htmltree.Diagnostic

	type frame struct {
		level   int
		section *htmltree.Section
	}
	var stack []frame

	for _, b := range blocks {
		node, err := f.format(b)
		if err != nil {
			diags = append(diags, htmltree.Diagnostic{
				Stage:  htmltree.StageFormat,
				Tag:    b.kind.String(),
				Detail: htmltree.ErrorMessage(err),
			})
			continue
		}
		if node == nil {
			continue
		}

		if heading, ok := node.(*htmltree.Heading); ok && b.kind == kindHeading {
			for len(stack) > 0 && stack[len(stack)-1].level >= heading.Level {
				stack = stack[:len(stack)-1]
			}
			section := &htmltree.Section{Level: heading.Level, Title: heading.Text}
			if len(stack) > 0 {
				parent := stack[len(stack)-1].section
				parent.Children = append(parent.Children, section)
			} else {
				forest = append(forest, section)
			}
			stack = append(stack, frame{level: heading.Level, section: section})
			continue
		}

		if len(stack) > 0 {
			top := stack[len(stack)-1].section
			top.Content = append(top.Content, node)
		} else {
			forest = append(forest, node)
		}
	}

	return forest, diags
}

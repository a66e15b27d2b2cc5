package extract

import (
	"strconv"

	"github.com/fwojciec/htmltree"
	"github.com/fwojciec/htmltree/dom"
	"golang.org/x/net/html"
)

// isDataTable reports whether a table is structurally tabular rather
// than a layout shell: it needs a header row (thead or th cells) or at
// least two rows with consistent column counts. Tables wrapping other
// tables are treated as layout.
func isDataTable(tbl *html.Node) bool {
	if nested := dom.FindFirst(tbl, "table"); nested != nil && nested != tbl {
		return false
	}

	rows := tableRows(tbl)
	if len(rows) == 0 {
		return false
	}

	for _, row := range rows {
		for _, cell := range rowCells(row) {
			if dom.TagName(cell) == "th" {
				return true
			}
		}
	}

	if len(rows) < 2 {
		return false
	}
	width := len(rowCells(rows[0]))
	if width == 0 {
		return false
	}
	for _, row := range rows[1:] {
		if len(rowCells(row)) != width {
			return false
		}
	}
	return true
}

func (f *formatter) formatTable(b block) (htmltree.Node, error) {
	tbl := b.node
	if dom.TagName(tbl) != "table" {
		tbl = dom.FindFirst(b.node, "table")
	}
	if tbl == nil {
		return nil, htmltree.Errorf(htmltree.EUNPROCESSABLE, "no table element inside %s block", dom.TagName(b.node))
	}
	if !isDataTable(tbl) {
		return nil, nil
	}

	out := &htmltree.Table{}
	if caption := dom.FindFirst(tbl, "caption"); caption != nil {
		out.Caption = dom.Text(caption)
	}

	claimed := make(map[*html.Node]bool)

	if thead := sectionOf(tbl, "thead"); thead != nil {
		for _, row := range tableRows(thead) {
			claimed[row] = true
			out.Header = append(out.Header, formatRow(row))
		}
	}
	if tfoot := sectionOf(tbl, "tfoot"); tfoot != nil {
		for _, row := range tableRows(tfoot) {
			claimed[row] = true
			out.Footer = append(out.Footer, formatRow(row))
		}
	}

	rows := tableRows(tbl)

	// Without a thead, a leading all-th row is the header.
	if out.Header == nil {
		for _, row := range rows {
			if claimed[row] {
				continue
			}
			cells := rowCells(row)
			allTH := len(cells) > 0
			for _, cell := range cells {
				if dom.TagName(cell) != "th" {
					allTH = false
					break
				}
			}
			if allTH {
				claimed[row] = true
				out.Header = append(out.Header, formatRow(row))
			}
			break
		}
	}

	for _, row := range rows {
		if claimed[row] {
			continue
		}
		out.Body = append(out.Body, formatRow(row))
	}

	if len(out.Header) == 0 && len(out.Body) == 0 {
		return nil, htmltree.Errorf(htmltree.EUNPROCESSABLE, "table has no rows")
	}
	return out, nil
}

// sectionOf returns the table's direct thead/tbody/tfoot child with the
// given tag name, or nil.
func sectionOf(tbl *html.Node, tag string) *html.Node {
	for _, child := range dom.ElementChildren(tbl) {
		if dom.TagName(child) == tag {
			return child
		}
	}
	return nil
}

// tableRows returns the tr elements belonging to the given table or
// table section, excluding rows of nested tables.
func tableRows(root *html.Node) []*html.Node {
	var rows []*html.Node
	dom.WalkElements(root, func(el *html.Node) bool {
		if el == root {
			return true
		}
		if dom.TagName(el) == "table" {
			return false
		}
		if dom.TagName(el) == "tr" {
			rows = append(rows, el)
			return false
		}
		return true
	})
	return rows
}

// rowCells returns the direct td/th children of a row.
func rowCells(tr *html.Node) []*html.Node {
	var cells []*html.Node
	for _, child := range dom.ElementChildren(tr) {
		switch dom.TagName(child) {
		case "td", "th":
			cells = append(cells, child)
		}
	}
	return cells
}

func formatRow(tr *html.Node) []*htmltree.TableCell {
	cells := rowCells(tr)
	out := make([]*htmltree.TableCell, 0, len(cells))
	for _, cell := range cells {
		out = append(out, &htmltree.TableCell{
			Text:    dom.Text(cell),
			ColSpan: spanAttr(cell, "colspan"),
			RowSpan: spanAttr(cell, "rowspan"),
		})
	}
	return out
}

// spanAttr parses a colspan/rowspan attribute, returning 0 for absent,
// malformed, or trivial (1) spans.
func spanAttr(cell *html.Node, key string) int {
	v := dom.Attr(cell, key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 1 {
		return 0
	}
	return n
}

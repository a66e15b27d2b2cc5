package extract

import (
	"sort"

	"golang.org/x/net/html"
)

// sequence restores single-document order across blocks gathered from
// independently-scanned candidate subtrees. Each block's order key is
// the sibling-index path from the document root down to its node;
// comparing paths lexicographically makes differences at shallower
// ancestor levels dominate, which is exactly pre-order document order.
// The sort is stable so equal keys keep encounter order.
func sequence(blocks []block) []block {
	paths := make(map[*html.Node][]int, len(blocks))
	for _, b := range blocks {
		paths[b.node] = nodePath(b.node)
	}
	sorted := make([]block, len(blocks))
	copy(sorted, blocks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return comparePaths(paths[sorted[i].node], paths[sorted[j].node]) < 0
	})
	return sorted
}

// nodePath returns the sibling-index path from the root of the tree to
// n, outermost ancestor first.
func nodePath(n *html.Node) []int {
	var path []int
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		idx := 0
		for sib := cur.PrevSibling; sib != nil; sib = sib.PrevSibling {
			idx++
		}
		path = append(path, idx)
	}
	// Reverse in place: the path was built innermost first.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// comparePaths orders paths lexicographically. A path that is a prefix
// of another sorts first, so ancestors precede their descendants.
func comparePaths(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

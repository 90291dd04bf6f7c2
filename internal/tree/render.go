package tree

import (
	"strings"
)

const (
	indent = "  "
	marker = "- [ ] "
)

// Walk visits every node below root in pre-order, children sorted by name.
// The root itself is not visited; its children are at depth 0.
func Walk(root *Node, fn func(depth int, n *Node)) {
	walk(root, 0, fn)
}

func walk(n *Node, depth int, fn func(depth int, n *Node)) {
	for _, name := range n.SortedNames() {
		child := n.Children[name]
		fn(depth, child)
		walk(child, depth+1, fn)
	}
}

// Line formats a single checklist entry.
func Line(depth int, name string) string {
	return strings.Repeat(indent, depth) + marker + name
}

// Lines renders the tree one checklist line per node.
func Lines(root *Node) []string {
	var lines []string
	Walk(root, func(depth int, n *Node) {
		lines = append(lines, Line(depth, n.Name))
	})
	return lines
}

// Render returns the checklist with every line newline-terminated. An empty
// tree renders as "".
func Render(root *Node) string {
	var b strings.Builder
	for _, line := range Lines(root) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// Package tree folds slash-separated paths into a tree keyed by path segment
// and renders it as an indented markdown checklist.
package tree

import (
	"sort"
	"strings"

	"checklist/internal/errors"
)

// Separator splits a tracked path into segments, whatever the host OS.
const Separator = "/"

// Node is one path segment. Each child is owned by exactly one parent and
// is keyed by its segment name. A node with no children is a leaf; a node
// can be a leaf and a branch at once when both "a" and "a/b" are tracked.
type Node struct {
	Name     string
	Children map[string]*Node
}

// New returns an empty root node.
func New() *Node {
	return &Node{Children: make(map[string]*Node)}
}

// Build folds paths into a new tree. It stops at the first malformed path.
func Build(paths []string) (*Node, error) {
	root := New()
	for _, p := range paths {
		if err := root.Insert(p); err != nil {
			return nil, err
		}
	}
	return root, nil
}

// Insert adds the chain of nodes for path below n, reusing existing
// prefixes. Paths with an empty segment are rejected before n is touched.
func (n *Node) Insert(path string) error {
	segments := strings.Split(path, Separator)
	for _, s := range segments {
		if s == "" {
			return errors.MalformedPath(path)
		}
	}

	current := n
	for _, s := range segments {
		child, ok := current.Children[s]
		if !ok {
			child = &Node{Name: s, Children: make(map[string]*Node)}
			current.Children[s] = child
		}
		current = child
	}
	return nil
}

// SortedNames returns the child names in byte-wise order. Go string
// comparison is byte-wise, which for UTF-8 is code-point order.
func (n *Node) SortedNames() []string {
	names := make([]string, 0, len(n.Children))
	for name := range n.Children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len counts the nodes below n.
func (n *Node) Len() int {
	total := 0
	for _, c := range n.Children {
		total += 1 + c.Len()
	}
	return total
}

// Package hierarchy reconstructs a parent/child tree from a flat list of
// named records carrying self-referential parent pointers.
package hierarchy

import (
	"fmt"
	"io"
	"sort"
	"strings"

	invErrors "github.com/stackwise/invctl/pkg/errors"
)

// Item is one flat record: a name and an optional parent reference.
type Item struct {
	Name   string
	Parent string
}

// Node is a placed record with its children keyed by name.
type Node struct {
	Name     string
	Children map[string]*Node
}

// Tree groups records under their parents. The index gives O(1) parent
// lookup during construction and Find afterwards.
type Tree struct {
	Roots map[string]*Node

	index map[string]*Node
}

// Build places every item under its parent. A record with no parent
// reference, or one referencing itself, becomes a root. Children whose
// parent has not been placed yet are deferred to a later pass; the loop runs
// to a fixed point, so input order does not matter.
//
// Records whose parent never appears in the input are an error, not silent
// extra roots.
func Build(items []Item) (*Tree, error) {
	t := &Tree{
		Roots: make(map[string]*Node),
		index: make(map[string]*Node),
	}

	unplaced := append([]Item(nil), items...)
	for len(unplaced) > 0 {
		var remaining []Item
		for _, item := range unplaced {
			if !t.place(item) {
				remaining = append(remaining, item)
			}
		}

		// Every pass must shrink the unplaced set, or the leftovers all
		// reference parents missing from the input.
		if len(remaining) == len(unplaced) {
			return nil, invErrors.Newf(invErrors.ErrCodeDanglingParent,
				"records reference missing parents: %s", describeDangling(remaining))
		}
		unplaced = remaining
	}

	return t, nil
}

// place attaches the item as a root or under its already-placed parent.
// It reports false when the parent is not in the tree yet.
func (t *Tree) place(item Item) bool {
	node := &Node{Name: item.Name, Children: make(map[string]*Node)}

	if item.Parent == "" || item.Parent == item.Name {
		t.Roots[item.Name] = node
		t.index[item.Name] = node
		return true
	}

	parent, ok := t.index[item.Parent]
	if !ok {
		return false
	}
	parent.Children[item.Name] = node
	t.index[item.Name] = node
	return true
}

// Find returns the placed node with the given name, or nil.
func (t *Tree) Find(name string) *Node {
	return t.index[name]
}

// Len returns the number of placed nodes.
func (t *Tree) Len() int {
	return len(t.index)
}

// Render writes the tree as indented text, two spaces per depth level,
// siblings in name order.
func (t *Tree) Render(w io.Writer) error {
	for _, name := range sortedKeys(t.Roots) {
		if err := renderNode(w, t.Roots[name], 0); err != nil {
			return err
		}
	}
	return nil
}

func renderNode(w io.Writer, n *Node, depth int) error {
	if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), n.Name); err != nil {
		return err
	}
	for _, name := range sortedKeys(n.Children) {
		if err := renderNode(w, n.Children[name], depth+1); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys(m map[string]*Node) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func describeDangling(items []Item) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprintf("%s->%s", item.Name, item.Parent)
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}

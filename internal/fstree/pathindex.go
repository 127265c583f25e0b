package fstree

import (
	"strings"

	radix "github.com/armon/go-radix"
)

// PathIndex maps slash-separated relative paths to the nodes of a tree,
// backed by a radix tree so lookups cost O(k) in the path length rather
// than a walk from the root.
//
// The index is built once over an immutable tree and is safe for concurrent
// lookups.
type PathIndex struct {
	tree *radix.Tree
}

// NewPathIndex indexes every node reachable from root. The root itself is
// addressed by the empty path.
func NewPathIndex(root *Dir) *PathIndex {
	idx := &PathIndex{tree: radix.New()}
	idx.tree.Insert("", Node(root))
	idx.insertChildren(root, "")

	return idx
}

func (idx *PathIndex) insertChildren(d *Dir, prefix string) {
	for child := range d.Entries() {
		path := Join(prefix, child.Name())
		idx.tree.Insert(path, child)

		if sub, ok := child.(*Dir); ok {
			idx.insertChildren(sub, path)
		}
	}
}

// Lookup returns the node addressed by path. The path is normalized first,
// so empty and "." segments are ignored.
func (idx *PathIndex) Lookup(path string) (Node, bool) {
	value, ok := idx.tree.Get(normalizePath(path))
	if !ok {
		return nil, false
	}

	return value.(Node), true
}

// WalkPrefix visits every indexed path starting with prefix, in
// lexicographic order. Returning true from fn stops the walk.
func (idx *PathIndex) WalkPrefix(prefix string, fn func(path string, node Node) bool) {
	idx.tree.WalkPrefix(normalizePath(prefix), func(path string, value interface{}) bool {
		return fn(path, value.(Node))
	})
}

// Len returns the number of indexed nodes, the root included.
func (idx *PathIndex) Len() int {
	return idx.tree.Len()
}

func normalizePath(path string) string {
	return strings.Join(SplitPath(path), "/")
}

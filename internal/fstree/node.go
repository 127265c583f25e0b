package fstree

import (
	"fmt"
	"iter"
	"strings"
)

// Node is a single entry in a mock file system tree: either a *Dir or a
// File. The interface is sealed, so a value that is neither a directory nor
// a file is unrepresentable; the JSON decoder is the only place malformed
// trees can appear, and it rejects them with a *DecodeError.
type Node interface {
	// Name is the entry's own name, unique within its parent directory.
	Name() string

	fsNode()
}

// File is a leaf entry carrying a size in bytes.
type File struct {
	name string
	size int64
}

// NewFile returns a file entry.
//
// It panics if name is empty or contains a path separator, or if size is
// negative. These are precondition violations on programmatically built
// trees; dynamic input goes through Decode, which returns errors instead.
func NewFile(name string, size int64) File {
	mustValidName(name)

	if size < 0 {
		panic(fmt.Sprintf("fstree: negative size %d for file %q", size, name))
	}

	return File{name: name, size: size}
}

// Name returns the file name.
func (f File) Name() string { return f.name }

// Size returns the file size in bytes.
func (f File) Size() int64 { return f.size }

func (File) fsNode() {}

// Dir is a directory entry holding uniquely named children in insertion
// order. Inserting a name that already exists replaces the previous entry
// in place, mirroring mapping semantics.
type Dir struct {
	name     string
	children []Node
	byName   map[string]int
}

// NewDir returns a directory containing the given entries, in order.
//
// It panics if name is empty or contains a path separator.
func NewDir(name string, entries ...Node) *Dir {
	mustValidName(name)

	return newDir(name, entries)
}

// NewRoot returns an unnamed directory to serve as a traversal root.
// Root directories carry no name of their own: paths derived from a
// traversal are relative and never include the root.
func NewRoot(entries ...Node) *Dir {
	return newDir("", entries)
}

func newDir(name string, entries []Node) *Dir {
	d := &Dir{
		name:     name,
		children: make([]Node, 0, len(entries)),
		byName:   make(map[string]int, len(entries)),
	}
	for _, entry := range entries {
		d.add(entry)
	}

	return d
}

// add inserts or replaces the child with entry's name, keeping the original
// position on replacement.
func (d *Dir) add(entry Node) {
	if i, ok := d.byName[entry.Name()]; ok {
		d.children[i] = entry

		return
	}

	d.byName[entry.Name()] = len(d.children)
	d.children = append(d.children, entry)
}

// Name returns the directory name ("" for a root).
func (d *Dir) Name() string { return d.name }

// Len returns the number of direct children.
func (d *Dir) Len() int { return len(d.children) }

// Child returns the direct child with the given name.
func (d *Dir) Child(name string) (Node, bool) {
	i, ok := d.byName[name]
	if !ok {
		return nil, false
	}

	return d.children[i], true
}

// Entries iterates the direct children in insertion order.
func (d *Dir) Entries() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, child := range d.children {
			if !yield(child) {
				return
			}
		}
	}
}

func (*Dir) fsNode() {}

// Join appends name to a slash-separated relative path.
func Join(prefix, name string) string {
	if prefix == "" {
		return name
	}

	return prefix + "/" + name
}

// SplitPath splits a slash-separated path into its segments, dropping empty
// and "." segments so that "Documents//Personal/" and "./Documents/Personal"
// address the same entry.
func SplitPath(path string) []string {
	parts := strings.Split(path, "/")

	segments := make([]string, 0, len(parts))
	for _, s := range parts {
		if s == "" || s == "." {
			continue
		}

		segments = append(segments, s)
	}

	return segments
}

func mustValidName(name string) {
	if name == "" {
		panic("fstree: empty entry name")
	}

	if strings.Contains(name, "/") {
		panic(fmt.Sprintf("fstree: entry name %q contains a path separator", name))
	}
}

package explorer

import (
	"github.com/rs/zerolog"

	"fsx/internal/fstree"
)

// FileEntry is a single result row: a slash-separated path relative to the
// operation's starting directory and a size in bytes. For directory rows
// produced by name searches the size covers the directory's whole subtree.
type FileEntry struct {
	Path string `json:"path"`
	Size int64  `json:"size"`
}

// Explorer answers queries about one immutable tree. The tree is indexed
// once at construction, so resolving an operation's starting directory
// costs O(path length) rather than a walk from the root.
type Explorer struct {
	root  *fstree.Dir
	index *fstree.PathIndex
	base  settings
}

// New builds an Explorer over root. A nil root behaves as an empty tree.
func New(root *fstree.Dir, opts ...Option) *Explorer {
	if root == nil {
		root = fstree.NewRoot()
	}

	base := settings{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&base)
	}

	e := &Explorer{
		root:  root,
		index: fstree.NewPathIndex(root),
		base:  base,
	}

	e.base.log.Debug().Int("nodes", e.index.Len()).Msg("path index built")

	return e
}

// settings layers per-call options over the constructor baseline.
func (e *Explorer) settings(opts []Option) settings {
	s := e.base
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// Resolve returns the node addressed by a slash-separated path relative to
// the tree root. The empty path addresses the root itself.
func (e *Explorer) Resolve(path string) (fstree.Node, bool) {
	return e.index.Lookup(path)
}

// startDir resolves dir to a directory to walk. A missing path, or a path
// addressing a file, yields no starting directory.
func (e *Explorer) startDir(dir string) (*fstree.Dir, bool) {
	node, ok := e.Resolve(dir)
	if !ok {
		return nil, false
	}

	d, ok := node.(*fstree.Dir)

	return d, ok
}

// ListFiles returns every file under dir in depth-first insertion order,
// with paths relative to dir. A missing directory yields an empty listing.
func (e *Explorer) ListFiles(dir string, opts ...Option) []FileEntry {
	s := e.settings(opts)

	entries := make([]FileEntry, 0)

	start, ok := e.startDir(dir)
	if !ok {
		return entries
	}

	walk(start, "", 0, s, func(path string, node fstree.Node) {
		if f, isFile := node.(fstree.File); isFile {
			entries = append(entries, FileEntry{Path: path, Size: f.Size()})
		}
	})

	return entries
}

// DirectorySize returns the total size in bytes of every file under dir.
// A path addressing a single file returns that file's size; a missing path
// returns 0.
func (e *Explorer) DirectorySize(dir string, opts ...Option) int64 {
	s := e.settings(opts)

	node, ok := e.Resolve(dir)
	if !ok {
		return 0
	}

	switch n := node.(type) {
	case fstree.File:
		return n.Size()
	case *fstree.Dir:
		var total int64

		walk(n, "", 0, s, func(_ string, node fstree.Node) {
			if f, isFile := node.(fstree.File); isFile {
				total += f.Size()
			}
		})

		return total
	}

	return 0
}

// walk visits every entry under dir in depth-first insertion order,
// directories before their contents. Files below the size floor are
// skipped, and nothing deeper than the depth bound is visited.
func walk(dir *fstree.Dir, prefix string, depth int, s settings, visit func(path string, node fstree.Node)) {
	if s.maxDepth > 0 && depth >= s.maxDepth {
		return
	}

	for child := range dir.Entries() {
		path := fstree.Join(prefix, child.Name())

		switch c := child.(type) {
		case fstree.File:
			if c.Size() >= s.minSize {
				visit(path, c)
			}
		case *fstree.Dir:
			visit(path, c)
			walk(c, path, depth+1, s, visit)
		}
	}
}

// subtreeSize sums every file under d, unfiltered.
func subtreeSize(d *fstree.Dir) int64 {
	var total int64

	for child := range d.Entries() {
		switch c := child.(type) {
		case fstree.File:
			total += c.Size()
		case *fstree.Dir:
			total += subtreeSize(c)
		}
	}

	return total
}

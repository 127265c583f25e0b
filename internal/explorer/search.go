package explorer

import (
	"strings"

	"fsx/internal/fstree"
)

// FindByExtension returns every file under dir whose name ends with ext,
// matched case-insensitively. A leading dot on ext is optional, and
// compound suffixes such as "tar.gz" match whole-suffix. An empty ext
// matches nothing, and paths are relative to dir.
func (e *Explorer) FindByExtension(dir, ext string, opts ...Option) []FileEntry {
	s := e.settings(opts)

	matches := make([]FileEntry, 0)

	suffix := strings.TrimPrefix(strings.ToLower(ext), ".")
	if suffix == "" {
		return matches
	}

	suffix = "." + suffix

	start, ok := e.startDir(dir)
	if !ok {
		return matches
	}

	walk(start, "", 0, s, func(path string, node fstree.Node) {
		f, isFile := node.(fstree.File)
		if isFile && strings.HasSuffix(strings.ToLower(f.Name()), suffix) {
			matches = append(matches, FileEntry{Path: path, Size: f.Size()})
		}
	})

	return matches
}

// FindByName returns every file under dir whose name contains pattern,
// matched case-insensitively. With WithDirs, matching directories are
// included too, each reporting its subtree's total size and appearing
// before its own contents. An empty pattern matches nothing.
func (e *Explorer) FindByName(dir, pattern string, opts ...Option) []FileEntry {
	s := e.settings(opts)

	matches := make([]FileEntry, 0)

	needle := strings.ToLower(pattern)
	if needle == "" {
		return matches
	}

	start, ok := e.startDir(dir)
	if !ok {
		return matches
	}

	walk(start, "", 0, s, func(path string, node fstree.Node) {
		if !strings.Contains(strings.ToLower(node.Name()), needle) {
			return
		}

		switch n := node.(type) {
		case fstree.File:
			matches = append(matches, FileEntry{Path: path, Size: n.Size()})
		case *fstree.Dir:
			if s.includeDirs {
				matches = append(matches, FileEntry{Path: path, Size: subtreeSize(n)})
			}
		}
	})

	return matches
}

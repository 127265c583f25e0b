package explorer

import (
	"path"
	"sort"
	"strings"
	"time"

	"fsx/internal/fstree"
)

// NoExtension is the distribution bucket for file names without an
// extension. Names ending in a bare dot fold into it as well.
const NoExtension = "no_extension"

// Extension returns the lowercased extension of a file name, the suffix
// after the last dot, or NoExtension when the name has none. The same rule
// classifies names everywhere a distribution or report groups by type.
func Extension(name string) string {
	ext := strings.TrimPrefix(path.Ext(name), ".")
	if ext == "" {
		return NoExtension
	}

	return strings.ToLower(ext)
}

// ExtStat aggregates one extension bucket of a distribution.
type ExtStat struct {
	Count int   `json:"count"`
	Size  int64 `json:"size"`
}

// Stats summarizes a subtree: file totals, the per-extension distribution,
// and the largest files.
type Stats struct {
	FileCount  int                 `json:"file_count"`
	TotalBytes int64               `json:"total_bytes"`
	Extensions map[string]*ExtStat `json:"extensions"`
	TopFiles   []FileEntry         `json:"top_files"`
	Elapsed    time.Duration       `json:"elapsed"`
}

// CountByType returns the number of files per extension under dir, keyed by
// the Extension rule. A missing directory yields an empty map.
func (e *Explorer) CountByType(dir string, opts ...Option) map[string]int {
	s := e.settings(opts)

	counts := make(map[string]int)

	start, ok := e.startDir(dir)
	if !ok {
		return counts
	}

	walk(start, "", 0, s, func(_ string, node fstree.Node) {
		if f, isFile := node.(fstree.File); isFile {
			counts[Extension(f.Name())]++
		}
	})

	return counts
}

// LargestFiles returns the n largest files under dir, size descending with
// ties broken by ascending path. An n of zero or less yields an empty
// result; an n beyond the file count returns everything.
func (e *Explorer) LargestFiles(dir string, n int, opts ...Option) []FileEntry {
	return topEntries(e.ListFiles(dir, opts...), n)
}

// Stats walks dir once and returns its totals, extension distribution, and
// the topN largest files.
func (e *Explorer) Stats(dir string, topN int, opts ...Option) *Stats {
	s := e.settings(opts)

	started := time.Now()
	c := newCollector()

	if start, ok := e.startDir(dir); ok {
		walk(start, "", 0, s, func(path string, node fstree.Node) {
			if f, isFile := node.(fstree.File); isFile {
				c.add(path, f)
			}
		})
	}

	stats := c.finalize(topN, time.Since(started))

	s.log.Debug().
		Str("dir", dir).
		Int("files", stats.FileCount).
		Int64("bytes", stats.TotalBytes).
		Dur("elapsed", stats.Elapsed).
		Msg("stats collected")

	return stats
}

// collector accumulates walk results before they are shaped into Stats.
type collector struct {
	files      int
	bytes      int64
	extensions map[string]*ExtStat
	entries    []FileEntry
}

func newCollector() *collector {
	return &collector{extensions: make(map[string]*ExtStat)}
}

func (c *collector) add(filePath string, f fstree.File) {
	c.files++
	c.bytes += f.Size()

	ext := Extension(f.Name())

	stat, ok := c.extensions[ext]
	if !ok {
		stat = &ExtStat{}
		c.extensions[ext] = stat
	}

	stat.Count++
	stat.Size += f.Size()

	c.entries = append(c.entries, FileEntry{Path: filePath, Size: f.Size()})
}

func (c *collector) finalize(topN int, elapsed time.Duration) *Stats {
	return &Stats{
		FileCount:  c.files,
		TotalBytes: c.bytes,
		Extensions: c.extensions,
		TopFiles:   topEntries(c.entries, topN),
		Elapsed:    elapsed,
	}
}

// topEntries returns the n largest entries, sorted by size descending with
// ties broken by ascending path. It reorders entries in place.
func topEntries(entries []FileEntry, n int) []FileEntry {
	if n <= 0 {
		return make([]FileEntry, 0)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Size != entries[j].Size {
			return entries[i].Size > entries[j].Size
		}

		return entries[i].Path < entries[j].Path
	})

	if len(entries) > n {
		entries = entries[:n]
	}

	return entries
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"fsx/internal/explorer"
	"fsx/internal/fstree"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// PrintJSON outputs any result document in indented JSON format.
func PrintJSON(v any, writer io.Writer) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintEntries outputs a file listing as an aligned table with a count and
// size footer.
func PrintEntries(entries []explorer.FileEntry, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	var total int64

	for _, entry := range entries {
		total += entry.Size

		fmt.Fprintf(w, "%s\t%s\n", entry.Path, explorer.FormatSize(entry.Size))
	}

	fmt.Fprintf(w, "\nTotal:\t%d files, %s\n", len(entries), explorer.FormatSize(total))

	return w.Flush()
}

// PrintCounts outputs a per-extension distribution sorted by extension.
func PrintCounts(counts map[string]int, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	exts := make([]string, 0, len(counts))
	total := 0

	for ext, count := range counts {
		exts = append(exts, ext)
		total += count
	}

	sort.Strings(exts)

	for _, ext := range exts {
		fmt.Fprintf(w, "%s:\t%d files\n", ext, counts[ext])
	}

	fmt.Fprintf(w, "\nTotal:\t%d files, %d types\n", total, len(exts))

	return w.Flush()
}

// PrintSize outputs one subtree's total size.
func PrintSize(size int64, writer io.Writer) error {
	_, err := fmt.Fprintf(writer, "Total size: %s (%s bytes)\n",
		explorer.FormatSize(size), humanize.Comma(size))

	return err
}

// PrintTree renders a directory as an ASCII tree, directories suffixed with
// a slash and files annotated with their sizes. The label stands in for the
// subtree root, "." when empty.
func PrintTree(label string, dir *fstree.Dir, writer io.Writer) error {
	if label == "" {
		label = "."
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", label)
	writeTreeLevel(&b, dir, "")

	if _, err := io.WriteString(writer, b.String()); err != nil {
		return fmt.Errorf("writing tree: %w", err)
	}

	return nil
}

// writeTreeLevel renders one directory level with box-drawing markers.
func writeTreeLevel(b *strings.Builder, dir *fstree.Dir, prefix string) {
	i := 0

	for child := range dir.Entries() {
		i++

		marker, childPrefix := "├── ", prefix+"│   "
		if i == dir.Len() {
			marker, childPrefix = "└── ", prefix+"    "
		}

		switch c := child.(type) {
		case fstree.File:
			fmt.Fprintf(b, "%s%s%s (%s)\n", prefix, marker, c.Name(), explorer.FormatSize(c.Size()))
		case *fstree.Dir:
			fmt.Fprintf(b, "%s%s%s/\n", prefix, marker, c.Name())
			writeTreeLevel(b, c, childPrefix)
		}
	}
}

package cli

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"fsx/internal/config"
	"fsx/internal/explorer"
)

// Report is the full exploration document: summary and distribution
// statistics, the configured example searches, and an optional directory
// focus.
type Report struct {
	Stats       *explorer.Stats      `json:"stats"`
	Extension   string               `json:"extension"`
	ExtMatches  []explorer.FileEntry `json:"extension_matches"`
	Pattern     string               `json:"pattern"`
	NameMatches []explorer.FileEntry `json:"name_matches"`
	DirMatches  []explorer.FileEntry `json:"name_matches_with_dirs,omitempty"`
	Focus       *FocusReport         `json:"focus,omitempty"`
}

// FocusReport is the Directory Focus section: one directory's totals and
// its listing.
type FocusReport struct {
	Dir     string               `json:"dir"`
	Size    int64                `json:"size"`
	Entries []explorer.FileEntry `json:"entries"`
}

// BuildReport runs every exploration the report renders, always against the
// whole tree. A focus directory missing from the tree leaves the Focus
// section nil.
func BuildReport(e *explorer.Explorer, cfg config.ReportConfig) *Report {
	report := &Report{
		Stats:       e.Stats("", cfg.TopN),
		Extension:   cfg.Extension,
		ExtMatches:  e.FindByExtension("", cfg.Extension),
		Pattern:     cfg.Pattern,
		NameMatches: e.FindByName("", cfg.Pattern),
	}

	if cfg.IncludeDirs {
		report.DirMatches = e.FindByName("", cfg.Pattern, explorer.WithDirs())
	}

	if cfg.Focus != "" {
		if _, ok := e.Resolve(cfg.Focus); ok {
			report.Focus = &FocusReport{
				Dir:     cfg.Focus,
				Size:    e.DirectorySize(cfg.Focus),
				Entries: e.ListFiles(cfg.Focus),
			}
		}
	}

	return report
}

// PrintReport renders the report sections in their fixed order.
func PrintReport(report *Report, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "== FILE SYSTEM EXPLORER ==")

	fmt.Fprintln(w, "\nDirectory Summary")
	fmt.Fprintf(w, "  Total files:\t%d\n", report.Stats.FileCount)
	fmt.Fprintf(w, "  Total size:\t%s (%s bytes)\n",
		explorer.FormatSize(report.Stats.TotalBytes), humanize.Comma(report.Stats.TotalBytes))

	fmt.Fprintln(w, "\nFile Type Distribution")

	for _, ext := range sortedExtensions(report.Stats.Extensions) {
		stat := report.Stats.Extensions[ext]
		fmt.Fprintf(w, "  %s:\t%d files, %s\n", ext, stat.Count, explorer.FormatSize(stat.Size))
	}

	fmt.Fprintln(w, "\nSearch Results")
	fmt.Fprintf(w, "  Files with extension %q:\t%d\n", report.Extension, len(report.ExtMatches))
	writeEntryList(w, report.ExtMatches)
	fmt.Fprintf(w, "  Files with names containing %q:\t%d\n", report.Pattern, len(report.NameMatches))
	writeEntryList(w, report.NameMatches)

	if report.DirMatches != nil {
		fmt.Fprintf(w, "  Files and directories containing %q:\t%d\n", report.Pattern, len(report.DirMatches))
		writeEntryList(w, report.DirMatches)
	}

	fmt.Fprintln(w, "\nLargest Files")

	for i, f := range report.Stats.TopFiles {
		pct := 0.0
		if report.Stats.TotalBytes > 0 {
			pct = 100.0 * float64(f.Size) / float64(report.Stats.TotalBytes)
		}

		fmt.Fprintf(w, "  %d) %s\t%s (%.1f%%)\n", i+1, f.Path, explorer.FormatSize(f.Size), pct)
	}

	if report.Focus != nil {
		fmt.Fprintf(w, "\nDirectory Focus: %s\n", report.Focus.Dir)
		fmt.Fprintf(w, "  Total size:\t%s\n", explorer.FormatSize(report.Focus.Size))
		fmt.Fprintf(w, "  Files:\t%d\n", len(report.Focus.Entries))
		writeEntryList(w, report.Focus.Entries)
	}

	return w.Flush()
}

func writeEntryList(w io.Writer, entries []explorer.FileEntry) {
	for _, entry := range entries {
		fmt.Fprintf(w, "    %s\t(%s)\n", entry.Path, explorer.FormatSize(entry.Size))
	}
}

func sortedExtensions(stats map[string]*explorer.ExtStat) []string {
	exts := make([]string, 0, len(stats))
	for ext := range stats {
		exts = append(exts, ext)
	}

	sort.Strings(exts)

	return exts
}

package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"fsx/internal/explorer"
	"fsx/internal/fstree"
	"fsx/internal/scaffold"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath string
	treePath   string
	output     string
	minSize    string
	maxDepth   int
	debug      bool
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	return c.newRootCmd().Execute()
}

func (c CLI) newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "fsx",
		Short: "Explore and analyze mock file system trees",
		Long: heredoc.Doc(`
			fsx explores in-memory file system trees described by JSON documents,
			where objects are directories and integer values are file sizes in bytes.

			Run without a subcommand it prints the full exploration report: totals,
			the file type distribution, the configured example searches, and the
			largest files. Without a tree document the built-in sample tree is used.
		`),
		Example: heredoc.Doc(`
			# Full report for the built-in sample tree
			fsx

			# Full report for a tree document, as JSON
			fsx --tree fs.json --output json

			# Everything under one directory
			fsx list Documents/Projects
		`),
		Version:       c.version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := newSession(cmd, flags)
			if err != nil {
				return err
			}

			return sess.report()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Path to a config file (default: ./fsx.yaml if present)")
	pf.StringVar(&flags.treePath, "tree", "", "Path to a JSON tree document (default: built-in sample tree)")
	pf.StringVarP(&flags.output, "output", "o", "", "Output format: json or table")
	pf.StringVar(&flags.minSize, "min-size", "", "Minimum file size (e.g., 1KB)")
	pf.IntVarP(&flags.maxDepth, "depth", "d", 0, "Maximum traversal depth (0=unlimited)")
	pf.BoolVar(&flags.debug, "debug", false, "Enable debug output")

	cmd.AddCommand(
		c.newListCmd(flags),
		c.newSizeCmd(flags),
		c.newFindCmd(flags),
		c.newTypesCmd(flags),
		c.newLargestCmd(flags),
		c.newTreeCmd(flags),
		c.newInitCmd(),
	)

	return cmd
}

func (c CLI) newListCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list [path]",
		Short: "List every file under a directory",
		Long: heredoc.Doc(`
			List every file under the given directory in traversal order, with
			paths relative to it. Without a path the whole tree is listed.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd, flags)
			if err != nil {
				return err
			}

			dir := dirArg(args)
			if err := sess.checkDir(dir); err != nil {
				return err
			}

			return sess.printEntries(sess.explorer.ListFiles(dir))
		},
	}
}

func (c CLI) newSizeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "size [path]",
		Short: "Total size of everything under a directory",
		Long: heredoc.Doc(`
			Sum the sizes of every file under the given directory. A path that
			addresses a single file reports that file's own size.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd, flags)
			if err != nil {
				return err
			}

			dir := dirArg(args)
			if _, ok := sess.explorer.Resolve(dir); !ok {
				return fmt.Errorf("path %q not found in tree", dir)
			}

			size := sess.explorer.DirectorySize(dir)

			if strings.ToLower(sess.cfg.Output) == "json" {
				return PrintJSON(explorer.FileEntry{Path: dir, Size: size}, sess.stdout)
			}

			return PrintSize(size, sess.stdout)
		},
	}
}

func (c CLI) newFindCmd(flags *rootFlags) *cobra.Command {
	var (
		ext  string
		name string
		dirs bool
	)

	cmd := &cobra.Command{
		Use:   "find [path]",
		Short: "Find files by extension or name",
		Long: heredoc.Doc(`
			Search the given directory for files matching an extension or a name
			substring. Matching is case-insensitive, and paths in the output are
			relative to the searched directory.
		`),
		Example: heredoc.Doc(`
			# Every PDF in the tree
			fsx find --ext pdf

			# Files and directories named like "project", under Documents
			fsx find Documents --name project --dirs
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (ext == "") == (name == "") {
				return errors.New("exactly one of --ext or --name is required")
			}

			sess, err := newSession(cmd, flags)
			if err != nil {
				return err
			}

			dir := dirArg(args)
			if err := sess.checkDir(dir); err != nil {
				return err
			}

			var entries []explorer.FileEntry
			if ext != "" {
				entries = sess.explorer.FindByExtension(dir, ext)
			} else {
				var opts []explorer.Option
				if dirs {
					opts = append(opts, explorer.WithDirs())
				}

				entries = sess.explorer.FindByName(dir, name, opts...)
			}

			return sess.printEntries(entries)
		},
	}

	cmd.Flags().StringVarP(&ext, "ext", "x", "", "File extension to match (e.g., pdf)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Name substring to match")
	cmd.Flags().BoolVar(&dirs, "dirs", false, "Include matching directories in name searches")

	return cmd
}

func (c CLI) newTypesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "types [path]",
		Short: "Count files by extension",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd, flags)
			if err != nil {
				return err
			}

			dir := dirArg(args)
			if err := sess.checkDir(dir); err != nil {
				return err
			}

			counts := sess.explorer.CountByType(dir)

			if strings.ToLower(sess.cfg.Output) == "json" {
				return PrintJSON(counts, sess.stdout)
			}

			return PrintCounts(counts, sess.stdout)
		},
	}
}

func (c CLI) newLargestCmd(flags *rootFlags) *cobra.Command {
	var topN int

	cmd := &cobra.Command{
		Use:   "largest [path]",
		Short: "Show the largest files under a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd, flags)
			if err != nil {
				return err
			}

			dir := dirArg(args)
			if err := sess.checkDir(dir); err != nil {
				return err
			}

			n := topN
			if !cmd.Flags().Changed("top") {
				n = sess.cfg.Report.TopN
			}

			return sess.printEntries(sess.explorer.LargestFiles(dir, n))
		},
	}

	cmd.Flags().IntVarP(&topN, "top", "t", 10, "Number of top files to display")

	return cmd
}

func (c CLI) newTreeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tree [path]",
		Short: "Render a directory as an ASCII tree",
		Long: heredoc.Doc(`
			Render the given directory's structure with box-drawing markers,
			directories suffixed with a slash and files with their sizes. With
			--output json the subtree is written back out as a tree document.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd, flags)
			if err != nil {
				return err
			}

			dir := dirArg(args)
			if err := sess.checkDir(dir); err != nil {
				return err
			}

			node, _ := sess.explorer.Resolve(dir)
			start := node.(*fstree.Dir)

			if strings.ToLower(sess.cfg.Output) == "json" {
				return fstree.Encode(sess.stdout, start)
			}

			return PrintTree(dir, start, sess.stdout)
		},
	}
}

func (c CLI) newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter fsx.yaml to the working directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rendered, err := scaffold.Render()
			if err != nil {
				return fmt.Errorf("rendering starter config: %w", err)
			}

			const path = "fsx.yaml"

			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists, use --force to overwrite", path)
				}
			}

			if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing fsx.yaml")

	return cmd
}

// dirArg returns the optional path argument, "" meaning the tree root.
func dirArg(args []string) string {
	if len(args) == 0 {
		return ""
	}

	return args[0]
}

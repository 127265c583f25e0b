package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"fsx/internal/config"
	"fsx/internal/explorer"
	"fsx/internal/fstree"
)

// session carries everything a command needs once flags, configuration, and
// the tree document are reconciled.
type session struct {
	cfg      *config.Config
	explorer *explorer.Explorer
	log      zerolog.Logger
	stdout   io.Writer
}

// newSession loads configuration, applies flag overrides, loads the tree
// document, and builds the explorer the command will query.
func newSession(cmd *cobra.Command, flags *rootFlags) (*session, error) {
	if flags.maxDepth < 0 {
		return nil, errors.New("depth cannot be negative")
	}

	log := newLogger(flags.debug)

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	// Flags beat the file and the environment, but only when actually set.
	if cmd.Flags().Changed("tree") {
		cfg.Tree = flags.treePath
	}

	if cmd.Flags().Changed("output") {
		cfg.Output = flags.output
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	root, err := loadTree(cfg.Tree, log)
	if err != nil {
		return nil, err
	}

	opts := []explorer.Option{explorer.WithLogger(log)}

	if flags.maxDepth > 0 {
		opts = append(opts, explorer.WithMaxDepth(flags.maxDepth))
	}

	if flags.minSize != "" {
		size, err := humanize.ParseBytes(flags.minSize)
		if err != nil {
			return nil, fmt.Errorf("invalid min-size: %w", err)
		}

		opts = append(opts, explorer.WithMinSize(int64(size))) //nolint:gosec // Size conversion from humanize is safe
	}

	return &session{
		cfg:      cfg,
		explorer: explorer.New(root, opts...),
		log:      log,
		stdout:   cmd.OutOrStdout(),
	}, nil
}

// loadTree reads the configured tree document, falling back to the built-in
// sample tree when none is configured.
func loadTree(path string, log zerolog.Logger) (*fstree.Dir, error) {
	if path == "" {
		log.Debug().Msg("no tree document configured, using the sample tree")

		return fstree.Sample(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening tree document: %w", err)
	}
	defer f.Close()

	root, err := fstree.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("reading tree document %q: %w", path, err)
	}

	log.Debug().Str("path", path).Msg("tree document loaded")

	return root, nil
}

// newLogger builds the process logger, warnings and errors only unless
// debug is set. Console formatting is reserved for real terminals so piped
// stderr stays machine-readable.
func newLogger(debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	var out io.Writer = os.Stderr
	if isatty.IsTerminal(os.Stderr.Fd()) {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// report renders the full exploration report in the configured format.
func (s *session) report() error {
	report := BuildReport(s.explorer, s.cfg.Report)

	if s.cfg.Report.Focus != "" && report.Focus == nil {
		s.log.Warn().Str("dir", s.cfg.Report.Focus).Msg("focus directory not found in tree")
	}

	switch strings.ToLower(s.cfg.Output) {
	case "json":
		return PrintJSON(report, s.stdout)
	case "table":
		return PrintReport(report, s.stdout)
	default:
		return fmt.Errorf("unknown output format: %s", s.cfg.Output)
	}
}

// printEntries renders a result listing in the configured format.
func (s *session) printEntries(entries []explorer.FileEntry) error {
	if strings.ToLower(s.cfg.Output) == "json" {
		return PrintJSON(entries, s.stdout)
	}

	return PrintEntries(entries, s.stdout)
}

// checkDir rejects paths that do not address a directory in the tree. The
// empty path is the root and always passes.
func (s *session) checkDir(dir string) error {
	if dir == "" {
		return nil
	}

	node, ok := s.explorer.Resolve(dir)
	if !ok {
		return fmt.Errorf("path %q not found in tree", dir)
	}

	if _, isDir := node.(*fstree.Dir); !isDir {
		return fmt.Errorf("path %q is a file, not a directory", dir)
	}

	return nil
}

package explorer

import "github.com/rs/zerolog"

// settings are the knobs an operation runs with. An Explorer carries a
// baseline built from its constructor options; individual calls may layer
// further options on top without affecting the baseline.
type settings struct {
	maxDepth    int
	minSize     int64
	includeDirs bool
	log         zerolog.Logger
}

// Option adjusts an Explorer at construction or a single operation at the
// call site.
type Option func(*settings)

// WithMaxDepth bounds traversal to depth levels below the starting
// directory, so a depth of 1 visits only its direct entries. Zero or
// negative means unlimited.
func WithMaxDepth(depth int) Option {
	return func(s *settings) { s.maxDepth = depth }
}

// WithMinSize drops files smaller than bytes from listings, searches, and
// statistics.
func WithMinSize(bytes int64) Option {
	return func(s *settings) { s.minSize = bytes }
}

// WithDirs includes matching directories in name searches. A matched
// directory reports the total size of its contents.
func WithDirs() Option {
	return func(s *settings) { s.includeDirs = true }
}

// WithLogger attaches a logger for operational diagnostics. The default
// discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(s *settings) { s.log = log }
}

package k2go

import "github.com/hupe1980/k2go/krkc"

// Window selects a submatrix of the construction input: nr rows and nc
// columns starting at (x, y). The window dimensions must be powers of
// kr resp. kc with a common exponent.
type Window struct {
	X  int
	Y  int
	NR int
	NC int
}

type options struct {
	logger    *Logger
	listsMode krkc.ListsMode
	window    *Window
}

// Option configures the Build functions.
type Option func(*options)

// WithLogger configures the logger used for construction logging.
//
// If nil is passed, logging stays disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithListsMode selects the algorithm used by BuildFromLists. All
// modes produce the same tree; they differ in construction time and
// peak memory.
func WithListsMode(mode krkc.ListsMode) Option {
	return func(o *options) {
		o.listsMode = mode
	}
}

// WithWindow restricts construction to a submatrix of the input.
func WithWindow(x, y, nr, nc int) Option {
	return func(o *options) {
		o.window = &Window{X: x, Y: y, NR: nr, NC: nc}
	}
}

func applyOptions(opts []Option) *options {
	o := &options{
		logger:    NoopLogger(),
		listsMode: krkc.ListsModeLevels,
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

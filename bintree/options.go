package bintree

import (
	"github.com/datatrails/go-datatrails-common/logger"
)

type BuildOptions struct {
	log logger.Logger

	// capacity preallocates the arena. Zero means size it from the sequence.
	capacity int
}

type BuildOption func(*BuildOptions)

// WithLogger enables debug logging of truncated or ignored input.
func WithLogger(log logger.Logger) BuildOption {
	return func(opts *BuildOptions) {
		opts.log = log
	}
}

// WithCapacityHint preallocates the arena for n nodes. A sequence of length L
// never materializes more than L nodes, so larger hints are clamped to L.
func WithCapacityHint(n int) BuildOption {
	return func(opts *BuildOptions) {
		if n > 0 {
			opts.capacity = n
		}
	}
}

func newBuildOptions(seqLen int, opts []BuildOption) BuildOptions {
	options := BuildOptions{}
	for _, o := range opts {
		o(&options)
	}
	if options.capacity == 0 || options.capacity > seqLen {
		options.capacity = seqLen
	}
	return options
}

func (o *BuildOptions) debugf(format string, args ...any) {
	if o.log == nil {
		return
	}
	o.log.Debugf(format, args...)
}

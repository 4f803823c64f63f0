package executor

import (
	"log/slog"

	"github.com/qjebbs/go-sqlq/compiler"
)

// Options defines options of an Executor.
type Options struct {
	logger          *slog.Logger
	compilerOptions []compiler.Option
}

// Option defines a function type for setting Options.
type Option func(*Options)

// WithLogger logs every statement with its elapsed time to l,
// at debug level, or warn level if it fails.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.logger = l
	}
}

// WithCompilerOptions adds options to the compiler of the dialect,
// e.g. compiler.WithTablePrefix.
func WithCompilerOptions(opts ...compiler.Option) Option {
	return func(o *Options) {
		o.compilerOptions = append(o.compilerOptions, opts...)
	}
}

func mergeOptions(opts ...Option) *Options {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

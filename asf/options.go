package asf

import (
	"github.com/rs/zerolog"

	"github.com/robert-malhotra/go-asf/internal/object"
)

// Option configures a Scanner.
type Option func(*scanOptions)

type scanOptions struct {
	registry      *object.Registry
	logger        zerolog.Logger
	maxObjectSize uint64
	strictSize    bool
}

func defaultScanOptions() *scanOptions {
	return &scanOptions{
		registry: object.DefaultRegistry(),
		logger:   zerolog.Nop(),
	}
}

// WithRegistry sets the registry used to decode objects.
func WithRegistry(reg *Registry) Option {
	return func(o *scanOptions) {
		if reg != nil {
			o.registry = reg
		}
	}
}

// WithLogger sets the logger used for per-object diagnostics.
// Scanners are silent by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *scanOptions) {
		o.logger = logger
	}
}

// WithMaxObjectSize rejects objects whose declared size exceeds n bytes.
// Zero disables the limit.
func WithMaxObjectSize(n uint64) Option {
	return func(o *scanOptions) {
		o.maxObjectSize = n
	}
}

// WithStrictSize requires the declared size of every object to equal the
// number of bytes its decoder consumed.
func WithStrictSize() Option {
	return func(o *scanOptions) {
		o.strictSize = true
	}
}

package depot

import (
	"github.com/TheBitDrifter/depot/typeid"
	"github.com/rs/zerolog"
)

type worldOptions struct {
	logger   zerolog.Logger
	family   *typeid.Family
	capacity int
}

// WorldOption overrides one of the Config defaults for a single World.
type WorldOption func(*worldOptions)

func WithLogger(logger zerolog.Logger) WorldOption {
	return func(o *worldOptions) {
		o.logger = logger
	}
}

// WithFamily numbers the world's component types in family instead of ComponentFamily.
func WithFamily(family *typeid.Family) WorldOption {
	return func(o *worldOptions) {
		if family != nil {
			o.family = family
		}
	}
}

func WithStoreCapacity(n int) WorldOption {
	return func(o *worldOptions) {
		o.capacity = n
	}
}

package depot

import (
	jlconfig "github.com/JeremyLoy/config"
	"github.com/TheBitDrifter/depot/statsd"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds the defaults every new World starts from
var Config = config{
	StoreCapacity: 64,
	LogLevel:      "disabled",
}

type config struct {
	// StoreCapacity is the initial dense capacity of each component store.
	StoreCapacity int `config:"DEPOT_STORE_CAPACITY"`

	// LogLevel is a zerolog level name. "disabled" (or empty) silences worlds entirely.
	LogLevel string `config:"DEPOT_LOG_LEVEL"`

	StatsdAddress   string `config:"DEPOT_STATSD_ADDRESS"`
	StatsdNamespace string `config:"DEPOT_STATSD_NAMESPACE"`
}

// LoadEnv overrides the defaults with any DEPOT_* environment variables that are set.
func (c *config) LoadEnv() error {
	if err := jlconfig.FromEnv().To(c); err != nil {
		return eris.Wrap(err, "failed to load depot config from environment")
	}
	return nil
}

// SetStoreCapacity configures the initial capacity of new component stores
func (c *config) SetStoreCapacity(n int) {
	c.StoreCapacity = n
}

// SetLogLevel configures the level of the logger new worlds derive from the global zerolog logger
func (c *config) SetLogLevel(level string) {
	c.LogLevel = level
}

// InitStats installs a statsd client when StatsdAddress is set. Without an address tick metrics
// go to a no-op client.
func (c *config) InitStats(tags ...string) error {
	if c.StatsdAddress == "" {
		return nil
	}
	return statsd.Init(c.StatsdAddress, c.StatsdNamespace, tags)
}

func (c *config) logger() zerolog.Logger {
	if c.LogLevel == "" {
		return zerolog.Nop()
	}
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.Disabled {
		return zerolog.Nop()
	}
	return log.Logger.Level(level)
}

// Package statsd wraps the few statsd calls the tick loop makes.
// It keeps the datadog dependency in one place; swapping the backend only touches this file.
package statsd

import (
	"time"

	ddstatsd "github.com/DataDog/datadog-go/v5/statsd"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"
)

const defaultNamespace = "depot."

var client ddstatsd.ClientInterface = &ddstatsd.NoOpClient{}

func Client() ddstatsd.ClientInterface {
	return client
}

// SetClient replaces the global client. A nil client restores the no-op client.
func SetClient(c ddstatsd.ClientInterface) {
	if c == nil {
		c = &ddstatsd.NoOpClient{}
	}
	client = c
}

// EmitTickStat records how long a tick stage (a phase, or the whole tick) took.
func EmitTickStat(start time.Time, stage string) {
	duration := time.Since(start)
	err := Client().Timing("tick", duration, []string{"stage:" + stage}, 1)
	if err != nil {
		log.Logger.Warn().Msgf("failed to emit tick stat: %v", err)
	}
}

// EmitSystemStat records how long one system invocation took.
func EmitSystemStat(start time.Time, system, phase string) {
	duration := time.Since(start)
	err := Client().Timing("system", duration, []string{"system:" + system, "phase:" + phase}, 1)
	if err != nil {
		log.Logger.Warn().Msgf("failed to emit system stat: %v", err)
	}
}

// Init dials a statsd agent at address and installs it as the global client.
func Init(address, namespace string, tags []string) error {
	if address == "" {
		return eris.New("address must not be empty")
	}
	if namespace == "" {
		namespace = defaultNamespace
	}
	opts := []ddstatsd.Option{
		ddstatsd.WithNamespace(namespace),
	}
	if len(tags) > 0 {
		opts = append(opts, ddstatsd.WithTags(tags))
	}

	newClient, err := ddstatsd.New(address, opts...)
	if err != nil {
		return eris.Wrapf(err, "failed to create statsd client for %q", address)
	}
	client = newClient
	return nil
}

package statsd

import (
	"testing"
	"time"

	ddstatsd "github.com/DataDog/datadog-go/v5/statsd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingClient struct {
	ddstatsd.NoOpClient
	names []string
	tags  [][]string
}

func (c *recordingClient) Timing(name string, _ time.Duration, tags []string, _ float64) error {
	c.names = append(c.names, name)
	c.tags = append(c.tags, tags)
	return nil
}

func TestDefaultClientIsNoOp(t *testing.T) {
	_, ok := Client().(*ddstatsd.NoOpClient)
	assert.True(t, ok)

	// Emitting against the no-op client never fails.
	EmitTickStat(time.Now(), "tick")
	EmitSystemStat(time.Now(), "movement", "tick")
}

func TestInitRejectsEmptyAddress(t *testing.T) {
	err := Init("", "", nil)
	require.Error(t, err)
	_, ok := Client().(*ddstatsd.NoOpClient)
	assert.True(t, ok, "failed init must keep the previous client")
}

func TestEmitUsesInstalledClient(t *testing.T) {
	rec := &recordingClient{}
	SetClient(rec)
	t.Cleanup(func() { SetClient(nil) })

	EmitTickStat(time.Now(), "tickBegin")
	EmitSystemStat(time.Now(), "movement", "tick")

	require.Equal(t, []string{"tick", "system"}, rec.names)
	assert.Equal(t, []string{"stage:tickBegin"}, rec.tags[0])
	assert.Equal(t, []string{"system:movement", "phase:tick"}, rec.tags[1])
}

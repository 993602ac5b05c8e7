package statsd

import (
	"testing"
	"time"

	ddstatsd "github.com/DataDog/datadog-go/v5/statsd"
	"gotest.tools/v3/assert"
)

func TestInitRejectsEmptyAddress(t *testing.T) {
	err := Init("", nil)
	assert.ErrorContains(t, err, "address must not be empty")
}

func TestDefaultClientIsNoOp(t *testing.T) {
	_, ok := Client().(*ddstatsd.NoOpClient)
	assert.Check(t, ok, "client should default to the no-op implementation")

	// Emitters must be safe to call against the no-op client.
	EmitPoolStat("entity", true)
	EmitPoolStat("buffer", false)
	EmitReleaseStat(time.Now(), "entity")
}

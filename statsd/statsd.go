// Package statsd wraps the statsd methods the rest of the module emits. The
// datadog dependency is confined to this single file so a future move to a
// different statsd client only touches it.
package statsd

import (
	"time"

	ddstatsd "github.com/DataDog/datadog-go/v5/statsd"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"
)

var client ddstatsd.ClientInterface = &ddstatsd.NoOpClient{}

func Client() ddstatsd.ClientInterface {
	return client
}

// EmitPoolStat counts an acquire against the named pool. The hit tag
// distinguishes reuse from fresh construction.
func EmitPoolStat(pool string, hit bool) {
	tag := "miss"
	if hit {
		tag = "hit"
	}
	err := Client().Incr("pool.acquire", []string{"pool:" + pool, "result:" + tag}, 1)
	if err != nil {
		log.Logger.Warn().Msgf("failed to emit pool stat: %v", err)
	}
}

// EmitReleaseStat times a release pass over an entity.
func EmitReleaseStat(start time.Time, kind string) {
	duration := time.Since(start)
	err := Client().Timing("release", duration, []string{kind}, 1)
	if err != nil {
		log.Logger.Warn().Msgf("failed to emit release stat: %v", err)
	}
}

func Init(address string, tags []string) error {
	if address == "" {
		return eris.New("address must not be empty")
	}
	opts := []ddstatsd.Option{
		// The statsd namespace is the prefix of all metrics
		ddstatsd.WithNamespace("entx"),
	}
	if len(tags) > 0 {
		opts = append(opts, ddstatsd.WithTags(tags))
	}

	newClient, err := ddstatsd.New(address, opts...)
	if err != nil {
		return err
	}
	// Success! replace the global client
	client = newClient
	return nil
}

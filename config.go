package entx

import (
	jlconfig "github.com/JeremyLoy/config"
)

type Config struct {
	// EntityPoolCapacity bounds how many released entities are retained for
	// reuse. Releases past the bound fall to the garbage collector.
	EntityPoolCapacity int `config:"ENTX_ENTITY_POOL_CAPACITY"`
	// BufferPoolCapacity bounds the retained deferred-disposal buffers.
	BufferPoolCapacity int `config:"ENTX_BUFFER_POOL_CAPACITY"`
	// StatsdAddress, when set, points metric emission at a statsd agent.
	// Empty leaves the no-op client in place.
	StatsdAddress string `config:"ENTX_STATSD_ADDRESS"`
	LogLevel      string `config:"ENTX_LOG_LEVEL"`
}

func DefaultConfig() Config {
	return Config{
		EntityPoolCapacity: 1024,
		BufferPoolCapacity: 1024,
		LogLevel:           "info",
	}
}

// LoadConfig fills a DefaultConfig from matching environment variables.
func LoadConfig() (Config, error) {
	c := DefaultConfig()
	if err := jlconfig.FromEnv().To(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}

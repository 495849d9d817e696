package server

import (
	"log/slog"
)

// Spec holds the runtime specification for the editd server.
type Spec struct {
	Config *Config
	Log    *slog.Logger
}

// Config is the editd server configuration.
type Config struct {
	// Addr is the TCP listen address when serving over the network.
	Addr string `json:"addr,omitempty"`
	// Strict promotes validation warnings to blocking for every
	// request that does not set its own flag.
	Strict bool `json:"strict,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Addr: "localhost:9321",
	}
}

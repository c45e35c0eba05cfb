package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Default retry and trace settings, used whenever a config file is absent
// or omits a field.
const (
	DefaultRetryBudget    = 256
	DefaultTraceLevel     = "info"
	DefaultTerminalPoolSz = 8
)

// Config is Gradus's ambient settings, independent of any single build or
// generate request.
type Config struct {
	// RetryBudget bounds the Factory's generation loop (§5: "the only
	// unbounded wait is the Factory's retry loop... may be capped by the
	// caller with a retry budget").
	RetryBudget int `toml:"retry_budget"`
	// TraceLevel is one of "debug", "info", "error" — forwarded to every
	// package's tracer() via tracing.Select(key).SetTraceLevel.
	TraceLevel string `toml:"trace_level"`
	// TerminalPoolSize is loaded from the config file but read by nothing:
	// the composition step in package factory always draws from its own
	// fixed eight-letter terminal pool.
	TerminalPoolSize int `toml:"terminal_pool_size"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		RetryBudget:      DefaultRetryBudget,
		TraceLevel:       DefaultTraceLevel,
		TerminalPoolSize: DefaultTerminalPoolSz,
	}
}

// Load reads a TOML config file at path, applying its fields over the
// defaults. A missing file is not an error — Default() is returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

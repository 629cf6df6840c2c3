package engine

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the process-level configuration loaded once at startup. None
// of it is consulted from UCI `setoption` — the UCI surface in this
// engine only accepts the commands the specification lists, so tuning
// lives in this file instead.
type Config struct {
	// LogPath, if non-empty, is where structured search-pass logs are
	// written. Empty sends them to stderr.
	LogPath string `toml:"log_path"`

	// HashSizeMB sizes the transposition table. The table type exists
	// (tt.go) but search.go does not probe or store into it yet, so this
	// field has no runtime effect beyond being available for whenever
	// that wiring lands; see SPEC_FULL.md §9 for why it's deferred.
	HashSizeMB int `toml:"hash_size_mb"`

	// MaxWorkers caps how many node expansions run as their own goroutine
	// concurrently, across every search the Engine runs; zero means "use
	// GOMAXPROCS". Consumed by Engine.workerSem.
	MaxWorkers int `toml:"max_workers"`
}

// DefaultConfig mirrors what the engine runs with if no config file is
// given.
func DefaultConfig() Config {
	return Config{
		HashSizeMB: 64,
		MaxWorkers: 0,
	}
}

// LoadConfig reads a TOML config file, overlaying it onto DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("engine: loading config %q: %w", path, err)
	}
	return cfg, nil
}

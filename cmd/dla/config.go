package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/hlappal/dla/internal/lattice"
	"github.com/hlappal/dla/internal/sims/dla"
)

type fileConfig struct {
	Mode           string  `toml:"mode"`
	Size           int     `toml:"size"`
	Walkers        int     `toml:"walkers"`
	StickyFactor   float64 `toml:"sticky_factor"`
	MaxSteps       int     `toml:"max_steps"`
	Connectivity   int     `toml:"connectivity"`
	Seed           int64   `toml:"seed"`
	RetryDiscarded bool    `toml:"retry_discarded"`
	RecordEvents   bool    `toml:"record_events"`
}

// loadRunConfig overlays values from a TOML file onto the defaults. Only keys
// present in the file override; validation happens later, after flags are
// applied on top.
func loadRunConfig(path string) (dla.Config, error) {
	cfg := dla.DefaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return dla.Config{}, fmt.Errorf("load run config: %w", err)
	}

	if meta.IsDefined("mode") {
		cfg.Mode = dla.Mode(strings.TrimSpace(raw.Mode))
	}
	if meta.IsDefined("size") {
		cfg.Size = raw.Size
	}
	if meta.IsDefined("walkers") {
		cfg.Walkers = raw.Walkers
	}
	if meta.IsDefined("sticky_factor") {
		cfg.StickyFactor = raw.StickyFactor
	}
	if meta.IsDefined("max_steps") {
		cfg.MaxSteps = raw.MaxSteps
	}
	if meta.IsDefined("connectivity") {
		cfg.Connectivity = lattice.Connectivity(raw.Connectivity)
	}
	if meta.IsDefined("seed") {
		cfg.Seed = raw.Seed
	}
	if meta.IsDefined("retry_discarded") {
		cfg.RetryDiscarded = raw.RetryDiscarded
	}
	if meta.IsDefined("record_events") {
		cfg.RecordEvents = raw.RecordEvents
	}
	return cfg, nil
}

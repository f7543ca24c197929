package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Releases int
	Seed     int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "dla-central", Scale: 5, TPS: 60, Releases: 120, Seed: 1337}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frame updates per second")
	fs.IntVar(&c.Releases, "releases", c.Releases, "walker releases per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
}

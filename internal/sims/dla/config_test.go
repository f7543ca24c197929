package dla

import (
	"errors"
	"testing"

	"github.com/hlappal/dla/internal/lattice"
)

func TestValidateSentinels(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"size too small", func(c *Config) { c.Size = 2 }, ErrInvalidSize},
		{"zero walkers", func(c *Config) { c.Walkers = 0 }, ErrInvalidWalkerCount},
		{"negative walkers", func(c *Config) { c.Walkers = -5 }, ErrInvalidWalkerCount},
		{"zero sticky", func(c *Config) { c.StickyFactor = 0 }, ErrInvalidStickyFactor},
		{"sticky above one", func(c *Config) { c.StickyFactor = 1.5 }, ErrInvalidStickyFactor},
		{"negative max steps", func(c *Config) { c.MaxSteps = -1 }, ErrInvalidMaxSteps},
		{"bad mode", func(c *Config) { c.Mode = "spiral" }, ErrInvalidMode},
		{"bad connectivity", func(c *Config) { c.Connectivity = 6 }, ErrInvalidConnectivity},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestFromMapParsesKnownKeys(t *testing.T) {
	c := FromMap(map[string]string{
		"mode":            "surface",
		"size":            "64",
		"walkers":         "250",
		"sticky":          "0.4",
		"max_steps":       "5000",
		"connectivity":    "8",
		"seed":            "42",
		"retry_discarded": "true",
		"record_events":   "true",
		"record_trail":    "true",
	})
	if c.Mode != ModeSurface {
		t.Fatalf("mode = %q", c.Mode)
	}
	if c.Size != 64 || c.Walkers != 250 || c.MaxSteps != 5000 {
		t.Fatalf("unexpected ints: size=%d walkers=%d max_steps=%d", c.Size, c.Walkers, c.MaxSteps)
	}
	if c.StickyFactor != 0.4 {
		t.Fatalf("sticky = %g", c.StickyFactor)
	}
	if c.Connectivity != lattice.Moore {
		t.Fatalf("connectivity = %d", c.Connectivity)
	}
	if c.Seed != 42 {
		t.Fatalf("seed = %d", c.Seed)
	}
	if !c.RetryDiscarded || !c.RecordEvents || !c.RecordTrail {
		t.Fatalf("flags not parsed: %+v", c)
	}
}

func TestFromMapKeepsDefaultsOnBadValues(t *testing.T) {
	def := DefaultConfig()
	c := FromMap(map[string]string{
		"mode":         "diagonal",
		"size":         "2",
		"walkers":      "zero",
		"sticky":       "1.7",
		"max_steps":    "-3",
		"connectivity": "5",
	})
	if c != def {
		t.Fatalf("bad values leaked into config: %+v", c)
	}
}

func TestFromMapNilReturnsDefaults(t *testing.T) {
	if c := FromMap(nil); c != DefaultConfig() {
		t.Fatalf("nil map produced %+v", c)
	}
}

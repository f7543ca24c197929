package dla

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/hlappal/dla/internal/lattice"
)

// Mode selects the growth geometry.
type Mode string

const (
	// ModeCentral grows the aggregate outward from a point seed at the
	// lattice center, releasing walkers on the outer edge ring.
	ModeCentral Mode = "central"
	// ModeSurface grows the aggregate upward from a seeded bottom row,
	// releasing walkers along the top edge.
	ModeSurface Mode = "surface"
)

// Validation errors surfaced by Config.Validate.
var (
	ErrInvalidSize         = lattice.ErrInvalidSize
	ErrInvalidWalkerCount  = errors.New("walker count must be positive")
	ErrInvalidStickyFactor = errors.New("sticky factor must be in (0, 1]")
	ErrInvalidMaxSteps     = errors.New("max steps must not be negative")
	ErrInvalidMode         = errors.New("unknown growth mode")
	ErrInvalidConnectivity = errors.New("connectivity must be 4 or 8")
)

// Config controls a single aggregation run.
type Config struct {
	Mode Mode

	// Size is the lattice side length.
	Size int
	// Walkers is the release budget N. Whether N counts releases or
	// successful depositions depends on RetryDiscarded.
	Walkers int
	// StickyFactor is the adherence probability per qualifying contact,
	// in (0, 1]. 1.0 sticks deterministically on first contact.
	StickyFactor float64
	// MaxSteps bounds the random walk per release. 0 means unbounded.
	MaxSteps int

	Connectivity lattice.Connectivity
	Seed         int64

	// RetryDiscarded makes discarded releases not count toward Walkers, so
	// the run ends after exactly Walkers depositions.
	RetryDiscarded bool
	// RecordEvents retains the ordered growth-event sequence on the engine.
	RecordEvents bool
	// RecordTrail keeps the most recent walker's trajectory for display.
	RecordTrail bool
}

// DefaultConfig returns the standard configuration: a 120x120 lattice,
// 1000 walkers, deterministic sticking, central growth.
func DefaultConfig() Config {
	return Config{
		Mode:         ModeCentral,
		Size:         120,
		Walkers:      1000,
		StickyFactor: 1.0,
		MaxSteps:     0,
		Connectivity: lattice.VonNeumann,
		Seed:         1337,
	}
}

// Validate checks the configuration, returning the first violation found.
func (c Config) Validate() error {
	if c.Size < 3 {
		return fmt.Errorf("size %d: %w", c.Size, ErrInvalidSize)
	}
	if c.Walkers <= 0 {
		return fmt.Errorf("walkers %d: %w", c.Walkers, ErrInvalidWalkerCount)
	}
	if c.StickyFactor <= 0 || c.StickyFactor > 1 {
		return fmt.Errorf("sticky factor %g: %w", c.StickyFactor, ErrInvalidStickyFactor)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("max steps %d: %w", c.MaxSteps, ErrInvalidMaxSteps)
	}
	if c.Mode != ModeCentral && c.Mode != ModeSurface {
		return fmt.Errorf("mode %q: %w", c.Mode, ErrInvalidMode)
	}
	if !c.Connectivity.Valid() {
		return fmt.Errorf("connectivity %d: %w", int(c.Connectivity), ErrInvalidConnectivity)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unparsable or out-of-range entries leave the defaults in place.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["mode"]; ok {
		if m := Mode(v); m == ModeCentral || m == ModeSurface {
			c.Mode = m
		}
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 3 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["walkers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Walkers = parsed
		}
	}
	if v, ok := cfg["sticky"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && parsed <= 1 {
			c.StickyFactor = parsed
		}
	}
	if v, ok := cfg["max_steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MaxSteps = parsed
		}
	}
	if v, ok := cfg["connectivity"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			if conn := lattice.Connectivity(parsed); conn.Valid() {
				c.Connectivity = conn
			}
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["retry_discarded"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.RetryDiscarded = parsed
		}
	}
	if v, ok := cfg["record_events"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.RecordEvents = parsed
		}
	}
	if v, ok := cfg["record_trail"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.RecordTrail = parsed
		}
	}
	return c
}

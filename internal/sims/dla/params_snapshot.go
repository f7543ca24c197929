package dla

import (
	"strconv"

	"github.com/hlappal/dla/internal/core"
)

// Parameters reports the current configuration and run counters for the HUD.
func (e *Engine) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Run",
			Params: []core.Parameter{
				{Key: "mode", Label: "Mode", Value: string(e.cfg.Mode)},
				intParam("size", "Lattice side", e.cfg.Size),
				intParam("walkers", "Walkers", e.cfg.Walkers),
				int64Param("seed", "Seed", e.cfg.Seed),
			},
		},
		{
			Name: "Walk",
			Params: []core.Parameter{
				floatParam("sticky", "Sticky factor", e.cfg.StickyFactor),
				intParam("max_steps", "Max steps per walker", e.cfg.MaxSteps),
				intParam("connectivity", "Connectivity", int(e.cfg.Connectivity)),
			},
		},
		{
			Name: "Progress",
			Params: []core.Parameter{
				intParam("released", "Released", e.stats.Released),
				intParam("deposited", "Deposited", e.stats.Deposited),
				intParam("discarded", "Discarded", e.stats.Discarded()),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls exposes the HUD-adjustable tunables.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key:   "sticky",
			Label: "Sticky factor",
			Type:  core.ParamTypeFloat,
			Step:  0.05,
			Min:   0.05, Max: 1,
			HasMin: true, HasMax: true,
		},
		{
			Key:    "max_steps",
			Label:  "Max steps",
			Type:   core.ParamTypeInt,
			Step:   1000,
			Min:    0,
			HasMin: true,
		},
		{
			Key:    "walkers",
			Label:  "Walkers",
			Type:   core.ParamTypeInt,
			Step:   100,
			Min:    1,
			HasMin: true,
		},
	}
}

// SetFloatParameter updates a float tunable, clamping to its valid range.
// Changes apply to walkers released after the call.
func (e *Engine) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "sticky":
		if value > 1 {
			value = 1
		}
		if value <= 0 {
			return false
		}
		e.cfg.StickyFactor = value
		return true
	}
	return false
}

// SetIntParameter updates an integer tunable, clamping to its valid range.
func (e *Engine) SetIntParameter(key string, value int) bool {
	switch key {
	case "max_steps":
		if value < 0 {
			value = 0
		}
		e.cfg.MaxSteps = value
		return true
	case "walkers":
		if value < 1 {
			return false
		}
		e.cfg.Walkers = value
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'g', -1, 64)}
}

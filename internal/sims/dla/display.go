package dla

import (
	"image/color"

	"github.com/hlappal/dla/internal/lattice"
)

// Display encoding: 0 is empty, 1 is a seed cell, and 2..255 bucket the
// deposition order so the renderer can color the aggregate by age.
const (
	displayEmpty uint8 = 0
	displaySeed  uint8 = 1

	displayAgeFirst = 2
	displayAgeLast  = 255
)

var dlaPalette = buildPalette()

// Cells exposes the age-encoded display buffer.
func (e *Engine) Cells() []uint8 { return e.display }

// Palette exposes the color palette matching the display encoding.
func (e *Engine) Palette() []color.RGBA { return dlaPalette }

// Trail returns the most recent walker's trajectory. Empty unless the config
// sets RecordTrail.
func (e *Engine) Trail() []lattice.Point { return e.trail }

// TrailMask rasterizes the recorded trail into a per-cell intensity buffer
// for the overlay.
func (e *Engine) TrailMask() []float32 {
	mask := make([]float32, e.cfg.Size*e.cfg.Size)
	for _, p := range e.trail {
		if e.lat.InBounds(p) {
			mask[e.lat.Index(p)] = 1
		}
	}
	return mask
}

// ReleaseMask marks the cells walkers are released from: the edge ring in
// central mode, the top row in surface mode.
func (e *Engine) ReleaseMask() []float32 {
	side := e.cfg.Size
	mask := make([]float32, side*side)
	if e.cfg.Mode == ModeSurface {
		for x := 0; x < side; x++ {
			mask[x] = 1
		}
		return mask
	}
	for x := 0; x < side; x++ {
		mask[x] = 1
		mask[(side-1)*side+x] = 1
	}
	for y := 1; y < side-1; y++ {
		mask[y*side] = 1
		mask[y*side+side-1] = 1
	}
	return mask
}

func (e *Engine) resetDisplay() {
	cells := e.lat.Cells()
	for i := range e.display {
		if cells[i] != 0 {
			e.display[i] = displaySeed
		} else {
			e.display[i] = displayEmpty
		}
	}
}

// markDeposit writes the age bucket for the deposition that just happened.
func (e *Engine) markDeposit(p lattice.Point) {
	span := e.cfg.Walkers - 1
	bucket := 0
	if span > 0 {
		bucket = e.stats.Deposited * (displayAgeLast - displayAgeFirst) / span
	}
	if bucket > displayAgeLast-displayAgeFirst {
		bucket = displayAgeLast - displayAgeFirst
	}
	e.display[e.lat.Index(p)] = uint8(displayAgeFirst + bucket)
}

// buildPalette maps the display encoding to colors: black background, white
// seeds, and a cold-to-hot ramp over deposition age.
func buildPalette() []color.RGBA {
	palette := make([]color.RGBA, 256)
	palette[displayEmpty] = color.RGBA{R: 8, G: 8, B: 12, A: 255}
	palette[displaySeed] = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for i := displayAgeFirst; i <= displayAgeLast; i++ {
		t := float64(i-displayAgeFirst) / float64(displayAgeLast-displayAgeFirst)
		palette[i] = rampColor(t)
	}
	return palette
}

// rampColor interpolates deep blue through teal to yellow as t runs 0..1.
func rampColor(t float64) color.RGBA {
	switch {
	case t < 0.5:
		u := t * 2
		return lerpRGBA(color.RGBA{R: 40, G: 60, B: 180, A: 255}, color.RGBA{R: 40, G: 180, B: 160, A: 255}, u)
	default:
		u := (t - 0.5) * 2
		return lerpRGBA(color.RGBA{R: 40, G: 180, B: 160, A: 255}, color.RGBA{R: 250, G: 220, B: 60, A: 255}, u)
	}
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	inv := 1 - t
	return color.RGBA{
		R: uint8(float64(a.R)*inv + float64(b.R)*t + 0.5),
		G: uint8(float64(a.G)*inv + float64(b.G)*t + 0.5),
		B: uint8(float64(a.B)*inv + float64(b.B)*t + 0.5),
		A: 255,
	}
}

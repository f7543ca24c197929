//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/hlappal/dla/internal/core"
	"github.com/hlappal/dla/internal/render"
	"github.com/hlappal/dla/internal/ui"
)

// hudWidth is the pixel width of the parameter panel.
const hudWidth = 240

type paletteProvider interface {
	Palette() []color.RGBA
}

// Game adapts a core simulation to the ebiten.Game interface. Each simulation
// step releases one walker, paced independently of the frame rate.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	pacer   *core.FixedStep

	palette []color.RGBA

	scale    int
	releases int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation. releases is the number
// of walker releases per second.
func New(sim core.Sim, scale int, seed int64, releases int) *Game {
	if releases <= 0 {
		releases = 120
	}
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(sim.Size().W, sim.Size().H),
		overlay:  ui.NewOverlay(sim, scale),
		hud:      ui.NewHUD(sim, hudWidth),
		pacer:    core.NewFixedStep(releases),
		scale:    scale,
		releases: releases,
		seed:     seed,
	}
	if provider, ok := sim.(paletteProvider); ok {
		g.palette = provider.Palette()
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.paused = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.setReleases(g.releases / 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.setReleases(g.releases * 2)
	}

	if g.overlay != nil {
		g.overlay.Update()
	}
	if g.hud != nil {
		g.hud.Update(g.sim.Size().W * g.scale)
	}

	if done, ok := g.sim.(core.Completer); ok && done.Done() {
		return nil
	}

	if g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
		return nil
	}
	if g.paused {
		return nil
	}
	for g.pacer.ShouldStep() {
		g.sim.Step()
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.palette != nil {
		g.painter.BlitPalette(screen, g.sim.Cells(), g.palette, g.scale)
	} else {
		g.painter.Blit(screen, g.sim.Cells(), color.White, color.Black, g.scale)
	}
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
	}
}

// Layout returns the logical screen size including the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + hudWidth, s.H * g.scale
}

func (g *Game) setReleases(n int) {
	if n < 1 {
		n = 1
	}
	if n > 4096 {
		n = 4096
	}
	g.releases = n
	g.pacer.SetTPS(n)
}

//go:build ebiten

package main

import (
	"errors"
	"flag"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hlappal/dla/internal/app"
	"github.com/hlappal/dla/internal/core"
	"github.com/hlappal/dla/internal/observability"
	_ "github.com/hlappal/dla/internal/sims/dla"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	logger := observability.InitLogger("dla-view")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	var overrides kvList
	flag.Var(&overrides, "set", "simulation parameter in key=value form (repeatable)")
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		logger.Fatal().Str("sim", cfg.Sim).Msg("unknown sim")
	}

	params := map[string]string{"record_trail": "true"}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		params[parts[0]] = parts[1]
	}

	sim := factory(params)
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.Seed, cfg.Releases)

	ebiten.SetWindowTitle("dla — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal().Err(err).Msg("viewer exited")
	}
}

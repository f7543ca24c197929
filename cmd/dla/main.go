package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hlappal/dla/internal/analysis"
	"github.com/hlappal/dla/internal/lattice"
	"github.com/hlappal/dla/internal/observability"
	"github.com/hlappal/dla/internal/render"
	"github.com/hlappal/dla/internal/report"
	"github.com/hlappal/dla/internal/sims/dla"
)

func main() {
	configPath := flag.String("config", "", "optional TOML run configuration")
	mode := flag.String("mode", "", "growth mode: central or surface")
	size := flag.Int("size", 0, "lattice side length")
	walkers := flag.Int("walkers", 0, "number of walkers to release")
	sticky := flag.Float64("sticky", 0, "sticky factor in (0,1]")
	maxSteps := flag.Int("max-steps", -1, "step budget per walker (0 = unbounded)")
	connectivity := flag.Int("connectivity", 0, "neighborhood: 4 or 8")
	seed := flag.Int64("seed", 0, "simulation seed (0 keeps the default)")
	retry := flag.Bool("retry", false, "re-release discarded walkers until the walker count deposits")
	outPNG := flag.String("out", "dla.png", "output PNG path (empty disables)")
	pngScale := flag.Int("png-scale", 4, "pixel scale for the output PNG")
	plotsDir := flag.String("plots", "", "directory for analysis plots (empty disables)")
	reportPath := flag.String("report", "", "HTML report path (empty disables)")
	verbose := flag.Bool("verbose", false, "log every deposition")
	flag.Parse()

	logger := observability.InitLogger("dla")

	cfg := dla.DefaultConfig()
	if *configPath != "" {
		loaded, err := loadRunConfig(*configPath)
		if err != nil {
			logger.Fatal().Err(err).Str("path", *configPath).Msg("config file rejected")
		}
		cfg = loaded
	}

	// Flags override file values.
	if *mode != "" {
		cfg.Mode = dla.Mode(*mode)
	}
	if *size > 0 {
		cfg.Size = *size
	}
	if *walkers > 0 {
		cfg.Walkers = *walkers
	}
	if *sticky > 0 {
		cfg.StickyFactor = *sticky
	}
	if *maxSteps >= 0 {
		cfg.MaxSteps = *maxSteps
	}
	if *connectivity > 0 {
		cfg.Connectivity = lattice.Connectivity(*connectivity)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *retry {
		cfg.RetryDiscarded = true
	}
	if *reportPath != "" || *plotsDir != "" {
		cfg.RecordEvents = true
	}

	runID := uuid.NewString()
	logger = logger.With().Str("run", runID).Logger()

	engine, err := dla.New(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	logger.Info().
		Str("mode", string(cfg.Mode)).
		Int("size", cfg.Size).
		Int("walkers", cfg.Walkers).
		Float64("sticky", cfg.StickyFactor).
		Int("max_steps", cfg.MaxSteps).
		Int("connectivity", int(cfg.Connectivity)).
		Int64("seed", cfg.Seed).
		Bool("retry_discarded", cfg.RetryDiscarded).
		Msg("starting run")

	if *verbose {
		engine.SetOnGrowth(func(ev dla.GrowthEvent) {
			logger.Debug().
				Int("walker", ev.WalkerIndex).
				Int("steps", ev.Steps).
				Int("x", ev.Coord.X).
				Int("y", ev.Coord.Y).
				Msg("walker stuck")
		})
	}

	start := time.Now()
	progressEvery := cfg.Walkers / 10
	if progressEvery < 1 {
		progressEvery = 1
	}
	for !engine.Done() {
		engine.Step()
		if st := engine.Stats(); st.Released%progressEvery == 0 {
			logger.Info().
				Int("released", st.Released).
				Int("deposited", st.Deposited).
				Int("discarded", st.Discarded()).
				Msg("progress")
		}
	}
	elapsed := time.Since(start)

	st := engine.Stats()
	cluster := analysis.Cluster(engine.Lattice())
	logger.Info().
		Dur("elapsed", elapsed).
		Int("released", st.Released).
		Int("deposited", st.Deposited).
		Int("discarded_oob", st.DiscardedOOB).
		Int("discarded_budget", st.DiscardedBudget).
		Int("discarded_release", st.DiscardedRelease).
		Int("occupied", cluster.Occupied).
		Float64("gyration_radius", cluster.GyrationRadius).
		Msg("run complete")

	if cfg.Mode == dla.ModeCentral {
		mid := cfg.Size / 2
		center := lattice.Point{X: mid, Y: mid}
		if dim, rsq, err := analysis.MassRadiusDimension(engine.Lattice(), center); err == nil {
			logger.Info().Float64("dimension", dim).Float64("r2", rsq).Msg("mass-radius fit")
		}
	} else {
		heights := analysis.SurfaceProfile(engine.Lattice())
		logger.Info().
			Float64("mean_height", analysis.MeanHeight(heights)).
			Float64("interface_width", analysis.InterfaceWidth(heights)).
			Msg("surface profile")
	}

	if *outPNG != "" {
		if err := render.WritePNG(*outPNG, engine.Cells(), cfg.Size, engine.Palette(), *pngScale); err != nil {
			logger.Fatal().Err(err).Msg("png export failed")
		}
		logger.Info().Str("path", *outPNG).Msg("wrote lattice image")
	}

	if *plotsDir != "" {
		writePlots(logger, *plotsDir, engine, cfg)
	}

	if *reportPath != "" {
		meta := report.RunMeta{
			ID:      runID,
			Mode:    string(cfg.Mode),
			Size:    cfg.Size,
			Walkers: cfg.Walkers,
			Seed:    cfg.Seed,
			Sticky:  cfg.StickyFactor,
			Stats:   st,
		}
		if err := report.WriteFile(*reportPath, meta, engine.Lattice(), engine.Events()); err != nil {
			logger.Fatal().Err(err).Msg("report export failed")
		}
		logger.Info().Str("path", *reportPath).Msg("wrote run report")
	}
}

func writePlots(logger zerolog.Logger, dir string, engine *dla.Engine, cfg dla.Config) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Fatal().Err(err).Str("dir", dir).Msg("plot directory")
	}

	events := engine.Events()
	if len(events) > 0 {
		steps := make([]float64, len(events))
		for i, ev := range events {
			steps[i] = float64(ev.Steps)
		}
		path := filepath.Join(dir, "growth.png")
		if err := analysis.SaveGrowthPlot(path, steps); err != nil {
			logger.Error().Err(err).Msg("growth plot failed")
		} else {
			logger.Info().Str("path", path).Msg("wrote growth plot")
		}
	}

	if cfg.Mode == dla.ModeCentral {
		mid := cfg.Size / 2
		radii, counts := analysis.MassRadius(engine.Lattice(), lattice.Point{X: mid, Y: mid})
		path := filepath.Join(dir, "mass_radius.png")
		if err := analysis.SaveMassRadiusPlot(path, radii, counts); err != nil {
			logger.Error().Err(err).Msg("mass-radius plot failed")
		} else {
			logger.Info().Str("path", path).Msg("wrote mass-radius plot")
		}
		return
	}

	heights := analysis.SurfaceProfile(engine.Lattice())
	path := filepath.Join(dir, "surface.png")
	if err := analysis.SaveSurfacePlot(path, heights); err != nil {
		logger.Error().Err(err).Msg("surface plot failed")
	} else {
		logger.Info().Str("path", path).Msg("wrote surface plot")
	}
}

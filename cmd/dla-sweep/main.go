package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hlappal/dla/internal/analysis"
	"github.com/hlappal/dla/internal/lattice"
	"github.com/hlappal/dla/internal/sims/dla"
)

type floatList []float64

func (l *floatList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *floatList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return err
		}
		*l = append(*l, v)
	}
	return nil
}

type scenario struct {
	sticky       float64
	connectivity lattice.Connectivity
	seed         int64
}

func (s scenario) String() string {
	return fmt.Sprintf("sticky=%.2f conn=%d seed=%d", s.sticky, int(s.connectivity), s.seed)
}

type scenarioResult struct {
	params scenario

	deposits  int
	discards  int
	meanSteps float64
	gyration  float64
	dimension float64
	elapsed   time.Duration
}

func main() {
	size := flag.Int("size", 120, "lattice side length per scenario")
	walkers := flag.Int("walkers", 1000, "walkers per scenario")
	mode := flag.String("mode", "central", "growth mode: central or surface")
	maxSteps := flag.Int("max-steps", 200000, "step budget per walker")
	seeds := flag.Int("seeds", 3, "independent seeds per parameter set")
	baseSeed := flag.Int64("base-seed", 1337, "first seed; subsequent seeds increment")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	var stickies floatList
	flag.Var(&stickies, "sticky", "comma-separated sticky factors to sweep")
	flag.Parse()

	if len(stickies) == 0 {
		stickies = floatList{0.1, 0.25, 0.5, 1.0}
	}

	var sets []scenario
	for _, sticky := range stickies {
		for _, conn := range []lattice.Connectivity{lattice.VonNeumann, lattice.Moore} {
			for s := 0; s < *seeds; s++ {
				sets = append(sets, scenario{
					sticky:       sticky,
					connectivity: conn,
					seed:         *baseSeed + int64(s),
				})
			}
		}
	}

	fmt.Printf("Sweeping %d scenarios (%d workers, %d walkers on %dx%d, %s mode)\n",
		len(sets), *workers, *walkers, *size, *size, *mode)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(params, *size, *walkers, *maxSteps, dla.Mode(*mode))
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	elapsed := time.Since(start)

	sort.Slice(all, func(i, j int) bool {
		if all[i].params.sticky != all[j].params.sticky {
			return all[i].params.sticky < all[j].params.sticky
		}
		if all[i].params.connectivity != all[j].params.connectivity {
			return all[i].params.connectivity < all[j].params.connectivity
		}
		return all[i].params.seed < all[j].params.seed
	})

	fmt.Printf("\nResults (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for _, res := range all {
		fmt.Printf("%-32s deposits=%-5d discards=%-5d meanSteps=%-9.1f gyration=%-7.2f dim=%.3f (%s)\n",
			res.params, res.deposits, res.discards, res.meanSteps, res.gyration, res.dimension,
			res.elapsed.Round(time.Millisecond))
	}
}

// runScenario evaluates one parameter set on its own engine. Engines stay
// single-threaded; the sweep parallelizes across scenarios only.
func runScenario(params scenario, size, walkers, maxSteps int, mode dla.Mode) scenarioResult {
	cfg := dla.DefaultConfig()
	cfg.Mode = mode
	cfg.Size = size
	cfg.Walkers = walkers
	cfg.StickyFactor = params.sticky
	cfg.MaxSteps = maxSteps
	cfg.Connectivity = params.connectivity
	cfg.Seed = params.seed

	start := time.Now()
	engine := dla.MustNew(cfg)
	engine.Run()
	elapsed := time.Since(start)

	st := engine.Stats()
	meanSteps := 0.0
	if st.Deposited > 0 {
		meanSteps = float64(st.TotalSteps) / float64(st.Deposited)
	}

	cluster := analysis.Cluster(engine.Lattice())
	dim := 0.0
	if mode == dla.ModeCentral {
		mid := size / 2
		if d, _, err := analysis.MassRadiusDimension(engine.Lattice(), lattice.Point{X: mid, Y: mid}); err == nil {
			dim = d
		}
	}

	return scenarioResult{
		params:    params,
		deposits:  st.Deposited,
		discards:  st.Discarded(),
		meanSteps: meanSteps,
		gyration:  cluster.GyrationRadius,
		dimension: dim,
		elapsed:   elapsed,
	}
}

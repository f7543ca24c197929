// Package report renders a self-contained HTML report for a finished run:
// the aggregate colored by deposition order and the steps-per-deposition
// series.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/hlappal/dla/internal/lattice"
	"github.com/hlappal/dla/internal/sims/dla"
)

// viridis color stops used for the deposition-order gradient.
var viridis = []string{
	"#440154", "#482777", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// RunMeta identifies and describes the run a report covers.
type RunMeta struct {
	// ID is the UUID assigned to the run.
	ID      string
	Mode    string
	Size    int
	Walkers int
	Seed    int64
	Sticky  float64

	Stats dla.Stats
}

// Render writes the HTML report for the run to w. Events must be the ordered
// growth-event sequence; seed cells are drawn with order zero.
func Render(w io.Writer, meta RunMeta, lat *lattice.Lattice, events []dla.GrowthEvent) error {
	page := components.NewPage()
	page.PageTitle = "DLA run " + meta.ID
	page.AddCharts(aggregateScatter(meta, lat, events), stepsLine(meta, events))
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

// WriteFile renders the report into an HTML file at path.
func WriteFile(path string, meta RunMeta, lat *lattice.Lattice, events []dla.GrowthEvent) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	defer f.Close()
	return Render(f, meta, lat, events)
}

func aggregateScatter(meta RunMeta, lat *lattice.Lattice, events []dla.GrowthEvent) *charts.Scatter {
	side := lat.Side()

	// Deposits carry their order; remaining occupied cells are seeds.
	order := map[lattice.Point]int{}
	for i, ev := range events {
		order[ev.Coord] = i + 1
	}

	data := make([]opts.ScatterData, 0, lat.OccupiedCount())
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			p := lattice.Point{X: x, Y: y}
			if !lat.IsOccupied(p) {
				continue
			}
			// Flip y so the chart shows the lattice the way images do.
			data = append(data, opts.ScatterData{Value: []interface{}{x, side - 1 - y, order[p]}})
		}
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "dark", Width: "820px", Height: "820px"}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("DLA aggregate — %s mode", meta.Mode),
			Subtitle: fmt.Sprintf("run=%s size=%d walkers=%d seed=%d sticky=%.2f deposits=%d discards=%d",
				meta.ID, meta.Size, meta.Walkers, meta.Seed, meta.Sticky, meta.Stats.Deposited, meta.Stats.Discarded()),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: 0, Max: side - 1}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: side - 1}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(len(events)),
			Text:       []string{"late", "early"},
			InRange:    &opts.VisualMapInRange{Color: viridis},
		}),
	)
	scatter.AddSeries("aggregate", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 4}))
	return scatter
}

func stepsLine(meta RunMeta, events []dla.GrowthEvent) *charts.Line {
	xs := make([]string, len(events))
	ys := make([]opts.LineData, len(events))
	for i, ev := range events {
		xs[i] = fmt.Sprintf("%d", i+1)
		ys[i] = opts.LineData{Value: ev.Steps}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "dark", Width: "820px", Height: "360px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Walk steps per deposition",
			Subtitle: fmt.Sprintf("run=%s", meta.ID),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	line.SetXAxis(xs)
	line.AddSeries("steps", ys)
	return line
}

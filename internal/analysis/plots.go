package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveGrowthPlot writes a PNG line chart of random-walk steps per successive
// deposition.
func SaveGrowthPlot(path string, steps []float64) error {
	if len(steps) == 0 {
		return fmt.Errorf("growth plot: no depositions to plot")
	}

	p := plot.New()
	p.Title.Text = "Steps per deposition"
	p.X.Label.Text = "Deposition"
	p.Y.Label.Text = "Walk steps"

	pts := make(plotter.XYs, len(steps))
	for i, s := range steps {
		pts[i] = plotter.XY{X: float64(i), Y: s}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("growth plot: %w", err)
	}
	p.Add(line)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("growth plot: %w", err)
	}
	return nil
}

// SaveMassRadiusPlot writes a PNG log-log scatter of N(r) against r with the
// fitted regression line whose slope estimates the fractal dimension.
func SaveMassRadiusPlot(path string, radii, counts []float64) error {
	if len(radii) < 3 || len(radii) != len(counts) {
		return fmt.Errorf("mass-radius plot: need at least 3 matching samples, have %d/%d", len(radii), len(counts))
	}

	logR := make([]float64, len(radii))
	logN := make([]float64, len(counts))
	for i := range radii {
		logR[i] = math.Log(radii[i])
		logN[i] = math.Log(counts[i])
	}
	alpha, beta := stat.LinearRegression(logR, logN, nil, false)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Mass-radius scaling (dimension %.3f)", beta)
	p.X.Label.Text = "log r"
	p.Y.Label.Text = "log N(r)"

	pts := make(plotter.XYs, len(logR))
	for i := range logR {
		pts[i] = plotter.XY{X: logR[i], Y: logN[i]}
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("mass-radius plot: %w", err)
	}
	p.Add(scatter)

	fit := plotter.XYs{
		{X: logR[0], Y: alpha + beta*logR[0]},
		{X: logR[len(logR)-1], Y: alpha + beta*logR[len(logR)-1]},
	}
	line, err := plotter.NewLine(fit)
	if err != nil {
		return fmt.Errorf("mass-radius plot: %w", err)
	}
	p.Add(line)
	p.Legend.Add("fit", line)

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("mass-radius plot: %w", err)
	}
	return nil
}

// SaveSurfacePlot writes a PNG line chart of the deposit height profile.
func SaveSurfacePlot(path string, heights []float64) error {
	if len(heights) == 0 {
		return fmt.Errorf("surface plot: empty profile")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Surface profile (width %.3f)", InterfaceWidth(heights))
	p.X.Label.Text = "Column"
	p.Y.Label.Text = "Height"

	pts := make(plotter.XYs, len(heights))
	for i, h := range heights {
		pts[i] = plotter.XY{X: float64(i), Y: h}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("surface plot: %w", err)
	}
	p.Add(line)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("surface plot: %w", err)
	}
	return nil
}

package charts

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"shenanigigs/jobstats/internal/errors"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	SalaryDistributionFile = "salary_distribution.png"
	TopLocationsFile       = "top_locations.png"
	TopCompaniesFile       = "top_companies.png"
	TitleKeywordsFile      = "title_keywords.png"
)

var (
	SkyBlue      = color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}
	Coral        = color.RGBA{R: 0xff, G: 0x7f, B: 0x50, A: 0xff}
	LightGreen   = color.RGBA{R: 0x90, G: 0xee, B: 0x90, A: 0xff}
	MediumPurple = color.RGBA{R: 0x93, G: 0x70, B: 0xdb, A: 0xff}
)

type Labels struct {
	Title  string
	XLabel string
	YLabel string
}

type Bar struct {
	Label string
	Value float64
}

type Renderer struct {
	dir    string
	logger *zap.Logger
}

func NewRenderer(dir string, logger *zap.Logger) *Renderer {
	return &Renderer{dir: dir, logger: logger}
}

// Path returns where the named artifact is written.
func (r *Renderer) Path(name string) string {
	return filepath.Join(r.dir, name)
}

// Histogram renders values into bins equal-width bins spanning their range.
// A sample whose values are all equal renders as a single bar.
func (r *Renderer) Histogram(name string, values []float64, bins int, labels Labels, fill color.Color) error {
	if len(values) == 0 {
		return errors.DegenerateData(fmt.Sprintf("%s: no values to plot", name))
	}

	p := newPlot(labels)

	h, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return errors.Internal("building histogram", err)
	}
	h.FillColor = fill
	h.LineStyle.Color = color.Black
	p.Add(h)

	return r.save(p, name, 10*vg.Inch, 6*vg.Inch)
}

// HorizontalBars renders one bar per entry, the first entry at the bottom.
func (r *Renderer) HorizontalBars(name string, bars []Bar, labels Labels, fill color.Color) error {
	if len(bars) == 0 {
		return errors.DegenerateData(fmt.Sprintf("%s: no bars to plot", name))
	}

	p := newPlot(labels)

	values := make(plotter.Values, len(bars))
	names := make([]string, len(bars))
	for i, b := range bars {
		values[i] = b.Value
		names[i] = b.Label
	}

	chart, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return errors.Internal("building bar chart", err)
	}
	chart.Horizontal = true
	chart.Color = fill
	chart.LineStyle.Width = 0
	p.Add(chart)
	p.NominalY(names...)
	p.X.Min = 0

	return r.save(p, name, 12*vg.Inch, 6*vg.Inch)
}

func newPlot(labels Labels) *plot.Plot {
	p := plot.New()
	p.Title.Text = labels.Title
	p.X.Label.Text = labels.XLabel
	p.Y.Label.Text = labels.YLabel
	return p
}

func (r *Renderer) save(p *plot.Plot, name string, width, height vg.Length) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return errors.WriteFailure(fmt.Sprintf("creating chart directory %s", r.dir), err)
	}

	path := r.Path(name)
	if err := p.Save(width, height, path); err != nil {
		r.logger.Error("Failed to save chart", zap.String("file", path), zap.Error(err))
		return errors.WriteFailure(fmt.Sprintf("saving %s", path), err)
	}

	r.logger.Info("Saved chart", zap.String("file", path))
	return nil
}

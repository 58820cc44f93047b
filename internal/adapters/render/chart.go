// Package render draws the per-season bias index comparison chart.
package render

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/okian/biasindex/internal/domain/bias"
	"github.com/okian/biasindex/internal/domain/model"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Chart defaults, matching the published figure.
const (
	defaultWidthIn  = 14
	defaultHeightIn = 6
	defaultDPI      = 300
	defaultTitle    = "Comparison of Bias Index (I) Across Seasons: Ranking vs. Percentage Rule"

	xLabel = "Season"
	yLabel = "Bias Index (I)\n(<1: Fan Bias, >1: Judge Bias)"

	// barFraction is the share of a season slot taken by one bar.
	barFraction = 0.35
	// plotFraction approximates the share of the image width used by the data area.
	plotFraction = 0.85
)

// Bar and reference line colours.
var (
	rankingColor = color.NRGBA{R: 0x4c, G: 0x72, B: 0xb0, A: 0xe6} //nolint:gochecknoglobals // palette
	percentColor = color.NRGBA{R: 0xc4, G: 0x4e, B: 0x52, A: 0xe6} //nolint:gochecknoglobals // palette
	balanceColor = color.Gray{Y: 0x80}                             //nolint:gochecknoglobals // palette
	gridColor    = color.Gray{Y: 0xe0}                             //nolint:gochecknoglobals // palette
)

// Chart renders a grouped bar chart of season means to a PNG file.
type Chart struct {
	path   string
	width  vg.Length
	height vg.Length
	dpi    int
	title  string
}

// NewChart creates a renderer writing to path.
func NewChart(path string, opts ...Option) *Chart {
	c := &Chart{
		path:   path,
		width:  defaultWidthIn * vg.Inch,
		height: defaultHeightIn * vg.Inch,
		dpi:    defaultDPI,
		title:  defaultTitle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Path returns the output file.
func (c *Chart) Path() string { return c.path }

// Render draws seasons and writes the PNG, creating parent directories.
func (c *Chart) Render(ctx context.Context, seasons []model.SeasonSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := c.Plot(seasons)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteFile, err)
		}
	}

	canvas := vgimg.NewWith(vgimg.UseWH(c.width, c.height), vgimg.UseDPI(c.dpi))
	p.Draw(draw.New(canvas))

	f, err := os.Create(c.path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFile, err)
	}
	if _, err := (vgimg.PngCanvas{Canvas: canvas}).WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %w", ErrWriteFile, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFile, err)
	}
	return nil
}

// Plot builds the chart without drawing it.
func (c *Chart) Plot(seasons []model.SeasonSummary) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = c.title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Y.Min = 0
	p.Legend.Top = true

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Color = gridColor
	p.Add(grid)

	labels := make([]string, len(seasons))
	ranking := make(plotter.Values, len(seasons))
	percent := make(plotter.Values, len(seasons))
	for i, s := range seasons {
		labels[i] = strconv.Itoa(s.Season)
		ranking[i] = s.Ranking
		percent[i] = s.Percent
	}

	if len(seasons) > 0 {
		slot := c.width * plotFraction / vg.Length(len(seasons))
		barWidth := slot * barFraction

		rb, err := plotter.NewBarChart(ranking, barWidth)
		if err != nil {
			return nil, fmt.Errorf("%w: %s bars: %w", ErrBuildPlot, bias.RuleRanking, err)
		}
		rb.Color = rankingColor
		rb.LineStyle.Width = 0
		rb.Offset = -barWidth / 2

		pb, err := plotter.NewBarChart(percent, barWidth)
		if err != nil {
			return nil, fmt.Errorf("%w: %s bars: %w", ErrBuildPlot, bias.RulePercentage, err)
		}
		pb.Color = percentColor
		pb.LineStyle.Width = 0
		pb.Offset = barWidth / 2

		p.Add(rb, pb)
		p.Legend.Add("Ranking Rule", rb)
		p.Legend.Add("Percentage Rule", pb)
		p.NominalX(labels...)
		p.X.Tick.Label.Rotation = math.Pi / 2
		p.X.Tick.Label.XAlign = draw.XRight
		p.X.Tick.Label.YAlign = draw.YCenter
	} else {
		p.X.Min, p.X.Max = -0.5, 0.5
	}

	balance := plotter.NewFunction(func(float64) float64 { return bias.Balanced })
	balance.Color = balanceColor
	balance.Width = vg.Points(1.5)
	balance.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	p.Add(balance)
	p.Legend.Add("Balance (I = 1)", balance)

	if p.Y.Max < bias.Balanced {
		p.Y.Max = bias.Balanced * 1.1
	}
	return p, nil
}

package render

import "gonum.org/v1/plot/vg"

// Option applies a configuration option to the Chart.
type Option func(*Chart)

// WithSize sets the image size in inches.
func WithSize(widthIn, heightIn float64) Option {
	return func(c *Chart) {
		if widthIn > 0 && heightIn > 0 {
			c.width = vg.Length(widthIn) * vg.Inch
			c.height = vg.Length(heightIn) * vg.Inch
		}
	}
}

// WithDPI sets the raster resolution.
func WithDPI(dpi int) Option {
	return func(c *Chart) {
		if dpi > 0 {
			c.dpi = dpi
		}
	}
}

// WithTitle replaces the chart title.
func WithTitle(title string) Option {
	return func(c *Chart) {
		if title != "" {
			c.title = title
		}
	}
}

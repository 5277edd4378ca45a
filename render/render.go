package render

import (
	"fmt"
	"image/color"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/sentiscale/sentiscale/series"
)

// Options configures plot rendering.
type Options struct {
	Title     string
	YLabel    string
	Width     vg.Length
	Height    vg.Length
	Span      float64
	Reference time.Time
}

// Option is a function that modifies Options
type Option func(*Options)

// NewOptions creates Options with defaults applied
func NewOptions(opts ...Option) *Options {
	options := &Options{
		Title:  "Sentiment",
		YLabel: "score",
		Width:  10 * vg.Inch,
		Height: 4 * vg.Inch,
		Span:   0.2,
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithTitle sets the plot title
func WithTitle(title string) Option {
	return func(o *Options) {
		if title != "" {
			o.Title = title
		}
	}
}

// WithYLabel sets the vertical axis label
func WithYLabel(label string) Option {
	return func(o *Options) {
		if label != "" {
			o.YLabel = label
		}
	}
}

// WithSize sets the canvas size
func WithSize(width, height vg.Length) Option {
	return func(o *Options) {
		if width > 0 {
			o.Width = width
		}
		if height > 0 {
			o.Height = height
		}
	}
}

// WithSpan sets the smoothing span
func WithSpan(span float64) Option {
	return func(o *Options) {
		if span > 0 && span <= 1 {
			o.Span = span
		}
	}
}

// WithReference marks a vertical reference date
func WithReference(date time.Time) Option {
	return func(o *Options) { o.Reference = date }
}

// Renderer draws sentiment series as scatter plus smoothed-line plots.
type Renderer struct {
	options *Options
}

// New creates a renderer
func New(opts ...Option) *Renderer {
	return &Renderer{options: NewOptions(opts...)}
}

var palette = []color.RGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
}

// Comparison renders one or more named series on shared axes: faint daily
// scatter plus a locally smoothed line per series, with an optional marked
// reference date. The output format follows the location extension.
func (r *Renderer) Comparison(location string, named map[string]series.Series, order []string) error {
	if len(named) == 0 {
		return fmt.Errorf("render: no series to plot")
	}
	if len(order) == 0 {
		for name := range named {
			order = append(order, name)
		}
	}

	p := plot.New()
	p.Title.Text = r.options.Title
	p.Y.Label.Text = r.options.YLabel
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01"}
	p.Legend.Top = true

	var yMin, yMax float64
	first := true
	for i, name := range order {
		s, ok := named[name]
		if !ok || len(s) == 0 {
			continue
		}
		shade := palette[i%len(palette)]

		points := xys(s)
		scatter, err := plotter.NewScatter(points)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		scatter.GlyphStyle.Radius = vg.Points(1.5)
		scatter.GlyphStyle.Color = color.RGBA{R: shade.R, G: shade.G, B: shade.B, A: 0x30}
		p.Add(scatter)

		line, err := plotter.NewLine(xys(s.Lowess(r.options.Span)))
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = shade
		p.Add(line)
		p.Legend.Add(name, line)

		for _, pt := range points {
			if first {
				yMin, yMax = pt.Y, pt.Y
				first = false
				continue
			}
			if pt.Y < yMin {
				yMin = pt.Y
			}
			if pt.Y > yMax {
				yMax = pt.Y
			}
		}
	}

	if !r.options.Reference.IsZero() && !first {
		x := float64(r.options.Reference.Unix())
		marker, err := plotter.NewLine(plotter.XYs{{X: x, Y: yMin}, {X: x, Y: yMax}})
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		marker.LineStyle.Width = vg.Points(1)
		marker.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
		marker.LineStyle.Color = color.RGBA{A: 0xff}
		p.Add(marker)
	}

	if err := p.Save(r.options.Width, r.options.Height, location); err != nil {
		return fmt.Errorf("render: failed to save %s: %w", location, err)
	}
	return nil
}

func xys(s series.Series) plotter.XYs {
	points := make(plotter.XYs, len(s))
	for i, pt := range s {
		points[i].X = float64(pt.Date.Unix())
		points[i].Y = pt.Value
	}
	return points
}

// Package camel renders "camel plots": overlaid Gaussian probability
// curves, one per dated sample, with a combined density overlay and a
// custom colored legend.
package camel

import "image/color"

// LegendEntry pairs a short handle token ("a:", "Mean:") with its
// description text and the color both are drawn in.
type LegendEntry struct {
	Handle string
	Text   string
	Color  color.Color
}

// DrawOpts controls a single draw call. A nil Color asks the canvas to
// assign the next color from its palette.
type DrawOpts struct {
	Label string
	Color color.Color
	Width float64 // line width in points; 0 means the style default
}

// AxesConfig carries the fixed styling applied after all curves are drawn.
type AxesConfig struct {
	XLabel string
	YLabel string
	YMin   float64
	// SciLimits are the (high, low) base-10 exponent thresholds past which
	// tick labels switch to scientific notation.
	SciLimits [2]int
}

// Canvas abstracts the 2D plotting surface. Each draw call returns the
// color it assigned to the new artist, so callers never inspect rendered
// state after the fact.
type Canvas interface {
	// Line draws a semi-transparent curve through (xs[i], ys[i]).
	Line(xs, ys []float64, opts DrawOpts) (color.Color, error)

	// FillBetween fills the region between the curve and y=0.
	FillBetween(xs, ys []float64, opts DrawOpts) (color.Color, error)

	// Annotate places a text label at the given data coordinates.
	Annotate(x, y float64, text string, c color.Color) error

	// Legend builds the composite legend from the collected entries,
	// drawing each handle and its text in the entry's color.
	Legend(entries []LegendEntry) error

	// Axes applies axis titles, limits, and tick formatting.
	Axes(cfg AxesConfig) error
}

// Style is the explicit rendering configuration. It is passed to canvas
// constructors rather than set as process-global plotting state.
type Style struct {
	// Palette is cycled through for non-blank curves.
	Palette []color.Color

	// FillColor is used for the blank region.
	FillColor color.Color

	CurveAlpha float64
	FillAlpha  float64

	LineWidth float64 // points

	AxisFontSize       float64
	TickFontSize       float64
	LegendFontSize     float64
	AnnotationFontSize float64
}

// DefaultStyle returns the colorblind-safe palette and the font sizes used
// in publication figures.
func DefaultStyle() Style {
	return Style{
		Palette: []color.Color{
			color.NRGBA{R: 0x01, G: 0x73, B: 0xb2, A: 0xff},
			color.NRGBA{R: 0xde, G: 0x8f, B: 0x05, A: 0xff},
			color.NRGBA{R: 0x02, G: 0x9e, B: 0x73, A: 0xff},
			color.NRGBA{R: 0xd5, G: 0x5e, B: 0x00, A: 0xff},
			color.NRGBA{R: 0xcc, G: 0x78, B: 0xbc, A: 0xff},
			color.NRGBA{R: 0xca, G: 0x91, B: 0x61, A: 0xff},
			color.NRGBA{R: 0xfb, G: 0xaf, B: 0xe4, A: 0xff},
			color.NRGBA{R: 0x94, G: 0x94, B: 0x94, A: 0xff},
			color.NRGBA{R: 0xec, G: 0xe1, B: 0x33, A: 0xff},
			color.NRGBA{R: 0x56, G: 0xb4, B: 0xe9, A: 0xff},
		},
		FillColor:          color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
		CurveAlpha:         0.7,
		FillAlpha:          0.3,
		LineWidth:          1,
		AxisFontSize:       20,
		TickFontSize:       16,
		LegendFontSize:     16,
		AnnotationFontSize: 16,
	}
}

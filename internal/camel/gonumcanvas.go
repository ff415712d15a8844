package camel

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// PlotCanvas is the gonum/plot implementation of Canvas. It accumulates
// artists on a single plot which can then be saved as PNG, SVG, or PDF.
type PlotCanvas struct {
	plot  *plot.Plot
	style Style
	next  int
}

// NewPlotCanvas creates an empty plot configured with the given style.
func NewPlotCanvas(style Style) *PlotCanvas {
	if len(style.Palette) == 0 {
		style.Palette = DefaultStyle().Palette
	}
	return &PlotCanvas{
		plot:  plot.New(),
		style: style,
	}
}

// Plot exposes the underlying plot for callers that need direct access,
// for example to set a title.
func (pc *PlotCanvas) Plot() *plot.Plot { return pc.plot }

func (pc *PlotCanvas) nextColor() color.Color {
	c := pc.style.Palette[pc.next%len(pc.style.Palette)]
	pc.next++
	return c
}

// Line draws a curve. Palette colors get the style's curve alpha; an
// explicit opts.Color is used as-is. The returned color is the opaque base
// color so annotations and legend text drawn with it stay readable.
func (pc *PlotCanvas) Line(xs, ys []float64, opts DrawOpts) (color.Color, error) {
	ln, err := plotter.NewLine(makeXYs(xs, ys))
	if err != nil {
		return nil, fmt.Errorf("line %q: %w", opts.Label, err)
	}

	base := opts.Color
	if base == nil {
		base = pc.nextColor()
		ln.Color = withAlpha(base, pc.style.CurveAlpha)
	} else {
		ln.Color = base
	}

	width := opts.Width
	if width == 0 {
		width = pc.style.LineWidth
	}
	ln.Width = vg.Points(width)

	pc.plot.Add(ln)
	return base, nil
}

// FillBetween fills the region between the curve and y=0 with the style's
// fill color at fill alpha.
func (pc *PlotCanvas) FillBetween(xs, ys []float64, opts DrawOpts) (color.Color, error) {
	ln, err := plotter.NewLine(makeXYs(xs, ys))
	if err != nil {
		return nil, fmt.Errorf("fill %q: %w", opts.Label, err)
	}

	base := opts.Color
	if base == nil {
		base = pc.style.FillColor
	}
	ln.Color = withAlpha(base, pc.style.FillAlpha)
	ln.FillColor = withAlpha(base, pc.style.FillAlpha)

	pc.plot.Add(ln)
	return base, nil
}

// Annotate places a single colored text label at data coordinates.
func (pc *PlotCanvas) Annotate(x, y float64, label string, c color.Color) error {
	lbl, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: x, Y: y}},
		Labels: []string{label},
	})
	if err != nil {
		return fmt.Errorf("annotation %q: %w", label, err)
	}
	lbl.TextStyle[0].Color = c
	lbl.TextStyle[0].Font.Size = vg.Points(pc.style.AnnotationFontSize)

	pc.plot.Add(lbl)
	return nil
}

// Legend adds the custom text legend to the top-right corner.
func (pc *PlotCanvas) Legend(entries []LegendEntry) error {
	if len(entries) == 0 {
		return fmt.Errorf("legend has no entries")
	}
	pc.plot.Add(&textLegend{entries: entries, fontSize: pc.style.LegendFontSize})
	return nil
}

// Axes applies the fixed post-draw styling.
func (pc *PlotCanvas) Axes(cfg AxesConfig) error {
	p := pc.plot

	p.X.Label.Text = cfg.XLabel
	p.Y.Label.Text = cfg.YLabel
	p.X.Label.TextStyle.Font.Size = vg.Points(pc.style.AxisFontSize)
	p.Y.Label.TextStyle.Font.Size = vg.Points(pc.style.AxisFontSize)

	p.X.Tick.Label.Font.Size = vg.Points(pc.style.TickFontSize)
	p.Y.Tick.Label.Font.Size = vg.Points(pc.style.TickFontSize)

	ticker := sciTicks{hi: cfg.SciLimits[0], lo: cfg.SciLimits[1]}
	p.X.Tick.Marker = ticker
	p.Y.Tick.Marker = ticker

	p.Y.Min = cfg.YMin
	return nil
}

// Save writes the plot to a file; the format follows the extension.
func (pc *PlotCanvas) Save(widthIn, heightIn float64, path string) error {
	return pc.plot.Save(vg.Length(widthIn)*vg.Inch, vg.Length(heightIn)*vg.Inch, path)
}

// WriteTo renders the plot into w in the given format ("png", "svg",
// "pdf").
func (pc *PlotCanvas) WriteTo(w io.Writer, widthIn, heightIn float64, format string) (int64, error) {
	wt, err := pc.plot.WriterTo(vg.Length(widthIn)*vg.Inch, vg.Length(heightIn)*vg.Inch, format)
	if err != nil {
		return 0, err
	}
	return wt.WriteTo(w)
}

func makeXYs(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}

func withAlpha(c color.Color, alpha float64) color.Color {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	nrgba.A = uint8(alpha*255 + 0.5)
	return nrgba
}

// textLegend draws the composite legend as rows of colored text: a bold
// handle column ("a:", "Mean:") and a value column, each row in its
// curve's color, boxed in the top-right corner of the plot area.
type textLegend struct {
	entries  []LegendEntry
	fontSize float64
}

func (l *textLegend) Plot(c draw.Canvas, plt *plot.Plot) {
	base := plt.Title.TextStyle
	base.Font.Size = vg.Points(l.fontSize)
	base.XAlign = draw.XLeft
	base.YAlign = draw.YTop

	var handleW, textW vg.Length
	for _, e := range l.entries {
		if w := base.Rectangle(e.Handle).Max.X; w > handleW {
			handleW = w
		}
		if w := base.Rectangle(e.Text).Max.X; w > textW {
			textW = w
		}
	}

	rowH := base.Font.Size * 1.5
	pad := vg.Points(8)
	gap := vg.Points(10)
	margin := vg.Points(5)

	boxW := handleW + gap + textW + 2*pad
	boxH := rowH*vg.Length(len(l.entries)) + 2*pad
	x0 := c.Max.X - boxW - margin
	y1 := c.Max.Y - margin
	y0 := y1 - boxH

	box := []vg.Point{
		{X: x0, Y: y0},
		{X: x0 + boxW, Y: y0},
		{X: x0 + boxW, Y: y1},
		{X: x0, Y: y1},
	}
	c.FillPolygon(color.White, box)
	c.StrokeLines(draw.LineStyle{Color: color.Black, Width: vg.Points(1)},
		append(box, box[0]))

	for i, e := range l.entries {
		sty := base
		sty.Color = e.Color
		y := y1 - pad - rowH*vg.Length(i)
		c.FillText(sty, vg.Point{X: x0 + pad, Y: y}, e.Handle)
		c.FillText(sty, vg.Point{X: x0 + pad + handleW + gap, Y: y}, e.Text)
	}
}

// sciTicks wraps the default ticker and rewrites tick labels in scientific
// notation once the axis magnitude passes the configured exponent
// thresholds.
type sciTicks struct {
	hi int
	lo int
}

func (t sciTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)

	m := math.Max(math.Abs(min), math.Abs(max))
	if m == 0 {
		return ticks
	}
	exp := int(math.Floor(math.Log10(m)))
	if exp < t.hi && exp > t.lo {
		return ticks
	}

	for i := range ticks {
		if ticks[i].Label == "" {
			continue
		}
		ticks[i].Label = strconv.FormatFloat(ticks[i].Value, 'e', 1, 64)
	}
	return ticks
}

package camel

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/larry-lu/research/internal/geochron"
	"gonum.org/v1/gonum/floats"
)

// Options controls a single render.
type Options struct {
	// ExcludeBlankFromAggregate drops the blank sample from the aggregate
	// mean and from the per-curve normalization count. The blank is always
	// drawn, and its uncertainty always enters the quadrature sum.
	ExcludeBlankFromAggregate bool

	// ShowCombinedDensity overlays a kernel density estimate of the
	// aggregate-eligible ages, labeled "overall". The overlay is not added
	// to the colored legend.
	ShowCombinedDensity bool

	// SciLimits are the (high, low) exponent thresholds for scientific
	// tick notation.
	SciLimits [2]int
}

// DefaultOptions matches the figure conventions used in publications:
// blank excluded from the mean, combined density shown, scientific
// notation past 1e4 or below 1e-4.
func DefaultOptions() Options {
	return Options{
		ExcludeBlankFromAggregate: true,
		ShowCombinedDensity:       true,
		SciLimits:                 [2]int{4, -4},
	}
}

// overallColor is the neutral color for the combined density overlay and
// the "Mean:" legend entry.
var overallColor = color.Black

// Render draws one normalized Gaussian density curve per sample onto the
// canvas, in table order, annotates each curve with its group label at the
// peak, overlays the combined density when requested, and builds the
// composite legend with a final aggregate "Mean:" entry. It returns the
// aggregate summary.
func Render(table geochron.Table, c Canvas, opts Options) (geochron.Summary, error) {
	if err := table.Validate(); err != nil {
		return geochron.Summary{}, err
	}

	eligible := table
	if opts.ExcludeBlankFromAggregate {
		eligible = table.NonBlank()
	}
	if len(eligible) == 0 {
		return geochron.Summary{}, fmt.Errorf("no aggregate-eligible samples (table is all blank)")
	}
	n := float64(len(eligible))

	entries := make([]LegendEntry, 0, len(table)+1)
	for _, s := range table {
		xs := geochron.Grid(s.Age, s.Uncertainty)
		ys := geochron.NormPDF(xs, s.Age, s.Uncertainty)
		// Scale each curve by the sample count so the curves sum toward a
		// comparable total mass. This is a visual convention, not a
		// probability renormalization.
		floats.Scale(1/n, ys)

		var col color.Color
		var err error
		if s.IsBlank() {
			col, err = c.FillBetween(xs, ys, DrawOpts{Label: s.Group})
		} else {
			col, err = c.Line(xs, ys, DrawOpts{Label: s.Group})
		}
		if err != nil {
			return geochron.Summary{}, fmt.Errorf("draw %q: %w", s.Group, err)
		}

		if err := c.Annotate(s.Age*1.05, floats.Max(ys), s.Group, col); err != nil {
			return geochron.Summary{}, fmt.Errorf("annotate %q: %w", s.Group, err)
		}

		entries = append(entries, LegendEntry{
			Handle: s.Group + ":",
			Text:   fmt.Sprintf("%s ± %s yr", formatAge(s.Age), formatAge(s.Uncertainty)),
			Color:  col,
		})
	}

	if opts.ShowCombinedDensity {
		ages := make([]float64, len(eligible))
		for i, s := range eligible {
			ages[i] = s.Age
		}
		xs, ys, err := KDE(ages)
		if err != nil {
			return geochron.Summary{}, fmt.Errorf("combined density: %w", err)
		}
		if _, err := c.Line(xs, ys, DrawOpts{Label: "overall", Color: overallColor, Width: 2}); err != nil {
			return geochron.Summary{}, fmt.Errorf("draw overall density: %w", err)
		}
	}

	sum, err := geochron.Aggregate(table, opts.ExcludeBlankFromAggregate)
	if err != nil {
		return geochron.Summary{}, err
	}
	entries = append(entries, LegendEntry{
		Handle: "Mean:",
		Text:   sum.String(),
		Color:  overallColor,
	})

	if err := c.Legend(entries); err != nil {
		return geochron.Summary{}, fmt.Errorf("build legend: %w", err)
	}

	if err := c.Axes(AxesConfig{
		XLabel:    "Exposure age (yr)",
		YLabel:    "Probability",
		YMin:      0,
		SciLimits: opts.SciLimits,
	}); err != nil {
		return geochron.Summary{}, fmt.Errorf("style axes: %w", err)
	}

	return sum, nil
}

// formatAge renders an age or uncertainty without trailing zeros, the way
// the values appear in the source table.
func formatAge(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

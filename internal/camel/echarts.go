package camel

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/larry-lu/research/internal/geochron"
	"gonum.org/v1/gonum/floats"
)

// WriteHTML renders the camel plot as an interactive HTML line chart. It
// draws the same normalized curves as Render, with the blank shown as a
// filled area and the combined density as a wide black line, and puts the
// aggregate summary in the chart subtitle.
func WriteHTML(table geochron.Table, o Options, w io.Writer) error {
	if err := table.Validate(); err != nil {
		return err
	}

	eligible := table
	if o.ExcludeBlankFromAggregate {
		eligible = table.NonBlank()
	}
	if len(eligible) == 0 {
		return fmt.Errorf("no aggregate-eligible samples (table is all blank)")
	}
	n := float64(len(eligible))

	sum, err := geochron.Aggregate(table, o.ExcludeBlankFromAggregate)
	if err != nil {
		return err
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Camel plot",
			Width:     "1200px",
			Height:    "800px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Exposure ages",
			Subtitle: "Mean: " + sum.String(),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "Exposure age (yr)"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "Probability", Min: 0}),
	)

	for _, s := range table {
		xs := geochron.Grid(s.Age, s.Uncertainty)
		ys := geochron.NormPDF(xs, s.Age, s.Uncertainty)
		floats.Scale(1/n, ys)

		seriesOpts := []charts.SeriesOpts{
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
		}
		if s.IsBlank() {
			seriesOpts = append(seriesOpts,
				charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: opts.Float(0.3)}))
		}
		line.AddSeries(s.Group, lineData(xs, ys), seriesOpts...)
	}

	if o.ShowCombinedDensity {
		ages := make([]float64, len(eligible))
		for i, s := range eligible {
			ages[i] = s.Age
		}
		xs, ys, err := KDE(ages)
		if err != nil {
			return fmt.Errorf("combined density: %w", err)
		}
		line.AddSeries("overall", lineData(xs, ys),
			charts.WithLineStyleOpts(opts.LineStyle{Color: "black", Width: 2}))
	}

	if err := line.Render(w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

func lineData(xs, ys []float64) []opts.LineData {
	data := make([]opts.LineData, len(xs))
	for i := range xs {
		data[i] = opts.LineData{Value: []interface{}{xs[i], ys[i]}}
	}
	return data
}

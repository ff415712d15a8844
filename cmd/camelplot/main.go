// Command camelplot renders a camel plot from a CSV sample table: one
// Gaussian probability curve per dated sample, an optional combined
// density, and a colored legend summarizing the ages.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/larry-lu/research/internal/camel"
	"github.com/larry-lu/research/internal/geochron"
)

type config struct {
	Samples      string
	Out          string
	HTML         string
	ExcludeBlank bool
	Overall      bool
	SciLimits    string
	WidthIn      float64
	HeightIn     float64
}

func main() {
	cfg := parseFlags()

	if cfg.Samples == "" {
		log.Fatal("a sample table is required (-samples)")
	}

	table, err := geochron.LoadTable(cfg.Samples)
	if err != nil {
		log.Fatalf("failed to load sample table: %v", err)
	}

	opts := camel.DefaultOptions()
	opts.ExcludeBlankFromAggregate = cfg.ExcludeBlank
	opts.ShowCombinedDensity = cfg.Overall
	opts.SciLimits, err = parseSciLimits(cfg.SciLimits)
	if err != nil {
		log.Fatalf("bad -scilimits: %v", err)
	}

	if cfg.HTML != "" {
		f, err := os.Create(cfg.HTML)
		if err != nil {
			log.Fatalf("failed to create %s: %v", cfg.HTML, err)
		}
		defer f.Close()
		if err := camel.WriteHTML(table, opts, f); err != nil {
			log.Fatalf("failed to render HTML chart: %v", err)
		}
		log.Printf("wrote %s", cfg.HTML)
		return
	}

	pc := camel.NewPlotCanvas(camel.DefaultStyle())
	sum, err := camel.Render(table, pc, opts)
	if err != nil {
		log.Fatalf("failed to render camel plot: %v", err)
	}
	if err := pc.Save(cfg.WidthIn, cfg.HeightIn, cfg.Out); err != nil {
		log.Fatalf("failed to save %s: %v", cfg.Out, err)
	}
	log.Printf("wrote %s (%d samples, mean %s)", cfg.Out, len(table), sum)
}

func parseFlags() config {
	cfg := config{}

	flag.StringVar(&cfg.Samples, "samples", "", "Path to the sample table CSV (group,age,uncertainty)")
	flag.StringVar(&cfg.Out, "out", "camel.png", "Output image path (.png, .svg, or .pdf)")
	flag.StringVar(&cfg.HTML, "html", "", "Render an interactive HTML chart to this path instead of an image")
	flag.BoolVar(&cfg.ExcludeBlank, "exclude-blank", true, "Exclude the blank sample from the aggregate mean")
	flag.BoolVar(&cfg.Overall, "overall", true, "Overlay the combined density estimate")
	flag.StringVar(&cfg.SciLimits, "scilimits", "4,-4", "Exponent thresholds for scientific tick notation (high,low)")
	flag.Float64Var(&cfg.WidthIn, "width", 12, "Figure width in inches")
	flag.Float64Var(&cfg.HeightIn, "height", 8, "Figure height in inches")

	flag.Parse()
	return cfg
}

func parseSciLimits(s string) ([2]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return [2]int{}, fmt.Errorf("want two comma-separated integers, got %q", s)
	}
	hi, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return [2]int{}, fmt.Errorf("bad high threshold %q: %w", parts[0], err)
	}
	lo, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return [2]int{}, fmt.Errorf("bad low threshold %q: %w", parts[1], err)
	}
	if lo >= hi {
		return [2]int{}, fmt.Errorf("low threshold %d must be below high %d", lo, hi)
	}
	return [2]int{hi, lo}, nil
}

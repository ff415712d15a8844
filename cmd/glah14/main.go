// Command glah14 extracts elevation measurements from a GLAH14 granule
// table, filters them to a geographic bounding box and the product's
// quality criteria, and exports the cleaned subset as CSV, GeoJSON, or a
// SQLite catalog. The output file lands next to the input with a new
// extension.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/larry-lu/research/internal/altimetry"
	"github.com/larry-lu/research/internal/fsutil"
)

type config struct {
	In     string
	Format string
	DB     string
	BBox   altimetry.BoundingBox
}

func main() {
	cfg := parseFlags()

	if cfg.In == "" {
		log.Fatal("an input granule is required (-in)")
	}
	if _, err := os.Stat(cfg.In); err != nil {
		log.Fatalf("input granule not found: %v", err)
	}

	records, err := altimetry.LoadGranule(cfg.In)
	if err != nil {
		log.Fatalf("failed to read granule: %v", err)
	}

	rows, err := altimetry.Extract(records, cfg.BBox, altimetry.DefaultRanges())
	if err != nil {
		log.Fatalf("extraction failed: %v", err)
	}
	if len(rows) == 0 {
		log.Fatal("no records passed the filter; check the bounding box")
	}

	switch cfg.Format {
	case "csv", "geojson":
		path, err := altimetry.Export(fsutil.OSFileSystem{}, cfg.In, cfg.Format, rows)
		if err != nil {
			log.Fatalf("export failed: %v", err)
		}
		log.Printf("wrote %d rows to %s", len(rows), path)

	case "sqlite":
		dbPath := cfg.DB
		if dbPath == "" {
			dbPath = altimetry.OutputPath(cfg.In, ".db")
		}
		store, err := altimetry.OpenStore(dbPath)
		if err != nil {
			log.Fatalf("failed to open catalog: %v", err)
		}
		defer store.Close()

		runID, err := store.RecordExport(cfg.In, cfg.BBox, rows)
		if err != nil {
			log.Fatalf("failed to record export: %v", err)
		}
		log.Printf("wrote %d rows to %s (run %s)", len(rows), dbPath, runID)

	default:
		log.Fatalf("unknown output format %q (want csv, geojson, or sqlite)", cfg.Format)
	}
}

func parseFlags() config {
	cfg := config{}

	flag.StringVar(&cfg.In, "in", "", "Path to the granule table CSV")
	flag.StringVar(&cfg.Format, "format", "csv", "Output format: csv, geojson, or sqlite")
	flag.StringVar(&cfg.DB, "db", "", "Catalog path for -format sqlite (default: input base name with .db)")
	flag.Float64Var(&cfg.BBox.LonMin, "lon-min", 0, "Minimum longitude of the area of interest (0-360)")
	flag.Float64Var(&cfg.BBox.LonMax, "lon-max", 360, "Maximum longitude of the area of interest (0-360)")
	flag.Float64Var(&cfg.BBox.LatMin, "lat-min", -90, "Minimum latitude of the area of interest")
	flag.Float64Var(&cfg.BBox.LatMax, "lat-max", 90, "Maximum latitude of the area of interest")

	flag.Parse()
	return cfg
}

package altimetry

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/larry-lu/research/internal/fsutil"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// OutputPath derives the export path: same directory and base name as the
// input, with the new extension.
func OutputPath(input, ext string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + ext
}

// WriteCSV writes the cleaned rows as CSV with a fixed header.
func WriteCSV(w io.Writer, rows []Elevation) error {
	cw := csv.NewWriter(w)

	header := []string{"record_number", "date", "time", "latitude", "longitude", "elevation_corrected", "srtm"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, r := range rows {
		row := []string{
			strconv.FormatInt(r.RecordNumber, 10),
			r.Date,
			r.Time,
			fmt.Sprintf("%.6f", r.Latitude),
			fmt.Sprintf("%.6f", r.Longitude),
			fmt.Sprintf("%.3f", r.ElevationCorrected),
			fmt.Sprintf("%.3f", r.SRTM),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %d: %w", r.RecordNumber, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteGeoJSON writes the rows as an EPSG:4326 point feature collection.
func WriteGeoJSON(w io.Writer, rows []Elevation) error {
	fc := geojson.NewFeatureCollection()
	for _, r := range rows {
		f := geojson.NewFeature(orb.Point{r.Longitude, r.Latitude})
		f.Properties["record_number"] = r.RecordNumber
		f.Properties["date"] = r.Date
		f.Properties["time"] = r.Time
		f.Properties["elevation_corrected"] = r.ElevationCorrected
		f.Properties["srtm"] = r.SRTM
		fc.Append(f)
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(fc); err != nil {
		return fmt.Errorf("encode geojson: %w", err)
	}
	return nil
}

// Export writes rows in the requested format ("csv" or "geojson") to a
// file alongside the input, returning the output path.
func Export(fsys fsutil.FileSystem, inputPath, format string, rows []Elevation) (string, error) {
	var (
		path  string
		write func(io.Writer, []Elevation) error
	)
	switch format {
	case "csv":
		path = OutputPath(inputPath, ".csv")
		write = WriteCSV
	case "geojson":
		path = OutputPath(inputPath, ".geojson")
		write = WriteGeoJSON
	default:
		return "", fmt.Errorf("unknown output format %q (want csv or geojson)", format)
	}

	f, err := fsys.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f, rows); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}

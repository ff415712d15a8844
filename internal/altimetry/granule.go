package altimetry

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// granuleColumns is the fixed column order of an exported GLAH14 granule
// table. HDF5 parsing is out of scope here; granules arrive as CSV dumps
// of the 40Hz fields.
var granuleColumns = []string{
	"rec_ndx", "utc_time", "lat", "lon", "elev",
	"sat_elev_corr", "elev_bias_corr", "sat_corr_flg", "elev_use_flg",
	"geoid", "dem",
}

// LoadGranule reads a granule table from a CSV file.
func LoadGranule(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open granule: %w", err)
	}
	defer f.Close()
	return ReadGranule(f)
}

// ReadGranule parses granule rows from r. Malformed rows fail the whole
// read; a partially parsed granule is worse than no granule.
func ReadGranule(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read granule header: %w", err)
	}
	if len(header) != len(granuleColumns) {
		return nil, fmt.Errorf("granule has %d columns, want %d (%s)",
			len(header), len(granuleColumns), strings.Join(granuleColumns, ","))
	}
	for i, name := range granuleColumns {
		if !strings.EqualFold(strings.TrimSpace(header[i]), name) {
			return nil, fmt.Errorf("granule column %d is %q, want %q", i, header[i], name)
		}
	}

	var records []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read granule line %d: %w", line, err)
		}

		rec, err := parseGranuleRow(row)
		if err != nil {
			return nil, fmt.Errorf("granule line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("granule contains no data rows")
	}
	return records, nil
}

func parseGranuleRow(row []string) (Record, error) {
	fields := make([]float64, len(row))
	for i, cell := range row {
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			return Record{}, fmt.Errorf("column %s: bad value %q: %w", granuleColumns[i], cell, err)
		}
		fields[i] = v
	}

	return Record{
		RecordNumber: int64(fields[0]),
		Timestamp:    fields[1],
		Latitude:     fields[2],
		Longitude:    fields[3],
		Elevation:    fields[4],
		SatElevCorr:  fields[5],
		ElevBiasCorr: fields[6],
		SatCorrFlag:  int(fields[7]),
		ElevUseFlag:  int(fields[8]),
		Geoid:        fields[9],
		SRTM:         fields[10],
	}, nil
}

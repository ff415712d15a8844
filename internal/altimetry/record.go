// Package altimetry extracts, filters, and exports elevation measurements
// from GLAH14 satellite altimetry granules.
package altimetry

import "time"

// Epoch is the GLAS time reference: seconds in the granule's utc_time
// column count from noon UTC on 2000-01-01 (J2000).
var Epoch = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

// Quality flag acceptance values from the GLAH14 product dictionary.
const (
	// SatCorrApplied means the saturation correction was computed and
	// applied to the elevation.
	SatCorrApplied = 2

	// ElevUseGood means the elevation passed the product's own use
	// criteria.
	ElevUseGood = 0
)

// elevationOffset is the fixed instrument offset, in meters, subtracted
// from every corrected elevation.
const elevationOffset = 0.7

// Record is one raw 40Hz granule row.
type Record struct {
	RecordNumber int64
	// Timestamp is seconds since Epoch.
	Timestamp float64
	Latitude  float64
	// Longitude uses the product's 0-360 domain.
	Longitude   float64
	Elevation   float64
	SatElevCorr float64
	// ElevBiasCorr values outside their valid range are treated as zero
	// rather than invalidating the row.
	ElevBiasCorr float64
	SatCorrFlag  int
	ElevUseFlag  int
	Geoid        float64
	SRTM         float64
}

// ValidRange bounds a field. Contains is strict on both ends, matching the
// product's filtering convention.
type ValidRange struct {
	Min float64
	Max float64
}

// Contains reports whether v lies strictly inside the range.
func (r ValidRange) Contains(v float64) bool {
	return v > r.Min && v < r.Max
}

// Ranges holds the per-field valid ranges applied during extraction.
type Ranges struct {
	Elevation    ValidRange
	SatElevCorr  ValidRange
	ElevBiasCorr ValidRange
	SRTM         ValidRange
}

// DefaultRanges returns the valid ranges published in the GLAH14 product
// dictionary, in meters.
func DefaultRanges() Ranges {
	return Ranges{
		Elevation:    ValidRange{Min: -1500, Max: 9000},
		SatElevCorr:  ValidRange{Min: -5, Max: 10},
		ElevBiasCorr: ValidRange{Min: -2, Max: 2},
		SRTM:         ValidRange{Min: -1500, Max: 9000},
	}
}

// Elevation is one cleaned output row.
type Elevation struct {
	RecordNumber int64
	Date         string // YYYY/MM/DD
	Time         string // HH:MM:SS
	Latitude     float64
	// Longitude is remapped to the signed (-180, 180] convention.
	Longitude          float64
	ElevationCorrected float64
	SRTM               float64
}

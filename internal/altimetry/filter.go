package altimetry

import (
	"fmt"
	"math"
	"time"

	"github.com/larry-lu/research/internal/monitoring"
)

// BoundingBox is the geographic area of interest. Longitudes use the
// product's 0-360 input domain.
type BoundingBox struct {
	LonMin float64
	LonMax float64
	LatMin float64
	LatMax float64
}

// WholeGlobe covers every valid coordinate.
func WholeGlobe() BoundingBox {
	return BoundingBox{LonMin: 0, LonMax: 360, LatMin: -90, LatMax: 90}
}

// Validate checks the box against the input coordinate domains.
func (b BoundingBox) Validate() error {
	if b.LonMin < 0 || b.LonMax > 360 || b.LonMin >= b.LonMax {
		return fmt.Errorf("longitude bounds [%v, %v] must satisfy 0 <= min < max <= 360", b.LonMin, b.LonMax)
	}
	if b.LatMin < -90 || b.LatMax > 90 || b.LatMin >= b.LatMax {
		return fmt.Errorf("latitude bounds [%v, %v] must satisfy -90 <= min < max <= 90", b.LatMin, b.LatMax)
	}
	return nil
}

// Extract filters the raw records to the bounding box and quality criteria
// and produces corrected, signed-longitude output rows.
//
// A row is retained when its coordinates fall strictly inside the box, its
// elevation, satellite correction, and reference DEM values lie strictly
// inside their valid ranges, the saturation-correction flag equals
// SatCorrApplied, and the elevation-use flag equals ElevUseGood. A bias
// correction outside its valid range is zeroed, not rejected. The filter
// is idempotent: re-extracting the output's source rows yields the same
// subset.
func Extract(records []Record, bbox BoundingBox, ranges Ranges) ([]Elevation, error) {
	if err := bbox.Validate(); err != nil {
		return nil, fmt.Errorf("bounding box: %w", err)
	}

	out := make([]Elevation, 0, len(records))
	for _, r := range records {
		if !(r.Latitude > bbox.LatMin && r.Latitude < bbox.LatMax) {
			continue
		}
		if !(r.Longitude > bbox.LonMin && r.Longitude < bbox.LonMax) {
			continue
		}
		if !ranges.Elevation.Contains(r.Elevation) {
			continue
		}
		if !ranges.SatElevCorr.Contains(r.SatElevCorr) {
			continue
		}
		if !ranges.SRTM.Contains(r.SRTM) {
			continue
		}
		if r.SatCorrFlag != SatCorrApplied || r.ElevUseFlag != ElevUseGood {
			continue
		}

		bias := r.ElevBiasCorr
		if bias < ranges.ElevBiasCorr.Min || bias > ranges.ElevBiasCorr.Max {
			bias = 0
		}

		ts := timestampToUTC(r.Timestamp)

		out = append(out, Elevation{
			RecordNumber:       r.RecordNumber,
			Date:               ts.Format("2006/01/02"),
			Time:               ts.Format("15:04:05"),
			Latitude:           r.Latitude,
			Longitude:          RemapLongitude(r.Longitude),
			ElevationCorrected: r.Elevation + r.SatElevCorr + bias - r.Geoid - elevationOffset,
			SRTM:               r.SRTM,
		})
	}

	monitoring.Logf("extracted %d of %d records within lon [%v, %v] lat [%v, %v]",
		len(out), len(records), bbox.LonMin, bbox.LonMax, bbox.LatMin, bbox.LatMax)
	return out, nil
}

// RemapLongitude converts a 0-360 longitude to the signed convention:
// values above 180 wrap to the negative half.
func RemapLongitude(lon float64) float64 {
	if lon > 180 {
		return lon - 360
	}
	return lon
}

// timestampToUTC converts a J2000 second offset to a wall-clock time,
// truncated to whole seconds.
func timestampToUTC(seconds float64) time.Time {
	return Epoch.Add(time.Duration(math.Floor(seconds)) * time.Second)
}

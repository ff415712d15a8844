// Package geochron holds the sample model and summary statistics for
// cosmogenic-nuclide exposure-age datasets.
package geochron

import (
	"fmt"
	"math"
)

// BlankGroup is the group label reserved for the background/noise sample.
// A blank carries no true age signal: it is drawn as a filled region and
// excluded from the aggregate mean when the caller asks for it.
const BlankGroup = "blank"

// Sample is one dated sample: a group label, a mean exposure age in years,
// and a one-sigma uncertainty in years.
type Sample struct {
	Group       string
	Age         float64
	Uncertainty float64
}

// IsBlank reports whether the sample is the background curve.
func (s Sample) IsBlank() bool {
	return s.Group == BlankGroup
}

// Validate checks the sample invariants. Uncertainty must be strictly
// positive: a zero sigma would collapse the evaluation window to a single
// point, so it is rejected here rather than producing a degenerate curve.
func (s Sample) Validate() error {
	if s.Group == "" {
		return fmt.Errorf("sample has empty group label")
	}
	if math.IsNaN(s.Age) || math.IsInf(s.Age, 0) {
		return fmt.Errorf("sample %q: age %v is not finite", s.Group, s.Age)
	}
	if math.IsNaN(s.Uncertainty) || math.IsInf(s.Uncertainty, 0) {
		return fmt.Errorf("sample %q: uncertainty %v is not finite", s.Group, s.Uncertainty)
	}
	if s.Uncertainty <= 0 {
		return fmt.Errorf("sample %q: uncertainty must be > 0, got %v", s.Group, s.Uncertainty)
	}
	return nil
}

// Table is an ordered sequence of samples. Order determines draw z-order
// and legend order.
type Table []Sample

// Validate checks every sample and rejects an empty table.
func (t Table) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("sample table is empty")
	}
	for i, s := range t {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	return nil
}

// NonBlank returns the samples that are not the background curve,
// preserving order.
func (t Table) NonBlank() Table {
	out := make(Table, 0, len(t))
	for _, s := range t {
		if !s.IsBlank() {
			out = append(out, s)
		}
	}
	return out
}

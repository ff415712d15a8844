package geochron

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// GridSize is the number of evaluation points for each sample's density
// curve.
const GridSize = 100

// GridHalfWidthSigmas sets the evaluation window to mean ± 4 sigma.
const GridHalfWidthSigmas = 4.0

// Grid returns a GridSize-point evaluation grid spanning
// [mu - 4*sigma, mu + 4*sigma], inclusive of both endpoints.
func Grid(mu, sigma float64) []float64 {
	lo := mu - GridHalfWidthSigmas*sigma
	hi := mu + GridHalfWidthSigmas*sigma
	step := (hi - lo) / float64(GridSize-1)
	xs := make([]float64, GridSize)
	for i := range xs {
		xs[i] = lo + float64(i)*step
	}
	// Avoid float drift on the upper endpoint.
	xs[GridSize-1] = hi
	return xs
}

// NormPDF evaluates the Gaussian density with the given parameters at each
// grid point.
func NormPDF(xs []float64, mu, sigma float64) []float64 {
	dist := distuv.Normal{Mu: mu, Sigma: sigma}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = dist.Prob(x)
	}
	return ys
}

// Summary is the aggregate age estimate for a whole table.
type Summary struct {
	Mean        float64
	Uncertainty float64
}

// String formats the summary with integer precision, the convention used in
// legends.
func (s Summary) String() string {
	return fmt.Sprintf("%.0f ± %.0f yr", s.Mean, s.Uncertainty)
}

// Aggregate computes the combined age estimate for the table.
//
// The mean is the arithmetic mean over the aggregate-eligible subset: all
// samples, or the non-blank samples when excludeBlank is set. The combined
// uncertainty is the quadrature sum over ALL samples, blank included,
// regardless of excludeBlank. The asymmetry matches the established field
// convention for these diagrams and is deliberately not corrected here.
func Aggregate(t Table, excludeBlank bool) (Summary, error) {
	if err := t.Validate(); err != nil {
		return Summary{}, err
	}

	eligible := t
	if excludeBlank {
		eligible = t.NonBlank()
	}
	if len(eligible) == 0 {
		return Summary{}, fmt.Errorf("no aggregate-eligible samples (table is all blank)")
	}

	ages := make([]float64, len(eligible))
	for i, s := range eligible {
		ages[i] = s.Age
	}

	var sumSq float64
	for _, s := range t {
		sumSq += s.Uncertainty * s.Uncertainty
	}

	return Summary{
		Mean:        stat.Mean(ages, nil),
		Uncertainty: math.Sqrt(sumSq),
	}, nil
}

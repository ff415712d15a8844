package camel

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	kdeGridSize = 100

	// kdeCut extends the evaluation grid this many bandwidths past the
	// data extremes so the tails decay to zero on screen.
	kdeCut = 4.0

	// gaussianReferenceConstant is the normal-reference constant for a
	// Gaussian kernel, 2*((sqrt(pi)*(2!)^3*R(K)) / (4*4!*mu2(K)^2))^(1/5).
	gaussianReferenceConstant = 1.0592
)

// KDE computes a Gaussian kernel density estimate over xs on a fixed-size
// grid, using the normal-reference bandwidth. The estimate is computed
// directly from the observed values; no pseudo-samples are drawn.
func KDE(xs []float64) (grid, dens []float64, err error) {
	if len(xs) == 0 {
		return nil, nil, fmt.Errorf("kde: no observations")
	}

	bw := NormalReferenceBandwidth(xs)
	if bw <= 0 || math.IsNaN(bw) {
		return nil, nil, fmt.Errorf("kde: degenerate bandwidth %v (all observations identical?)", bw)
	}

	lo := floats.Min(xs) - kdeCut*bw
	hi := floats.Max(xs) + kdeCut*bw
	step := (hi - lo) / float64(kdeGridSize-1)

	grid = make([]float64, kdeGridSize)
	dens = make([]float64, kdeGridSize)
	n := float64(len(xs))
	for i := range grid {
		g := lo + float64(i)*step
		grid[i] = g
		var sum float64
		for _, x := range xs {
			u := (x - g) / bw
			sum += gaussianShape(u)
		}
		dens[i] = sum / (n * bw)
	}
	return grid, dens, nil
}

// NormalReferenceBandwidth returns the plug-in bandwidth
// C * A * n^(-1/5), where A is the smaller of the standard deviation and
// the normalized interquartile range.
func NormalReferenceBandwidth(xs []float64) float64 {
	return gaussianReferenceConstant * selectSigma(xs) * math.Pow(float64(len(xs)), -0.2)
}

// selectSigma picks the robust spread estimate: min(stddev, IQR/1.349),
// falling back to the standard deviation when the IQR collapses.
func selectSigma(xs []float64) float64 {
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	const normalize = 1.349
	q75 := stat.Quantile(0.75, stat.Empirical, sorted, nil)
	q25 := stat.Quantile(0.25, stat.Empirical, sorted, nil)
	iqr := (q75 - q25) / normalize

	stdDev := stat.StdDev(xs, nil)

	if iqr > 0 && iqr < stdDev {
		return iqr
	}
	return stdDev
}

func gaussianShape(u float64) float64 {
	return 0.3989422804014327 * math.Exp(-u*u/2.0)
}

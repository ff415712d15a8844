package camel

import (
	"math"
	"testing"
)

func TestKDE_Properties(t *testing.T) {
	ages := []float64{21000, 16900, 18200, 32000, 35000}

	grid, dens, err := KDE(ages)
	if err != nil {
		t.Fatalf("KDE: %v", err)
	}
	if len(grid) != kdeGridSize || len(dens) != kdeGridSize {
		t.Fatalf("grid/density lengths = %d/%d, want %d", len(grid), len(dens), kdeGridSize)
	}

	bw := NormalReferenceBandwidth(ages)
	if bw <= 0 {
		t.Fatalf("bandwidth = %v, want > 0", bw)
	}
	if got, want := grid[0], 16900-kdeCut*bw; math.Abs(got-want) > 1e-6 {
		t.Errorf("grid start = %v, want %v", got, want)
	}
	if got, want := grid[len(grid)-1], 35000+kdeCut*bw; math.Abs(got-want) > 1e-6 {
		t.Errorf("grid end = %v, want %v", got, want)
	}

	// Density is non-negative everywhere and integrates to roughly one
	// over the extended grid (trapezoid rule).
	var integral float64
	for i := 1; i < len(grid); i++ {
		if dens[i] < 0 {
			t.Fatalf("negative density %v at grid %v", dens[i], grid[i])
		}
		integral += (dens[i] + dens[i-1]) / 2 * (grid[i] - grid[i-1])
	}
	if math.Abs(integral-1) > 0.02 {
		t.Errorf("density integrates to %v, want ~1", integral)
	}
}

func TestKDE_SymmetricPeak(t *testing.T) {
	// Symmetric data: the density maximum lands at the center of mass.
	xs := []float64{10, 20, 30}
	grid, dens, err := KDE(xs)
	if err != nil {
		t.Fatalf("KDE: %v", err)
	}

	peak := 0
	for i, d := range dens {
		if d > dens[peak] {
			peak = i
		}
	}
	if math.Abs(grid[peak]-20) > (grid[1] - grid[0]) {
		t.Errorf("peak at %v, want ~20", grid[peak])
	}
}

func TestKDE_Degenerate(t *testing.T) {
	if _, _, err := KDE(nil); err == nil {
		t.Error("expected error for empty input")
	}
	if _, _, err := KDE([]float64{5, 5, 5}); err == nil {
		t.Error("expected error for identical observations")
	}
}

func TestNormalReferenceBandwidth(t *testing.T) {
	// Wide-spread data gets a wider bandwidth than tight data.
	tight := NormalReferenceBandwidth([]float64{100, 101, 102, 103})
	wide := NormalReferenceBandwidth([]float64{100, 200, 300, 400})
	if tight <= 0 || wide <= 0 {
		t.Fatalf("bandwidths must be positive: tight=%v wide=%v", tight, wide)
	}
	if wide <= tight {
		t.Errorf("wide bandwidth %v should exceed tight %v", wide, tight)
	}
}

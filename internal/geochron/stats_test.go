package geochron

import (
	"math"
	"testing"
)

func testTable() Table {
	return Table{
		{Group: "a", Age: 21000, Uncertainty: 3000},
		{Group: "b", Age: 16900, Uncertainty: 2100},
		{Group: "blank", Age: 7500, Uncertainty: 2000},
	}
}

func TestGrid_SpanAndLength(t *testing.T) {
	mu, sigma := 21000.0, 3000.0
	xs := Grid(mu, sigma)

	if len(xs) != GridSize {
		t.Fatalf("grid length = %d, want %d", len(xs), GridSize)
	}
	if xs[0] != mu-4*sigma {
		t.Errorf("grid start = %v, want %v", xs[0], mu-4*sigma)
	}
	if xs[len(xs)-1] != mu+4*sigma {
		t.Errorf("grid end = %v, want %v", xs[len(xs)-1], mu+4*sigma)
	}

	// Monotonic, evenly spaced
	step := xs[1] - xs[0]
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			t.Fatalf("grid not increasing at %d: %v <= %v", i, xs[i], xs[i-1])
		}
		if math.Abs((xs[i]-xs[i-1])-step) > 1e-6 {
			t.Errorf("uneven step at %d: %v vs %v", i, xs[i]-xs[i-1], step)
		}
	}
}

func TestNormPDF_PeakNearMean(t *testing.T) {
	mu, sigma := 18200.0, 1500.0
	xs := Grid(mu, sigma)
	ys := NormPDF(xs, mu, sigma)

	peak := 0
	for i, y := range ys {
		if y > ys[peak] {
			peak = i
		}
	}

	// The peak must land on the grid point nearest the mean.
	nearest := 0
	for i, x := range xs {
		if math.Abs(x-mu) < math.Abs(xs[nearest]-mu) {
			nearest = i
		}
	}
	if peak != nearest {
		t.Errorf("peak at index %d (x=%v), want nearest-to-mean index %d (x=%v)",
			peak, xs[peak], nearest, xs[nearest])
	}

	// Peak value matches the analytic maximum 1/(sigma*sqrt(2*pi)).
	want := 1.0 / (sigma * math.Sqrt(2*math.Pi))
	if math.Abs(ys[peak]-want) > want*1e-3 {
		t.Errorf("peak density = %v, want ~%v", ys[peak], want)
	}
}

func TestAggregate_ExcludeBlank(t *testing.T) {
	sum, err := Aggregate(testTable(), true)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	if sum.Mean != 18950 {
		t.Errorf("mean = %v, want 18950", sum.Mean)
	}
	// Quadrature sum includes the blank even though the mean excludes it.
	want := math.Sqrt(3000*3000 + 2100*2100 + 2000*2000)
	if math.Abs(sum.Uncertainty-want) > 0.05 {
		t.Errorf("uncertainty = %v, want %v", sum.Uncertainty, want)
	}
	if math.Abs(sum.Uncertainty-4123.1) > 0.1 {
		t.Errorf("uncertainty = %v, want ~4123.1", sum.Uncertainty)
	}
}

func TestAggregate_IncludeBlank(t *testing.T) {
	sum, err := Aggregate(testTable(), false)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	want := (21000.0 + 16900.0 + 7500.0) / 3.0
	if math.Abs(sum.Mean-want) > 1e-9 {
		t.Errorf("mean = %v, want %v", sum.Mean, want)
	}
}

func TestAggregate_AllBlank(t *testing.T) {
	table := Table{{Group: "blank", Age: 7500, Uncertainty: 2000}}
	if _, err := Aggregate(table, true); err == nil {
		t.Fatal("expected error for all-blank table with excludeBlank=true")
	}
}

func TestSummary_String(t *testing.T) {
	s := Summary{Mean: 18950, Uncertainty: 4123.1}
	if got := s.String(); got != "18950 ± 4123 yr" {
		t.Errorf("String() = %q", got)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		sample Sample
		ok     bool
	}{
		{"valid", Sample{Group: "a", Age: 21000, Uncertainty: 3000}, true},
		{"zero uncertainty", Sample{Group: "a", Age: 21000, Uncertainty: 0}, false},
		{"negative uncertainty", Sample{Group: "a", Age: 21000, Uncertainty: -5}, false},
		{"nan age", Sample{Group: "a", Age: math.NaN(), Uncertainty: 3000}, false},
		{"inf uncertainty", Sample{Group: "a", Age: 21000, Uncertainty: math.Inf(1)}, false},
		{"empty group", Sample{Age: 21000, Uncertainty: 3000}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.sample.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tc.ok && err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestTableValidate_Empty(t *testing.T) {
	if err := (Table{}).Validate(); err == nil {
		t.Fatal("expected error for empty table")
	}
}

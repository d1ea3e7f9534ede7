package track

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func mustNew(t *testing.T, curvature, elevation []float64, curveInterval, hillInterval float64) *Track {
	t.Helper()
	tr, err := New(curvature, elevation, curveInterval, hillInterval)
	if err != nil {
		t.Fatal(err)
	}
	return tr
}

func TestCurvatureAt(t *testing.T) {
	tr := mustNew(t, []float64{0, 10}, []float64{0}, 100, 100)

	tests := []struct {
		z    float64
		want float64
	}{
		{0, 0},
		{50, 5},
		{100, 10},
		{150, 5},
		{200, 0},
		{25, 2.5},
		{-50, 5},
		{-100, 10},
	}
	for _, tt := range tests {
		if got := tr.CurvatureAt(tt.z); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("CurvatureAt(%g) = %g, want %g", tt.z, got, tt.want)
		}
	}
}

func TestCurvatureAtControlPoints(t *testing.T) {
	points := []float64{-10, -10, 20, 10, -5, 0, 50}
	tr := mustNew(t, points, []float64{0}, 4000, 4000)
	var got []float64
	for i := range points {
		got = append(got, tr.CurvatureAt(float64(i)*4000))
	}
	diff(t, points, got)
}

func TestPeriodic(t *testing.T) {
	tr := Default()
	curvePeriod := tr.Length()
	_, hill := tr.Intervals()
	hillPeriod := hill * float64(len(tr.Elevation()))

	approx := cmpopts.EquateApprox(0, 1e-9)
	for _, z := range []float64{0, 1, 399.5, 4000, 12345.6, 60000, -777} {
		diff(t, tr.CurvatureAt(z), tr.CurvatureAt(z+curvePeriod), approx)
		diff(t, tr.ElevationAt(z), tr.ElevationAt(z+hillPeriod), approx)
	}
}

func TestElevationContinuous(t *testing.T) {
	elevation := []float64{0, 300, 300, 1000, -300}
	tr := mustNew(t, []float64{0}, elevation, 100, 100)

	const eps = 1e-6
	for k := 0; k <= 2*len(elevation); k++ {
		z := float64(k) * 100
		want := elevation[k%len(elevation)]
		below := tr.ElevationAt(z - eps)
		above := tr.ElevationAt(z + eps)
		at := tr.ElevationAt(z)
		if math.Abs(below-want) > 1e-6 || math.Abs(above-want) > 1e-6 || math.Abs(at-want) > 1e-9 {
			t.Errorf("z=%g: below %g, at %g, above %g, want %g", z, below, at, above, want)
		}
	}
}

func TestElevationCosineEasing(t *testing.T) {
	tr := mustNew(t, []float64{0}, []float64{0, 100}, 100, 100)
	diff(t, 50.0, tr.ElevationAt(50), cmpopts.EquateApprox(0, 1e-9))

	// Zero slope at control points: the first step is much smaller than the
	// middle one.
	start := tr.ElevationAt(1) - tr.ElevationAt(0)
	middle := tr.ElevationAt(51) - tr.ElevationAt(50)
	if start >= middle/10 {
		t.Errorf("expected eased start, got step %g vs middle %g", start, middle)
	}
}

func TestSeparateIntervals(t *testing.T) {
	tr := mustNew(t, []float64{0, 10}, []float64{0, 100}, 100, 1000)
	diff(t, 10.0, tr.CurvatureAt(100))
	diff(t, 100.0, tr.ElevationAt(1000), cmpopts.EquateApprox(0, 1e-9))
	diff(t, 200.0, tr.Length())
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name      string
		curvature []float64
		elevation []float64
		curve     float64
		hill      float64
		want      error
	}{
		{"no curvature", nil, []float64{0}, 1, 1, ErrEmptyPoints},
		{"no elevation", []float64{0}, []float64{}, 1, 1, ErrEmptyPoints},
		{"zero curve interval", []float64{0}, []float64{0}, 0, 1, ErrBadInterval},
		{"negative hill interval", []float64{0}, []float64{0}, 1, -4, ErrBadInterval},
		{"NaN interval", []float64{0}, []float64{0}, math.NaN(), 1, ErrBadInterval},
		{"infinite hill interval", []float64{0}, []float64{0}, 1, math.Inf(1), ErrBadInterval},
		{"NaN curvature", []float64{0, math.NaN()}, []float64{0}, 1, 1, ErrBadPoint},
		{"infinite elevation", []float64{0}, []float64{math.Inf(-1)}, 1, 1, ErrBadPoint},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.curvature, tt.elevation, tt.curve, tt.hill)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewCopiesPoints(t *testing.T) {
	points := []float64{1, 2}
	tr := mustNew(t, points, []float64{0}, 10, 10)
	points[0] = 99
	diff(t, 1.0, tr.CurvatureAt(0))

	got := tr.Curvature()
	got[1] = 42
	diff(t, []float64{1, 2}, tr.Curvature())
}

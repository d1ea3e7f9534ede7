package track

import (
	"errors"
	"fmt"
	"math"
)

// DefaultInterval is the distance between two control points of the default track.
const DefaultInterval = 4000.0

var (
	ErrEmptyPoints = errors.New("track has no control points")
	ErrBadInterval = errors.New("track interval must be positive and finite")
	ErrBadPoint    = errors.New("track control points must be finite")
)

// Track holds the curvature and elevation control points of a looping road.
// Points are sampled at fixed intervals along the forward (Z) axis and the
// sequences wrap, so the road never ends.
type Track struct {
	curvature []float64
	elevation []float64

	curveInterval float64
	hillInterval  float64
}

// New creates a track from curvature and elevation control points.
// The slices are copied; the returned track is never mutated.
func New(curvature, elevation []float64, curveInterval, hillInterval float64) (*Track, error) {
	if len(curvature) == 0 {
		return nil, fmt.Errorf("curvature: %w", ErrEmptyPoints)
	}
	if len(elevation) == 0 {
		return nil, fmt.Errorf("elevation: %w", ErrEmptyPoints)
	}
	if !validInterval(curveInterval) {
		return nil, fmt.Errorf("curvature interval %v: %w", curveInterval, ErrBadInterval)
	}
	if !validInterval(hillInterval) {
		return nil, fmt.Errorf("elevation interval %v: %w", hillInterval, ErrBadInterval)
	}
	if i := firstNonFinite(curvature); i >= 0 {
		return nil, fmt.Errorf("curvature point %d is %v: %w", i, curvature[i], ErrBadPoint)
	}
	if i := firstNonFinite(elevation); i >= 0 {
		return nil, fmt.Errorf("elevation point %d is %v: %w", i, elevation[i], ErrBadPoint)
	}

	return &Track{
		curvature:     append([]float64(nil), curvature...),
		elevation:     append([]float64(nil), elevation...),
		curveInterval: curveInterval,
		hillInterval:  hillInterval,
	}, nil
}

// Default returns the built-in track: a few bends, a chicane and one big hill.
func Default() *Track {
	t, err := New(
		[]float64{-10, -10, 20, 10, -5, 0, 0, 0, 50, 40, 30, 20, -50, -50, 0, 0, 0},
		[]float64{0, 300, 300, 300, 1000, -300, 0, 0},
		DefaultInterval,
		DefaultInterval,
	)
	if err != nil {
		panic(err)
	}
	return t
}

// CurvatureAt returns the turn rate at z, blended linearly between the two
// surrounding control points.
func (t *Track) CurvatureAt(z float64) float64 {
	i, next, frac := locate(z, t.curveInterval, len(t.curvature))
	return (t.curvature[next]*frac + t.curvature[i]*(t.curveInterval-frac)) / t.curveInterval
}

// ElevationAt returns the road height at z. Cosine easing gives every
// control point a zero slope so hills have no kinks.
func (t *Track) ElevationAt(z float64) float64 {
	i, next, frac := locate(z, t.hillInterval, len(t.elevation))
	percent := (1 - math.Cos(math.Pi*frac/t.hillInterval)) / 2
	return t.elevation[next]*percent + t.elevation[i]*(1-percent)
}

// Length is the distance after which the curvature sequence repeats.
func (t *Track) Length() float64 {
	return t.curveInterval * float64(len(t.curvature))
}

// Curvature returns a copy of the curvature control points.
func (t *Track) Curvature() []float64 {
	return append([]float64(nil), t.curvature...)
}

// Elevation returns a copy of the elevation control points.
func (t *Track) Elevation() []float64 {
	return append([]float64(nil), t.elevation...)
}

// Intervals returns the curvature and elevation sampling intervals.
func (t *Track) Intervals() (curve, hill float64) {
	return t.curveInterval, t.hillInterval
}

func validInterval(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func firstNonFinite(points []float64) int {
	for i, v := range points {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return i
		}
	}
	return -1
}

// locate maps z onto a control point index, the following index and the
// distance already covered inside the interval. Negative z wraps as well.
func locate(z, interval float64, n int) (index, next int, frac float64) {
	cell := math.Floor(z / interval)
	frac = z - cell*interval
	index = int(math.Mod(cell, float64(n)))
	if index < 0 {
		index += n
	}
	next = index + 1
	if next == n {
		next = 0
	}
	return index, next, frac
}

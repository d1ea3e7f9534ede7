package render

import (
	"image/color"

	"github.com/golangdaddy/pseudoroad/pkg/projection"
)

// Surface is an immediate-mode 2D drawing target.
type Surface interface {
	Clear(width, height float64)
	SetFillColor(c color.Color)
	SetStrokeColor(c color.Color)
	FillPolygon(points []projection.Point)
	StrokeLine(a, b projection.Point)
}

// Op identifies a recorded draw call.
type Op int

const (
	OpClear Op = iota
	OpFillPolygon
	OpStrokeLine
)

// Call is one recorded draw call. Color is the fill or stroke colour that
// was current when the call was made.
type Call struct {
	Op     Op
	Color  color.Color
	Points []projection.Point
	Width  float64
	Height float64
}

// Recorder is a Surface that keeps every draw call instead of drawing.
type Recorder struct {
	Calls []Call

	fill   color.Color
	stroke color.Color
}

func (r *Recorder) Clear(width, height float64) {
	r.Calls = append(r.Calls, Call{Op: OpClear, Width: width, Height: height})
}

func (r *Recorder) SetFillColor(c color.Color) {
	r.fill = c
}

func (r *Recorder) SetStrokeColor(c color.Color) {
	r.stroke = c
}

func (r *Recorder) FillPolygon(points []projection.Point) {
	r.Calls = append(r.Calls, Call{
		Op:     OpFillPolygon,
		Color:  r.fill,
		Points: append([]projection.Point(nil), points...),
	})
}

func (r *Recorder) StrokeLine(a, b projection.Point) {
	r.Calls = append(r.Calls, Call{
		Op:     OpStrokeLine,
		Color:  r.stroke,
		Points: []projection.Point{a, b},
	})
}

// Polygons returns the points of every polygon filled with c.
func (r *Recorder) Polygons(c color.Color) [][]projection.Point {
	var polys [][]projection.Point
	for _, call := range r.Calls {
		if call.Op == OpFillPolygon && sameColor(call.Color, c) {
			polys = append(polys, call.Points)
		}
	}
	return polys
}

// Lines returns the end points of every stroked line.
func (r *Recorder) Lines() [][]projection.Point {
	var lines [][]projection.Point
	for _, call := range r.Calls {
		if call.Op == OpStrokeLine {
			lines = append(lines, call.Points)
		}
	}
	return lines
}

// Reset drops the recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

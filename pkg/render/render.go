// Package render draws the road as a strip of projected segments.
//
// There is no depth buffer. Segments are drawn from the camera outwards and
// a segment is only drawn if its far edge ends higher on screen than
// everything drawn before it, so a hill crest hides the road behind it.
package render

import (
	"math"

	"github.com/golangdaddy/pseudoroad/pkg/projection"
)

// Track is the part of the track model the renderer samples.
type Track interface {
	CurvatureAt(z float64) float64
	ElevationAt(z float64) float64
}

// Kind tells road surface and lane marking segments apart.
type Kind int

const (
	KindRoad Kind = iota
	KindMarking
)

// Segment is a piece of road between two depths. Segments only live for the
// duration of one Draw call.
type Segment struct {
	Z         float64 // Depth of the near edge
	Length    float64
	X         float64 // Lateral centre
	Width     float64
	StartTurn float64 // Accumulated turn offset at the near edge
	EndTurn   float64 // Accumulated turn offset at the far edge
	Kind      Kind
}

// Renderer draws the road for a track.
type Renderer struct {
	Track   Track
	Options Options
	Colors  Colors
}

// New creates a renderer.
func New(track Track, opts Options, colors Colors) *Renderer {
	return &Renderer{
		Track:   track,
		Options: opts,
		Colors:  colors,
	}
}

// drawn is a road segment that made it to the screen.
type drawn struct {
	Segment
	NearY, FarY float64
}

// frame carries what one Draw call needs.
type frame struct {
	r     *Renderer
	dst   Surface
	eye   projection.Eye
	view  projection.Context
	turn  float64 // Constant curvature model only
	drawn []drawn
}

// Draw renders one frame: clear, road surface, lane markings, edge lines and
// finally the sky above the highest road pixel. It returns that boundary.
func (r *Renderer) Draw(dst Surface, eye projection.Eye, view projection.Context) float64 {
	f := r.newFrame(dst, eye, view)

	dst.Clear(view.Width, view.Height)

	dst.SetFillColor(r.Colors.Road)
	topY := f.roadPass()

	if r.Options.LaneMarkings {
		dst.SetFillColor(r.Colors.Marking)
		f.markingPass()
	}

	if r.Options.EdgeLines {
		dst.SetStrokeColor(r.Colors.Edge)
		f.edgePass()
	}

	dst.SetFillColor(r.Colors.Sky)
	dst.FillPolygon([]projection.Point{
		{X: 0, Y: 0},
		{X: view.Width, Y: 0},
		{X: view.Width, Y: topY + 1},
		{X: 0, Y: topY + 1},
	})

	return topY
}

func (r *Renderer) newFrame(dst Surface, eye projection.Eye, view projection.Context) *frame {
	f := &frame{
		r:    r,
		dst:  dst,
		eye:  eye,
		view: view,
	}
	if r.Options.Curvature == Constant {
		l := r.Options.SectionLength
		f.turn = r.Track.CurvatureAt(eye.Z) / (2 * l * l)
	}
	return f
}

// walk visits every section boundary from the one the camera is in out to
// the render distance. turnOffset is the lateral displacement accumulated
// by all nearer sections and turnSpeed the displacement this section adds.
// The section the camera is in only counts the part still ahead.
func (f *frame) walk(fn func(z, turnOffset, turnSpeed float64)) {
	opts := &f.r.Options
	l := opts.SectionLength
	into := f.eye.Z - math.Floor(f.eye.Z/l)*l
	base := f.eye.Z - into
	end := base + opts.RenderDistance

	turnSpeed := -into / l * f.r.Track.CurvatureAt(base)
	turnOffset := 0.0
	for i := 0; ; i++ {
		z := base + float64(i)*l
		if z >= end {
			break
		}
		turnSpeed += f.r.Track.CurvatureAt(z)
		if opts.Curvature == Constant {
			fn(z, 0, 0)
		} else {
			fn(z, turnOffset, turnSpeed)
		}
		turnOffset += turnSpeed
	}
}

func (f *frame) roadPass() float64 {
	opts := &f.r.Options
	topY := f.view.Height
	f.walk(func(z, turnOffset, turnSpeed float64) {
		topY = f.section(Segment{
			Z:         z,
			Length:    opts.SectionLength,
			Width:     opts.RoadWidth,
			StartTurn: turnOffset,
			EndTurn:   turnOffset + turnSpeed,
			Kind:      KindRoad,
		}, topY)
	})
	return topY
}

// markingPass draws three dashes per section: left, centre and right lane
// lines. All three test against the same topY and the right one carries the
// result on to the next section.
func (f *frame) markingPass() {
	opts := &f.r.Options
	topY := f.view.Height
	frac := opts.MarkingLength / opts.SectionLength
	f.walk(func(z, turnOffset, turnSpeed float64) {
		seg := Segment{
			Z:         z,
			Length:    opts.MarkingLength,
			Width:     opts.MarkingWidth,
			StartTurn: turnOffset,
			EndTurn:   turnOffset + turnSpeed*frac,
			Kind:      KindMarking,
		}
		seg.X = -opts.RoadWidth / 4
		f.section(seg, topY)
		seg.X = 0
		f.section(seg, topY)
		seg.X = opts.RoadWidth / 4
		topY = f.section(seg, topY)
	})
}

// edgePass strokes both road edges of every road segment that was drawn.
func (f *frame) edgePass() {
	for _, d := range f.drawn {
		far := d.Z + d.Length
		left := d.X - d.Width/2
		right := d.X + d.Width/2
		nearOff := f.offset(d.Z, d.StartTurn)
		farOff := f.offset(far, d.EndTurn)
		f.line3D(
			Vec3{left + nearOff, f.height(d.Z), d.Z},
			Vec3{left + farOff, f.height(far), far},
		)
		f.line3D(
			Vec3{right + nearOff, f.height(d.Z), d.Z},
			Vec3{right + farOff, f.height(far), far},
		)
	}
}

// section draws one segment as a trapezoid and returns the new topY, the
// screen height of the far edge of the whole section. Segments behind the
// camera or hidden behind something already drawn leave topY unchanged.
func (f *frame) section(s Segment, topY float64) float64 {
	camZ := f.eye.Z
	far := s.Z + s.Length
	if far-camZ <= 0 {
		return topY
	}

	near := s.Z
	if near-camZ <= 0 {
		near = camZ + 1
	}

	nearY := f.view.ProjectY(f.height(near), near, f.eye)
	farY := f.view.ProjectY(f.height(far), far, f.eye)
	if farY >= nearY || farY >= topY {
		return topY
	}

	left := s.X - s.Width/2
	right := s.X + s.Width/2
	x1 := f.x(left, near, s.StartTurn)
	x2 := f.x(right, near, s.StartTurn)
	x3 := f.x(left, far, s.EndTurn)
	x4 := f.x(right, far, s.EndTurn)

	// Keep polygons that reach far off screen small.
	if x1 < 0 && x3 < 0 {
		x1, x3 = 0, 0
	}
	if x2 > f.view.Width && x4 > f.view.Width {
		x2, x4 = f.view.Width, f.view.Width
	}

	f.dst.FillPolygon([]projection.Point{
		{X: math.Round(x1), Y: math.Round(nearY)},
		{X: math.Round(x2), Y: math.Round(nearY)},
		{X: math.Round(x4), Y: math.Round(farY)},
		{X: math.Round(x3), Y: math.Round(farY)},
	})

	if s.Kind == KindRoad {
		f.drawn = append(f.drawn, drawn{
			Segment: Segment{
				Z:         near,
				Length:    far - near,
				X:         s.X,
				Width:     s.Width,
				StartTurn: s.StartTurn,
				EndTurn:   s.EndTurn,
				Kind:      s.Kind,
			},
			NearY: nearY,
			FarY:  farY,
		})
	}

	end := s.Z + f.r.Options.SectionLength
	return f.view.ProjectY(f.height(end), end, f.eye)
}

// x projects a lateral position at depth z with the active curvature model.
func (f *frame) x(x, z, turnOffset float64) float64 {
	if f.r.Options.Curvature == Constant {
		return f.view.ProjectXWithTurn(x, z, f.turn, f.eye)
	}
	return f.view.ProjectXOffset(x, z, turnOffset, f.eye)
}

// offset is the world-space lateral displacement of the road at depth z.
func (f *frame) offset(z, turnOffset float64) float64 {
	if f.r.Options.Curvature == Constant {
		depth := z - f.eye.Z
		return f.turn * depth * depth
	}
	return turnOffset
}

func (f *frame) height(z float64) float64 {
	if !f.r.Options.Elevation {
		return 0
	}
	return f.r.Track.ElevationAt(z)
}

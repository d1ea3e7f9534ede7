package render

import (
	"math"

	"github.com/golangdaddy/pseudoroad/pkg/projection"
)

// Vec3 is a point in world space.
type Vec3 struct {
	X, Y, Z float64
}

// StrokeLine3D strokes the world-space line from a to b. A line entirely
// behind the camera is dropped; an end behind the camera is moved along the
// line up to the camera and then just in front of it. It reports whether
// anything was drawn.
func StrokeLine3D(dst Surface, view projection.Context, eye projection.Eye, a, b Vec3) bool {
	camZ := eye.Z
	if a.Z-camZ <= 0 && b.Z-camZ <= 0 {
		return false
	}

	if a.Z-camZ <= 0 {
		a = clipToCamera(a, b, camZ)
	} else if b.Z-camZ <= 0 {
		b = clipToCamera(b, a, camZ)
	}

	p1 := view.Project(a.X, a.Y, a.Z, eye)
	p2 := view.Project(b.X, b.Y, b.Z, eye)
	dst.StrokeLine(
		projection.Point{X: math.Round(p1.X), Y: math.Round(p1.Y)},
		projection.Point{X: math.Round(p2.X), Y: math.Round(p2.Y)},
	)
	return true
}

// clipToCamera slides behind along the line towards ahead until it reaches
// the camera depth, then puts it one unit in front of the camera.
func clipToCamera(behind, ahead Vec3, camZ float64) Vec3 {
	t := (camZ - behind.Z) / (ahead.Z - behind.Z)
	return Vec3{
		X: behind.X + t*(ahead.X-behind.X),
		Y: behind.Y + t*(ahead.Y-behind.Y),
		Z: camZ + 1,
	}
}

func (f *frame) line3D(a, b Vec3) bool {
	return StrokeLine3D(f.dst, f.view, f.eye, a, b)
}

// Package projection maps camera-relative world points onto the screen with a
// pinhole camera model.
package projection

import "math"

// DefaultFOV is the horizontal field of view in degrees.
const DefaultFOV = 100.0

// Point is a position on the drawing surface.
type Point struct {
	X, Y float64
}

// Eye is the camera position the projection is relative to.
type Eye struct {
	X, Y, Z float64
}

// Context holds the viewport values the projection reads during a frame.
type Context struct {
	FOV    float64 // Horizontal field of view in degrees
	Focal  float64 // Focal length in pixels, derived from FOV and Width
	Width  float64
	Height float64
}

// NewContext builds a context for a viewport of the given size.
func NewContext(fov, width, height float64) Context {
	return Context{
		FOV:    fov,
		Focal:  width / 2 / math.Tan(fov*math.Pi/360),
		Width:  width,
		Height: height,
	}
}

// Resize returns the context for a new viewport size with the focal length
// recomputed from the same field of view.
func (c Context) Resize(width, height float64) Context {
	return NewContext(c.FOV, width, height)
}

// Project maps a world point to the screen.
// The result is undefined when z == eye.Z; callers keep points in front of
// the camera.
func (c Context) Project(x, y, z float64, eye Eye) Point {
	return Point{
		X: c.ProjectX(x, z, eye),
		Y: c.ProjectY(y, z, eye),
	}
}

// ProjectX returns the screen X of a world point.
func (c Context) ProjectX(x, z float64, eye Eye) float64 {
	return (x-eye.X)*c.Focal/(z-eye.Z) + c.Width/2
}

// ProjectY returns the screen Y of a world point. Screen Y grows downwards.
func (c Context) ProjectY(y, z float64, eye Eye) float64 {
	return c.Height/2 - (y-eye.Y)*c.Focal/(z-eye.Z)
}

// ProjectXOffset returns the screen X of a point displaced sideways by an
// accumulated turn offset.
func (c Context) ProjectXOffset(x, z, turnOffset float64, eye Eye) float64 {
	return c.ProjectX(x+turnOffset, z, eye)
}

// ProjectXWithTurn returns the screen X of a point on a road bending with a
// single constant turn rate. The sideways displacement grows with the square
// of the depth.
func (c Context) ProjectXWithTurn(x, z, turn float64, eye Eye) float64 {
	depth := z - eye.Z
	return (x-eye.X+turn*depth*depth)*c.Focal/depth + c.Width/2
}

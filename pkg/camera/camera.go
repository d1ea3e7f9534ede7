// Package camera moves the driving camera along the track.
package camera

import (
	"github.com/golangdaddy/pseudoroad/pkg/input"
	"github.com/golangdaddy/pseudoroad/pkg/projection"
)

// Track is the part of the track model the camera samples.
type Track interface {
	CurvatureAt(z float64) float64
	ElevationAt(z float64) float64
}

// State is the camera position and velocity.
// Y is derived from Z on every step and is never set on its own.
type State struct {
	X, Y, Z float64
	ZRate   float64 // Forward speed, always in [0, ZRateMax]
	XRate   float64 // Lateral speed
}

// Eye returns the position the projection is relative to.
func (s State) Eye() projection.Eye {
	return projection.Eye{X: s.X, Y: s.Y, Z: s.Z}
}

// OffRoad reports whether the camera is outside the paved road.
func (s State) OffRoad(t Tuning) bool {
	return s.X < -t.RoadWidth/2 || s.X > t.RoadWidth/2
}

// Controller advances the camera once per frame.
type Controller struct {
	Tuning    Tuning
	Track     Track
	Elevation bool // Follow the track's hills; when false the road is flat
}

// NewController creates a controller for a track.
func NewController(tuning Tuning, track Track, elevation bool) *Controller {
	return &Controller{
		Tuning:    tuning,
		Track:     track,
		Elevation: elevation,
	}
}

// Start returns the camera at rest at the start of the track.
func (c *Controller) Start() State {
	s := State{Z: c.Tuning.StartZ}
	s.Y = c.height(s.Z)
	return s
}

// Step advances the camera by one tick.
func (c *Controller) Step(s *State, in input.State) {
	t := &c.Tuning

	s.Z += s.ZRate

	if in.Up {
		s.ZRate += t.Accel
	}
	if in.Down {
		s.ZRate -= t.Brake
	}
	if in.Left {
		s.XRate -= t.Steer
	}
	if in.Right {
		s.XRate += t.Steer
	}

	// Without steering intent the car straightens out. Holding both keys
	// counts as no intent and decays the lateral speed either way.
	both := in.Left && in.Right
	if s.XRate > 0 && (both || !in.Right) {
		s.XRate -= t.Center
	} else if s.XRate < 0 && (both || !in.Left) {
		s.XRate += t.Center
	}

	s.ZRate = clamp(s.ZRate-t.Drag, 0, t.ZRateMax)

	// Steering authority shrinks to nothing as the car stops.
	s.XRate = clamp(clamp(s.XRate, -s.ZRate*t.Lateral, s.ZRate*t.Lateral), -t.XRateAbsMax, t.XRateAbsMax)

	s.X += s.XRate - c.Track.CurvatureAt(s.Z)*t.CurvePull*s.ZRate
	s.X = clamp(s.X, -t.RoadBound, t.RoadBound)

	if s.OffRoad(*t) {
		s.ZRate -= t.OffRoad * s.ZRate * s.ZRate
	}

	s.Y = c.height(s.Z)
}

func (c *Controller) height(z float64) float64 {
	if !c.Elevation {
		return c.Tuning.RigHeight
	}
	return c.Tuning.RigHeight + c.Track.ElevationAt(z)
}

func clamp(v, lo, hi float64) float64 {
	if v <= lo {
		return lo
	}
	if v >= hi {
		return hi
	}
	return v
}

// Package sim ties the camera, the input and the renderer together into one
// driving session.
package sim

import (
	"fmt"

	"github.com/golangdaddy/pseudoroad/pkg/camera"
	"github.com/golangdaddy/pseudoroad/pkg/config"
	"github.com/golangdaddy/pseudoroad/pkg/input"
	"github.com/golangdaddy/pseudoroad/pkg/projection"
	"github.com/golangdaddy/pseudoroad/pkg/render"
	"github.com/golangdaddy/pseudoroad/pkg/track"
)

// State is one driving session. It is not safe for concurrent use.
type State struct {
	Camera camera.State
	Input  input.State
	View   projection.Context
	TopY   float64 // Sky boundary of the last rendered frame

	Track      *track.Track
	Controller *camera.Controller
	Renderer   *render.Renderer

	ticks int
}

// New starts a session from a config, with the camera at rest at the start
// of the track.
func New(cfg *config.Config) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	t, err := cfg.LoadTrack()
	if err != nil {
		return nil, fmt.Errorf("failed to load track: %w", err)
	}
	colors, err := cfg.Palette()
	if err != nil {
		return nil, err
	}

	// The camera follows the hills only when they are drawn.
	ctrl := camera.NewController(cfg.Camera, t, cfg.Render.Elevation)
	view := projection.NewContext(cfg.FOV, float64(cfg.Window.Width), float64(cfg.Window.Height))
	return &State{
		Camera:     ctrl.Start(),
		View:       view,
		TopY:       view.Height,
		Track:      t,
		Controller: ctrl,
		Renderer:   render.New(t, cfg.Render, colors),
	}, nil
}

// Step advances the camera by one tick with the held controls.
func (s *State) Step() {
	s.Controller.Step(&s.Camera, s.Input)
	s.ticks++
}

// Render draws the current view onto dst and records the sky boundary.
func (s *State) Render(dst render.Surface) {
	s.TopY = s.Renderer.Draw(dst, s.Camera.Eye(), s.View)
}

// Tick steps and then renders.
func (s *State) Tick(dst render.Surface) {
	s.Step()
	s.Render(dst)
}

// Resize adapts the projection to a new viewport.
func (s *State) Resize(width, height int) {
	w, h := float64(width), float64(height)
	if w == s.View.Width && h == s.View.Height {
		return
	}
	s.View = s.View.Resize(w, h)
}

// Reset puts the camera back at the start and releases all controls.
func (s *State) Reset() {
	s.Camera = s.Controller.Start()
	s.Input = input.State{}
	s.TopY = s.View.Height
	s.ticks = 0
}

// Ticks returns the number of steps since the session started or was reset.
func (s *State) Ticks() int {
	return s.ticks
}

// Lap returns the number of completed laps and the progress through the
// current one in [0, 1).
func (s *State) Lap() (int, float64) {
	length := s.Track.Length()
	dist := s.Camera.Z - s.Controller.Tuning.StartZ
	if dist < 0 {
		return 0, 0
	}
	laps := int(dist / length)
	return laps, dist/length - float64(laps)
}

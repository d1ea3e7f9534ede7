// Package config holds the settings a driving session starts from.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golangdaddy/pseudoroad/pkg/camera"
	"github.com/golangdaddy/pseudoroad/pkg/projection"
	"github.com/golangdaddy/pseudoroad/pkg/render"
	"github.com/golangdaddy/pseudoroad/pkg/track"
)

var (
	ErrBadViewport = errors.New("viewport size and field of view must be positive")
	ErrBadRender   = errors.New("render lengths must be positive")
	ErrBadColor    = errors.New("colour must be #rgb or #rrggbb")
	ErrRoadWidth   = errors.New("camera and render road widths differ")
)

// Window is the initial window. The window can be resized afterwards.
type Window struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
}

// Colors are hex strings such as "#1e90ff".
type Colors struct {
	Road    string `json:"road"`
	Marking string `json:"marking"`
	Sky     string `json:"sky"`
	Edge    string `json:"edge"`
}

// Track is a track written inline in the config file.
type Track struct {
	Curvature     []float64 `json:"curvature"`
	Elevation     []float64 `json:"elevation"`
	CurveInterval float64   `json:"curve_interval,omitempty"`
	HillInterval  float64   `json:"hill_interval,omitempty"`
}

// Config is everything needed to start driving.
type Config struct {
	Window Window         `json:"window"`
	FOV    float64        `json:"fov"`
	Camera camera.Tuning  `json:"camera"`
	Render render.Options `json:"render"`
	Colors Colors         `json:"colors"`

	// At most one of Track and TrackFile is used; TrackFile wins. With
	// neither the built-in track is driven.
	Track     *Track `json:"track,omitempty"`
	TrackFile string `json:"track_file,omitempty"`

	dir string // Directory TrackFile is relative to
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		Window: Window{
			Width:  1024,
			Height: 600,
			Title:  "Pseudo Road",
		},
		FOV:    projection.DefaultFOV,
		Camera: camera.DefaultTuning(),
		Render: render.DefaultOptions(),
		Colors: FormatColors(render.DefaultColors()),
	}
}

// Load decodes a config from r. Fields missing from the input keep their
// default values.
func Load(r io.Reader) (*Config, error) {
	c := Default()
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFromFile loads a config from a JSON file.
func LoadFromFile(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	c, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	c.dir = filepath.Dir(filename)
	return c, nil
}

// SaveToFile writes the config as indented JSON.
func (c *Config) SaveToFile(filename string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return os.WriteFile(filename, append(data, '\n'), 0644)
}

// Validate checks the values the renderer divides by, the camera tuning and
// the colours.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window %dx%d: %w", c.Window.Width, c.Window.Height, ErrBadViewport)
	}
	if !(c.FOV > 0 && c.FOV < 180) {
		return fmt.Errorf("fov %v: %w", c.FOV, ErrBadViewport)
	}

	if err := c.Camera.Validate(); err != nil {
		return fmt.Errorf("camera: %w", err)
	}

	r := c.Render
	for name, v := range map[string]float64{
		"road_width":      r.RoadWidth,
		"section_length":  r.SectionLength,
		"marking_length":  r.MarkingLength,
		"marking_width":   r.MarkingWidth,
		"render_distance": r.RenderDistance,
	} {
		if !(v > 0) || math.IsInf(v, 1) {
			return fmt.Errorf("%s %v: %w", name, v, ErrBadRender)
		}
	}

	// Off-road is decided against the camera's width, so it has to be the
	// width that is drawn.
	if c.Camera.RoadWidth != r.RoadWidth {
		return fmt.Errorf("camera %v, render %v: %w", c.Camera.RoadWidth, r.RoadWidth, ErrRoadWidth)
	}

	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

// Palette parses the configured colours.
func (c *Config) Palette() (render.Colors, error) {
	var p render.Colors
	for _, f := range []struct {
		name string
		src  string
		dst  *color.Color
	}{
		{"road", c.Colors.Road, &p.Road},
		{"marking", c.Colors.Marking, &p.Marking},
		{"sky", c.Colors.Sky, &p.Sky},
		{"edge", c.Colors.Edge, &p.Edge},
	} {
		rgba, err := ParseColor(f.src)
		if err != nil {
			return render.Colors{}, fmt.Errorf("%s colour: %w", f.name, err)
		}
		*f.dst = rgba
	}
	return p, nil
}

// LoadTrack builds the track the config selects.
func (c *Config) LoadTrack() (*track.Track, error) {
	if c.TrackFile != "" {
		path := c.TrackFile
		if !filepath.IsAbs(path) && c.dir != "" {
			path = filepath.Join(c.dir, path)
		}
		return track.LoadFromFile(path)
	}
	if c.Track != nil {
		curve, hill := c.Track.CurveInterval, c.Track.HillInterval
		if curve == 0 {
			curve = track.DefaultInterval
		}
		if hill == 0 {
			hill = track.DefaultInterval
		}
		elevation := c.Track.Elevation
		if len(elevation) == 0 {
			elevation = []float64{0}
		}
		return track.New(c.Track.Curvature, elevation, curve, hill)
	}
	return track.Default(), nil
}

// FromTrack returns t as an inline track.
func FromTrack(t *track.Track) *Track {
	curve, hill := t.Intervals()
	return &Track{
		Curvature:     t.Curvature(),
		Elevation:     t.Elevation(),
		CurveInterval: curve,
		HillInterval:  hill,
	}
}

// FormatColors writes a palette as hex strings.
func FormatColors(p render.Colors) Colors {
	return Colors{
		Road:    FormatColor(p.Road),
		Marking: FormatColor(p.Marking),
		Sky:     FormatColor(p.Sky),
		Edge:    FormatColor(p.Edge),
	}
}

// FormatColor writes c as "#rrggbb". Alpha is dropped.
func FormatColor(c color.Color) string {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

// ParseColor parses "#rgb" or "#rrggbb", in either case.
func ParseColor(s string) (color.RGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.RGBA{}, fmt.Errorf("'%s': %w", s, ErrBadColor)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("'%s': %w", s, ErrBadColor)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("'%s': %w", s, ErrBadColor)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

package render

import (
	"fmt"
	"image/color"
)

// CurvatureModel selects how bends are applied to the road.
type CurvatureModel int

const (
	// PerSegment accumulates a turn offset from segment to segment, sampling
	// the track's curvature at every segment.
	PerSegment CurvatureModel = iota
	// Constant bends the whole visible road with the curvature under the
	// camera, growing with the square of the depth.
	Constant
)

func (m CurvatureModel) String() string {
	switch m {
	case PerSegment:
		return "per-segment"
	case Constant:
		return "constant"
	}
	return fmt.Sprintf("CurvatureModel(%d)", int(m))
}

func (m CurvatureModel) MarshalText() ([]byte, error) {
	switch m {
	case PerSegment, Constant:
		return []byte(m.String()), nil
	}
	return nil, fmt.Errorf("unknown curvature model %d", int(m))
}

func (m *CurvatureModel) UnmarshalText(b []byte) error {
	switch string(b) {
	case "per-segment":
		*m = PerSegment
	case "constant":
		*m = Constant
	default:
		return fmt.Errorf("unknown curvature model '%s'", string(b))
	}
	return nil
}

// Options configures the renderer. All lengths are world units.
type Options struct {
	Elevation    bool           `json:"elevation"` // Draw hills; when false the road is flat
	Curvature    CurvatureModel `json:"curvature"`
	LaneMarkings bool           `json:"lane_markings"`
	EdgeLines    bool           `json:"edge_lines"`

	RoadWidth      float64 `json:"road_width"`
	SectionLength  float64 `json:"section_length"`
	MarkingLength  float64 `json:"marking_length"`
	MarkingWidth   float64 `json:"marking_width"`
	RenderDistance float64 `json:"render_distance"`
}

// DefaultOptions renders hills, per-segment bends and lane markings.
func DefaultOptions() Options {
	return Options{
		Elevation:      true,
		Curvature:      PerSegment,
		LaneMarkings:   true,
		RoadWidth:      800,
		SectionLength:  400,
		MarkingLength:  130,
		MarkingWidth:   15,
		RenderDistance: 7500,
	}
}

// Colors used for a frame.
type Colors struct {
	Road    color.Color
	Marking color.Color
	Sky     color.Color
	Edge    color.Color
}

func DefaultColors() Colors {
	return Colors{
		Road:    color.RGBA{0x99, 0x99, 0x99, 0xff},
		Marking: color.RGBA{0xff, 0xd8, 0xff, 0xff},
		Sky:     color.RGBA{0x1e, 0x90, 0xff, 0xff},
		Edge:    color.RGBA{0xff, 0xff, 0xff, 0xff},
	}
}

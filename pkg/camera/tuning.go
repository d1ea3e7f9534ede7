package camera

import (
	"errors"
	"fmt"
	"math"
)

// ErrBadTuning is returned for tuning that would break the speed and
// position limits of the motion model.
var ErrBadTuning = errors.New("invalid camera tuning")

// Tuning holds the constants of the motion model. Rates are in world units
// per tick.
type Tuning struct {
	Accel       float64 `json:"accel"`          // Forward acceleration while up is held
	Brake       float64 `json:"brake"`          // Deceleration while down is held
	Steer       float64 `json:"steer"`          // Lateral acceleration while left/right is held
	Center      float64 `json:"center"`         // Lateral decay without steering intent
	Drag        float64 `json:"drag"`           // Rolling friction, every tick
	ZRateMax    float64 `json:"z_rate_max"`     // Top speed
	Lateral     float64 `json:"lateral"`        // Steering authority per unit of speed
	XRateAbsMax float64 `json:"x_rate_abs_max"` // Lateral speed limit
	CurvePull   float64 `json:"curve_pull"`     // How hard a bend drags the car outwards
	RoadWidth   float64 `json:"road_width"`     // Paved width; outside half of it is off-road
	RoadBound   float64 `json:"road_bound"`     // Hard lateral limit, at least half the road
	OffRoad     float64 `json:"off_road"`       // Quadratic speed loss off-road
	RigHeight   float64 `json:"rig_height"`     // Camera height above the road
	StartZ      float64 `json:"start_z"`        // Depth the camera starts at
}

// DefaultTuning returns the stock handling.
func DefaultTuning() Tuning {
	return Tuning{
		Accel:       0.6,
		Brake:       0.65,
		Steer:       0.45,
		Center:      0.5,
		Drag:        0.25,
		ZRateMax:    90,
		Lateral:     0.4,
		XRateAbsMax: 12,
		CurvePull:   0.0045,
		RoadWidth:   800,
		RoadBound:   800,
		OffRoad:     0.0003,
		RigHeight:   90,
		StartZ:      100,
	}
}

// Validate reports tuning under which Step could leave forward speed outside
// [0, ZRateMax]. Off-road drag takes OffRoad*ZRate*ZRate from ZRate, so
// OffRoad*ZRateMax must not exceed 1.
func (t Tuning) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"accel", t.Accel},
		{"brake", t.Brake},
		{"steer", t.Steer},
		{"center", t.Center},
		{"drag", t.Drag},
		{"lateral", t.Lateral},
		{"x_rate_abs_max", t.XRateAbsMax},
		{"off_road", t.OffRoad},
	} {
		if !(f.v >= 0) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s %v must be finite and not negative: %w", f.name, f.v, ErrBadTuning)
		}
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"curve_pull", t.CurvePull},
		{"rig_height", t.RigHeight},
		{"start_z", t.StartZ},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s %v must be finite: %w", f.name, f.v, ErrBadTuning)
		}
	}

	if !(t.ZRateMax > 0) || math.IsInf(t.ZRateMax, 0) {
		return fmt.Errorf("z_rate_max %v must be positive: %w", t.ZRateMax, ErrBadTuning)
	}
	if !(t.RoadWidth > 0) || math.IsInf(t.RoadWidth, 0) {
		return fmt.Errorf("road_width %v must be positive: %w", t.RoadWidth, ErrBadTuning)
	}
	if !(t.RoadBound >= t.RoadWidth/2) || math.IsInf(t.RoadBound, 0) {
		return fmt.Errorf("road_bound %v is inside the road (width %v): %w", t.RoadBound, t.RoadWidth, ErrBadTuning)
	}
	if t.OffRoad*t.ZRateMax > 1 {
		return fmt.Errorf("off_road %v would reverse the car at top speed %v: %w", t.OffRoad, t.ZRateMax, ErrBadTuning)
	}
	return nil
}

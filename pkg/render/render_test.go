package render

import (
	"encoding/json"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/golangdaddy/pseudoroad/pkg/projection"
	"github.com/golangdaddy/pseudoroad/pkg/track"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// A 90 degree field of view on 800x600 gives a focal length of 400.
var view = projection.NewContext(90, 800, 600)

func newTrack(t *testing.T, curvature, elevation []float64, interval float64) *track.Track {
	t.Helper()
	tr, err := track.New(curvature, elevation, interval, interval)
	if err != nil {
		t.Fatal(err)
	}
	return tr
}

func straight(t *testing.T) *track.Track {
	return newTrack(t, []float64{0}, []float64{0}, 4000)
}

func roadOnly() Options {
	opts := DefaultOptions()
	opts.LaneMarkings = false
	return opts
}

type pts = []projection.Point

func TestDrawStraightRoad(t *testing.T) {
	r := New(straight(t), roadOnly(), DefaultColors())
	rec := &Recorder{}
	topY := r.Draw(rec, projection.Eye{Y: 90, Z: 100}, view)

	diff(t, Call{Op: OpClear, Width: 800, Height: 600}, rec.Calls[0])

	road := rec.Polygons(r.Colors.Road)
	if len(road) != 19 {
		t.Fatalf("got %d road polygons, want 19", len(road))
	}
	// The first section starts behind the camera: its near edge is pulled
	// in front of the camera and both sides run off screen.
	diff(t, pts{{X: 0, Y: 36300}, {X: 800, Y: 36300}, {X: 800, Y: 420}, {X: 0, Y: 420}}, road[0])
	diff(t, pts{{X: -133, Y: 420}, {X: 933, Y: 420}, {X: 629, Y: 351}, {X: 171, Y: 351}}, road[1])

	diff(t, 300+90*400/7500.0, topY, cmpopts.EquateApprox(0, 1e-9))

	last := rec.Calls[len(rec.Calls)-1]
	diff(t, OpFillPolygon, last.Op)
	if !sameColor(last.Color, r.Colors.Sky) {
		t.Errorf("last call colour %v, want sky", last.Color)
	}
	diff(t, pts{{X: 0, Y: 0}, {X: 800, Y: 0}, {X: 800, Y: topY + 1}, {X: 0, Y: topY + 1}}, last.Points)
}

func TestSectionBehindCamera(t *testing.T) {
	r := New(straight(t), roadOnly(), DefaultColors())
	rec := &Recorder{}
	f := r.newFrame(rec, projection.Eye{Y: 90, Z: 100}, view)

	for _, seg := range []Segment{
		{Z: -500, Length: 400, Width: 800},
		{Z: -300, Length: 400, Width: 800}, // far edge exactly at the camera
	} {
		if got := f.section(seg, 600); got != 600 {
			t.Errorf("section %+v changed topY to %g", seg, got)
		}
	}
	if len(rec.Calls) != 0 {
		t.Errorf("expected no draw calls, got %d", len(rec.Calls))
	}
}

func TestWalkTurnOffsets(t *testing.T) {
	type step struct{ Z, Offset, Speed float64 }
	collect := func(r *Renderer, camZ float64) []step {
		var steps []step
		f := r.newFrame(&Recorder{}, projection.Eye{Y: 90, Z: camZ}, view)
		f.walk(func(z, turnOffset, turnSpeed float64) {
			steps = append(steps, step{z, turnOffset, turnSpeed})
		})
		return steps
	}

	r := New(newTrack(t, []float64{10}, []float64{0}, 4000), roadOnly(), DefaultColors())

	// Camera on a section boundary.
	steps := collect(r, 400)
	diff(t, []step{{400, 0, 10}, {800, 10, 20}, {1200, 30, 30}}, steps[:3])
	diff(t, 19, len(steps))

	// A quarter into the section, only the part ahead counts.
	steps = collect(r, 500)
	diff(t, []step{{400, 0, 7.5}, {800, 7.5, 17.5}, {1200, 25, 27.5}}, steps[:3])

	r.Options.Curvature = Constant
	for _, s := range collect(r, 500) {
		if s.Offset != 0 || s.Speed != 0 {
			t.Fatalf("constant model got offsets %+v", s)
		}
	}
}

func TestDrawConstantCurvature(t *testing.T) {
	opts := roadOnly()
	opts.Curvature = Constant
	r := New(newTrack(t, []float64{10}, []float64{0}, 4000), opts, DefaultColors())
	rec := &Recorder{}
	eye := projection.Eye{Y: 90, Z: 400}
	r.Draw(rec, eye, view)

	turn := 10 / (2 * 400.0 * 400.0)
	round := func(x, z float64) float64 { return math.Round(view.ProjectXWithTurn(x, z, turn, eye)) }
	nearY := math.Round(view.ProjectY(0, 800, eye))
	farY := math.Round(view.ProjectY(0, 1200, eye))

	road := rec.Polygons(r.Colors.Road)
	diff(t, pts{
		{X: round(-400, 800), Y: nearY},
		{X: round(400, 800), Y: nearY},
		{X: round(400, 1200), Y: farY},
		{X: round(-400, 1200), Y: farY},
	}, road[1])

	// The bend pushes the far edge to the right.
	if road[1][3].X <= math.Round(view.ProjectX(-400, 1200, eye)) {
		t.Errorf("expected the road to bend right: %v", road[1])
	}
}

func TestDrawLaneMarkings(t *testing.T) {
	r := New(straight(t), DefaultOptions(), DefaultColors())
	rec := &Recorder{}
	r.Draw(rec, projection.Eye{Y: 90, Z: 100}, view)

	markings := rec.Polygons(r.Colors.Marking)
	// The dashes of the section the camera is in are below the screen.
	if len(markings) != 18*3 {
		t.Fatalf("got %d markings, want %d", len(markings), 18*3)
	}
	diff(t, pts{{X: 390, Y: 420}, {X: 410, Y: 420}, {X: 407, Y: 384}, {X: 393, Y: 384}}, markings[1])

	// Markings are drawn after the road and before the sky.
	var order []string
	for _, c := range rec.Calls {
		switch {
		case c.Op != OpFillPolygon:
		case sameColor(c.Color, r.Colors.Road):
			order = appendOnce(order, "road")
		case sameColor(c.Color, r.Colors.Marking):
			order = appendOnce(order, "marking")
		case sameColor(c.Color, r.Colors.Sky):
			order = appendOnce(order, "sky")
		}
	}
	diff(t, []string{"road", "marking", "sky"}, order)
}

func appendOnce(s []string, v string) []string {
	if len(s) > 0 && s[len(s)-1] == v {
		return s
	}
	return append(s, v)
}

func TestDrawHillHidesRoad(t *testing.T) {
	hill := newTrack(t, []float64{0}, []float64{0, 1000, 0, 0}, 2000)
	eye := projection.Eye{Y: 90, Z: 100}

	r := New(hill, roadOnly(), DefaultColors())
	f := r.newFrame(&Recorder{}, eye, view)
	f.roadPass()
	var zs []float64
	for _, d := range f.drawn {
		zs = append(zs, d.Z)
	}
	// Everything past the crest at z=2000 is hidden, and so is the last
	// stretch up to it, which ends lower on screen than the one before.
	diff(t, []float64{101, 400, 800, 1200}, zs)

	r.Options.Elevation = false
	rec := &Recorder{}
	r.Draw(rec, eye, view)
	diff(t, 19, len(rec.Polygons(r.Colors.Road)))
}

// No road polygon ever ends at or below the top of what was drawn before it,
// whatever the hills look like.
func TestOcclusionInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 300; i++ {
		curvature := make([]float64, 1+rng.Intn(10))
		for j := range curvature {
			curvature[j] = rng.Float64()*100 - 50
		}
		elevation := make([]float64, 1+rng.Intn(10))
		for j := range elevation {
			elevation[j] = rng.Float64()*4000 - 2000
		}
		tr := newTrack(t, curvature, elevation, 400+rng.Float64()*3600)

		camZ := rng.Float64() * 50000
		eye := projection.Eye{X: rng.Float64()*1600 - 800, Y: 90 + tr.ElevationAt(camZ), Z: camZ}

		r := New(tr, DefaultOptions(), DefaultColors())
		rec := &Recorder{}
		f := r.newFrame(rec, eye, view)
		topY := f.roadPass()

		prev := view.Height
		for _, d := range f.drawn {
			if d.FarY >= prev || d.FarY >= d.NearY {
				t.Fatalf("run %d: segment at z=%g ends at %g, topY was %g, near edge %g", i, d.Z, d.FarY, prev, d.NearY)
			}
			prev = d.FarY
		}
		diff(t, prev, topY)

		prevRounded := math.Round(view.Height)
		for _, p := range rec.Polygons(r.Colors.Road) {
			if p[2].Y > prevRounded || p[2].Y != p[3].Y || p[0].Y != p[1].Y {
				t.Fatalf("run %d: bad polygon %v after topY %g", i, p, prevRounded)
			}
			prevRounded = p[2].Y
		}
	}
}

func TestDrawEdgeLines(t *testing.T) {
	opts := roadOnly()
	opts.EdgeLines = true
	r := New(straight(t), opts, DefaultColors())
	rec := &Recorder{}
	r.Draw(rec, projection.Eye{Y: 90, Z: 100}, view)

	lines := rec.Lines()
	diff(t, 2*19, len(lines))
	diff(t, pts{{X: -159600, Y: 36300}, {X: -133, Y: 420}}, lines[0])
	diff(t, pts{{X: 160400, Y: 36300}, {X: 933, Y: 420}}, lines[1])
	for _, c := range rec.Calls {
		if c.Op == OpStrokeLine && !sameColor(c.Color, r.Colors.Edge) {
			t.Fatalf("edge line stroked with %v", c.Color)
		}
	}
}

func TestOptionsJSON(t *testing.T) {
	opts := DefaultOptions()
	opts.Curvature = Constant
	b, err := json.Marshal(opts)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"curvature":"constant"`) {
		t.Errorf("unexpected encoding %s", b)
	}

	var got Options
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}
	diff(t, opts, got)

	if err := json.Unmarshal([]byte(`{"curvature":"spiral"}`), &got); err == nil {
		t.Error("expected error for unknown curvature model")
	}
}

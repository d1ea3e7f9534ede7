// Package game runs a driving session inside an ebiten window.
package game

import (
	"fmt"
	"log"

	"github.com/golangdaddy/pseudoroad/pkg/config"
	"github.com/golangdaddy/pseudoroad/pkg/input"
	"github.com/golangdaddy/pseudoroad/pkg/scenery"
	"github.com/golangdaddy/pseudoroad/pkg/screen"
	"github.com/golangdaddy/pseudoroad/pkg/sim"
	"github.com/golangdaddy/pseudoroad/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultKeys drives with the arrow keys or WASD.
var DefaultKeys = input.KeyMap[ebiten.Key]{
	ebiten.KeyArrowUp:    input.Up,
	ebiten.KeyW:          input.Up,
	ebiten.KeyArrowDown:  input.Down,
	ebiten.KeyS:          input.Down,
	ebiten.KeyArrowLeft:  input.Left,
	ebiten.KeyA:          input.Left,
	ebiten.KeyArrowRight: input.Right,
	ebiten.KeyD:          input.Right,
}

const groundSeed = 1

type mode int

const (
	modeTitle mode = iota
	modeDriving
)

// Game implements the ebiten.Game interface.
type Game struct {
	Keys input.KeyMap[ebiten.Key]

	sim     *sim.State
	surface *screen.Surface
	title   *ui.TitleScreen
	hud     *ui.HUD

	mode      mode
	debug     bool
	unfocused bool
	laps      int

	keys []ebiten.Key
}

// NewGame creates a game showing the title screen.
func NewGame(cfg *config.Config) (*Game, error) {
	s, err := sim.New(cfg)
	if err != nil {
		return nil, err
	}

	ground := scenery.NewGenerator(cfg.Window.Width, cfg.Window.Height).Grass(groundSeed)

	g := &Game{
		Keys:    DefaultKeys,
		sim:     s,
		surface: screen.New(nil, ebiten.NewImageFromImage(ground)),
		hud:     ui.NewHUD(),
	}
	g.title = ui.NewTitleScreen(cfg.Window.Title, g.startDriving)
	return g, nil
}

func (g *Game) startDriving() {
	g.sim.Reset()
	g.laps = 0
	g.mode = modeDriving
	log.Printf("Driving started at z=%.0f", g.sim.Camera.Z)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}

	switch g.mode {
	case modeTitle:
		return g.title.Update()
	case modeDriving:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			log.Printf("Back to title after %d ticks", g.sim.Ticks())
			g.mode = modeTitle
			return nil
		}
		g.updateInput()
		g.sim.Step()

		if laps, _ := g.sim.Lap(); laps > g.laps {
			g.laps = laps
			log.Printf("Lap %d completed after %d ticks", laps, g.sim.Ticks())
		}
	}
	return nil
}

// updateInput feeds this tick's key events into the held controls.
func (g *Game) updateInput() {
	// Key-up events are lost while the window is in the background, so
	// controls are released then and re-read from the keyboard on return.
	if !ebiten.IsFocused() {
		g.sim.Input = input.State{}
		g.unfocused = true
		return
	}
	if g.unfocused {
		g.unfocused = false
		g.sim.Input = g.Keys.Poll(ebiten.IsKeyPressed)
		return
	}
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.Keys.KeyDown(&g.sim.Input, k)
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.Keys.KeyUp(&g.sim.Input, k)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Image = screen
	g.sim.Render(g.surface)

	switch g.mode {
	case modeTitle:
		g.title.Draw(screen)
	case modeDriving:
		laps, progress := g.sim.Lap()
		g.hud.Draw(screen, ui.Readout{
			Speed:    g.sim.Camera.ZRate,
			MaxSpeed: g.sim.Controller.Tuning.ZRateMax,
			Lap:      laps,
			Progress: progress,
			OffRoad:  g.sim.Camera.OffRoad(g.sim.Controller.Tuning),
		})
	}

	if g.debug {
		ui.DrawDebug(screen, g.debugLines())
	}
}

func (g *Game) debugLines() []string {
	c := g.sim.Camera
	held := "held"
	for _, d := range []input.Direction{input.Up, input.Down, input.Left, input.Right} {
		if g.sim.Input.Held(d) {
			held += " " + d.String()
		}
	}
	return []string{
		fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		fmt.Sprintf("x %.1f  y %.1f  z %.0f", c.X, c.Y, c.Z),
		fmt.Sprintf("zRate %.2f  xRate %.2f", c.ZRate, c.XRate),
		fmt.Sprintf("curvature %.2f", g.sim.Track.CurvatureAt(c.Z)),
		fmt.Sprintf("topY %.1f", g.sim.TopY),
		held,
		fmt.Sprintf("model %v", g.sim.Renderer.Options.Curvature),
	}
}

// Layout follows the window size so the road always fills it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	g.sim.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

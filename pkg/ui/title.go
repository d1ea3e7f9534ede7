package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TitleScreen is drawn over an idle view of the road until the player starts.
type TitleScreen struct {
	Title    string
	start    time.Time
	onStart  func()
	face     *text.GoXFace
	controls []string
}

// NewTitleScreen creates a title screen that calls onStart when the player
// presses Enter or Space or clicks.
func NewTitleScreen(title string, onStart func()) *TitleScreen {
	return &TitleScreen{
		Title:   title,
		start:   time.Now(),
		onStart: onStart,
		face:    text.NewGoXFace(bitmapfont.Face),
		controls: []string{
			"ARROWS / WASD  drive",
			"F3  debug info",
			"ESC  back to title",
		},
	}
}

func (ts *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ts.onStart != nil {
			ts.onStart()
		}
	}
	return nil
}

func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	elapsed := time.Since(ts.start).Seconds()

	// Dim the road behind the text.
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), color.RGBA{15, 20, 35, 170}, false)

	centerX := float64(width) / 2
	centerY := float64(height) / 3

	// Pulse between 1.0 and 1.1 times the base size.
	scale := 6.0 * (1 + 0.1*math.Sin(elapsed*2))
	brightness := math.Min(1, 1+0.2*math.Sin(elapsed*1.5))
	drawCentered(screen, ts.Title, ts.face, centerX, centerY-8, scale, color.RGBA{
		uint8(255 * brightness),
		uint8(200 * brightness),
		uint8(50 * brightness),
		255,
	})

	// Blink every half second.
	if int(elapsed*2)%2 == 0 {
		drawCentered(screen, "Press ENTER or SPACE to drive", ts.face, centerX, float64(height)-100, 1.5, color.RGBA{150, 200, 255, 255})
	}

	y := centerY + 70
	for _, line := range ts.controls {
		drawCentered(screen, line, ts.face, centerX, y, 1.5, color.RGBA{180, 180, 200, 255})
		y += 28
	}

	lineColor := color.RGBA{50, 60, 80, 100}
	vector.DrawFilledRect(screen, 0, float32(height)/6, float32(width), 2, lineColor, false)
	vector.DrawFilledRect(screen, 0, float32(height)*5/6, float32(width), 2, lineColor, false)
}

// drawCentered draws s scaled and centred horizontally on x.
func drawCentered(screen *ebiten.Image, s string, face text.Face, x, y, scale float64, clr color.Color) {
	w := text.Advance(s, face) * scale
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x-w/2, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

// Package ui draws everything that is not the road: the title screen, the
// speedometer and the debug overlay.
package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MPHPerUnitPerTick converts forward speed in world units per tick to the
// number on the speedometer. Top speed reads 180.
const MPHPerUnitPerTick = 2.0

// Readout is what the HUD shows for one frame.
type Readout struct {
	Speed    float64 // World units per tick
	MaxSpeed float64
	Lap      int     // Completed laps
	Progress float64 // Through the current lap, [0, 1)
	OffRoad  bool
}

// HUD draws the speedometer and lap progress.
type HUD struct {
	face *text.GoXFace
}

func NewHUD() *HUD {
	return &HUD{face: text.NewGoXFace(bitmapfont.Face)}
}

// Draw draws the speedometer in the top left corner and the lap bar along
// the bottom.
func (h *HUD) Draw(screen *ebiten.Image, r Readout) {
	mph := r.Speed * MPHPerUnitPerTick
	maxMPH := r.MaxSpeed * MPHPerUnitPerTick

	var x, y, width, height float32 = 20, 20, 180, 120
	vector.DrawFilledRect(screen, x, y, width, height, color.RGBA{20, 20, 30, 200}, false)
	vector.StrokeRect(screen, x, y, width, height, 2, color.RGBA{100, 100, 120, 255}, false)

	cx := float64(x + width/2)
	drawCentered(screen, fmt.Sprintf("%.0f", mph), h.face, cx, float64(y)+30, 3, speedColor(mph/maxMPH))

	label := "MPH"
	labelColor := color.Color(color.RGBA{200, 200, 200, 255})
	if r.OffRoad {
		label = "OFF ROAD"
		labelColor = color.RGBA{255, 100, 100, 255}
	}
	drawCentered(screen, label, h.face, cx, float64(y)+75, 1.5, labelColor)

	gauge(screen, x+10, y+height-25, width-20, 15, mph/maxMPH)

	// Lap progress along the bottom edge.
	sw, sh := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())
	vector.DrawFilledRect(screen, 0, sh-6, sw, 6, color.RGBA{40, 40, 40, 200}, false)
	vector.DrawFilledRect(screen, 0, sh-6, sw*float32(r.Progress), 6, color.RGBA{255, 200, 50, 255}, false)
	drawCentered(screen, fmt.Sprintf("LAP %d  %3.0f%%", r.Lap+1, r.Progress*100), h.face, float64(sw)/2, float64(sh)-30, 1.5, color.White)
}

// gauge draws a horizontal bar filled to frac.
func gauge(screen *ebiten.Image, x, y, width, height float32, frac float64) {
	frac = math.Max(0, math.Min(frac, 1))
	vector.DrawFilledRect(screen, x, y, width, height, color.RGBA{40, 40, 40, 255}, false)
	if filled := width * float32(frac); filled > 0 {
		vector.DrawFilledRect(screen, x, y, filled, height, gaugeColor(frac), false)
	}
	vector.StrokeRect(screen, x, y, width, height, 1, color.RGBA{150, 150, 150, 255}, false)
}

// gaugeColor runs from green through yellow to red.
func gaugeColor(frac float64) color.RGBA {
	if frac < 0.5 {
		ratio := frac / 0.5
		return color.RGBA{uint8(100 + ratio*155), 255, 100, 255}
	}
	ratio := (frac - 0.5) / 0.5
	return color.RGBA{255, uint8(255 - ratio*155), uint8(100 - ratio*100), 255}
}

func speedColor(frac float64) color.RGBA {
	switch {
	case frac < 0.5:
		return color.RGBA{100, 255, 100, 255}
	case frac < 0.8:
		return color.RGBA{255, 255, 100, 255}
	}
	return color.RGBA{255, 100, 100, 255}
}

// DrawDebug prints lines of debug text in the top right corner.
func DrawDebug(screen *ebiten.Image, lines []string) {
	const lineHeight = 16
	x := screen.Bounds().Dx() - 260
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x, 10+i*lineHeight)
	}
}

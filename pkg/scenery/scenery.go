// Package scenery paints the ground that shows beside the road.
package scenery

import (
	"image"
	"image/color"
	"math"
	"math/rand"
)

// Generator paints ground textures of a fixed size.
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a new ground generator.
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

// Grass paints a grass field seen at a low angle: bands get thinner and
// bushes smaller towards the top, where the horizon usually is. The same seed
// always gives the same picture.
func (g *Generator) Grass(seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(seed))

	for y := 0; y < g.Height; y++ {
		// Distance from the top in [0, 1]. Bands are spaced by its square
		// so they crowd together in the distance.
		d := float64(y+1) / float64(g.Height)
		dark := math.Mod(d*d*12, 1) < 0.5
		c := color.RGBA{40, 120, 40, 255}
		if dark {
			c = color.RGBA{30, 100, 30, 255}
		}
		for x := 0; x < g.Width; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	// Noise
	for i := 0; i < g.Width*g.Height/10; i++ {
		x := rng.Intn(g.Width)
		y := rng.Intn(g.Height)
		shade := uint8(80 + rng.Intn(60))
		img.SetRGBA(x, y, color.RGBA{30, shade, 30, 255})
	}

	for y := 0; y < g.Height; y += 10 {
		d := float64(y+1) / float64(g.Height)
		density := 0.1 + 0.2*d
		for x := 0; x < g.Width; x += 5 + rng.Intn(15) {
			if rng.Float64() > density {
				continue
			}
			radius := 1 + int(d*float64(4+rng.Intn(8)))
			g.bush(img, x+rng.Intn(10)-5, y+rng.Intn(10)-5, radius, rng)
		}
	}

	return img
}

// bush draws a round bush, clipped to the image.
func (g *Generator) bush(img *image.RGBA, x, y, radius int, rng *rand.Rand) {
	c := color.RGBA{
		uint8(40 + rng.Intn(40)),
		uint8(100 + rng.Intn(50)),
		uint8(40 + rng.Intn(40)),
		255,
	}

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			p := image.Pt(x+dx, y+dy)
			if p.In(img.Rect) {
				img.SetRGBA(p.X, p.Y, c)
			}
		}
	}
}

// Package screen draws render calls onto an ebiten image.
package screen

import (
	"image"
	"image/color"

	"github.com/golangdaddy/pseudoroad/pkg/projection"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Surface implements render.Surface on an ebiten image.
type Surface struct {
	Image *ebiten.Image

	// Backdrop, if set, is stretched over the whole image on Clear. The sky
	// and road are drawn over it, so it only shows beside the road.
	Backdrop  *ebiten.Image
	LineWidth float32

	fill   color.Color
	stroke color.Color

	vertices []ebiten.Vertex
	indices  []uint16
}

// New creates a surface drawing onto img.
func New(img *ebiten.Image, backdrop *ebiten.Image) *Surface {
	return &Surface{
		Image:     img,
		Backdrop:  backdrop,
		LineWidth: 2,
		fill:      color.White,
		stroke:    color.White,
	}
}

// Clear wipes the first width x height pixels.
func (s *Surface) Clear(width, height float64) {
	if s.Backdrop == nil {
		s.Image.Clear()
		return
	}
	b := s.Backdrop.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(width/float64(b.Dx()), height/float64(b.Dy()))
	op.Blend = ebiten.BlendCopy
	s.Image.DrawImage(s.Backdrop, op)
}

func (s *Surface) SetFillColor(c color.Color) {
	s.fill = c
}

func (s *Surface) SetStrokeColor(c color.Color) {
	s.stroke = c
}

// FillPolygon fills a convex polygon as a triangle fan.
func (s *Surface) FillPolygon(points []projection.Point) {
	if len(points) < 3 {
		return
	}
	cr, cg, cb, ca := colorScale(s.fill)

	s.vertices = s.vertices[:0]
	for _, p := range points {
		s.vertices = append(s.vertices, ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	s.indices = s.indices[:0]
	for i := 2; i < len(points); i++ {
		s.indices = append(s.indices, 0, uint16(i-1), uint16(i))
	}

	s.Image.DrawTriangles(s.vertices, s.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

func (s *Surface) StrokeLine(a, b projection.Point) {
	vector.StrokeLine(s.Image, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), s.LineWidth, s.stroke, true)
}

// colorScale converts c to premultiplied vertex colour components.
func colorScale(c color.Color) (r, g, b, a float32) {
	cr, cg, cb, ca := c.RGBA()
	return float32(cr) / 0xffff, float32(cg) / 0xffff, float32(cb) / 0xffff, float32(ca) / 0xffff
}

//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from per-cell status and blits it
// scaled by the configured cell size.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of w×h cells.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the status flags into the painter image and draws it onto
// dst with one cell covering cellSize×cellSize pixels.
func (gp *GridPainter) Blit(dst *ebiten.Image, status []bool, alive, dead color.Color, cellSize int) {
	if len(status) != gp.w*gp.h {
		return
	}
	fillStatusRGBA(gp.buf, status, alive, dead)
	gp.img.ReplacePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellSize), float64(cellSize))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

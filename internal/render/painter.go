//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from cell data and draws it scaled.
type GridPainter struct {
	w, h  int
	flipY bool
	img   *ebiten.Image
	buf   []byte
}

// NewGridPainter allocates a painter for a grid of size w*h. With flipY row 0
// is drawn at the bottom.
func NewGridPainter(w, h int, flipY bool) *GridPainter {
	gp := &GridPainter{w: w, h: h, flipY: flipY, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit draws non-zero cells with on and the rest with off.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, off color.Color, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, cells, gp.w, gp.h, gp.flipY, on, off)
	gp.draw(dst, scale)
}

// BlitPalette draws each cell with the palette entry its value indexes.
func (gp *GridPainter) BlitPalette(dst *ebiten.Image, cells []uint8, palette []color.RGBA, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillPaletteRGBA(gp.buf, cells, gp.w, gp.h, gp.flipY, palette)
	gp.draw(dst, scale)
}

// BlitMatch draws col over the cells match accepts, leaving the rest of dst
// visible.
func (gp *GridPainter) BlitMatch(dst *ebiten.Image, values []uint8, match func(uint8) bool, col color.RGBA, scale int) {
	if len(values) != gp.w*gp.h {
		return
	}
	fillMatchRGBA(gp.buf, values, gp.w, gp.h, gp.flipY, match, col)
	gp.draw(dst, scale)
}

func (gp *GridPainter) draw(dst *ebiten.Image, scale int) {
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

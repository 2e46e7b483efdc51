package render

import "image/color"

// pixelIndex maps the row-major cell index i to its pixel index. With flipY
// row 0 is drawn at the bottom of the image.
func pixelIndex(i, w, h int, flipY bool) int {
	if !flipY {
		return i
	}
	x, y := i%w, i/w
	return (h-1-y)*w + x
}

func putRGBA(buf []byte, px int, c color.RGBA) {
	base := px * 4
	buf[base+0] = c.R
	buf[base+1] = c.G
	buf[base+2] = c.B
	buf[base+3] = c.A
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// fillBinaryRGBA converts cell data into RGBA pixels in buf: any non-zero
// value is drawn with on, zero with off.
func fillBinaryRGBA(buf []byte, cells []uint8, w, h int, flipY bool, on, off color.Color) {
	onRGBA, offRGBA := toRGBA(on), toRGBA(off)
	for i, c := range cells {
		px := pixelIndex(i, w, h, flipY)
		if c != 0 {
			putRGBA(buf, px, onRGBA)
			continue
		}
		putRGBA(buf, px, offRGBA)
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Values past the end of the palette use its last entry. When the palette is
// empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, w, h int, flipY bool, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range buf {
			buf[i] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		putRGBA(buf, pixelIndex(i, w, h, flipY), palette[idx])
	}
}

// fillMatchRGBA paints col where match accepts the cell value and leaves the
// remaining pixels transparent. col must be alpha-premultiplied.
func fillMatchRGBA(buf []byte, values []uint8, w, h int, flipY bool, match func(uint8) bool, col color.RGBA) {
	var transparent color.RGBA
	for i, v := range values {
		px := pixelIndex(i, w, h, flipY)
		if match(v) {
			putRGBA(buf, px, col)
			continue
		}
		putRGBA(buf, px, transparent)
	}
}

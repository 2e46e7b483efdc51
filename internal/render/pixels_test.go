package render

import (
	"image/color"
	"slices"
	"testing"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	green = color.RGBA{G: 128, A: 255}
)

func pixelAt(buf []byte, px int) color.RGBA {
	base := px * 4
	return color.RGBA{R: buf[base], G: buf[base+1], B: buf[base+2], A: buf[base+3]}
}

func TestFillPaletteRGBA(t *testing.T) {
	cells := []uint8{0, 1, 2, 7}
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, 4, 1, false, []color.RGBA{white, green, green})

	want := []color.RGBA{white, green, green, green}
	for i, c := range want {
		if got := pixelAt(buf, i); got != c {
			t.Fatalf("pixel %d = %v, want %v", i, got, c)
		}
	}
}

func TestFillPaletteRGBAEmptyPaletteClears(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	fillPaletteRGBA(buf, []uint8{1, 1}, 2, 1, false, nil)
	if !slices.Equal(buf, make([]byte, 8)) {
		t.Fatalf("buffer not cleared: %v", buf)
	}
}

func TestFillBinaryRGBAFlipsRows(t *testing.T) {
	// 2x2 grid with only the top-left cell (row 0) set.
	cells := []uint8{1, 0, 0, 0}
	buf := make([]byte, 16)
	fillBinaryRGBA(buf, cells, 2, 2, true, green, white)

	if got := pixelAt(buf, 2); got != green {
		t.Fatalf("row 0 should land on the bottom row, pixel 2 = %v", got)
	}
	if got := pixelAt(buf, 0); got != white {
		t.Fatalf("pixel 0 = %v, want off", got)
	}
}

func TestFillMatchRGBA(t *testing.T) {
	tint := color.RGBA{R: 40, A: 40}
	buf := make([]byte, 12)
	fillMatchRGBA(buf, []uint8{2, 1, 2}, 3, 1, false, func(v uint8) bool { return v == 2 }, tint)

	want := []color.RGBA{tint, {}, tint}
	for i, c := range want {
		if got := pixelAt(buf, i); got != c {
			t.Fatalf("pixel %d = %v, want %v", i, got, c)
		}
	}
}

func TestPixelIndex(t *testing.T) {
	cases := []struct {
		i, w, h int
		flip    bool
		want    int
	}{
		{0, 3, 2, false, 0},
		{4, 3, 2, false, 4},
		{0, 3, 2, true, 3},
		{5, 3, 2, true, 2},
	}
	for _, tc := range cases {
		if got := pixelIndex(tc.i, tc.w, tc.h, tc.flip); got != tc.want {
			t.Fatalf("pixelIndex(%d, %d, %d, %v) = %d, want %d", tc.i, tc.w, tc.h, tc.flip, got, tc.want)
		}
	}
}

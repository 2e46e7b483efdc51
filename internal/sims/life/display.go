package life

import "image/color"

var lifePalette = []color.RGBA{
	Dead:   {R: 255, G: 255, B: 255, A: 255},
	Alive:  {R: 0, G: 128, B: 0, A: 255},
	Frozen: {R: 0, G: 128, B: 0, A: 255},
}

// Palette maps state codes to colors. Alive and frozen cells share a color.
func (s *Sim) Palette() []color.RGBA {
	return lifePalette
}

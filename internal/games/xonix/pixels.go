package xonix

import (
	"image/color"

	"github.com/vovakirdan/xonix/internal/core"
)

var pixelPalette = [...]color.RGBA{
	core.ColorDefault: {0, 0, 0, 255},
	core.ColorBlack:   {0, 0, 0, 255},
	core.ColorRed:     {255, 0, 0, 255},
	core.ColorGreen:   {0, 255, 0, 255},
	core.ColorYellow:  {255, 255, 0, 255},
	core.ColorBlue:    {0, 0, 255, 255},
	core.ColorMagenta: {255, 0, 255, 255},
	core.ColorCyan:    {0, 255, 255, 255},
	core.ColorWhite:   {255, 255, 255, 255},
	core.ColorGray:    {128, 128, 128, 255},
}

// PixelColor returns the window color for a palette entry.
func PixelColor(c core.Color) color.RGBA {
	if int(c) >= len(pixelPalette) {
		return pixelPalette[core.ColorDefault]
	}
	return pixelPalette[c]
}

// Pixels writes the grid as RGBA bytes, one pixel per tile in row-major
// order, reusing dst when it is large enough.
func Pixels(g *Grid, dst []byte) []byte {
	n := g.Rows() * g.Cols() * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]

	for i, s := range g.tiles {
		c := PixelColor(TileColor(s))
		dst[i*4] = c.R
		dst[i*4+1] = c.G
		dst[i*4+2] = c.B
		dst[i*4+3] = c.A
	}
	return dst
}

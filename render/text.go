package render

import (
	"math"

	"github.com/dasdy/keylayout/model"
)

// Box is the rectangle text gets centered in.
type Box struct {
	X, Y, W, H int
}

func RegionBox(r model.KeyRegion) Box {
	return Box{X: r.X, Y: r.Y, W: r.Width, H: r.Height}
}

// TextWidth sums the advance widths of every rune. There is no kerning.
func TextWidth(cache *GlyphCache, text string, size uint32) float64 {
	total := 0.0
	for _, r := range text {
		total += cache.Get(r, size).Advance
	}

	return total
}

// TextStart is the x coordinate of the pen when text is centered in box.
// It is negative when the text is wider than the box on the left edge.
func TextStart(cache *GlyphCache, box Box, text string, size uint32) float64 {
	return float64(box.X) + (float64(box.W)-TextWidth(cache, text, size))/2
}

// DrawText centers text horizontally by advance width and vertically per glyph
// using each glyph's own bitmap height, then paints it. Text overflowing the box
// is clipped by the buffer only.
func DrawText(cache *GlyphCache, buf *PixelBuffer, box Box, text string, size uint32, c model.Color) {
	cursor := TextStart(cache, box, text, size)
	center := float64(box.Y) + float64(box.H)/2

	for _, r := range text {
		g := cache.Get(r, size)

		if !g.Empty() {
			x := math.Round(cursor + float64(g.XMin))
			y := math.Round(center - float64(g.Height)/2 - float64(g.YMin))
			PaintGlyph(buf, int(x), int(y), g, c)
		}

		cursor += g.Advance
	}
}

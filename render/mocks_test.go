package render_test

import "github.com/dasdy/keylayout/render"

const (
	fakeWidth   = 4
	fakeHeight  = 6
	fakeXMin    = 1
	fakeAdvance = 12.0
	spaceAdv    = 6.0
	unsupported = '\uE000'

	// descender glyphs sit descenderDepth pixels below the baseline.
	descender      = 'q'
	descenderDepth = 3
)

// countingRasterizer produces solid fakeWidth x fakeHeight glyphs and counts calls.
type countingRasterizer struct {
	calls map[render.GlyphKey]int
}

func newCountingRasterizer() *countingRasterizer {
	return &countingRasterizer{calls: make(map[render.GlyphKey]int)}
}

func (c *countingRasterizer) Rasterize(r rune, size uint32) render.GlyphBitmap {
	c.calls[render.GlyphKey{Rune: r, Size: size}]++

	switch r {
	case ' ':
		return render.GlyphBitmap{Advance: spaceAdv}
	case unsupported:
		return render.GlyphBitmap{Advance: 3}
	}

	cov := make([]byte, fakeWidth*fakeHeight)
	for i := range cov {
		cov[i] = 0xFF
	}

	yMin := 0
	if r == descender {
		yMin = -descenderDepth
	}

	return render.GlyphBitmap{
		Width:    fakeWidth,
		Height:   fakeHeight,
		XMin:     fakeXMin,
		YMin:     yMin,
		Advance:  fakeAdvance,
		Coverage: cov,
	}
}

func (c *countingRasterizer) total() int {
	n := 0
	for _, v := range c.calls {
		n += v
	}

	return n
}

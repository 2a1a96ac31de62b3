package render_test

import (
	"testing"

	"github.com/dasdy/keylayout/model"
	"github.com/dasdy/keylayout/render"
	"github.com/stretchr/testify/assert"
)

const marker model.Color = 0xFF010203

func TestFillRect(t *testing.T) {
	const w, h = 20, 10

	testCases := []struct {
		name         string
		x, y, rw, rh int
	}{
		{"inside", 2, 3, 5, 4},
		{"whole buffer", 0, 0, w, h},
		{"overflows right and bottom", 15, 7, 10, 10},
		{"starts negative", -3, -2, 6, 5},
		{"fully outside", 25, 0, 4, 4},
		{"zero size", 4, 4, 0, 3},
		{"negative size", 4, 4, -2, 3},
		{"larger than buffer", -5, -5, 40, 40},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf := render.NewPixelBuffer(w, h)
			buf.Fill(marker)

			render.FillRect(buf, tc.x, tc.y, tc.rw, tc.rh, model.White)

			for y := range h {
				for x := range w {
					inside := x >= tc.x && x < tc.x+tc.rw && y >= tc.y && y < tc.y+tc.rh
					if inside {
						assert.Equal(t, model.White, buf.At(x, y), "pixel %d,%d", x, y)
					} else {
						assert.Equal(t, marker, buf.At(x, y), "pixel %d,%d", x, y)
					}
				}
			}
		})
	}
}

func glyphOf(w, h int, cov ...byte) *render.GlyphBitmap {
	return &render.GlyphBitmap{Width: w, Height: h, Coverage: cov}
}

func TestPaintGlyphBlend(t *testing.T) {
	text := model.RGB(200, 200, 200)

	t.Run("zero coverage keeps destination", func(t *testing.T) {
		buf := render.NewPixelBuffer(1, 1)
		buf.Fill(marker)

		render.PaintGlyph(buf, 0, 0, glyphOf(1, 1, 0), text)

		assert.Equal(t, marker, buf.At(0, 0))
	})

	t.Run("full coverage writes text color", func(t *testing.T) {
		buf := render.NewPixelBuffer(1, 1)
		buf.Fill(marker)

		render.PaintGlyph(buf, 0, 0, glyphOf(1, 1, 0xFF), text)

		assert.Equal(t, text, buf.At(0, 0))
	})

	t.Run("partial coverage truncates", func(t *testing.T) {
		buf := render.NewPixelBuffer(2, 1)
		buf.Set(0, 0, model.Black)
		buf.Set(1, 0, model.RGB(100, 100, 100))

		render.PaintGlyph(buf, 0, 0, glyphOf(2, 1, 128, 128), text)

		assert.Equal(t, model.RGB(100, 100, 100), buf.At(0, 0))
		assert.Equal(t, model.RGB(150, 150, 150), buf.At(1, 0))
	})

	t.Run("destination becomes opaque", func(t *testing.T) {
		buf := render.NewPixelBuffer(1, 1)
		buf.Set(0, 0, 0x00101010)

		render.PaintGlyph(buf, 0, 0, glyphOf(1, 1, 10), text)

		assert.Equal(t, uint8(0xFF), buf.At(0, 0).A())
	})
}

func TestPaintGlyphClips(t *testing.T) {
	buf := render.NewPixelBuffer(3, 3)
	buf.Fill(marker)

	g := glyphOf(3, 3,
		0xFF, 0xFF, 0xFF,
		0xFF, 0xFF, 0xFF,
		0xFF, 0xFF, 0xFF)

	assert.NotPanics(t, func() {
		render.PaintGlyph(buf, -2, -2, g, model.White)
		render.PaintGlyph(buf, 2, 2, g, model.White)
		render.PaintGlyph(buf, 10, -10, g, model.White)
	})

	assert.Equal(t, model.White, buf.At(0, 0))
	assert.Equal(t, model.White, buf.At(2, 2))
	assert.Equal(t, marker, buf.At(1, 0))
	assert.Equal(t, marker, buf.At(0, 1))
	assert.Equal(t, marker, buf.At(1, 1))
}

func TestPaintGlyphEmpty(t *testing.T) {
	buf := render.NewPixelBuffer(2, 2)
	buf.Fill(marker)

	render.PaintGlyph(buf, 0, 0, &render.GlyphBitmap{Advance: 5}, model.White)
	render.PaintGlyph(buf, 0, 0, nil, model.White)

	for _, p := range buf.Pix() {
		assert.Equal(t, uint32(marker), p)
	}
}

func BenchmarkPaintGlyph(b *testing.B) {
	buf := render.NewPixelBuffer(890, 290)
	cov := make([]byte, 24*24)

	for i := range cov {
		cov[i] = byte(i)
	}

	g := glyphOf(24, 24, cov...)

	for range b.N {
		render.PaintGlyph(buf, 100, 100, g, model.White)
	}
}

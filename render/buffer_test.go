package render_test

import (
	"testing"

	"github.com/dasdy/keylayout/model"
	"github.com/dasdy/keylayout/render"
	"github.com/stretchr/testify/assert"
)

func TestPixelBufferBounds(t *testing.T) {
	buf := render.NewPixelBuffer(4, 3)

	buf.Set(-1, 0, model.White)
	buf.Set(0, -1, model.White)
	buf.Set(4, 0, model.White)
	buf.Set(0, 3, model.White)

	for _, p := range buf.Pix() {
		assert.Zero(t, p)
	}

	buf.Set(3, 2, model.White)
	assert.Equal(t, model.White, buf.At(3, 2))
	assert.Equal(t, uint32(model.White), buf.Pix()[2*4+3])
	assert.Zero(t, buf.At(10, 10))
}

func TestPixelBufferNegativeSize(t *testing.T) {
	buf := render.NewPixelBuffer(-5, 3)

	assert.Equal(t, 0, buf.Width())
	assert.Empty(t, buf.Pix())
}

func TestPixelBufferRGBA(t *testing.T) {
	buf := render.NewPixelBuffer(2, 1)
	buf.Set(0, 0, 0xFF102030)
	buf.Set(1, 0, 0xFFA0B0C0)

	assert.Equal(t,
		[]byte{0x10, 0x20, 0x30, 0xFF, 0xA0, 0xB0, 0xC0, 0xFF},
		buf.AppendRGBA(nil))

	img := buf.Image()
	assert.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, uint8(0xB0), img.RGBAAt(1, 0).G)
}

func TestPixelBufferCopy(t *testing.T) {
	src := render.NewPixelBuffer(3, 3)
	src.Fill(model.DefaultAccent)

	dst := render.NewPixelBuffer(3, 3)
	dst.CopyFrom(src)

	assert.Equal(t, src.Pix(), dst.Pix())

	clone := src.Clone()
	clone.Set(0, 0, model.White)
	assert.Equal(t, model.DefaultAccent, src.At(0, 0))
}

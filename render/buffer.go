package render

import (
	"image"

	"github.com/dasdy/keylayout/model"
)

// PixelBuffer is a row-major ARGB frame with stride equal to its width.
// Reads and writes outside the frame are ignored.
type PixelBuffer struct {
	width  int
	height int
	pix    []uint32
}

func NewPixelBuffer(width, height int) *PixelBuffer {
	width = max(0, width)
	height = max(0, height)

	return &PixelBuffer{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}
}

func (b *PixelBuffer) Width() int  { return b.width }
func (b *PixelBuffer) Height() int { return b.height }

// Pix exposes the backing slice. Callers must not change its length.
func (b *PixelBuffer) Pix() []uint32 { return b.pix }

func (b *PixelBuffer) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

// At returns the pixel at (x, y), or 0 when out of bounds.
func (b *PixelBuffer) At(x, y int) model.Color {
	if !b.inBounds(x, y) {
		return 0
	}

	return model.Color(b.pix[y*b.width+x])
}

// Set writes c at (x, y). Out of bounds writes are dropped.
func (b *PixelBuffer) Set(x, y int, c model.Color) {
	if !b.inBounds(x, y) {
		return
	}

	b.pix[y*b.width+x] = uint32(c)
}

func (b *PixelBuffer) Fill(c model.Color) {
	for i := range b.pix {
		b.pix[i] = uint32(c)
	}
}

// CopyFrom copies src into b. Both buffers must have the same size;
// otherwise only the overlapping prefix is copied.
func (b *PixelBuffer) CopyFrom(src *PixelBuffer) {
	copy(b.pix, src.pix)
}

func (b *PixelBuffer) Clone() *PixelBuffer {
	out := NewPixelBuffer(b.width, b.height)
	out.CopyFrom(b)

	return out
}

// AppendRGBA appends the frame as tightly packed RGBA bytes, the layout
// expected by ebiten.Image.WritePixels and image.RGBA.
func (b *PixelBuffer) AppendRGBA(dst []byte) []byte {
	for _, p := range b.pix {
		dst = append(dst, byte(p>>16), byte(p>>8), byte(p), byte(p>>24))
	}

	return dst
}

// Image converts the frame to an *image.RGBA.
func (b *PixelBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	img.Pix = b.AppendRGBA(img.Pix[:0])

	return img
}

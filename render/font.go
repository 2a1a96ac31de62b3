package render

import (
	"errors"
	"fmt"
	"image"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

var ErrNoFont = errors.New("no usable font")

// FontRasterizer rasterizes glyphs from an OpenType font. It keeps one face
// per pixel size and is not safe for concurrent use.
type FontRasterizer struct {
	font  *opentype.Font
	faces map[uint32]font.Face
	buf   sfnt.Buffer
}

func NewFontRasterizer(data []byte) (*FontRasterizer, error) {
	if len(data) == 0 {
		return nil, ErrNoFont
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("could not parse font: %w", err)
	}

	return &FontRasterizer{
		font:  f,
		faces: make(map[uint32]font.Face),
	}, nil
}

// DefaultFontRasterizer uses the embedded Go Regular font.
func DefaultFontRasterizer() (*FontRasterizer, error) {
	return NewFontRasterizer(goregular.TTF)
}

// LoadFontRasterizer reads a TTF/OTF file. An empty path selects the embedded font.
func LoadFontRasterizer(path string) (*FontRasterizer, error) {
	if path == "" {
		return DefaultFontRasterizer()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read font %s: %w", path, err)
	}

	return NewFontRasterizer(data)
}

func (f *FontRasterizer) face(size uint32) (font.Face, error) {
	if face, ok := f.faces[size]; ok {
		return face, nil
	}

	// 72 DPI makes one point equal to one pixel.
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create face of size %d: %w", size, err)
	}

	f.faces[size] = face

	return face, nil
}

func (f *FontRasterizer) Rasterize(r rune, size uint32) GlyphBitmap {
	if size == 0 {
		return GlyphBitmap{}
	}

	face, err := f.face(size)
	if err != nil {
		return GlyphBitmap{}
	}

	adv, _ := face.GlyphAdvance(r)

	idx, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil || idx == 0 {
		return GlyphBitmap{Advance: fixedToFloat(adv)}
	}

	dr, mask, maskp, advance, ok := face.Glyph(fixed.Point26_6{}, r)
	if !ok || dr.Empty() {
		return GlyphBitmap{Advance: fixedToFloat(adv)}
	}

	w, h := dr.Dx(), dr.Dy()

	return GlyphBitmap{
		Width:    w,
		Height:   h,
		XMin:     dr.Min.X,
		YMin:     -dr.Max.Y,
		Advance:  fixedToFloat(advance),
		Coverage: copyCoverage(mask, maskp, w, h),
	}
}

func (f *FontRasterizer) Close() error {
	var errs []error

	for size, face := range f.faces {
		if err := face.Close(); err != nil {
			errs = append(errs, err)
		}

		delete(f.faces, size)
	}

	return errors.Join(errs...)
}

// copyCoverage copies the mask out: opentype faces reuse their mask between calls.
func copyCoverage(mask image.Image, maskp image.Point, w, h int) []byte {
	cov := make([]byte, w*h)

	if alpha, ok := mask.(*image.Alpha); ok {
		for y := range h {
			off := alpha.PixOffset(maskp.X, maskp.Y+y)
			copy(cov[y*w:(y+1)*w], alpha.Pix[off:off+w])
		}

		return cov
	}

	for y := range h {
		for x := range w {
			_, _, _, a := mask.At(maskp.X+x, maskp.Y+y).RGBA()
			cov[y*w+x] = byte(a >> 8)
		}
	}

	return cov
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

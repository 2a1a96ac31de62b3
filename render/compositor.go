package render

import "github.com/dasdy/keylayout/model"

// FillRect paints an opaque rectangle, clipped to the buffer.
func FillRect(buf *PixelBuffer, x, y, w, h int, c model.Color) {
	x0 := max(x, 0)
	y0 := max(y, 0)
	x1 := min(x+w, buf.width)
	y1 := min(y+h, buf.height)

	if x0 >= x1 || y0 >= y1 {
		return
	}

	for row := y0; row < y1; row++ {
		line := buf.pix[row*buf.width+x0 : row*buf.width+x1]
		for i := range line {
			line[i] = uint32(c)
		}
	}
}

// PaintGlyph blends the coverage mask of g onto buf with its top-left corner
// at (originX, originY). The destination stays opaque.
func PaintGlyph(buf *PixelBuffer, originX, originY int, g *GlyphBitmap, textColor model.Color) {
	if g == nil || g.Width == 0 || g.Height == 0 {
		return
	}

	tr := float32(textColor.R())
	tg := float32(textColor.G())
	tb := float32(textColor.B())

	for dy := range g.Height {
		py := originY + dy
		if py < 0 || py >= buf.height {
			continue
		}

		row := g.Coverage[dy*g.Width : (dy+1)*g.Width]

		for dx, cov := range row {
			if cov == 0 {
				continue
			}

			px := originX + dx
			if px < 0 || px >= buf.width {
				continue
			}

			idx := py*buf.width + px
			buf.pix[idx] = uint32(blend(model.Color(buf.pix[idx]), tr, tg, tb, float32(cov)/255))
		}
	}
}

func blend(dst model.Color, tr, tg, tb, alpha float32) model.Color {
	inv := 1 - alpha
	r := uint32(tr*alpha + float32(dst.R())*inv)
	g := uint32(tg*alpha + float32(dst.G())*inv)
	b := uint32(tb*alpha + float32(dst.B())*inv)

	return model.Color(0xFF<<24 | min(r, 0xFF)<<16 | min(g, 0xFF)<<8 | min(b, 0xFF))
}

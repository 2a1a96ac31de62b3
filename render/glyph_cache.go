package render

// GlyphKey identifies a rasterized glyph in the cache.
type GlyphKey struct {
	Rune rune
	Size uint32
}

// GlyphBitmap is an 8-bit coverage mask with its placement metrics.
// YMin is the offset of the bottom edge above the baseline, so glyphs with
// descenders have a negative YMin. Bitmaps are never modified once cached.
type GlyphBitmap struct {
	Width    int
	Height   int
	XMin     int
	YMin     int
	Advance  float64
	Coverage []byte
}

// Empty reports whether the glyph has nothing to paint.
func (g GlyphBitmap) Empty() bool {
	return g.Width == 0 || g.Height == 0
}

// Rasterizer turns a codepoint into a coverage bitmap at a pixel size.
// Unsupported codepoints yield a zero-size bitmap.
type Rasterizer interface {
	Rasterize(r rune, size uint32) GlyphBitmap
}

// GlyphCache memoizes rasterized glyphs for the lifetime of the process.
// It is not safe for concurrent use; the render loop owns it.
type GlyphCache struct {
	rasterizer Rasterizer
	glyphs     map[GlyphKey]*GlyphBitmap
	misses     int
}

func NewGlyphCache(r Rasterizer) *GlyphCache {
	return &GlyphCache{
		rasterizer: r,
		glyphs:     make(map[GlyphKey]*GlyphBitmap),
	}
}

// Get returns the cached glyph, rasterizing it on first use.
func (c *GlyphCache) Get(r rune, size uint32) *GlyphBitmap {
	key := GlyphKey{Rune: r, Size: size}

	if g, ok := c.glyphs[key]; ok {
		return g
	}

	g := c.rasterizer.Rasterize(r, size)
	if len(g.Coverage) < g.Width*g.Height {
		// a short mask would make PaintGlyph read past the end
		g = GlyphBitmap{Advance: g.Advance}
	}

	c.misses++
	c.glyphs[key] = &g

	return &g
}

// Warm rasterizes every rune of text at size and reports how many were new.
func (c *GlyphCache) Warm(text string, size uint32) int {
	before := c.misses

	for _, r := range text {
		c.Get(r, size)
	}

	return c.misses - before
}

func (c *GlyphCache) Len() int { return len(c.glyphs) }

// Misses counts calls that had to rasterize.
func (c *GlyphCache) Misses() int { return c.misses }

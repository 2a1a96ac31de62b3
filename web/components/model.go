package components

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.857 generate

import (
	"time"

	"github.com/dasdy/keylayout/layout"
)

// Key is a clickable key overlay on top of the frame image.
type Key struct {
	Code   string
	Label  string
	X      int
	Y      int
	Width  int
	Height int
}

type RenderContext struct {
	Title     string
	Width     int
	Height    int
	Keys      []Key
	RefreshMs int64
}

func NewRenderContext(t *layout.Table, refresh time.Duration) RenderContext {
	keys := make([]Key, 0, len(t.Regions))

	for _, r := range t.Regions {
		keys = append(keys, Key{
			Code:   r.Code.String(),
			Label:  r.Label,
			X:      r.X,
			Y:      r.Y,
			Width:  r.Width,
			Height: r.Height,
		})
	}

	return RenderContext{
		Title:     "KeyLayout",
		Width:     t.Width,
		Height:    t.Height,
		Keys:      keys,
		RefreshMs: max(refresh.Milliseconds(), 1),
	}
}

package ui

import (
	"time"

	"github.com/dasdy/keylayout/input"
	"github.com/dasdy/keylayout/model"
	"github.com/dasdy/keylayout/render"
)

// Style holds the sizes and colors used to compose a frame.
type Style struct {
	LabelSize    uint32
	StatusSize   uint32
	LabelColor   model.Color
	StatusColor  model.Color
	PressedColor model.Color
	Background   model.Color
}

func DefaultStyle() Style {
	return Style{
		LabelSize:    24,
		StatusSize:   40,
		LabelColor:   model.RGB(200, 200, 200),
		StatusColor:  model.RGB(0, 255, 0),
		PressedColor: model.White,
		Background:   model.Black,
	}
}

// Renderer composes frames from a static background of key outlines, the
// pressed keys, their labels and the status overlay.
type Renderer struct {
	regions    []model.KeyRegion
	cache      *render.GlyphCache
	style      Style
	background *render.PixelBuffer
	frame      *render.PixelBuffer
}

func NewRenderer(width, height int, regions []model.KeyRegion, cache *render.GlyphCache, style Style, accent model.Color) *Renderer {
	r := &Renderer{
		regions:    regions,
		cache:      cache,
		style:      style,
		background: render.NewPixelBuffer(width, height),
		frame:      render.NewPixelBuffer(width, height),
	}
	r.RebuildBackground(accent)

	return r
}

// RebuildBackground repaints every key outline with accent.
func (r *Renderer) RebuildBackground(accent model.Color) {
	r.background.Fill(r.style.Background)

	for _, k := range r.regions {
		render.FillRect(r.background, k.X, k.Y, k.Width, k.Height, accent)
	}
}

// Compose draws a full frame for the given key state and returns it. The
// returned buffer is reused by the next call.
func (r *Renderer) Compose(state *input.State, status *StatusOverlay, now time.Time) *render.PixelBuffer {
	r.frame.CopyFrom(r.background)

	shift := state.ShiftActive()

	for _, k := range r.regions {
		if state.IsPressed(k.Code) {
			render.FillRect(r.frame, k.X, k.Y, k.Width, k.Height, r.style.PressedColor)
		}

		label := input.DisplayLabel(k.Label, shift)
		render.DrawText(r.cache, r.frame, render.RegionBox(k), label, r.style.LabelSize, r.style.LabelColor)
	}

	if status != nil && status.IsLive(now) {
		msg, _ := status.Message()
		box := render.Box{W: r.frame.Width(), H: r.frame.Height()}
		render.DrawText(r.cache, r.frame, box, msg, r.style.StatusSize, r.style.StatusColor)
	}

	return r.frame
}

func (r *Renderer) Frame() *render.PixelBuffer      { return r.frame }
func (r *Renderer) Background() *render.PixelBuffer { return r.background }
func (r *Renderer) Cache() *render.GlyphCache       { return r.cache }
func (r *Renderer) Style() Style                    { return r.style }

// Labels lists every label text a frame can show at the label size,
// including the shifted variants.
func (r *Renderer) Labels() []string {
	seen := make(map[string]struct{}, len(r.regions)*2)
	out := make([]string, 0, len(r.regions)*2)

	for _, k := range r.regions {
		for _, l := range []string{k.Label, input.DisplayLabel(k.Label, true)} {
			if _, ok := seen[l]; ok {
				continue
			}

			seen[l] = struct{}{}
			out = append(out, l)
		}
	}

	return out
}

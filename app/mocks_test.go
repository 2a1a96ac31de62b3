package app_test

import (
	"errors"
	"sync"

	"github.com/dasdy/keylayout/app"
	"github.com/dasdy/keylayout/model"
	"github.com/dasdy/keylayout/render"
)

type blockRasterizer struct{}

func (blockRasterizer) Rasterize(r rune, _ uint32) render.GlyphBitmap {
	if r == ' ' {
		return render.GlyphBitmap{Advance: 2}
	}

	return render.GlyphBitmap{Width: 2, Height: 2, Advance: 2, Coverage: []byte{0xFF, 0xFF, 0xFF, 0xFF}}
}

type memStore struct {
	mu      sync.Mutex
	initial model.Color
	saved   []model.Color
	failing bool
	closed  bool
}

func (s *memStore) Load() model.Color { return s.initial }

func (s *memStore) Save(c model.Color) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failing {
		return errors.New("disk full")
	}

	s.saved = append(s.saved, c)

	return nil
}

func (s *memStore) Close() error {
	s.closed = true

	return nil
}

// scriptedSurface replays inputs, then keeps returning the zero input or
// asks to quit.
type scriptedSurface struct {
	inputs     []app.HostInput
	quitAfter  int
	polls      int
	presented  int
	presentErr error
}

func (s *scriptedSurface) Poll() app.HostInput {
	s.polls++

	if s.quitAfter > 0 && s.polls > s.quitAfter {
		return app.HostInput{Quit: true}
	}

	if len(s.inputs) == 0 {
		return app.HostInput{}
	}

	in := s.inputs[0]
	s.inputs = s.inputs[1:]

	return in
}

func (s *scriptedSurface) Present(*render.PixelBuffer) error {
	s.presented++

	return s.presentErr
}

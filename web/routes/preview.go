package routes

import (
	"image"
	"sync"

	"github.com/dasdy/keylayout/app"
	"github.com/dasdy/keylayout/model"
	"github.com/dasdy/keylayout/render"
)

// Preview is the surface behind the web server. HTTP handlers queue input
// and read the last frame; the render loop polls and presents.
type Preview struct {
	mu      sync.Mutex
	pending app.HostInput
	frame   *render.PixelBuffer
	version uint64
}

func NewPreview() *Preview {
	return &Preview{}
}

func (p *Preview) Poll() app.HostInput {
	p.mu.Lock()
	defer p.mu.Unlock()

	in := p.pending
	p.pending = app.HostInput{}

	return in
}

func (p *Preview) Present(frame *render.PixelBuffer) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.frame == nil || p.frame.Width() != frame.Width() || p.frame.Height() != frame.Height() {
		p.frame = frame.Clone()
	} else {
		p.frame.CopyFrom(frame)
	}

	p.version++

	return nil
}

// Snapshot converts the last presented frame. It reports false before the
// first frame.
func (p *Preview) Snapshot() (*image.RGBA, uint64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.frame == nil {
		return nil, 0, false
	}

	return p.frame.Image(), p.version, true
}

func (p *Preview) Toggle() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.pending.Toggle = true
}

func (p *Preview) Key(r rune) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.pending.Keys = append(p.pending.Keys, r)
}

func (p *Preview) Scroll(delta int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.pending.Wheel += delta
}

func (p *Preview) Transition(t model.KeyTransition) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.pending.Transitions = append(p.pending.Transitions, t)
}

func (p *Preview) Quit() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.pending.Quit = true
}

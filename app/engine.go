package app

import (
	"errors"
	"log/slog"
	"time"

	"github.com/dasdy/keylayout/input"
	"github.com/dasdy/keylayout/layout"
	"github.com/dasdy/keylayout/logging"
	"github.com/dasdy/keylayout/model"
	"github.com/dasdy/keylayout/render"
	"github.com/dasdy/keylayout/settings"
	"github.com/dasdy/keylayout/ui"
)

const DefaultFPS = 60

var ErrMissingDependency = errors.New("engine dependency missing")

// HostInput is what a host surface observed since the last step.
type HostInput struct {
	// Transitions are key presses and releases seen by the host window itself.
	Transitions []model.KeyTransition
	Toggle      bool
	Wheel       int
	// Keys are released characters, used to pick a color component.
	Keys []rune
	Quit bool
}

type Config struct {
	Table    *layout.Table
	Cache    *render.GlyphCache
	Store    settings.Store
	Queue    *input.Queue
	Style    ui.Style
	FPS      int
	Cooldown time.Duration
	TTL      time.Duration
}

// Engine owns all render-loop state. Only Queue is safe to use from other
// goroutines.
type Engine struct {
	queue    *input.Queue
	state    *input.State
	status   *ui.StatusOverlay
	adjuster *ui.ColorAdjuster
	renderer *ui.Renderer
	store    settings.Store

	frameBudget time.Duration
	nextDraw    time.Time
	frame       *render.PixelBuffer
	quit        bool
}

func NewEngine(cfg Config) (*Engine, error) {
	if cfg.Table == nil || cfg.Cache == nil || cfg.Store == nil {
		return nil, ErrMissingDependency
	}

	if cfg.Queue == nil {
		cfg.Queue = input.NewQueue(input.DefaultQueueSize)
	}

	if cfg.FPS <= 0 {
		cfg.FPS = DefaultFPS
	}

	if cfg.Style == (ui.Style{}) {
		cfg.Style = ui.DefaultStyle()
	}

	accent := cfg.Store.Load()

	e := &Engine{
		queue:       cfg.Queue,
		state:       input.NewState(cfg.Table.ShiftCodes()...),
		status:      ui.NewStatusOverlay(cfg.TTL),
		store:       cfg.Store,
		frameBudget: time.Second / time.Duration(cfg.FPS),
	}

	e.renderer = ui.NewRenderer(cfg.Table.Width, cfg.Table.Height, cfg.Table.Regions, cfg.Cache, cfg.Style, accent)
	e.adjuster = ui.NewColorAdjuster(accent, e.status, e.accentChanged)

	if cfg.Cooldown > 0 {
		e.adjuster.SetCooldown(cfg.Cooldown)
	}

	slog.InfoContext(logging.PackageCtx("app"), "Engine ready",
		"keys", len(cfg.Table.Regions), "width", cfg.Table.Width, "height", cfg.Table.Height, "accent", accent)

	return e, nil
}

func (e *Engine) accentChanged(c model.Color) {
	e.renderer.RebuildBackground(c)

	if err := e.store.Save(c); err != nil {
		slog.WarnContext(logging.PackageCtx("app"), "Could not save accent color", "color", c, "error", err)
	}
}

// Step runs one loop iteration: queued transitions first, then host input,
// then a redraw if the next frame is due. It reports whether a new
// frame was composed.
func (e *Engine) Step(now time.Time, in HostInput) bool {
	if in.Quit {
		e.quit = true

		return false
	}

	e.queue.DrainInto(e.state)

	for _, t := range in.Transitions {
		e.state.Apply(t)
	}

	if in.Toggle {
		e.adjuster.Toggle(now)
	}

	for _, r := range in.Keys {
		e.adjuster.HandleKey(r, now)
	}

	if in.Wheel != 0 {
		e.adjuster.Scroll(in.Wheel, now)
	}

	// Frames are due on a fixed schedule; half a budget of slack absorbs
	// host ticks that arrive slightly early or late.
	if e.frame != nil && now.Before(e.nextDraw.Add(-e.frameBudget/2)) {
		return false
	}

	e.frame = e.renderer.Compose(e.state, e.status, now)

	e.nextDraw = e.nextDraw.Add(e.frameBudget)
	if e.nextDraw.Before(now) {
		e.nextDraw = now.Add(e.frameBudget)
	}

	return true
}

func (e *Engine) Queue() *input.Queue         { return e.queue }
func (e *Engine) State() *input.State         { return e.state }
func (e *Engine) Status() *ui.StatusOverlay   { return e.status }
func (e *Engine) Adjuster() *ui.ColorAdjuster { return e.adjuster }
func (e *Engine) Renderer() *ui.Renderer      { return e.renderer }
func (e *Engine) FrameBudget() time.Duration  { return e.frameBudget }
func (e *Engine) Done() bool                  { return e.quit }

// Frame returns the last composed frame. It is blank before the first Step.
func (e *Engine) Frame() *render.PixelBuffer {
	if e.frame == nil {
		return e.renderer.Frame()
	}

	return e.frame
}

func (e *Engine) Close() error {
	return e.store.Close()
}

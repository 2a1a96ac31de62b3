package window

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dasdy/keylayout/app"
	"github.com/dasdy/keylayout/model"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const Title = "KeyLayout"

type Options struct {
	Scale int
	FPS   int
}

// Game adapts the engine to ebiten. Update polls the window and steps the
// engine; Draw uploads the latest frame. The game ends when ctx is done.
type Game struct {
	ctx    context.Context
	engine *app.Engine
	width  int
	height int

	image  *ebiten.Image
	pixels []byte
	dirty  bool
	wheel  WheelSteps
}

func NewGame(ctx context.Context, engine *app.Engine) *Game {
	frame := engine.Frame()

	return &Game{
		ctx:    ctx,
		engine: engine,
		width:  frame.Width(),
		height: frame.Height(),
	}
}

func (g *Game) poll() app.HostInput {
	var in app.HostInput

	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		in.Quit = true

		return in
	}

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if code, ok := KeyCodeFor(k); ok {
			in.Transitions = append(in.Transitions, model.KeyTransition{Code: code, Pressed: true})
		}
	}

	for _, k := range inpututil.AppendJustReleasedKeys(nil) {
		if code, ok := KeyCodeFor(k); ok {
			in.Transitions = append(in.Transitions, model.KeyTransition{Code: code, Pressed: false})
		}

		in.Keys = append(in.Keys, CharFor(k))
	}

	in.Toggle = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle)

	_, dy := ebiten.Wheel()
	in.Wheel = g.wheel.Add(dy)

	return in
}

func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		slog.Info("Closing window", "reason", context.Cause(g.ctx))

		return ebiten.Termination
	}

	if g.engine.Step(time.Now(), g.poll()) {
		g.pixels = g.engine.Frame().AppendRGBA(g.pixels[:0])
		g.dirty = true
	}

	if g.engine.Done() {
		return ebiten.Termination
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.image == nil {
		g.image = ebiten.NewImage(g.width, g.height)
	}

	if g.dirty {
		g.image.WritePixels(g.pixels)
		g.dirty = false
	}

	screen.DrawImage(g.image, nil)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it is closed, Escape is pressed or
// ctx is done.
func Run(ctx context.Context, engine *app.Engine, opts Options) error {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	if opts.FPS <= 0 {
		opts.FPS = app.DefaultFPS
	}

	g := NewGame(ctx, engine)

	ebiten.SetWindowSize(g.width*opts.Scale, g.height*opts.Scale)
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetTPS(opts.FPS)

	slog.Info("Opening window", "width", g.width, "height", g.height, "scale", opts.Scale)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("could not run window: %w", err)
	}

	return nil
}

package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dasdy/keylayout/logging"
	"github.com/dasdy/keylayout/render"
)

// Surface is a display that the render loop polls for input and presents
// frames to. Both methods are called from the loop goroutine only.
type Surface interface {
	Poll() HostInput
	Present(frame *render.PixelBuffer) error
}

// Run drives the engine at its frame rate until the surface asks to quit,
// presenting failures or ctx ends. Quitting is not an error.
func Run(ctx context.Context, engine *Engine, surface Surface) error {
	ctx = logging.AppendCtx(ctx, slog.String(logging.PackageName, "app"))

	ticker := time.NewTicker(engine.FrameBudget())
	defer ticker.Stop()

	slog.DebugContext(ctx, "Render loop started", "budget", engine.FrameBudget())

	for {
		redrawn := engine.Step(time.Now(), surface.Poll())
		if engine.Done() {
			slog.InfoContext(ctx, "Render loop stopped by surface")

			return nil
		}

		if redrawn {
			if err := surface.Present(engine.Frame()); err != nil {
				return fmt.Errorf("could not present frame: %w", err)
			}
		}

		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Render loop cancelled")

			return ctx.Err()
		case <-ticker.C:
		}
	}
}

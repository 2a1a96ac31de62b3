package keylog

import (
	"context"
	"log/slog"

	"github.com/dasdy/keylayout/input"
	"github.com/dasdy/keylayout/keylog/parser"
	"github.com/dasdy/keylayout/layout"
	"github.com/dasdy/keylayout/logging"
	"github.com/dasdy/keylayout/model"
)

// Resolver maps a ZMK key event to the key it should light up.
type Resolver func(model.KeyEvent) (model.KeyCode, bool)

// PositionResolver binds every event to its position code.
func PositionResolver(ev model.KeyEvent) (model.KeyCode, bool) {
	return model.PositionCode(ev.Position), true
}

// TableResolver prefers regions bound to the event's position and falls back
// to the region at that index, so position N lights the Nth key of any table.
func TableResolver(t *layout.Table) Resolver {
	return func(ev model.KeyEvent) (model.KeyCode, bool) {
		code := model.PositionCode(ev.Position)
		if _, ok := t.Lookup(code); ok {
			return code, true
		}

		p := int(ev.Position)
		if p >= 0 && p < len(t.Regions) {
			return t.Regions[p].Code, true
		}

		return model.KeyUnknown, false
	}
}

// Forward parses ZMK log lines and pushes the resulting transitions to q.
// It returns nil once lines is closed, or the context error.
func Forward(ctx context.Context, lines <-chan string, resolve Resolver, q *input.Queue, verbose bool) error {
	ctx = logging.AppendCtx(ctx, slog.String(logging.PackageName, "keylog"))

	for {
		select {
		case line, ok := <-lines:
			if !ok {
				slog.InfoContext(ctx, "Key log source closed")

				return nil
			}

			parsed, err := parser.ParseLine(line)
			if err != nil {
				slog.WarnContext(ctx, "Could not parse key event", "error", err, "line", line)

				continue
			}

			if parsed == nil {
				continue
			}

			code, ok := resolve(*parsed)
			if !ok {
				slog.DebugContext(ctx, "Key position not in layout", "position", parsed.Position)

				continue
			}

			if verbose {
				slog.InfoContext(ctx, "Event!", "event", *parsed, "key", code)
			}

			if err := q.Push(ctx, model.KeyTransition{Code: code, Pressed: parsed.Pressed}); err != nil {
				return err
			}
		case <-ctx.Done():
			slog.InfoContext(ctx, "Received done, bailing out")

			return ctx.Err()
		}
	}
}

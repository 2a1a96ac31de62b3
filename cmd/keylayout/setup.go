package keylayout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dasdy/keylayout/app"
	"github.com/dasdy/keylayout/input"
	"github.com/dasdy/keylayout/keylog"
	"github.com/dasdy/keylayout/keylog/ports"
	"github.com/dasdy/keylayout/layout"
	"github.com/dasdy/keylayout/logging"
	"github.com/dasdy/keylayout/render"
	"github.com/dasdy/keylayout/settings"
	"github.com/spf13/pflag"
)

var errFileCount = errors.New("expected exactly 0 or 2 files")

type engineOptions struct {
	layoutPath   string
	unit         int
	settingsPath string
	fontPath     string
	fps          int
}

func (o *engineOptions) register(fs *pflag.FlagSet) {
	fs.StringVarP(&o.layoutPath, "layout", "l", "", "Path to a ZMK info.json layout (default is the built-in ANSI table)")
	fs.IntVar(&o.unit, "unit", layout.DefaultUnit, "Size of one key unit in pixels, for info.json layouts")
	fs.StringVarP(&o.settingsPath, "settings", "s", "./keylayout-settings.toml",
		"Where the accent color is kept. Use a .sqlite extension to store it in a database")
	fs.StringVar(&o.fontPath, "font", "", "TTF/OTF font for key labels (default is Go Regular)")
	fs.IntVar(&o.fps, "fps", app.DefaultFPS, "Maximum redraws per second")
}

// build wires the layout, font, settings and glyph cache into an engine.
// The returned cleanup closes everything that was opened.
func (o *engineOptions) build() (*app.Engine, *layout.Table, func(), error) {
	ctx := logging.PackageCtx("cmd")

	table, err := layout.LoadTable(o.layoutPath, o.unit)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not load layout: %w", err)
	}

	rasterizer, err := render.LoadFontRasterizer(o.fontPath)
	if err != nil {
		return nil, nil, nil, err
	}

	store, err := settings.NewStoreFromPath(o.settingsPath)
	if err != nil {
		rasterizer.Close()

		return nil, nil, nil, err
	}

	slog.InfoContext(ctx, "Settings", "path", o.settingsPath)

	engine, err := app.NewEngine(app.Config{
		Table: table,
		Cache: render.NewGlyphCache(rasterizer),
		Store: store,
		Queue: input.NewQueue(input.DefaultQueueSize),
		FPS:   o.fps,
	})
	if err != nil {
		store.Close()
		rasterizer.Close()

		return nil, nil, nil, err
	}

	cleanup := func() {
		if err := engine.Close(); err != nil {
			slog.WarnContext(ctx, "Could not close settings", "error", err)
		}

		rasterizer.Close()
	}

	return engine, table, cleanup, nil
}

type inputOptions struct {
	filenames []string
	monitor   bool
	stdin     bool
}

func (o *inputOptions) register(fs *pflag.FlagSet) {
	fs.StringSliceVarP(&o.filenames, "file", "f", []string{}, "Serial devices of both keyboard halves to read key events from")
	fs.BoolVarP(&o.monitor, "monitor", "m", false, "Watch /dev for ZMK keyboards and read every one that shows up")
	fs.BoolVar(&o.stdin, "stdin", false, "Read ZMK log lines from stdin")
}

// lines opens the configured key log source. A nil channel means the host
// window is the only input.
func (o *inputOptions) lines(ctx context.Context) (<-chan string, io.Closer, error) {
	fileCount := len(o.filenames)
	if fileCount != 2 && fileCount != 0 {
		return nil, nil, fmt.Errorf("%w, got %d", errFileCount, fileCount)
	}

	switch {
	case fileCount == 2:
		ch, closer, err := ports.OpenTwoFiles(ctx, o.filenames[0], o.filenames[1])
		if err != nil {
			names, errInner := ports.GetAvailableDevices()
			if errInner != nil {
				return nil, nil, fmt.Errorf("could not open file: %w; Could not suggest devices: %w", err, errInner)
			}

			if len(names) > 0 {
				return nil, nil, fmt.Errorf("error opening files: %w. Maybe try instead: %+v", err, names)
			}

			return nil, nil, fmt.Errorf("error opening files: %w. It does not seem like any keyboard is connected", err)
		}

		return ch, closer, nil
	case o.monitor:
		reader := ports.DefaultMonitoringDeviceReader()

		return reader.Channel(ctx), io.NopCloser(nil), nil
	case o.stdin:
		return ports.ReadFile(ctx, os.Stdin), io.NopCloser(nil), nil
	default:
		if names, err := ports.GetAvailableDevices(); err == nil && len(names) > 0 {
			slog.Info("Keyboards found, pass them with --file or use --monitor", "devices", names)
		}

		return nil, io.NopCloser(nil), nil
	}
}

// startInput forwards the key log into the engine queue until ctx is done.
func startInput(ctx context.Context, opts *inputOptions, table *layout.Table, q *input.Queue) (func(), error) {
	lines, closer, err := opts.lines(ctx)
	if err != nil {
		return nil, err
	}

	stop := func() {
		if err := closer.Close(); err != nil {
			slog.Warn("Could not close key log source", "error", err)
		}
	}

	if lines == nil {
		return stop, nil
	}

	go func() {
		err := keylog.Forward(ctx, lines, keylog.TableResolver(table), q, verbose)
		if err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("Key log stopped", "error", err)
		}
	}()

	return stop, nil
}

package keylayout

import (
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"time"

	"github.com/dasdy/keylayout/app"
	"github.com/dasdy/keylayout/model"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// snapshotCmd renders a single frame to a PNG file.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render one frame to a PNG file",
	Long: `Render the keyboard once, with the given keys held down and an optional status
message, and write it as PNG. Useful for documentation and for checking a layout file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, cleanup, err := snapshotEngine.build()
		if err != nil {
			return err
		}
		defer cleanup()

		warmLabels(engine)

		now := time.Now()

		for _, name := range pressed {
			code, err := model.ParseKeyCode(name)
			if err != nil {
				return err
			}

			if !engine.Queue().TryPush(model.KeyTransition{Code: code, Pressed: true}) {
				return fmt.Errorf("too many keys pressed: %d", len(pressed))
			}
		}

		if statusMessage != "" {
			engine.Status().Show(statusMessage, now)
		}

		engine.Step(now, app.HostInput{})

		f, err := os.Create(snapshotPath)
		if err != nil {
			return fmt.Errorf("could not create %s: %w", snapshotPath, err)
		}
		defer f.Close()

		if err := png.Encode(f, engine.Frame().Image()); err != nil {
			return fmt.Errorf("could not write %s: %w", snapshotPath, err)
		}

		slog.Info("Snapshot written", "path", snapshotPath, "keys", len(pressed))

		return nil
	},
}

// warmLabels rasterizes every label up front so the first frame does not
// pay for it.
func warmLabels(engine *app.Engine) {
	labels := engine.Renderer().Labels()
	style := engine.Renderer().Style()
	cache := engine.Renderer().Cache()

	bar := progressbar.NewOptions(len(labels),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("Rasterizing labels"),
		progressbar.OptionClearOnFinish(),
	)

	for _, l := range labels {
		cache.Warm(l, style.LabelSize)
		_ = bar.Add(1)
	}

	_ = bar.Finish()

	slog.Debug("Glyph cache warmed", "glyphs", cache.Len())
}

var (
	snapshotEngine engineOptions
	snapshotPath   string
	pressed        []string
	statusMessage  string
)

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotEngine.register(snapshotCmd.Flags())

	snapshotCmd.Flags().StringVarP(&snapshotPath, "out", "o", "./keylayout.png", "Where to write the PNG")
	snapshotCmd.Flags().StringSliceVar(&pressed, "press", []string{},
		"Keys to show as pressed, by name (KeyA, ShiftLeft) or ZMK position (pos:12)")
	snapshotCmd.Flags().StringVar(&statusMessage, "status", "", "Status message to show over the keyboard")
}

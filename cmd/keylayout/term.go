package keylayout

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/dasdy/keylayout/app"
	"github.com/dasdy/keylayout/terminal"
	"github.com/spf13/cobra"
)

var errStdinTaken = errors.New("the terminal view reads keys from stdin, use --file or --monitor instead")

// termCmd draws the keyboard into the terminal.
var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Draw the keyboard in the terminal",
	Long: `Draw the keyboard with half-block characters. Typed keys light up, the middle mouse
button toggles color adjusting and the wheel changes the selected channel. Escape quits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if termInput.stdin {
			return errStdinTaken
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		engine, table, cleanup, err := termEngine.build()
		if err != nil {
			return err
		}
		defer cleanup()

		stopInput, err := startInput(ctx, &termInput, table, engine.Queue())
		if err != nil {
			return err
		}
		defer stopInput()

		surface, err := terminal.Open()
		if err != nil {
			return err
		}
		defer surface.Close()

		err = app.Run(ctx, engine, surface)
		if errors.Is(err, context.Canceled) {
			return nil
		}

		return err
	},
}

var (
	termEngine engineOptions
	termInput  inputOptions
)

func init() {
	rootCmd.AddCommand(termCmd)
	termEngine.register(termCmd.Flags())
	termInput.register(termCmd.Flags())
}

package keylayout

import (
	"os"
	"os/signal"

	"github.com/dasdy/keylayout/window"
	"github.com/spf13/cobra"
)

// runCmd opens the desktop window.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open a window showing the keyboard",
	Long: `Open a window that lights up keys as they are pressed, in the window itself or on
a ZMK keyboard when --file, --monitor or --stdin is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		engine, table, cleanup, err := runEngine.build()
		if err != nil {
			return err
		}
		defer cleanup()

		stopInput, err := startInput(ctx, &runInput, table, engine.Queue())
		if err != nil {
			return err
		}
		defer stopInput()

		return window.Run(ctx, engine, window.Options{Scale: scale, FPS: runEngine.fps})
	},
}

var (
	runEngine engineOptions
	runInput  inputOptions
	scale     int
)

func init() {
	rootCmd.AddCommand(runCmd)
	runEngine.register(runCmd.Flags())
	runInput.register(runCmd.Flags())

	runCmd.Flags().IntVar(&scale, "scale", 1, "Initial window size multiplier")
}

package keylayout

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"time"

	"github.com/dasdy/keylayout/app"
	"github.com/dasdy/keylayout/web"
	"github.com/dasdy/keylayout/web/routes"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// serveCmd renders headless and publishes frames over HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a live preview of the keyboard over HTTP",
	Long: `Run the renderer without a window and serve the frames on a web page. The page
forwards clicks, key presses and wheel scrolls back to the renderer.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		engine, table, cleanup, err := serveEngine.build()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		g, ctx := errgroup.WithContext(ctx)

		stopInput, err := startInput(ctx, &serveInput, table, engine.Queue())
		if err != nil {
			return err
		}
		defer stopInput()

		preview := routes.NewPreview()
		handler := web.BuildServer(preview, table, refresh)

		g.Go(func() error {
			// A quit from the page stops the server too.
			defer cancel()

			err := app.Run(ctx, engine, preview)
			if errors.Is(err, context.Canceled) {
				return nil
			}

			return err
		})
		g.Go(func() error {
			return web.StartServer(ctx, port, handler)
		})

		return g.Wait()
	},
}

var (
	serveEngine engineOptions
	serveInput  inputOptions
	port        int
	refresh     time.Duration
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveEngine.register(serveCmd.Flags())
	serveInput.register(serveCmd.Flags())

	serveCmd.Flags().IntVarP(&port, "port", "p", 3000, "Port on which server should be watching")
	serveCmd.Flags().DurationVar(&refresh, "refresh", 100*time.Millisecond, "How often the page reloads the frame")
}

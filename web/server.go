package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dasdy/keylayout/layout"
	"github.com/dasdy/keylayout/web/routes"
)

const shutdownTimeout = 5 * time.Second

func disableCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

func BuildServer(preview *routes.Preview, table *layout.Table, refresh time.Duration) *http.ServeMux {
	handler := routes.ServerHandler{
		Preview:         preview,
		Table:           table,
		RefreshInterval: refresh,
	}

	mux := http.NewServeMux()
	mux.Handle("GET /frame.png", http.HandlerFunc(handler.FrameHandle))
	mux.Handle("POST /api/toggle", http.HandlerFunc(handler.ToggleHandle))
	mux.Handle("POST /api/key", http.HandlerFunc(handler.KeyHandle))
	mux.Handle("POST /api/scroll", http.HandlerFunc(handler.ScrollHandle))
	mux.Handle("POST /api/press", http.HandlerFunc(handler.PressHandle))
	mux.Handle("GET /{$}", disableCache(http.HandlerFunc(handler.IndexHandle)))

	return mux
}

// StartServer serves handler until ctx is done, then shuts down gracefully.
func StartServer(ctx context.Context, port int, handler http.Handler) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		slog.Info("Running interface", "port", port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("could not run server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server: %w", err)
		}

		return nil
	}
}

package routes

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/dasdy/keylayout/layout"
)

// ServerHandler serves the preview page, its frames and the input APIs.
type ServerHandler struct {
	Preview         *Preview
	Table           *layout.Table
	RefreshInterval time.Duration
}

// RenderPage renders component with the request context into a buffer first,
// so a failed render can still answer with an error status.
func RenderPage(ctx context.Context, w http.ResponseWriter, component templ.Component) error {
	var page bytes.Buffer

	if err := component.Render(ctx, &page); err != nil {
		return fmt.Errorf("could not render page: %w", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=UTF-8")
	w.Header().Set("Content-Length", fmt.Sprint(page.Len()))

	if _, err := page.WriteTo(w); err != nil {
		slog.ErrorContext(ctx, "Failed to write page", "error", err)

		return fmt.Errorf("could not write page: %w", err)
	}

	return nil
}

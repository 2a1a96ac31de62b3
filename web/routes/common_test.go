package routes_test

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/dasdy/keylayout/web/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ctxKey struct{}

func TestRenderPage(t *testing.T) {
	t.Run("writes the page with the request context", func(t *testing.T) {
		page := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			title, _ := ctx.Value(ctxKey{}).(string)
			_, err := io.WriteString(w, "<h1>"+title+"</h1>")

			return err
		})

		ctx := context.WithValue(context.Background(), ctxKey{}, "keys")
		recorder := httptest.NewRecorder()

		require.NoError(t, routes.RenderPage(ctx, recorder, page))
		assert.Equal(t, "text/html; charset=UTF-8", recorder.Header().Get("Content-Type"))
		assert.Equal(t, "13", recorder.Header().Get("Content-Length"))
		assert.Equal(t, "<h1>keys</h1>", recorder.Body.String())
	})

	t.Run("failed render writes nothing", func(t *testing.T) {
		renderErr := errors.New("render error")
		page := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
			_, _ = io.WriteString(w, "half a page")

			return renderErr
		})

		recorder := httptest.NewRecorder()

		err := routes.RenderPage(context.Background(), recorder, page)

		require.ErrorIs(t, err, renderErr)
		assert.Contains(t, err.Error(), "could not render page")
		assert.Empty(t, recorder.Body.String())
		assert.Empty(t, recorder.Header().Get("Content-Type"))
	})
}

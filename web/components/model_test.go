package components_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/dasdy/keylayout/layout"
	"github.com/dasdy/keylayout/model"
	"github.com/dasdy/keylayout/web/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToStyle(t *testing.T) {
	tests := []struct {
		name string
		key  components.Key
		want string
	}{
		{
			name: "origin",
			key:  components.Key{Width: 50, Height: 50},
			want: "left:0.00%;top:0.00%;width:25.00%;height:50.00%",
		},
		{
			name: "offset",
			key:  components.Key{X: 100, Y: 25, Width: 20, Height: 10},
			want: "left:50.00%;top:25.00%;width:10.00%;height:10.00%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, components.ToStyle(tt.key, 200, 100))
		})
	}

	t.Run("empty frame", func(t *testing.T) {
		assert.Equal(t, "left:0.00%;top:0.00%;width:0.00%;height:0.00%", components.ToStyle(components.Key{X: 5, Width: 5}, 0, 0))
	})
}

func TestNewRenderContext(t *testing.T) {
	c := components.NewRenderContext(layout.Default(), 100*time.Millisecond)

	assert.Equal(t, 890, c.Width)
	assert.Equal(t, 290, c.Height)
	assert.Equal(t, int64(100), c.RefreshMs)
	require.Len(t, c.Keys, 57)
	assert.Equal(t, components.Key{Code: "Num1", Label: "1", Width: 50, Height: 50}, c.Keys[0])
}

func TestPage(t *testing.T) {
	tbl, err := layout.NewTable([]model.KeyRegion{
		{Code: model.KeyQuote, X: 0, Y: 0, Width: 10, Height: 10, Label: "<'>"},
	})
	require.NoError(t, err)

	c := components.NewRenderContext(tbl, 0)

	var buf bytes.Buffer
	require.NoError(t, components.Page(&c).Render(context.Background(), &buf))

	html := buf.String()
	assert.Contains(t, html, `src="/frame.png"`)
	assert.Contains(t, html, `data-code="Quote"`)
	assert.Contains(t, html, `data-refresh="1"`)
	assert.NotContains(t, html, `title="<'>"`)
	assert.Contains(t, html, "&lt;")
	assert.Contains(t, html, `style="left:0.00%;top:0.00%;width:100.00%;height:100.00%;"`)
	assert.Contains(t, html, `fetch(url, { method: "POST" })`, "script is emitted verbatim")
}

func TestPageStopsOnCancelledContext(t *testing.T) {
	c := components.NewRenderContext(layout.Default(), time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	require.ErrorIs(t, components.Page(&c).Render(ctx, &buf), context.Canceled)
	assert.Empty(t, buf.String())
}

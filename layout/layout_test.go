package layout_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dasdy/keylayout/layout"
	"github.com/dasdy/keylayout/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const infoJSON = `{
  "id": "tiny",
  "name": "Tiny",
  "layouts": {
    "LAYOUT": {
      "layout": [
        {"row": 0, "col": 0, "x": 0, "y": 0, "label": "Q"},
        {"row": 0, "col": 1, "x": 1, "y": 0, "label": "LSHFT", "w": 1.5},
        {"row": 1, "col": 0, "x": 0, "y": 1, "label": "SPACE", "w": 2.5, "key": "Space"}
      ]
    }
  }
}`

func TestDefaultTable(t *testing.T) {
	tbl := layout.Default()

	assert.Equal(t, 890, tbl.Width)
	assert.Equal(t, 290, tbl.Height)
	assert.Len(t, tbl.Regions, 57)

	enter, ok := tbl.Lookup(model.KeyReturn)
	require.True(t, ok)
	assert.Equal(t, model.KeyRegion{Code: model.KeyReturn, X: 760, Y: 120, Width: 130, Height: 50, Label: "Enter"}, enter)

	_, ok = tbl.Lookup(model.KeyEscape)
	assert.False(t, ok)

	assert.ElementsMatch(t, []model.KeyCode{model.KeyShiftLeft, model.KeyShiftRight}, tbl.ShiftCodes())
}

func TestNewTable(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := layout.NewTable(nil)
		require.ErrorIs(t, err, layout.ErrEmptyLayout)
	})

	t.Run("zero sized key", func(t *testing.T) {
		_, err := layout.NewTable([]model.KeyRegion{{Code: model.KeyA, Width: 0, Height: 10}})
		require.Error(t, err)
	})

	t.Run("frame fits the keys", func(t *testing.T) {
		tbl, err := layout.NewTable([]model.KeyRegion{
			{Code: model.KeyA, X: 5, Y: 0, Width: 10, Height: 10},
			{Code: model.KeyB, X: 0, Y: 20, Width: 10, Height: 7},
		})
		require.NoError(t, err)
		assert.Equal(t, 15, tbl.Width)
		assert.Equal(t, 27, tbl.Height)
	})
}

func TestLoadZmkInfoJSON(t *testing.T) {
	t.Run("scales units to pixels", func(t *testing.T) {
		tbl, err := layout.LoadZmkInfoJSON(strings.NewReader(infoJSON), 60)
		require.NoError(t, err)
		require.Len(t, tbl.Regions, 3)

		assert.Equal(t, model.KeyRegion{Code: model.PositionCode(0), X: 0, Y: 0, Width: 50, Height: 50, Label: "q"}, tbl.Regions[0])
		assert.Equal(t, model.KeyRegion{Code: model.PositionCode(1), X: 60, Y: 0, Width: 80, Height: 50, Label: "Shift"}, tbl.Regions[1])
		assert.Equal(t, model.KeyRegion{Code: model.KeySpace, X: 0, Y: 60, Width: 140, Height: 50, Label: "Space"}, tbl.Regions[2])

		assert.Equal(t, 140, tbl.Width)
		assert.Equal(t, 110, tbl.Height)
		assert.Contains(t, tbl.ShiftCodes(), model.PositionCode(1))
	})

	t.Run("non-positive unit uses default", func(t *testing.T) {
		tbl, err := layout.LoadZmkInfoJSON(strings.NewReader(infoJSON), 0)
		require.NoError(t, err)
		assert.Equal(t, layout.DefaultUnit, tbl.Regions[1].X)
	})

	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{"layouts": `},
		{"no layouts", `{"layouts": {}}`},
		{"two layouts", `{"layouts": {"A": {"layout": []}, "B": {"layout": []}}}`},
		{"empty layout", `{"layouts": {"A": {"layout": []}}}`},
		{"unknown key", `{"layouts": {"A": {"layout": [{"x": 0, "y": 0, "key": "NoSuchKey"}]}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := layout.LoadZmkInfoJSON(strings.NewReader(tt.data), 60)
			require.Error(t, err)
		})
	}
}

func TestLoadTable(t *testing.T) {
	t.Run("empty path gives built-in table", func(t *testing.T) {
		tbl, err := layout.LoadTable("", 0)
		require.NoError(t, err)
		assert.Equal(t, layout.Default(), tbl)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "info.json")
		require.NoError(t, os.WriteFile(path, []byte(infoJSON), 0o600))

		tbl, err := layout.LoadTable(path, 40)
		require.NoError(t, err)
		assert.Len(t, tbl.Regions, 3)
		assert.Equal(t, 40, tbl.Regions[1].X)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := layout.LoadTable(filepath.Join(t.TempDir(), "nope.json"), 60)
		require.Error(t, err)
	})
}

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"LSHFT", "Shift"},
		{"rshft", "Shift"},
		{"BSPC", "Backspace"},
		{"N1", "1"},
		{"A", "a"},
		{" x ", "x"},
		{"Fn", "Fn"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, layout.NormalizeLabel(tt.in))
		})
	}
}

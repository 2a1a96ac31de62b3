package ui_test

import (
	"testing"
	"time"

	"github.com/dasdy/keylayout/model"
	"github.com/dasdy/keylayout/ui"
	"github.com/stretchr/testify/assert"
)

type adjustFixture struct {
	status  *ui.StatusOverlay
	adjust  *ui.ColorAdjuster
	changes []model.Color
}

func newAdjustFixture(accent model.Color) *adjustFixture {
	f := &adjustFixture{status: ui.NewStatusOverlay(time.Second)}
	f.adjust = ui.NewColorAdjuster(accent, f.status, func(c model.Color) {
		f.changes = append(f.changes, c)
	})

	return f
}

func (f *adjustFixture) message() string {
	msg, _ := f.status.Message()

	return msg
}

func TestColorAdjusterToggle(t *testing.T) {
	f := newAdjustFixture(model.DefaultAccent)

	assert.Equal(t, ui.ModeOff, f.adjust.Mode())

	assert.True(t, f.adjust.Toggle(at(0)))
	assert.Equal(t, ui.ModeOn, f.adjust.Mode())
	assert.Equal(t, ui.MsgToggleOn, f.message())

	// same physical press seen again within the cooldown
	assert.False(t, f.adjust.Toggle(at(0.05)))
	assert.Equal(t, ui.ModeOn, f.adjust.Mode())

	assert.True(t, f.adjust.Toggle(at(0.2)))
	assert.Equal(t, ui.ModeOff, f.adjust.Mode())
	assert.Equal(t, ui.MsgToggleOff, f.message())
}

func TestColorAdjusterSelection(t *testing.T) {
	f := newAdjustFixture(model.DefaultAccent)

	f.adjust.HandleKey('r', at(0))
	assert.Equal(t, model.ComponentNone, f.adjust.Selected())
	assert.Equal(t, ui.MsgEnterAdjusting, f.message())

	f.adjust.Toggle(at(0))

	f.adjust.HandleKey('G', at(1))
	assert.Equal(t, model.ComponentGreen, f.adjust.Selected())
	assert.Equal(t, "Component selected: Green", f.message())

	f.adjust.HandleKey('x', at(2))
	assert.Equal(t, model.ComponentGreen, f.adjust.Selected())
	assert.Equal(t, ui.MsgPickComponent, f.message())

	f.adjust.Toggle(at(3))
	assert.Equal(t, model.ComponentNone, f.adjust.Selected())
}

func TestColorAdjusterScroll(t *testing.T) {
	t.Run("clamps selected channel", func(t *testing.T) {
		f := newAdjustFixture(0xFF8080FF)
		f.adjust.Toggle(at(0))
		f.adjust.HandleKey('r', at(0))

		assert.True(t, f.adjust.Scroll(-200, at(1)))

		assert.Equal(t, model.Color(0xFF0080FF), f.adjust.Accent())
		assert.Equal(t, []model.Color{0xFF0080FF}, f.changes)
	})

	t.Run("large positive delta saturates", func(t *testing.T) {
		f := newAdjustFixture(model.RGB(10, 250, 10))
		f.adjust.Toggle(at(0))
		f.adjust.HandleKey('g', at(0))

		assert.True(t, f.adjust.Scroll(1000, at(1)))
		assert.Equal(t, model.RGB(10, 255, 10), f.adjust.Accent())

		assert.False(t, f.adjust.Scroll(5, at(2)))
		assert.Len(t, f.changes, 1)
	})

	t.Run("no component selected shows hint", func(t *testing.T) {
		f := newAdjustFixture(model.DefaultAccent)
		f.adjust.Toggle(at(0))

		assert.False(t, f.adjust.Scroll(10, at(1)))
		assert.Equal(t, model.DefaultAccent, f.adjust.Accent())
		assert.Equal(t, ui.MsgPickFirst, f.message())
		assert.Empty(t, f.changes)
	})

	t.Run("ignored while off", func(t *testing.T) {
		f := newAdjustFixture(model.DefaultAccent)

		assert.False(t, f.adjust.Scroll(10, at(1)))
		assert.Empty(t, f.changes)

		_, ok := f.status.Message()
		assert.False(t, ok)
	})
}

func TestComponentForKey(t *testing.T) {
	assert.Equal(t, model.ComponentRed, ui.ComponentForKey('R'))
	assert.Equal(t, model.ComponentGreen, ui.ComponentForKey('g'))
	assert.Equal(t, model.ComponentBlue, ui.ComponentForKey('b'))
	assert.Equal(t, model.ComponentNone, ui.ComponentForKey('q'))
}

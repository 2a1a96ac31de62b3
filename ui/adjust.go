package ui

import (
	"log/slog"
	"time"
	"unicode"

	"github.com/dasdy/keylayout/model"
)

// Mode of the accent color adjustment.
type Mode int

const (
	ModeOff Mode = iota
	ModeOn
)

const DefaultToggleCooldown = 125 * time.Millisecond

const (
	MsgToggleOn       = "Scroll toggle: ON"
	MsgToggleOff      = "Scroll toggle: OFF"
	MsgPickComponent  = "Valid components are: R - Red, G - Green, B - Blue."
	MsgPickFirst      = "Pick an RGB component first!"
	MsgEnterAdjusting = "Press the middle mouse button to adjust colors"
	msgSelectedPrefix = "Component selected: "
)

// ColorAdjuster is the state machine that edits the accent color.
// Every accepted change is handed to onChange.
type ColorAdjuster struct {
	mode       Mode
	selected   model.Component
	accent     model.Color
	cooldown   time.Duration
	lastToggle time.Time
	status     *StatusOverlay
	onChange   func(model.Color)
}

func NewColorAdjuster(accent model.Color, status *StatusOverlay, onChange func(model.Color)) *ColorAdjuster {
	if onChange == nil {
		onChange = func(model.Color) {}
	}

	return &ColorAdjuster{
		accent:   accent | 0xFF<<24,
		cooldown: DefaultToggleCooldown,
		status:   status,
		onChange: onChange,
	}
}

// SetCooldown changes the debounce window of Toggle.
func (a *ColorAdjuster) SetCooldown(d time.Duration) {
	a.cooldown = max(0, d)
}

func (a *ColorAdjuster) Mode() Mode                { return a.mode }
func (a *ColorAdjuster) Selected() model.Component { return a.selected }
func (a *ColorAdjuster) Accent() model.Color       { return a.accent }

// Toggle flips the mode unless the previous toggle happened within the
// cooldown. It reports whether the mode changed.
func (a *ColorAdjuster) Toggle(now time.Time) bool {
	if !a.lastToggle.IsZero() && now.Sub(a.lastToggle) < a.cooldown {
		return false
	}

	a.lastToggle = now

	if a.mode == ModeOff {
		a.mode = ModeOn
		a.status.Show(MsgToggleOn, now)
	} else {
		a.mode = ModeOff
		a.selected = model.ComponentNone
		a.status.Show(MsgToggleOff, now)
	}

	return true
}

// ComponentForKey maps the r, g and b keys to their channel.
func ComponentForKey(r rune) model.Component {
	switch unicode.ToLower(r) {
	case 'r':
		return model.ComponentRed
	case 'g':
		return model.ComponentGreen
	case 'b':
		return model.ComponentBlue
	default:
		return model.ComponentNone
	}
}

// HandleKey processes a key release from the window. While adjusting, r/g/b
// select a channel and anything else shows the list of valid keys.
func (a *ColorAdjuster) HandleKey(r rune, now time.Time) {
	comp := ComponentForKey(r)

	if a.mode == ModeOff {
		if comp != model.ComponentNone {
			a.status.Show(MsgEnterAdjusting, now)
		}

		return
	}

	if comp == model.ComponentNone {
		a.status.Show(MsgPickComponent, now)

		return
	}

	a.selected = comp
	a.status.Show(msgSelectedPrefix+comp.String(), now)
}

// Scroll adds delta to the selected channel. It reports whether the accent
// color changed.
func (a *ColorAdjuster) Scroll(delta int, now time.Time) bool {
	if a.mode == ModeOff || delta == 0 {
		return false
	}

	if a.selected == model.ComponentNone {
		a.status.Show(MsgPickFirst, now)

		return false
	}

	next := a.accent.Adjust(a.selected, delta)
	if next == a.accent {
		return false
	}

	a.accent = next
	slog.Debug("Accent color changed", "color", next, "component", a.selected, "delta", delta)
	a.onChange(next)

	return true
}

package layout

import (
	"errors"
	"fmt"

	"github.com/dasdy/keylayout/model"
)

var ErrEmptyLayout = errors.New("layout has no keys")

// Table is the static list of key regions and the frame size that fits them.
type Table struct {
	Regions []model.KeyRegion
	Width   int
	Height  int
}

// NewTable sizes the frame to the right and bottom edges of the regions.
func NewTable(regions []model.KeyRegion) (*Table, error) {
	if len(regions) == 0 {
		return nil, ErrEmptyLayout
	}

	t := &Table{Regions: regions}

	for i, r := range regions {
		if r.Width <= 0 || r.Height <= 0 {
			return nil, fmt.Errorf("key %d (%q) has non-positive size %dx%d", i, r.Label, r.Width, r.Height)
		}

		t.Width = max(t.Width, r.X+r.Width)
		t.Height = max(t.Height, r.Y+r.Height)
	}

	return t, nil
}

// ShiftCodes lists the codes that act as shift: the regular shift keys and
// every region labeled as one.
func (t *Table) ShiftCodes() []model.KeyCode {
	codes := []model.KeyCode{model.KeyShiftLeft, model.KeyShiftRight}

	for _, r := range t.Regions {
		if r.Label == shiftLabel && r.Code != model.KeyShiftLeft && r.Code != model.KeyShiftRight {
			codes = append(codes, r.Code)
		}
	}

	return codes
}

// Lookup finds the region of a key code.
func (t *Table) Lookup(code model.KeyCode) (model.KeyRegion, bool) {
	for _, r := range t.Regions {
		if r.Code == code {
			return r, true
		}
	}

	return model.KeyRegion{}, false
}

type defaultKey struct {
	code       model.KeyCode
	x, y, w, h int
	label      string
}

// ANSI 60% layout, 50px keys on a 60px grid.
var defaultKeys = []defaultKey{
	{model.KeyNum1, 0, 0, 50, 50, "1"},
	{model.KeyNum2, 60, 0, 50, 50, "2"},
	{model.KeyNum3, 120, 0, 50, 50, "3"},
	{model.KeyNum4, 180, 0, 50, 50, "4"},
	{model.KeyNum5, 240, 0, 50, 50, "5"},
	{model.KeyNum6, 300, 0, 50, 50, "6"},
	{model.KeyNum7, 360, 0, 50, 50, "7"},
	{model.KeyNum8, 420, 0, 50, 50, "8"},
	{model.KeyNum9, 480, 0, 50, 50, "9"},
	{model.KeyNum0, 540, 0, 50, 50, "0"},
	{model.KeyMinus, 600, 0, 50, 50, "-"},
	{model.KeyEqual, 660, 0, 50, 50, "="},
	{model.KeyBackspace, 720, 0, 135, 50, "Backspace"},

	{model.KeyTab, 0, 60, 80, 50, "Tab"},
	{model.KeyQ, 90, 60, 50, 50, "q"},
	{model.KeyW, 150, 60, 50, 50, "w"},
	{model.KeyE, 210, 60, 50, 50, "e"},
	{model.KeyR, 270, 60, 50, 50, "r"},
	{model.KeyT, 330, 60, 50, 50, "t"},
	{model.KeyY, 390, 60, 50, 50, "y"},
	{model.KeyU, 450, 60, 50, 50, "u"},
	{model.KeyI, 510, 60, 50, 50, "i"},
	{model.KeyO, 570, 60, 50, 50, "o"},
	{model.KeyP, 630, 60, 50, 50, "p"},
	{model.KeyLeftBracket, 690, 60, 50, 50, "["},
	{model.KeyRightBracket, 750, 60, 50, 50, "]"},
	{model.KeyBackSlash, 810, 60, 80, 50, "\\"},

	{model.KeyCapsLock, 0, 120, 90, 50, "Caps"},
	{model.KeyA, 100, 120, 50, 50, "a"},
	{model.KeyS, 160, 120, 50, 50, "s"},
	{model.KeyD, 220, 120, 50, 50, "d"},
	{model.KeyF, 280, 120, 50, 50, "f"},
	{model.KeyG, 340, 120, 50, 50, "g"},
	{model.KeyH, 400, 120, 50, 50, "h"},
	{model.KeyJ, 460, 120, 50, 50, "j"},
	{model.KeyK, 520, 120, 50, 50, "k"},
	{model.KeyL, 580, 120, 50, 50, "l"},
	{model.KeySemiColon, 640, 120, 50, 50, ";"},
	{model.KeyQuote, 700, 120, 50, 50, "'"},
	{model.KeyReturn, 760, 120, 130, 50, "Enter"},

	{model.KeyShiftLeft, 0, 180, 110, 50, "Shift"},
	{model.KeyZ, 120, 180, 50, 50, "z"},
	{model.KeyX, 180, 180, 50, 50, "x"},
	{model.KeyC, 240, 180, 50, 50, "c"},
	{model.KeyV, 300, 180, 50, 50, "v"},
	{model.KeyB, 360, 180, 50, 50, "b"},
	{model.KeyN, 420, 180, 50, 50, "n"},
	{model.KeyM, 480, 180, 50, 50, "m"},
	{model.KeyComma, 540, 180, 50, 50, ","},
	{model.KeyDot, 600, 180, 50, 50, "."},
	{model.KeySlash, 660, 180, 50, 50, "/"},
	{model.KeyShiftRight, 720, 180, 170, 50, "Shift"},

	{model.KeyControlLeft, 0, 240, 80, 50, "Ctrl"},
	{model.KeyAlt, 90, 240, 80, 50, "Alt"},
	{model.KeySpace, 180, 240, 400, 50, "Space"},
	{model.KeyAltGr, 590, 240, 80, 50, "Alt"},
	{model.KeyControlRight, 680, 240, 80, 50, "Ctrl"},
}

// Default returns the built-in 890x290 ANSI table.
func Default() *Table {
	regions := make([]model.KeyRegion, len(defaultKeys))

	for i, k := range defaultKeys {
		regions[i] = model.KeyRegion{Code: k.code, X: k.x, Y: k.y, Width: k.w, Height: k.h, Label: k.label}
	}

	t, err := NewTable(regions)
	if err != nil {
		panic(err)
	}

	return t
}

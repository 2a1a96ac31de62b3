package input

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dasdy/keylayout/model"
)

// State is the set of keys currently held down.
type State struct {
	pressed    map[model.KeyCode]struct{}
	shiftCodes []model.KeyCode
}

// NewState creates an empty state. Without explicit shift codes the left and
// right shift keys are used.
func NewState(shiftCodes ...model.KeyCode) *State {
	if len(shiftCodes) == 0 {
		shiftCodes = []model.KeyCode{model.KeyShiftLeft, model.KeyShiftRight}
	}

	return &State{
		pressed:    make(map[model.KeyCode]struct{}),
		shiftCodes: shiftCodes,
	}
}

// Apply records a transition. Repeated presses and releases of keys that are
// not down leave the set as it is.
func (s *State) Apply(t model.KeyTransition) {
	if t.Pressed {
		s.pressed[t.Code] = struct{}{}
	} else {
		delete(s.pressed, t.Code)
	}
}

func (s *State) IsPressed(code model.KeyCode) bool {
	_, ok := s.pressed[code]

	return ok
}

func (s *State) ShiftActive() bool {
	for _, c := range s.shiftCodes {
		if s.IsPressed(c) {
			return true
		}
	}

	return false
}

func (s *State) Len() int { return len(s.pressed) }

// Reset releases every key.
func (s *State) Reset() {
	clear(s.pressed)
}

// DisplayLabel uppercases single character alphanumeric labels while shift is
// held. Longer labels such as "Enter" are returned unchanged.
func DisplayLabel(label string, shift bool) string {
	if !shift || utf8.RuneCountInString(label) != 1 {
		return label
	}

	r, _ := utf8.DecodeRuneInString(label)
	if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
		return label
	}

	return strings.ToUpper(label)
}

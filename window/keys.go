package window

import (
	"github.com/dasdy/keylayout/model"
	"github.com/hajimehoshi/ebiten/v2"
)

type binding struct {
	code model.KeyCode
	char rune
}

var keyBindings = map[ebiten.Key]binding{
	ebiten.KeyEscape:       {model.KeyEscape, 0},
	ebiten.KeyBackquote:    {model.KeyBackQuote, '`'},
	ebiten.KeyDigit1:       {model.KeyNum1, '1'},
	ebiten.KeyDigit2:       {model.KeyNum2, '2'},
	ebiten.KeyDigit3:       {model.KeyNum3, '3'},
	ebiten.KeyDigit4:       {model.KeyNum4, '4'},
	ebiten.KeyDigit5:       {model.KeyNum5, '5'},
	ebiten.KeyDigit6:       {model.KeyNum6, '6'},
	ebiten.KeyDigit7:       {model.KeyNum7, '7'},
	ebiten.KeyDigit8:       {model.KeyNum8, '8'},
	ebiten.KeyDigit9:       {model.KeyNum9, '9'},
	ebiten.KeyDigit0:       {model.KeyNum0, '0'},
	ebiten.KeyMinus:        {model.KeyMinus, '-'},
	ebiten.KeyEqual:        {model.KeyEqual, '='},
	ebiten.KeyBackspace:    {model.KeyBackspace, 0},
	ebiten.KeyTab:          {model.KeyTab, 0},
	ebiten.KeyQ:            {model.KeyQ, 'q'},
	ebiten.KeyW:            {model.KeyW, 'w'},
	ebiten.KeyE:            {model.KeyE, 'e'},
	ebiten.KeyR:            {model.KeyR, 'r'},
	ebiten.KeyT:            {model.KeyT, 't'},
	ebiten.KeyY:            {model.KeyY, 'y'},
	ebiten.KeyU:            {model.KeyU, 'u'},
	ebiten.KeyI:            {model.KeyI, 'i'},
	ebiten.KeyO:            {model.KeyO, 'o'},
	ebiten.KeyP:            {model.KeyP, 'p'},
	ebiten.KeyBracketLeft:  {model.KeyLeftBracket, '['},
	ebiten.KeyBracketRight: {model.KeyRightBracket, ']'},
	ebiten.KeyBackslash:    {model.KeyBackSlash, '\\'},
	ebiten.KeyCapsLock:     {model.KeyCapsLock, 0},
	ebiten.KeyA:            {model.KeyA, 'a'},
	ebiten.KeyS:            {model.KeyS, 's'},
	ebiten.KeyD:            {model.KeyD, 'd'},
	ebiten.KeyF:            {model.KeyF, 'f'},
	ebiten.KeyG:            {model.KeyG, 'g'},
	ebiten.KeyH:            {model.KeyH, 'h'},
	ebiten.KeyJ:            {model.KeyJ, 'j'},
	ebiten.KeyK:            {model.KeyK, 'k'},
	ebiten.KeyL:            {model.KeyL, 'l'},
	ebiten.KeySemicolon:    {model.KeySemiColon, ';'},
	ebiten.KeyQuote:        {model.KeyQuote, '\''},
	ebiten.KeyEnter:        {model.KeyReturn, 0},
	ebiten.KeyShiftLeft:    {model.KeyShiftLeft, 0},
	ebiten.KeyZ:            {model.KeyZ, 'z'},
	ebiten.KeyX:            {model.KeyX, 'x'},
	ebiten.KeyC:            {model.KeyC, 'c'},
	ebiten.KeyV:            {model.KeyV, 'v'},
	ebiten.KeyB:            {model.KeyB, 'b'},
	ebiten.KeyN:            {model.KeyN, 'n'},
	ebiten.KeyM:            {model.KeyM, 'm'},
	ebiten.KeyComma:        {model.KeyComma, ','},
	ebiten.KeyPeriod:       {model.KeyDot, '.'},
	ebiten.KeySlash:        {model.KeySlash, '/'},
	ebiten.KeyShiftRight:   {model.KeyShiftRight, 0},
	ebiten.KeyControlLeft:  {model.KeyControlLeft, 0},
	ebiten.KeyMetaLeft:     {model.KeyMetaLeft, 0},
	ebiten.KeyAltLeft:      {model.KeyAlt, 0},
	ebiten.KeySpace:        {model.KeySpace, ' '},
	ebiten.KeyAltRight:     {model.KeyAltGr, 0},
	ebiten.KeyMetaRight:    {model.KeyMetaRight, 0},
	ebiten.KeyControlRight: {model.KeyControlRight, 0},
	ebiten.KeyArrowUp:      {model.KeyUpArrow, 0},
	ebiten.KeyArrowDown:    {model.KeyDownArrow, 0},
	ebiten.KeyArrowLeft:    {model.KeyLeftArrow, 0},
	ebiten.KeyArrowRight:   {model.KeyRightArrow, 0},
	ebiten.KeyDelete:       {model.KeyDelete, 0},
	ebiten.KeyHome:         {model.KeyHome, 0},
	ebiten.KeyEnd:          {model.KeyEnd, 0},
}

// KeyCodeFor maps a window key to its layout key code.
func KeyCodeFor(key ebiten.Key) (model.KeyCode, bool) {
	b, ok := keyBindings[key]

	return b.code, ok
}

// CharFor is the character a released key contributes to component
// selection. Keys without one give 0.
func CharFor(key ebiten.Key) rune {
	return keyBindings[key].char
}

// WheelSteps turns fractional wheel movement into whole steps, carrying the
// remainder to the next call.
type WheelSteps struct {
	acc float64
}

func (w *WheelSteps) Add(dy float64) int {
	w.acc += dy
	steps := int(w.acc)
	w.acc -= float64(steps)

	return steps
}

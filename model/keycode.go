package model

import (
	"fmt"
	"strconv"
	"strings"
)

// KeyCode identifies a physical key independently of the input source.
// Codes at or above positionBase refer to ZMK key positions.
type KeyCode uint16

const positionBase KeyCode = 0x1000

const (
	KeyUnknown KeyCode = iota
	KeyEscape
	KeyBackQuote
	KeyNum1
	KeyNum2
	KeyNum3
	KeyNum4
	KeyNum5
	KeyNum6
	KeyNum7
	KeyNum8
	KeyNum9
	KeyNum0
	KeyMinus
	KeyEqual
	KeyBackspace
	KeyTab
	KeyQ
	KeyW
	KeyE
	KeyR
	KeyT
	KeyY
	KeyU
	KeyI
	KeyO
	KeyP
	KeyLeftBracket
	KeyRightBracket
	KeyBackSlash
	KeyCapsLock
	KeyA
	KeyS
	KeyD
	KeyF
	KeyG
	KeyH
	KeyJ
	KeyK
	KeyL
	KeySemiColon
	KeyQuote
	KeyReturn
	KeyShiftLeft
	KeyZ
	KeyX
	KeyC
	KeyV
	KeyB
	KeyN
	KeyM
	KeyComma
	KeyDot
	KeySlash
	KeyShiftRight
	KeyControlLeft
	KeyMetaLeft
	KeyAlt
	KeySpace
	KeyAltGr
	KeyMetaRight
	KeyControlRight
	KeyUpArrow
	KeyDownArrow
	KeyLeftArrow
	KeyRightArrow
	KeyDelete
	KeyHome
	KeyEnd
	keyCount
)

var keyNames = [keyCount]string{
	KeyUnknown:      "Unknown",
	KeyEscape:       "Escape",
	KeyBackQuote:    "BackQuote",
	KeyNum1:         "Num1",
	KeyNum2:         "Num2",
	KeyNum3:         "Num3",
	KeyNum4:         "Num4",
	KeyNum5:         "Num5",
	KeyNum6:         "Num6",
	KeyNum7:         "Num7",
	KeyNum8:         "Num8",
	KeyNum9:         "Num9",
	KeyNum0:         "Num0",
	KeyMinus:        "Minus",
	KeyEqual:        "Equal",
	KeyBackspace:    "Backspace",
	KeyTab:          "Tab",
	KeyQ:            "KeyQ",
	KeyW:            "KeyW",
	KeyE:            "KeyE",
	KeyR:            "KeyR",
	KeyT:            "KeyT",
	KeyY:            "KeyY",
	KeyU:            "KeyU",
	KeyI:            "KeyI",
	KeyO:            "KeyO",
	KeyP:            "KeyP",
	KeyLeftBracket:  "LeftBracket",
	KeyRightBracket: "RightBracket",
	KeyBackSlash:    "BackSlash",
	KeyCapsLock:     "CapsLock",
	KeyA:            "KeyA",
	KeyS:            "KeyS",
	KeyD:            "KeyD",
	KeyF:            "KeyF",
	KeyG:            "KeyG",
	KeyH:            "KeyH",
	KeyJ:            "KeyJ",
	KeyK:            "KeyK",
	KeyL:            "KeyL",
	KeySemiColon:    "SemiColon",
	KeyQuote:        "Quote",
	KeyReturn:       "Return",
	KeyShiftLeft:    "ShiftLeft",
	KeyZ:            "KeyZ",
	KeyX:            "KeyX",
	KeyC:            "KeyC",
	KeyV:            "KeyV",
	KeyB:            "KeyB",
	KeyN:            "KeyN",
	KeyM:            "KeyM",
	KeyComma:        "Comma",
	KeyDot:          "Dot",
	KeySlash:        "Slash",
	KeyShiftRight:   "ShiftRight",
	KeyControlLeft:  "ControlLeft",
	KeyMetaLeft:     "MetaLeft",
	KeyAlt:          "Alt",
	KeySpace:        "Space",
	KeyAltGr:        "AltGr",
	KeyMetaRight:    "MetaRight",
	KeyControlRight: "ControlRight",
	KeyUpArrow:      "UpArrow",
	KeyDownArrow:    "DownArrow",
	KeyLeftArrow:    "LeftArrow",
	KeyRightArrow:   "RightArrow",
	KeyDelete:       "Delete",
	KeyHome:         "Home",
	KeyEnd:          "End",
}

// PositionCode maps a ZMK key position to its KeyCode.
func PositionCode(p KeyPosition) KeyCode {
	return positionBase + KeyCode(p)
}

// Position reports the ZMK position encoded in c, if any.
func (c KeyCode) Position() (KeyPosition, bool) {
	if c < positionBase {
		return 0, false
	}

	return KeyPosition(c - positionBase), true
}

func (c KeyCode) String() string {
	if p, ok := c.Position(); ok {
		return fmt.Sprintf("pos:%d", p)
	}

	if c < keyCount {
		return keyNames[c]
	}

	return fmt.Sprintf("KeyCode(%d)", uint16(c))
}

// ParseKeyCode accepts key names case-insensitively ("KeyA", "shiftleft")
// and ZMK positions written as "pos:N".
func ParseKeyCode(name string) (KeyCode, error) {
	name = strings.TrimSpace(name)

	if rest, ok := strings.CutPrefix(strings.ToLower(name), "pos:"); ok {
		p, err := strconv.Atoi(rest)
		if err != nil || p < 0 {
			return KeyUnknown, fmt.Errorf("invalid key position %q", name)
		}

		return PositionCode(KeyPosition(p)), nil
	}

	for i, n := range keyNames {
		if i != int(KeyUnknown) && strings.EqualFold(n, name) {
			return KeyCode(i), nil
		}
	}

	return KeyUnknown, fmt.Errorf("unknown key name %q", name)
}

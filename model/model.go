package model

// Position of the key as reported by ZMK firmware.
type KeyPosition int

// KeyEvent is a raw key event parsed from a ZMK log line.
type KeyEvent struct {
	Row      int
	Col      int
	Position KeyPosition
	Pressed  bool
}

// KeyTransition is a platform independent press or release of a key.
type KeyTransition struct {
	Code    KeyCode
	Pressed bool
}

// KeyRegion is a key rectangle on screen with its label.
type KeyRegion struct {
	Code   KeyCode
	X      int
	Y      int
	Width  int
	Height int
	Label  string
}

type RowCol struct {
	Row int
	Col int
}

// Location of a key in keyboard units, as found in info.json files.
type Location struct {
	RowCol
	X float64
	Y float64
	W float64
	H float64
}

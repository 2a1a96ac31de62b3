package model

import "fmt"

// Color is a packed 0xAARRGGBB pixel value.
type Color uint32

const (
	DefaultAccent Color = 0xFF808080
	White         Color = 0xFFFFFFFF
	Black         Color = 0xFF000000
)

// Component selects one of the RGB channels of a Color.
type Component int

const (
	ComponentNone Component = iota
	ComponentRed
	ComponentGreen
	ComponentBlue
)

func (c Component) String() string {
	switch c {
	case ComponentRed:
		return "Red"
	case ComponentGreen:
		return "Green"
	case ComponentBlue:
		return "Blue"
	default:
		return "None"
	}
}

func (c Component) shift() uint {
	switch c {
	case ComponentRed:
		return 16
	case ComponentGreen:
		return 8
	default:
		return 0
	}
}

func RGB(r, g, b uint8) Color {
	return Color(0xFF<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }
func (c Color) A() uint8 { return uint8(c >> 24) }

// Channel returns the value of one RGB component. ComponentNone yields 0.
func (c Color) Channel(comp Component) uint8 {
	if comp == ComponentNone {
		return 0
	}

	return uint8(c >> comp.shift())
}

// Adjust adds delta to one channel, clamped to [0, 255]. The result is always opaque.
func (c Color) Adjust(comp Component, delta int) Color {
	if comp == ComponentNone {
		return c
	}

	v := int(c.Channel(comp)) + delta
	v = max(0, min(0xFF, v))

	shift := comp.shift()
	out := uint32(c) &^ (0xFF << shift)
	out |= uint32(v) << shift

	return Color(out | 0xFF<<24)
}

func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

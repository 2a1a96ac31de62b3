package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dasdy/keylayout/model"
)

// ZMK wraps debug lines in color codes; the reset sticks to the last value.
const ansiReset = "\x1b[0m"

const fieldCount = 4

// ParseLine extracts a key event from a ZMK kscan debug line:
//
//	... zmk_kscan_process_msgq: Row: 2, col: 1, position: 23, pressed: false
//
// Lines that are not key events give a nil event and no error.
func ParseLine(line string) (*model.KeyEvent, error) {
	tokens := strings.Fields(strings.ReplaceAll(line, ansiReset, ""))

	var (
		ev    model.KeyEvent
		found int
		err   error
	)

	for i := 0; i+1 < len(tokens); i++ {
		value := strings.TrimRight(tokens[i+1], ",")

		switch tokens[i] {
		case "Row:":
			ev.Row, err = parseInt("row", value)
		case "col:":
			ev.Col, err = parseInt("col", value)
		case "position:":
			var p int

			p, err = parseInt("position", value)
			ev.Position = model.KeyPosition(p)
		case "pressed:":
			ev.Pressed, err = parseBool(value)
		default:
			continue
		}

		if err != nil {
			return nil, err
		}

		found++
		i++
	}

	if found < fieldCount {
		return nil, nil //nolint:nilnil
	}

	return &ev, nil
}

func parseInt(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("could not parse %s: %w", name, err)
	}

	return n, nil
}

func parseBool(value string) (bool, error) {
	switch value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("pressed value unexpected: '%s'", value)
	}
}

package layout

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/dasdy/keylayout/model"
)

const (
	DefaultUnit = 60
	// keyGap is the space between neighboring keys, in pixels.
	keyGap = 10
)

type ZMKKeyDescriptor struct {
	Row   int      `json:"row"`
	Col   int      `json:"col"`
	X     float64  `json:"x"`
	Y     float64  `json:"y"`
	W     *float64 `json:"w"`
	H     *float64 `json:"h"`
	R     float64  `json:"r"`
	Rx    float64  `json:"rx"`
	Ry    float64  `json:"ry"`
	Label string   `json:"label"`
	// Key binds the position to a named key code instead of "pos:N".
	Key string `json:"key"`
}

type ZMKLayoutCollection struct {
	Layout []ZMKKeyDescriptor `json:"layout"`
}

type ZmkInfoJSON struct {
	ID      string                         `json:"id"`
	Name    string                         `json:"name"`
	Layouts map[string]ZMKLayoutCollection `json:"layouts"`
}

func (d ZMKKeyDescriptor) Location() model.Location {
	loc := model.Location{
		RowCol: model.RowCol{Row: d.Row, Col: d.Col},
		X:      d.X,
		Y:      d.Y,
		W:      1,
		H:      1,
	}

	if d.W != nil {
		loc.W = *d.W
	}

	if d.H != nil {
		loc.H = *d.H
	}

	return loc
}

// Region converts a key location in keyboard units to a pixel rectangle.
// Each unit is unit pixels wide, keys keep a gap to their neighbors.
func Region(code model.KeyCode, loc model.Location, unit int, label string) model.KeyRegion {
	u := float64(unit)
	gap := min(keyGap, unit/5)

	return model.KeyRegion{
		Code:   code,
		X:      int(math.Round(loc.X * u)),
		Y:      int(math.Round(loc.Y * u)),
		Width:  max(1, int(math.Round(loc.W*u))-gap),
		Height: max(1, int(math.Round(loc.H*u))-gap),
		Label:  label,
	}
}

// LoadZmkInfoJSON builds a table from a ZMK/QMK info.json with exactly one layout.
// Keys without an explicit "key" are bound to their ZMK position.
func LoadZmkInfoJSON(reader io.Reader, unit int) (*Table, error) {
	if unit <= 0 {
		unit = DefaultUnit
	}

	var info ZmkInfoJSON

	if err := json.NewDecoder(reader).Decode(&info); err != nil {
		return nil, fmt.Errorf("could not decode ZMK info JSON: %w", err)
	}

	if len(info.Layouts) != 1 {
		return nil, fmt.Errorf("expected exactly one layout, got %d", len(info.Layouts))
	}

	var regions []model.KeyRegion

	for _, layout := range info.Layouts {
		regions = make([]model.KeyRegion, 0, len(layout.Layout))

		for keyID, key := range layout.Layout {
			code := model.PositionCode(model.KeyPosition(keyID))

			if key.Key != "" {
				c, err := model.ParseKeyCode(key.Key)
				if err != nil {
					return nil, fmt.Errorf("key %d: %w", keyID, err)
				}

				code = c
			}

			regions = append(regions, Region(code, key.Location(), unit, NormalizeLabel(key.Label)))
		}
	}

	return NewTable(regions)
}

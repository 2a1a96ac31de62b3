package layout

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// OpenPath opens path as given, falling back to the directory of the running
// binary for relative paths that do not exist in the working directory.
func OpenPath(path string) (*os.File, error) {
	file, err := os.Open(path)
	if err == nil || filepath.IsAbs(path) {
		if err != nil {
			return nil, fmt.Errorf("could not open file %s: %w", path, err)
		}

		slog.Debug("Opened layout file", "path", path)

		return file, nil
	}

	exe, exeErr := os.Executable()
	if exeErr != nil {
		return nil, fmt.Errorf("could not open file %s: %w", path, err)
	}

	alt := filepath.Join(filepath.Dir(exe), path)

	file, altErr := os.Open(alt)
	if altErr != nil {
		return nil, fmt.Errorf("could not open file %s: %w", path, err)
	}

	slog.Debug("Opened layout file next to binary", "path", alt)

	return file, nil
}

// LoadTable reads an info.json layout, or returns the built-in table when path is empty.
func LoadTable(path string, unit int) (*Table, error) {
	if path == "" {
		return Default(), nil
	}

	file, err := OpenPath(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	t, err := LoadZmkInfoJSON(file, unit)
	if err != nil {
		return nil, fmt.Errorf("could not load layout %s: %w", path, err)
	}

	slog.Info("Loaded layout", "path", path, "keys", len(t.Regions), "width", t.Width, "height", t.Height)

	return t, nil
}

const shiftLabel = "Shift"

var labels = map[string]string{
	"LEFT_SHIFT":  shiftLabel,
	"LSHFT":       shiftLabel,
	"RIGHT_SHIFT": shiftLabel,
	"RSHFT":       shiftLabel,
	"LCTRL":       "Ctrl",
	"RCTRL":       "Ctrl",
	"RET":         "Enter",
	"ENTER":       "Enter",
	"LCMD":        "Cmd",
	"RCMD":        "Cmd",
	"LGUI":        "Gui",
	"RGUI":        "Gui",
	"LALT":        "Alt",
	"RALT":        "Alt",
	"BSPC":        "Backspace",
	"SPACE":       "Space",
	"TAB":         "Tab",
	"ESC":         "Esc",
	"DEL":         "Del",
	"CAPS":        "Caps",

	"RIGHT_ARROW": "→",
	"RIGHT":       "→",
	"LEFT_ARROW":  "←",
	"LEFT":        "←",
	"UP_ARROW":    "↑",
	"UP":          "↑",
	"DOWN_ARROW":  "↓",
	"DOWN":        "↓",
	"EQUAL":       "=",
	"N1":          "1",
	"N2":          "2",
	"N3":          "3",
	"N4":          "4",
	"N5":          "5",
	"N6":          "6",
	"N7":          "7",
	"N8":          "8",
	"N9":          "9",
	"N0":          "0",
	"COMMA":       ",",
	"LBKT":        "[",
	"RBKT":        "]",
	"DOT":         ".",
	"SEMI":        ";",
	"BSLH":        "\\",
	"FSLH":        "/",
	"SQT":         "'",
	"MINUS":       "-",
	"GRAVE":       "`",
}

// NormalizeLabel maps ZMK key names to display labels. Single letters are
// lowercased so shift can uppercase them; unknown names pass through.
func NormalizeLabel(name string) string {
	name = strings.TrimSpace(name)

	if v, ok := labels[strings.ToUpper(name)]; ok {
		return v
	}

	if r := []rune(name); len(r) == 1 {
		return strings.ToLower(name)
	}

	return name
}

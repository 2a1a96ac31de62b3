package settings

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dasdy/keylayout/model"
)

// AccentKey is the only setting that is persisted.
const AccentKey = "rectangle_color"

// Store persists the accent color. Load never fails: missing or broken
// settings yield model.DefaultAccent.
type Store interface {
	Load() model.Color
	Save(c model.Color) error
	Close() error
}

// NewStoreFromPath picks the backend by extension: .sqlite/.db files use
// SQLite, anything else is a TOML file.
func NewStoreFromPath(path string) (Store, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".sqlite", ".sqlite3", ".db":
		store, err := NewSQLiteStore(path)
		if err != nil {
			return nil, fmt.Errorf("could not open settings database %s: %w", path, err)
		}

		return store, nil
	default:
		return NewFileStore(path), nil
	}
}

// parseColor accepts decimal and 0x-prefixed values. Alpha is forced opaque.
func parseColor(v string) (model.Color, bool) {
	c, err := strconv.ParseUint(strings.TrimSpace(v), 0, 32)
	if err != nil {
		return 0, false
	}

	return model.Color(c) | 0xFF<<24, true
}

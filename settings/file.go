package settings

import (
	"fmt"
	"log/slog"

	"github.com/dasdy/keylayout/model"
	"github.com/spf13/viper"
)

const DefaultPath = "keylayout-settings.toml"

// FileStore keeps the accent color in a flat TOML file:
//
//	rectangle_color = 4286611584
type FileStore struct {
	path string
	v    *viper.Viper
}

func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultPath
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	return &FileStore{path: path, v: v}
}

func (s *FileStore) Load() model.Color {
	if err := s.v.ReadInConfig(); err != nil {
		slog.Debug("Using default accent color", "path", s.path, "error", err)

		return model.DefaultAccent
	}

	c, ok := parseColor(s.v.GetString(AccentKey))
	if !ok {
		slog.Debug("Unparsable accent color, using default", "path", s.path, "value", s.v.GetString(AccentKey))

		return model.DefaultAccent
	}

	return c
}

func (s *FileStore) Save(c model.Color) error {
	s.v.Set(AccentKey, uint32(c))

	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("could not write settings to %s: %w", s.path, err)
	}

	return nil
}

func (s *FileStore) Close() error { return nil }

func (s *FileStore) Path() string { return s.path }

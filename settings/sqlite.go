package settings

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dasdy/keylayout/model"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore keeps settings in a key/value table.
type SQLiteStore struct {
	db *sql.DB
}

func InitDBStorage(db *sql.DB) error {
	sqlStmt := `
	create table if not exists settings(key text primary key, value text not null);`

	_, err := db.Exec(sqlStmt)
	if err != nil {
		return fmt.Errorf("could not create settings table: %w", err)
	}

	return nil
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("could not open sqlite file: %w", err)
	}

	// :memory: databases are per connection
	db.SetMaxOpenConns(1)

	if err := InitDBStorage(db); err != nil {
		db.Close()

		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load() model.Color {
	var raw string

	err := s.db.QueryRow(`select value from settings where key = ?`, AccentKey).Scan(&raw)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Debug("Could not read accent color", "error", err)
		}

		return model.DefaultAccent
	}

	c, ok := parseColor(raw)
	if !ok {
		slog.Debug("Unparsable accent color, using default", "value", raw)

		return model.DefaultAccent
	}

	return c
}

func (s *SQLiteStore) Save(c model.Color) error {
	_, err := s.db.Exec(`insert into settings(key, value) values(?, ?)
	    on conflict(key) do update set value = excluded.value`,
		AccentKey, fmt.Sprint(uint32(c)))
	if err != nil {
		return fmt.Errorf("could not store accent color: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

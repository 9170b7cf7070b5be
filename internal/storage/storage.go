// Package storage persists the task collection and the theme
// preference as opaque blobs in a SQLite key-value table. Callers
// treat every failure as "no prior state"; nothing here is fatal
// beyond Open.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"taskline/internal/task"
)

// Fixed keys for the two blobs.
const (
	tasksKey = "tasks"
	themeKey = "theme.dark"
)

var errNotFound = errors.New("key not found")

type Store struct {
	db  *sql.DB
	log *zap.Logger
}

func Open(dbPath string, log *zap.Logger) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, err
	}
	dsn := sqliteDSN(dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db, log: log}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value BLOB NOT NULL
);`
	_, err := s.db.Exec(ddl)
	return err
}

// SaveTasks serializes the full collection as one JSON blob under the
// tasks key, replacing whatever was there.
func (s *Store) SaveTasks(tasks []task.Task) error {
	blob, err := json.Marshal(tasks)
	if err != nil {
		return err
	}
	return s.put(tasksKey, blob)
}

// LoadTasks returns the stored collection. An absent or malformed blob
// degrades to an empty collection rather than an error; only a real
// query failure is reported.
func (s *Store) LoadTasks() ([]task.Task, error) {
	blob, err := s.get(tasksKey)
	if errors.Is(err, errNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var tasks []task.Task
	if err := json.Unmarshal(blob, &tasks); err != nil {
		s.log.Warn("stored task blob is malformed, starting empty", zap.Error(err))
		return nil, nil
	}
	return tasks, nil
}

// ClearTasks removes the task blob entirely.
func (s *Store) ClearTasks() error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = ?;`, tasksKey)
	return err
}

// SaveTheme stores the dark-theme preference.
func (s *Store) SaveTheme(dark bool) error {
	val := []byte("false")
	if dark {
		val = []byte("true")
	}
	return s.put(themeKey, val)
}

// LoadTheme returns the stored preference, false when absent.
func (s *Store) LoadTheme() (bool, error) {
	blob, err := s.get(themeKey)
	if errors.Is(err, errNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return string(blob) == "true", nil
}

func (s *Store) put(key string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value;`,
		key, value)
	return err
}

func (s *Store) get(key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?;`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func sqliteDSN(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}
	u := url.URL{
		Scheme: "file",
		Path:   path,
	}
	q := u.Query()
	q.Set("mode", "rwc")
	q.Set("_pragma", "busy_timeout(5000)")
	u.RawQuery = q.Encode()
	return u.String()
}

package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "taskline.db"
	DefaultLogName        = "taskline.log"
)

type Keymap struct {
	Quit         string `toml:"quit"`
	Add          string `toml:"add"`
	Up           string `toml:"up"`
	Down         string `toml:"down"`
	Toggle       string `toml:"toggle"`
	Delete       string `toml:"delete"`
	Edit         string `toml:"edit"`
	ClearDone    string `toml:"clear_done"`
	Filter       string `toml:"filter"`
	Theme        string `toml:"theme"`
	Confirm      string `toml:"confirm"`
	Cancel       string `toml:"cancel"`
	SortCreated  string `toml:"sort_created"`
	SortDue      string `toml:"sort_due"`
	SortPriority string `toml:"sort_priority"`
}

type Config struct {
	DBPath        string `toml:"db_path"`
	LogPath       string `toml:"log_path"`
	DefaultSort   string `toml:"default_sort"`
	DefaultFilter string `toml:"default_filter"`
	Debug         bool   `toml:"debug"`
	Keys          Keymap `toml:"keys"`
}

// ResolveConfigPath prefers the user config directory and falls back
// to the working directory when it is unavailable.
func ResolveConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, "taskline", DefaultConfigFileName)
}

func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig(filepath.Dir(path))
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(filepath.Dir(path), DefaultDBName)
	}
	if cfg.LogPath == "" {
		cfg.LogPath = filepath.Join(filepath.Dir(path), DefaultLogName)
	}
	if cfg.DefaultSort == "" {
		cfg.DefaultSort = "created"
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig(dir string) Config {
	return Config{
		DBPath:        filepath.Join(dir, DefaultDBName),
		LogPath:       filepath.Join(dir, DefaultLogName),
		DefaultSort:   "created",
		DefaultFilter: "",
		Keys: Keymap{
			Quit:         "q",
			Add:          "a",
			Up:           "k",
			Down:         "j",
			Toggle:       " ",
			Delete:       "d",
			Edit:         "e",
			ClearDone:    "c",
			Filter:       "f",
			Theme:        "t",
			Confirm:      "enter",
			Cancel:       "esc",
			SortCreated:  "1",
			SortDue:      "2",
			SortPriority: "3",
		},
	}
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings holds user preferences read from the optional YAML file.
type Settings struct {
	Theme     string `yaml:"theme"`
	AltScreen bool   `yaml:"alt_screen"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{Theme: "default"}
}

type SettingsError struct {
	Path string
	Err  error
}

func (e *SettingsError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("load settings %s: %v", e.Path, e.Err)
}

func (e *SettingsError) Unwrap() error { return e.Err }

// LoadSettings reads path. A missing file yields DefaultSettings and no error.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, &SettingsError{Path: path, Err: err}
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), &SettingsError{Path: path, Err: err}
	}
	s.Theme = strings.TrimSpace(s.Theme)
	if s.Theme == "" {
		s.Theme = DefaultSettings().Theme
	}
	return s, nil
}

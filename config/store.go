package config

import (
	"encoding/json"
	"fmt"

	"github.com/phanxgames/sprout"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// Settings are the per-user window settings saved between runs.
type Settings struct {
	Width      int  `json:"width"`
	Height     int  `json:"height"`
	Fullscreen bool `json:"fullscreen"`
}

// Apply overrides the window settings of cfg with s. Zero sizes are ignored.
func (s *Settings) Apply(cfg *sprout.RunConfig) {
	if s == nil {
		return
	}
	if s.Width > 0 && s.Height > 0 {
		cfg.Width = s.Width
		cfg.Height = s.Height
	}
	cfg.Fullscreen = s.Fullscreen
}

// itemStore is the subset of gdata.Manager the Store uses.
type itemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Store persists Settings in the platform's per-user data directory.
type Store struct {
	items itemStore
}

// Open opens the settings store for appName.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("config: open store %s: %w", appName, err)
	}
	return &Store{items: m}, nil
}

// Load returns the saved settings, or nil when nothing was saved yet.
func (s *Store) Load() (*Settings, error) {
	data, err := s.items.LoadItem(settingsKey)
	if err != nil {
		return nil, fmt.Errorf("config: load settings: %w", err)
	}
	if data == nil {
		return nil, nil
	}
	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("config: parse settings: %w", err)
	}
	return &settings, nil
}

// Save writes settings to the store.
func (s *Store) Save(settings *Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("config: encode settings: %w", err)
	}
	if err := s.items.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("config: save settings: %w", err)
	}
	return nil
}

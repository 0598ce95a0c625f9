// Package prefs holds the single user preferences record, persisted
// wholesale on every change.
package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/phenomvv/aetherapp/internal/model"
)

// AccentColor is one entry of the selectable accent palette.
type AccentColor struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

var AccentColors = []AccentColor{
	{Name: "Seafoam", Hex: "#A5F3E3"},
	{Name: "Rose", Hex: "#FFB7C5"},
	{Name: "Lavender", Hex: "#C084FC"},
	{Name: "Sky", Hex: "#7DD3FC"},
	{Name: "Amber", Hex: "#FCD34D"},
	{Name: "Mint", Hex: "#6EE7B7"},
	{Name: "Slate", Hex: "#94A3B8"},
}

// Store owns the preferences record. Every setter replaces the whole
// record and writes it back to disk.
type Store struct {
	mu   sync.Mutex
	path string
	p    model.Preferences
}

func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	s := &Store{
		path: filepath.Join(dataDir, "prefs.json"),
		p:    model.DefaultPreferences(),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var loaded model.Preferences
	if err := json.Unmarshal(b, &loaded); err != nil {
		return err
	}
	s.p = loaded
	return nil
}

func (s *Store) persistLocked() error {
	b, err := json.MarshalIndent(s.p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o644)
}

func (s *Store) Get() model.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p
}

func (s *Store) update(fn func(*model.Preferences)) (model.Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.p
	fn(&next)
	s.p = next

	if err := s.persistLocked(); err != nil {
		return model.Preferences{}, err
	}
	return next, nil
}

func (s *Store) ToggleNotifications() (model.Preferences, error) {
	return s.update(func(p *model.Preferences) { p.Notifications = !p.Notifications })
}

func (s *Store) ToggleAudio() (model.Preferences, error) {
	return s.update(func(p *model.Preferences) { p.AudioEnabled = !p.AudioEnabled })
}

func (s *Store) ToggleTheme() (model.Preferences, error) {
	return s.update(func(p *model.Preferences) { p.TrueDarkMode = !p.TrueDarkMode })
}

func (s *Store) SetName(name string) (model.Preferences, error) {
	return s.update(func(p *model.Preferences) { p.Name = name })
}

// SetAccentColor accepts any hex string; the friendly name travels
// with it.
func (s *Store) SetAccentColor(hex, name string) (model.Preferences, error) {
	return s.update(func(p *model.Preferences) {
		p.AccentColor = hex
		p.AccentName = name
	})
}

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds user state that persists between sessions
type Settings struct {
	// Default database for query commands (overrides config)
	DefaultDatabase string `json:"default_database,omitempty"`

	// Last used output format
	LastFormat string `json:"last_format,omitempty"`

	// Recent page and database references (for quick access)
	RecentRefs []string `json:"recent_refs,omitempty"`
}

// SettingsPath returns the path to the settings file
func SettingsPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, Dir, "settings.json")
}

// LoadSettings reads settings from disk
func LoadSettings() (*Settings, error) {
	path := SettingsPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Return empty settings if file doesn't exist
		}
		return nil, err
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// Save writes settings to disk
func (s *Settings) Save() error {
	path := SettingsPath()

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// AddRecentRef adds a reference to the recent list (max 10, most recent first)
func (s *Settings) AddRecentRef(ref string) {
	// Remove if already present
	filtered := make([]string, 0, len(s.RecentRefs))
	for _, r := range s.RecentRefs {
		if r != ref {
			filtered = append(filtered, r)
		}
	}

	// Add to front
	s.RecentRefs = append([]string{ref}, filtered...)

	// Trim to max 10
	if len(s.RecentRefs) > 10 {
		s.RecentRefs = s.RecentRefs[:10]
	}
}

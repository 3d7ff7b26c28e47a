package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"unicode"
)

// Config holds the application configuration
type Config struct {
	Theme         string `json:"theme,omitempty"`          // UI theme name (e.g., "aurora", "ember")
	DisplayName   string `json:"display_name,omitempty"`   // Name shown in the home greeting
	SoundEnabled  bool   `json:"sound_enabled"`            // Audible pulse feedback on taps
	ReducedMotion bool   `json:"reduced_motion,omitempty"` // Skip animations, land on end states

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".glint"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if it doesn't exist
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return loadFrom(path)
}

func loadFrom(path string) (*Config, error) {
	cfg := &Config{
		SoundEnabled: true,
		filePath:     path,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the config is internally consistent.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len([]rune(c.DisplayName)) > 48 {
		return fmt.Errorf("display name longer than 48 characters")
	}
	for _, r := range c.DisplayName {
		if unicode.IsControl(r) {
			return fmt.Errorf("display name contains control characters")
		}
	}
	return nil
}

// Save writes the config to disk. A config built directly rather than via
// Load has no backing file; its changes stay in memory.
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.filePath == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(c.filePath, data, 0644)
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetDisplayName returns the name shown in the home greeting
func (c *Config) GetDisplayName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.DisplayName
}

// SetDisplayName sets the name shown in the home greeting
func (c *Config) SetDisplayName(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.DisplayName = name
}

// GetSoundEnabled returns whether audible pulse feedback is enabled
func (c *Config) GetSoundEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.SoundEnabled
}

// SetSoundEnabled sets whether audible pulse feedback is enabled
func (c *Config) SetSoundEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.SoundEnabled = enabled
}

// GetReducedMotion returns whether animations should be skipped
func (c *Config) GetReducedMotion() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ReducedMotion
}

// SetReducedMotion sets whether animations should be skipped
func (c *Config) SetReducedMotion(reduced bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ReducedMotion = reduced
}

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// RootPolicy names the root-anchor policy in config files
type RootPolicy string

const (
	RootCenter RootPolicy = "center"
	RootHover  RootPolicy = "hover"
)

// BoardConfig fixes the lattice geometry and interaction conventions
type BoardConfig struct {
	CellSize   int        `json:"cellSize,omitempty"`   // view pixels per cell
	Gap        int        `json:"gap,omitempty"`        // view pixels between cells
	RootPolicy RootPolicy `json:"rootPolicy,omitempty"` // "center" or "hover"
}

// UIConfig stores terminal UI preferences
type UIConfig struct {
	CellWidth int    `json:"cellWidth,omitempty"` // terminal columns per rendered cell box
	Palette   string `json:"palette,omitempty"`   // path to a .gpl palette, empty = built-in
	LastMode  string `json:"lastMode,omitempty"`  // "pick" or "place"
}

// Config is the main configuration structure
type Config struct {
	Board BoardConfig `json:"board,omitempty"`
	UI    UIConfig    `json:"ui,omitempty"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Board: BoardConfig{
			CellSize:   26,
			Gap:        1,
			RootPolicy: RootCenter,
		},
		UI: UIConfig{
			CellWidth: 4,
			LastMode:  "pick",
		},
	}
}

// Normalize replaces missing or malformed values with defaults so the
// core only ever sees valid geometry
func (c *Config) Normalize() {
	def := DefaultConfig()
	if c.Board.CellSize <= 0 {
		c.Board.CellSize = def.Board.CellSize
	}
	if c.Board.Gap <= 0 {
		c.Board.Gap = def.Board.Gap
	}
	if c.Board.RootPolicy != RootCenter && c.Board.RootPolicy != RootHover {
		c.Board.RootPolicy = def.Board.RootPolicy
	}
	if c.UI.CellWidth <= 0 {
		c.UI.CellWidth = def.UI.CellWidth
	}
	if c.UI.LastMode != "pick" && c.UI.LastMode != "place" {
		c.UI.LastMode = def.UI.LastMode
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "muspace"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Margins describe the screen rows and columns reserved around the board
// for the title, the border and the menu text.
type Margins struct {
	Left   int `toml:"left"`
	Right  int `toml:"right"`
	Top    int `toml:"top"`
	Bottom int `toml:"bottom"`
}

// Glyphs are the two characters used to draw a cell.
type Glyphs struct {
	Alive string `toml:"alive"`
	Dead  string `toml:"dead"`
}

// Settings holds the application configuration loaded at startup.
type Settings struct {
	StorePath string  `toml:"store_path"`
	LogPath   string  `toml:"log_path"`
	Margins   Margins `toml:"margins"`
	Glyphs    Glyphs  `toml:"glyphs"`
}

// DefaultSettings returns the standard configuration. The margin values
// reserve space for a three-line header, a bottom shortcut bar and the
// side menu.
func DefaultSettings() Settings {
	return Settings{
		StorePath: "life.json",
		LogPath:   "life.log",
		Margins:   Margins{Left: 2, Right: 13, Top: 3, Bottom: 2},
		Glyphs:    Glyphs{Alive: "█", Dead: " "},
	}
}

// LoadSettings reads the TOML settings file at path. A missing file yields
// the defaults; fields absent from the file keep their default values.
func LoadSettings(path string) (Settings, error) {
	cfg := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Settings{}, fmt.Errorf("settings load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Settings{}, fmt.Errorf("settings parse failed (%s): %w", path, err)
	}
	if err := ValidateSettings(cfg); err != nil {
		return Settings{}, fmt.Errorf("settings invalid (%s): %w", path, err)
	}
	return cfg, nil
}

// ValidateSettings rejects configurations the session cannot start with.
func ValidateSettings(cfg Settings) error {
	if cfg.StorePath == "" {
		return fmt.Errorf("store_path must not be empty")
	}
	if cfg.LogPath == "" {
		return fmt.Errorf("log_path must not be empty")
	}
	if cfg.Margins.Left < 0 || cfg.Margins.Right < 0 || cfg.Margins.Top < 0 || cfg.Margins.Bottom < 0 {
		return fmt.Errorf("margins must not be negative")
	}
	if cfg.Glyphs.Alive == "" || cfg.Glyphs.Dead == "" {
		return fmt.Errorf("glyphs must not be empty")
	}
	return nil
}

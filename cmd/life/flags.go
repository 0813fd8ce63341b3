package main

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	SettingsPath string
	StorePath    string
	LogPath      string
	Seed         int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{SettingsPath: "life.toml"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.SettingsPath, "config", c.SettingsPath, "path to the TOML settings file")
	fs.StringVar(&c.StorePath, "store", c.StorePath, "pattern store file (overrides settings)")
	fs.StringVar(&c.LogPath, "log", c.LogPath, "log file (overrides settings)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "fixed seed for random fills (0 uses wall-clock time)")
}

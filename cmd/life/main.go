package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"torus-life/internal/config"
	"torus-life/internal/observability"
	"torus-life/internal/ui"
)

func main() {
	cfg := NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	settings, err := config.LoadSettings(cfg.SettingsPath)
	if err != nil {
		fatal(err)
	}
	if cfg.StorePath != "" {
		settings.StorePath = cfg.StorePath
	}
	if cfg.LogPath != "" {
		settings.LogPath = cfg.LogPath
	}

	logger, closeLog, err := observability.InitLogger("torus-life", settings.LogPath)
	if err != nil {
		fatal(err)
	}
	defer closeLog()

	store, err := config.OpenStore(settings.StorePath)
	if err != nil {
		logger.Error().Err(err).Msg("pattern store unusable")
		fatal(err)
	}

	var entropy func() int64
	if cfg.Seed != 0 {
		entropy = func() int64 { return cfg.Seed }
	}

	program := tea.NewProgram(
		ui.NewModel(settings, store, logger, entropy),
		tea.WithAltScreen(),
	)
	final, err := program.Run()
	if err != nil {
		logger.Error().Err(err).Msg("program failed")
		fatal(err)
	}

	if m, ok := final.(ui.Model); ok && m.Err() != nil {
		logger.Error().Err(m.Err()).Msg("session aborted")
		if errors.Is(m.Err(), ui.ErrTerminalTooSmall) {
			fmt.Fprintln(os.Stderr, "torus-life: the terminal window is too small, enlarge it and retry")
		}
		fatal(m.Err())
	}
}

// fatal reports startup/shutdown failures on stderr; the zerolog file
// logger stays the only structured sink.
func fatal(err error) {
	fmt.Fprintln(os.Stderr, "torus-life:", err)
	os.Exit(1)
}

package ui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"torus-life/internal/config"
	"torus-life/internal/life"
	"torus-life/internal/session"
)

// ErrTerminalTooSmall reports that the terminal cannot fit a board once
// the margins for the title, border and menus are reserved.
var ErrTerminalTooSmall = errors.New("terminal too small for the board margins")

// Model is the bubbletea program state. It performs the one-shot session
// bootstrap (terminal sizing) and forwards key events to the controller.
type Model struct {
	settings config.Settings
	store    *config.Store
	log      zerolog.Logger
	entropy  func() int64

	ctrl   *session.Controller
	sized  bool
	status string
	err    error
}

// NewModel builds the program model. entropy seeds random fills; nil means
// wall-clock time.
func NewModel(settings config.Settings, store *config.Store, log zerolog.Logger, entropy func() int64) Model {
	return Model{settings: settings, store: store, log: log, entropy: entropy}
}

// Err returns the fatal bootstrap error, if any, once the program ends.
func (m Model) Err() error { return m.err }

// Init implements tea.Model. The first WindowSizeMsg drives the bootstrap.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if m.sized {
			// Sizing happens exactly once per session; later resizes
			// are ignored.
			return m, nil
		}
		rows, cols, err := boardSize(msg.Width, msg.Height, m.settings.Margins)
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.ctrl = session.New(life.New(rows, cols), m.store, m.entropy)
		m.sized = true
		m.status = "Pick a pattern to begin."
		m.log.Info().Int("rows", rows).Int("cols", cols).Msg("session sized")
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.log.Info().Msg("interrupted")
		return m, tea.Quit
	}
	if !m.sized {
		return m, nil
	}
	key, ok := keyRune(msg)
	if !ok {
		return m, nil
	}

	effect, err := m.ctrl.HandleKey(key)
	if err != nil {
		m.status = err.Error()
		m.log.Warn().Err(err).Msg("action aborted")
		return m, nil
	}

	switch effect {
	case session.EffectQuit:
		m.log.Info().Msg("session ended")
		return m, tea.Quit
	case session.EffectRedraw:
		eng := m.ctrl.Engine()
		m.status = fmt.Sprintf("Generation %d, population %d", eng.Generation(), eng.Population())
		m.log.Debug().
			Int("generation", eng.Generation()).
			Int("population", eng.Population()).
			Msg("board updated")
	case session.EffectSaved:
		m.status = "Board saved."
		m.log.Info().Msg("board saved")
	}
	return m, nil
}

// keyRune normalizes a bubbletea key event to the controller's alphabet.
func keyRune(msg tea.KeyMsg) (rune, bool) {
	switch msg.Type {
	case tea.KeyEnter:
		return session.KeyAdvance, true
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return msg.Runes[0], true
		}
	}
	return 0, false
}

// boardSize derives the board dimensions from the terminal size, keeping
// the margin rows and columns free for the title, border and menus. This
// is the session bootstrap: degenerate results are fatal before any board
// operation happens.
func boardSize(width, height int, mg config.Margins) (rows, cols int, err error) {
	rows = height - mg.Top - mg.Bottom - 1
	cols = width - mg.Left - mg.Right - 1
	if rows <= 0 || cols <= 0 {
		return 0, 0, fmt.Errorf("%w: %dx%d terminal leaves a %dx%d board",
			ErrTerminalTooSmall, width, height, rows, cols)
	}
	return rows, cols, nil
}

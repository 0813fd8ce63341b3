package ui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"torus-life/internal/config"
	"torus-life/internal/session"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	store, err := config.OpenStore(filepath.Join(t.TempDir(), "life.json"))
	require.NoError(t, err)
	return NewModel(config.DefaultSettings(), store, zerolog.Nop(), func() int64 { return 1 })
}

func sized(t *testing.T, m Model, width, height int) Model {
	t.Helper()
	next, cmd := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	require.Nil(t, cmd)
	return next.(Model)
}

func TestBoardSize(t *testing.T) {
	mg := config.DefaultSettings().Margins

	rows, cols, err := boardSize(80, 24, mg)
	require.NoError(t, err)
	require.Equal(t, 24-mg.Top-mg.Bottom-1, rows)
	require.Equal(t, 80-mg.Left-mg.Right-1, cols)
}

func TestBoardSizeTooSmall(t *testing.T) {
	mg := config.DefaultSettings().Margins

	_, _, err := boardSize(10, 4, mg)
	require.ErrorIs(t, err, ErrTerminalTooSmall)

	_, _, err = boardSize(14, 24, mg) // width eaten by side margins
	require.ErrorIs(t, err, ErrTerminalTooSmall)
}

func TestBootstrapSizesExactlyOnce(t *testing.T) {
	m := sized(t, newTestModel(t), 80, 24)
	eng := m.ctrl.Engine()
	require.Equal(t, 18, eng.Rows())
	require.Equal(t, 64, eng.Cols())

	// Later resizes must not rebuild the board.
	m = sized(t, m, 120, 50)
	require.Same(t, eng, m.ctrl.Engine())
}

func TestBootstrapFailsOnTinyTerminal(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(tea.WindowSizeMsg{Width: 8, Height: 4})
	m = next.(Model)

	require.ErrorIs(t, m.Err(), ErrTerminalTooSmall)
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestKeysBeforeSizingAreIgnored(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'0'}})
	m = next.(Model)
	require.Nil(t, cmd)
	require.Nil(t, m.ctrl)
}

func TestSeedStepQuitFlow(t *testing.T) {
	m := sized(t, newTestModel(t), 80, 24)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'5'}})
	m = next.(Model)
	require.Nil(t, cmd)
	require.Equal(t, session.StateRunning, m.ctrl.State())
	require.Equal(t, 3, m.ctrl.Engine().Population())

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	require.Nil(t, cmd)
	require.Equal(t, 1, m.ctrl.Engine().Generation())

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(Model)
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.Equal(t, session.StateTerminated, m.ctrl.State())
}

func TestSaveKeyBeforeFirstSeedIsSilent(t *testing.T) {
	m := sized(t, newTestModel(t), 80, 24)
	before := m.status

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	m = next.(Model)
	require.Nil(t, cmd)
	require.Equal(t, session.StateAwaitingSeed, m.ctrl.State())
	require.Equal(t, before, m.status)

	// The save slot must remain untouched.
	_, err := m.store.Pattern(config.SavedSlot)
	require.ErrorIs(t, err, config.ErrUnknownPattern)
}

func TestSaveConfirmationOnlyAfterRealSave(t *testing.T) {
	m := sized(t, newTestModel(t), 80, 24)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'0'}})
	m = next.(Model)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	m = next.(Model)
	require.Equal(t, "Board saved.", m.status)

	p, err := m.store.Pattern(config.SavedSlot)
	require.NoError(t, err)
	require.Equal(t, m.ctrl.Engine().Grid(), p.Cells)
}

func TestAbortedActionSurfacesStatus(t *testing.T) {
	m := sized(t, newTestModel(t), 80, 24)

	// Selecting the saved slot with nothing saved aborts the seed.
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'9'}})
	m = next.(Model)
	require.Nil(t, cmd)
	require.Equal(t, session.StateAwaitingSeed, m.ctrl.State())
	require.Contains(t, m.status, "unknown pattern")
}

func TestViewDrawsBoardAndMenu(t *testing.T) {
	m := sized(t, newTestModel(t), 80, 24)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'0'}})
	m = next.(Model)

	out := m.View()
	require.Contains(t, out, "GAME OF LIFE")
	require.Contains(t, out, "Blinker")
	require.Contains(t, out, "q: quit")
	require.Contains(t, out, m.settings.Glyphs.Alive)
}

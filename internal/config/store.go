package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"torus-life/internal/life"
)

// ErrUnknownPattern is returned when a seed selection names a pattern that
// exists neither in the store file nor in the compiled-in menu.
var ErrUnknownPattern = errors.New("unknown pattern")

// SavedSlot is the reserved store key holding the single saved board.
const SavedSlot = "Saved"

// Store is the on-disk pattern map: fixed menu patterns plus the one saved
// board slot, serialized as a JSON object of 0/1 cell grids.
type Store struct {
	path     string
	patterns map[string][][]int
}

// OpenStore loads the pattern file at path. A missing file is not an
// error: the compiled-in patterns still serve the menu and the file is
// created on the first save. An unreadable or malformed file is fatal.
func OpenStore(path string) (*Store, error) {
	s := &Store{path: path, patterns: map[string][][]int{}}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("pattern store load failed (%s): %w", path, err)
	}
	if err := json.Unmarshal(data, &s.patterns); err != nil {
		return nil, fmt.Errorf("pattern store parse failed (%s): %w", path, err)
	}
	return s, nil
}

// Pattern resolves a name to its template. File entries shadow the
// compiled-in patterns, so a user-edited store can replace any menu shape.
// The saved-board slot exists only once something has been saved.
func (s *Store) Pattern(name string) (life.Pattern, error) {
	if grid, ok := s.patterns[name]; ok {
		return life.Pattern{Name: name, Cells: toCells(grid)}, nil
	}
	if p, ok := life.Builtin(name); ok {
		return p, nil
	}
	return life.Pattern{}, fmt.Errorf("%w: %s", ErrUnknownPattern, name)
}

// SaveBoard overwrites the saved-board slot with the given cells and
// persists the full map. On failure the in-memory slot is rolled back so
// a later save cannot silently write stale state.
func (s *Store) SaveBoard(cells [][]uint8) error {
	prev, had := s.patterns[SavedSlot]
	s.patterns[SavedSlot] = toGrid(cells)
	if err := s.flush(); err != nil {
		if had {
			s.patterns[SavedSlot] = prev
		} else {
			delete(s.patterns, SavedSlot)
		}
		return err
	}
	return nil
}

// flush rewrites the whole store file via a temp file and rename, so
// readers never observe a partially written map.
func (s *Store) flush() error {
	data, err := json.Marshal(s.patterns)
	if err != nil {
		return fmt.Errorf("pattern store encode failed: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("pattern store write failed (%s): %w", s.path, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("pattern store write failed (%s): %w", s.path, err)
	}
	return nil
}

// The JSON form keeps cells as plain integers, the shape hand-edited
// pattern files use. encoding/json would base64-encode [][]uint8 rows.
func toCells(grid [][]int) [][]uint8 {
	cells := make([][]uint8, len(grid))
	for r, row := range grid {
		cells[r] = make([]uint8, len(row))
		for c, v := range row {
			if v != 0 {
				cells[r][c] = 1
			}
		}
	}
	return cells
}

func toGrid(cells [][]uint8) [][]int {
	grid := make([][]int, len(cells))
	for r, row := range cells {
		grid[r] = make([]int, len(row))
		for c, v := range row {
			grid[r][c] = int(v)
		}
	}
	return grid
}

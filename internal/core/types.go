package core

// Size describes the dimensions of a board in rows and columns.
type Size struct {
	Rows int
	Cols int
}

// Area returns the number of cells a board of this size holds.
func (s Size) Area() int { return s.Rows * s.Cols }

// Empty reports whether the size has no cells in at least one axis.
func (s Size) Empty() bool { return s.Rows <= 0 || s.Cols <= 0 }

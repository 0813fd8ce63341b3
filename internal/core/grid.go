package core

// Wrap maps v onto [0, n) with toroidal wrapping. It tolerates values any
// distance out of range in either direction.
func Wrap(v, n int) int {
	return (v%n + n) % n
}

// Index returns the linear row-major slice index for (row, col) on a board
// with the given column count.
func Index(row, col, cols int) int { return row*cols + col }

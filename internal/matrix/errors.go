package matrix

import "fmt"

// ShapeError reports a matrix that is not square or has jagged rows.
type ShapeError struct {
	Row    int // first offending row
	Length int // length of that row
	Size   int // expected length (the row count)
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("matrix: row %d has length %d, want %d", e.Row, e.Length, e.Size)
}

// SizeError reports square operands of different sizes.
type SizeError struct {
	Left, Right int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("matrix: size mismatch, %d×%d and %d×%d", e.Left, e.Left, e.Right, e.Right)
}

// RangeError reports a row or column index outside [0, Size).
type RangeError struct {
	Axis  string // "row" or "column"
	Index int
	Size  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("matrix: invalid %s %d for size %d", e.Axis, e.Index, e.Size)
}

// SingularError reports a zero pivot met during elimination.
type SingularError struct {
	Pivot int // index of the zero diagonal entry
}

func (e *SingularError) Error() string {
	return fmt.Sprintf("matrix: zero pivot at [%d][%d], matrix is singular", e.Pivot, e.Pivot)
}

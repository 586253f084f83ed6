// Package matrix implements the small dense linear algebra used by the
// laminate engine: construction, determinant, Gauss-Jordan inversion and
// minor extraction on square matrices stored as rows of float64.
//
// None of the functions pivot. Entries that fall below Limit during
// elimination are set to exactly zero.
package matrix

import "math"

// Limit is the magnitude below which values are snapped to zero. The
// laminate assembly applies the same threshold to its stiffness matrix.
const Limit = 1e-7

// Matrix is a square matrix stored row by row.
type Matrix [][]float64

// Identity returns the n×n identity matrix.
func Identity(n int) Matrix {
	m := Zero(n)
	for i := 0; i < n; i++ {
		m[i][i] = 1
	}
	return m
}

// Zero returns an n×n matrix filled with zeros.
func Zero(n int) Matrix {
	if n < 0 {
		n = 0
	}
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	return m
}

// SquareSize returns the size of m, or a *ShapeError if any row length
// differs from the number of rows.
func SquareSize(m Matrix) (int, error) {
	size := len(m)
	for i, row := range m {
		if len(row) != size {
			return 0, &ShapeError{Row: i, Length: len(row), Size: size}
		}
	}
	return size, nil
}

// Clone returns a deep copy of m.
func Clone(m Matrix) Matrix {
	if m == nil {
		return nil
	}
	c := make(Matrix, len(m))
	for i, row := range m {
		c[i] = append([]float64(nil), row...)
	}
	return c
}

// Snap returns 0 for values whose magnitude is below Limit.
func Snap(v float64) float64 {
	if math.Abs(v) < Limit {
		return 0
	}
	return v
}

// UpperTriangularize performs forward elimination without pivoting. It
// returns the upper-triangular form of m and the accumulated row
// operations applied to an identity matrix. m itself is not modified.
func UpperTriangularize(m Matrix) (upper, ops Matrix, err error) {
	size, err := SquareSize(m)
	if err != nil {
		return nil, nil, err
	}
	upper = Clone(m)
	ops = Identity(size)
	for k := 0; k < size; k++ {
		for p := k + 1; p < size; p++ {
			if upper[k][k] == 0 {
				return nil, nil, &SingularError{Pivot: k}
			}
			fact := upper[p][k] / upper[k][k]
			for j := 0; j < size; j++ {
				upper[p][j] = Snap(upper[p][j] - fact*upper[k][j])
				ops[p][j] -= fact * ops[k][j]
			}
		}
	}
	return upper, ops, nil
}

// Determinant returns the product of the diagonal of the triangularized m.
func Determinant(m Matrix) (float64, error) {
	upper, _, err := UpperTriangularize(m)
	if err != nil {
		return 0, err
	}
	det := 1.0
	for i := range upper {
		det *= upper[i][i]
	}
	return det, nil
}

// Inverse returns the inverse of m by Gauss-Jordan elimination: forward
// elimination below the diagonal, back elimination above it, then scaling
// every row by its pivot.
func Inverse(m Matrix) (Matrix, error) {
	work, inv, err := UpperTriangularize(m)
	if err != nil {
		return nil, err
	}
	size := len(work)

	// Empty the top-right triangle, last column first.
	for k := size - 1; k >= 0; k-- {
		if work[k][k] == 0 {
			return nil, &SingularError{Pivot: k}
		}
		for p := k - 1; p >= 0; p-- {
			fact := work[p][k] / work[k][k]
			for j := 0; j < size; j++ {
				work[p][j] = Snap(work[p][j] - fact*work[k][j])
				inv[p][j] -= fact * inv[k][j]
			}
		}
	}

	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			inv[r][c] /= work[r][r]
		}
	}
	return inv, nil
}

// DeleteRowColumn returns a copy of m without row r and column k.
func DeleteRowColumn(m Matrix, r, k int) (Matrix, error) {
	size, err := SquareSize(m)
	if err != nil {
		return nil, err
	}
	if r < 0 || r >= size {
		return nil, &RangeError{Axis: "row", Index: r, Size: size}
	}
	if k < 0 || k >= size {
		return nil, &RangeError{Axis: "column", Index: k, Size: size}
	}
	minor := make(Matrix, 0, size-1)
	for i, row := range m {
		if i == r {
			continue
		}
		out := make([]float64, 0, size-1)
		out = append(out, row[:k]...)
		out = append(out, row[k+1:]...)
		minor = append(minor, out)
	}
	return minor, nil
}

// Multiply returns the product a·b of two square matrices of equal size.
// Operands of different sizes give a *SizeError.
func Multiply(a, b Matrix) (Matrix, error) {
	size, err := SquareSize(a)
	if err != nil {
		return nil, err
	}
	bs, err := SquareSize(b)
	if err != nil {
		return nil, err
	}
	if bs != size {
		return nil, &SizeError{Left: size, Right: bs}
	}
	out := Zero(size)
	for i := 0; i < size; i++ {
		for k := 0; k < size; k++ {
			if a[i][k] == 0 {
				continue
			}
			for j := 0; j < size; j++ {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return out, nil
}

// SPDX-License-Identifier: MIT

// Package matrix - BoolDense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep iteration deterministic (fixed i→j loop order everywhere).
//   - Rebuild into a new shape (Resized, Without) without mutating the source.

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxResized = "Resized"
	ctxWithout = "Without"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtTrue     = "1"
	_fmtFalse    = "0"
)

// boolErrorf wraps an error with a uniform BoolDense context and callsite indices.
func boolErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("BoolDense.%s(%d,%d): %w", method, row, col, err)
}

// BoolDense is a concrete row-major boolean matrix.
//   - r,c hold dimensions (rows, cols); zero is legal.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type BoolDense struct {
	r, c int    // row and column counts (>= 0)
	data []bool // contiguous row-major storage (len == r*c)
}

var _ fmt.Stringer = (*BoolDense)(nil)

// NewBoolDense creates an r×c all-false matrix.
// Zero-sized shapes are legal; negative dimensions return ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewBoolDense(rows, cols int) (*BoolDense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &BoolDense{r: rows, c: cols, data: make([]bool, rows*cols)}, nil
}

// NewBoolDenseFromRows copies a row literal into a new BoolDense.
//
// Implementation:
//   - Stage 1: take the column count from the first row.
//   - Stage 2: reject ragged rows with ErrDimensionMismatch.
//   - Stage 3: copy rows into the flat buffer.
//
// A nil or empty literal yields a 0×0 matrix. The input is never aliased.
// Complexity: O(r*c).
func NewBoolDenseFromRows(rows [][]bool) (*BoolDense, error) {
	r := len(rows)
	if r == 0 {
		return &BoolDense{}, nil
	}
	c := len(rows[0])
	m := &BoolDense{r: r, c: c, data: make([]bool, r*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewBoolDenseFromRows: row %d has %d cols, want %d: %w",
				i, len(row), c, ErrDimensionMismatch)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Rows returns the number of rows (0 for a nil matrix).
func (m *BoolDense) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the number of columns (0 for a nil matrix).
func (m *BoolDense) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Shape returns (rows, cols).
func (m *BoolDense) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// IsSquare reports whether Rows() == Cols().
func (m *BoolDense) IsSquare() bool { return m.Rows() == m.Cols() }

// indexOf computes the flat offset for (row, col) or returns a wrapped error.
// Complexity: O(1).
func (m *BoolDense) indexOf(method string, row, col int) (int, error) {
	if m == nil {
		return 0, boolErrorf(method, row, col, ErrNilMatrix)
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, boolErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange, ErrNilMatrix (both wrapped with coordinates).
// Complexity: O(1).
func (m *BoolDense) At(row, col int) (bool, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return false, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Errors: ErrOutOfRange, ErrNilMatrix (both wrapped with coordinates).
// Complexity: O(1).
func (m *BoolDense) Set(row, col int, v bool) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy; a nil matrix clones to nil.
// Complexity: O(r*c).
func (m *BoolDense) Clone() *BoolDense {
	if m == nil {
		return nil
	}
	cp := make([]bool, len(m.data))
	copy(cp, m.data)

	return &BoolDense{r: m.r, c: m.c, data: cp}
}

// Equal reports cell-wise equality: same shape and same content.
// Two nil matrices are equal; nil never equals a non-nil matrix,
// including a non-nil 0×0 one.
// Complexity: O(r*c).
func (m *BoolDense) Equal(other *BoolDense) bool {
	if m == nil || other == nil {
		return m == nil && other == nil
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for k := range m.data {
		if m.data[k] != other.data[k] {
			return false
		}
	}

	return true
}

// Resized returns a new rows×cols matrix holding the overlapping top-left
// block of m; cells outside the old shape are false. m is not modified and
// may be nil (treated as 0×0).
//
// Implementation:
//   - Stage 1: validate the target shape.
//   - Stage 2: allocate the result.
//   - Stage 3: copy min(r,rows) rows of min(c,cols) cells each.
//
// Complexity: O(rows*cols).
func (m *BoolDense) Resized(rows, cols int) (*BoolDense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("BoolDense.%s(%d,%d): %w", ctxResized, rows, cols, ErrInvalidDimensions)
	}
	res := &BoolDense{r: rows, c: cols, data: make([]bool, rows*cols)}
	if m == nil {
		return res, nil
	}
	keepR, keepC := min(m.r, rows), min(m.c, cols)
	var i int
	for i = 0; i < keepR; i++ {
		copy(res.data[i*cols:i*cols+keepC], m.data[i*m.c:i*m.c+keepC])
	}

	return res, nil
}

// Without returns a new (r-1)×(c-1) matrix with row k and column k removed.
// Every cell (i,j) with i != k and j != k is kept; indices above k shift
// down by one. m is not modified.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - ErrNonSquare when m is not square.
//   - ErrOutOfRange when k is outside [0, r).
//
// Complexity: O(r*c).
func (m *BoolDense) Without(k int) (*BoolDense, error) {
	if m == nil {
		return nil, boolErrorf(ctxWithout, k, k, ErrNilMatrix)
	}
	if m.r != m.c {
		return nil, boolErrorf(ctxWithout, k, k, ErrNonSquare)
	}
	if k < 0 || k >= m.r {
		return nil, boolErrorf(ctxWithout, k, k, ErrOutOfRange)
	}
	n := m.r - 1
	res := &BoolDense{r: n, c: n, data: make([]bool, n*n)}
	var i, j, di, dj int
	for i = 0; i < m.r; i++ {
		if i == k {
			continue
		}
		di = i
		if i > k {
			di--
		}
		for j = 0; j < m.c; j++ {
			if j == k {
				continue
			}
			dj = j
			if j > k {
				dj--
			}
			res.data[di*n+dj] = m.data[i*m.c+j]
		}
	}

	return res, nil
}

// Do calls f for every cell in row-major order until f returns false.
// A nil matrix visits nothing.
// Complexity: O(r*c).
func (m *BoolDense) Do(f func(i, j int, v bool) bool) {
	if m == nil {
		return
	}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// String renders one bracketed row per line with 0/1 cells, for diagnostics.
func (m *BoolDense) String() string {
	if m == nil {
		return ""
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if m.data[base+j] {
				b.WriteString(_fmtTrue)
			} else {
				b.WriteString(_fmtFalse)
			}
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (layout-oblivious) & safe accessors.
//
// Purpose:
//   - Own a contiguous flat buffer of rows*cols float64 values together with
//     the Layout strategy that maps (i, j) to a buffer offset.
//   - Guarantee safety at the public surface: At/Set/Row/Col return errors
//     instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) on ingestion.
//
// Complexity quicksheet:
//   - New: O(r*c) copy; At/Set: O(1); Row/Col: O(c)/O(r); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"   // method tag used in error wrappers
	ctxSet  = "Set"  // method tag used in error wrappers
	ctxRow  = "Row"  // method tag used in error wrappers
	ctxCol  = "Col"  // method tag used in error wrappers
	ctxDiag = "Diag" // method tag used in error wrappers
	ctxNew  = "New"  // ctor tag for New/NewFrom
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps a stable "Dense.<method>(row,col): <sentinel>" shape; the sentinel
// stays reachable through errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a rows×cols matrix of float64 values.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer with len(data) == r*c at all times.
//   - layout decides the physical order (RowMajor or ColMajor).
//   - validateNaNInf enables optional NaN/Inf rejection in Set.
//
// Every operator returns a freshly allocated Dense; inputs are read-only.
type Dense struct {
	r, c           int       // row and column counts
	data           []float64 // contiguous storage (len == r*c)
	layout         Layout    // index → offset strategy
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// New builds a rows×cols matrix over a copy of data, read in the given layout.
// MAIN DESCRIPTION:
//   - The public constructor: flat buffer + dimensions + layout tag.
//
// Implementation:
//   - Stage 1: resolve options; validate dims, layout and len(data) == rows*cols.
//   - Stage 2: optionally reject NaN/±Inf (DefaultValidateNaNInf).
//   - Stage 3: copy the buffer so the caller keeps ownership of data.
//
// Errors:
//   - ErrInvalidDimensions, ErrNilLayout, ErrBadShape, ErrNaNInf.
//
// Example:
//
//	a, _ := New([]float64{1, 2, 3, 4}, 2, 2, RowMajor) // [[1,2],[3,4]]
//	b, _ := New([]float64{1, 2, 3, 4}, 2, 2, ColMajor) // [[1,3],[2,4]]
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(data []float64, rows, cols int, layout Layout, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if err := ValidateBuffer(len(data), rows, cols, layout); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}
	if o.validateNaNInf {
		if err := ValidateFinite(data); err != nil {
			return nil, matrixErrorf(ctxNew, err)
		}
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Dense{r: rows, c: cols, data: buf, layout: layout, validateNaNInf: o.validateNaNInf}, nil
}

// NewFrom is New for any integer or floating-point element type. Every
// value is converted to float64.
func NewFrom[T Number](data []T, rows, cols int, layout Layout, opts ...Option) (*Dense, error) {
	buf := make([]float64, len(data))
	for k, v := range data {
		buf[k] = float64(v)
	}

	return New(buf, rows, cols, layout, opts...)
}

// newDense wraps an already-owned buffer without copying or validation.
// Internal kernels use it for results; callers guarantee len(buf) == r*c.
func newDense(buf []float64, rows, cols int, layout Layout) *Dense {
	return &Dense{r: rows, c: cols, data: buf, layout: layout, validateNaNInf: DefaultValidateNaNInf}
}

// zeros allocates an internal rows×cols zero matrix.
func zeros(rows, cols int, layout Layout) *Dense {
	return newDense(make([]float64, rows*cols), rows, cols, layout)
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Layout returns the storage strategy of m.
func (m *Dense) Layout() Layout { return m.layout }

// Data returns a copy of the flat buffer in storage order.
func (m *Dense) Data() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// Len returns rows*cols.
func (m *Dense) Len() int { return len(m.data) }

// at is the unchecked element read used by kernels after validation.
func (m *Dense) at(i, j int) float64 {
	return m.data[m.layout.Offset(i, j, m.r, m.c)]
}

// indexOf bounds-checks (row, col) and returns the layout offset.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return m.layout.Offset(row, col, m.r, m.c), nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; the result does not depend on the layout.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// Set is the only in-place mutator; it exists for building matrices
// cell by cell before handing them to the kernels.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers when the policy is on.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
// RowMajor reads one contiguous run; ColMajor strides by rows.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	if m.layout == RowMajor {
		copy(out, m.data[i*m.c:(i+1)*m.c])
		return out, nil
	}
	for j := 0; j < m.c; j++ {
		out[j] = m.data[i+j*m.r]
	}

	return out, nil
}

// Col returns a copy of column j.
// ColMajor reads one contiguous run; RowMajor strides by cols.
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	if m.layout == ColMajor {
		copy(out, m.data[j*m.r:(j+1)*m.r])
		return out, nil
	}
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Diag returns the main diagonal of a square matrix.
// The diagonal offset i*(n+1) is the same in both layouts.
//
// Errors:
//   - ErrNonSquare when rows != cols.
func (m *Dense) Diag() ([]float64, error) {
	if m.r != m.c {
		return nil, denseErrorf(ctxDiag, m.r, m.c, ErrNonSquare)
	}
	out := make([]float64, m.r)
	for i := range out {
		out[i] = m.data[i*(m.c+1)]
	}

	return out, nil
}

// Clone returns a deep copy (new buffer, same layout and numeric policy).
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, layout: m.layout, validateNaNInf: m.validateNaNInf}
}

// Equal reports whether m and other hold the same logical matrix:
// equal dimensions and element-wise NearlyEqual. Layouts may differ; the
// other operand is converted to m's layout first.
func (m *Dense) Equal(other *Dense) bool {
	return m.EqualTol(other, DefaultEpsilon)
}

// EqualTol is Equal with an explicit tolerance.
func (m *Dense) EqualTol(other *Dense, eps float64) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	o := other.ToLayout(m.layout)
	for k, v := range m.data {
		if !NearlyEqualTol(v, o.data[k], eps) {
			return false
		}
	}

	return true
}

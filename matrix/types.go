// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense container and the
// linear-algebra kernels. This file intentionally contains ONLY types
// (layout strategies, permutation log, factorization result, numeric
// constraint). Errors and options live in dedicated files (errors.go,
// options.go) per the package conventions.

package matrix

// Layout is the strategy mapping a logical (i, j) index to a position in
// a flat buffer of rows*cols elements. Two layouts exist: RowMajor and
// ColMajor. Both describe the identical mathematical matrix; kernels go
// through the strategy instead of branching on a tag.
//
// Complexity: every method is O(1).
type Layout interface {
	// Offset returns the flat position of (i, j) for a rows×cols matrix.
	Offset(i, j, rows, cols int) int

	// Coords is the inverse of Offset: it maps the flat position k back
	// to its logical (i, j).
	Coords(k, rows, cols int) (i, j int)

	// Stride is the leading dimension: cols for RowMajor, rows for ColMajor.
	Stride(rows, cols int) int

	// Opposite returns the other layout.
	Opposite() Layout

	// String returns "Row" or "Col".
	String() string
}

// rowMajor stores rows contiguously: offset(i,j) = i*cols + j.
type rowMajor struct{}

// colMajor stores columns contiguously: offset(i,j) = i + j*rows.
type colMajor struct{}

// Layout values. They are comparable with == (empty struct values).
var (
	RowMajor Layout = rowMajor{} // row binding
	ColMajor Layout = colMajor{} // column binding
)

// Layout names used by String and error messages.
const (
	layoutRowName = "Row"
	layoutColName = "Col"
)

func (rowMajor) Offset(i, j, _, cols int) int { return i*cols + j }

func (rowMajor) Coords(k, _, cols int) (int, int) { return k / cols, k % cols }

func (rowMajor) Stride(_, cols int) int { return cols }

func (rowMajor) Opposite() Layout { return ColMajor }

func (rowMajor) String() string { return layoutRowName }

func (colMajor) Offset(i, j, rows, _ int) int { return i + j*rows }

func (colMajor) Coords(k, rows, _ int) (int, int) { return k % rows, k / rows }

func (colMajor) Stride(rows, _ int) int { return rows }

func (colMajor) Opposite() Layout { return RowMajor }

func (colMajor) String() string { return layoutColName }

// Swap records one transposition of two indices (rows or columns).
type Swap struct {
	A int // index moved into position B
	B int // index moved into position A
}

// Perms is an ordered log of swaps in application order.
// Replaying a log backwards undoes it.
type Perms []Swap

// Parity returns +1 for an even number of swaps and -1 for an odd one.
// Each recorded swap is a single transposition, so the count parity is
// the permutation parity.
func (p Perms) Parity() float64 {
	if len(p)%2 == 0 {
		return 1
	}

	return -1
}

// PQLU is the result of a complete-pivoting LU factorization:
// P·A·Q = L·U, where P replays the row swaps in p and Q replays the
// column swaps in q.
//   - L is unit lower triangular (RowMajor).
//   - U is upper triangular (RowMajor).
//
// A PQLU is produced once by LU and never mutated afterwards; its
// accessors return copies.
type PQLU struct {
	p, q Perms
	l, u *Dense
}

// Number is the set of element types accepted by NewFrom. Every value is
// converted to float64 on ingestion.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

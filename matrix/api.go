// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented constructors and reductions built on the
//     canonical kernels.
//   - Avoid any logic duplication: each facade delegates to New, Map,
//     Reduce, MulVec or the arithmetic kernels.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Generated matrices (Zeros, Identity) are RowMajor unless stated otherwise.

package matrix

import "fmt"

const (
	opZeros     = "Zeros"
	opIdentity  = "Identity"
	opFromRows  = "FromRows"
	opTrace     = "Trace"
	opSymmetric = "Symmetrize"
)

// Zeros returns a rows×cols zero matrix in the given layout.
// Errors: ErrInvalidDimensions, ErrNilLayout.
func Zeros(rows, cols int, layout Layout) (*Dense, error) {
	if err := ValidateBuffer(rows*cols, rows, cols, layout); err != nil {
		return nil, matrixErrorf(opZeros, err)
	}

	return zeros(rows, cols, layout), nil
}

// Identity returns I_n (RowMajor).
// Complexity: O(n²) zeroing + O(n) diagonal writes.
//
// AI-Hints: Use as the reference for M·M⁻¹ checks.
func Identity(n int) (*Dense, error) {
	if n <= 0 {
		return nil, matrixErrorf(opIdentity, ErrInvalidDimensions)
	}
	id := zeros(n, n, RowMajor)
	for i := 0; i < n; i++ {
		id.data[i*(n+1)] = 1
	}

	return id, nil
}

// ZerosLike returns a zero matrix with m's shape and layout.
func ZerosLike(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opZeros, err)
	}

	return zeros(m.r, m.c, m.layout), nil
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return Identity(m.r)
}

// FromRows builds a RowMajor matrix from a rectangular slice of rows.
// Errors: ErrInvalidDimensions (no rows or empty first row), ErrBadShape
// (ragged rows), plus New's numeric policy.
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	cols := len(rows[0])
	buf := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), cols, ErrBadShape))
		}
		buf = append(buf, row...)
	}

	return New(buf, len(rows), cols, RowMajor, opts...)
}

// Trace returns the sum of the main diagonal.
// Errors: ErrNilMatrix, ErrNonSquare.
func Trace(m *Dense) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var s float64
	for i := 0; i < m.r; i++ {
		s += m.data[i*(m.c+1)]
	}

	return s, nil
}

// Sum returns the sum of all elements.
func (m *Dense) Sum() float64 {
	return m.Reduce(ZeroSum, func(acc, v float64) float64 { return acc + v })
}

// Symmetrize returns (m + mᵀ)/2 in m's layout.
// Errors: ErrNilMatrix, ErrNonSquare.
func Symmetrize(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opSymmetric, err)
	}

	return zipWith(m, m.Transpose(), func(x, y float64) float64 { return (x + y) / 2 }), nil
}

// RowSums returns the sum of every row, computed as m·1.
func RowSums(m *Dense) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("RowSums", err)
	}

	return m.MulVec(ones(m.c))
}

// ColSums returns the sum of every column, computed as mᵀ·1.
func ColSums(m *Dense) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ColSums", err)
	}

	return m.Transpose().MulVec(ones(m.r))
}

func ones(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}

	return v
}

// SPDX-License-Identifier: MIT

// Package matrix: element-wise and functional kernels.
//
// Purpose:
//   - Map / ZipWith / Reduce as the functional base; every arithmetic
//     operator below is expressed through them.
//   - Results keep the layout of the left operand; a right operand in the
//     other layout is converted once before combining.
//   - Inputs are never mutated; each call allocates exactly one result.

package matrix

import (
	"fmt"
	"math"
)

const (
	opZipWith  = "ZipWith"
	opAllClose = "AllClose"
)

// Map applies f to every element and returns a new matrix with the same
// shape and layout.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Map(f func(float64) float64) *Dense {
	buf := make([]float64, len(m.data))
	for k, v := range m.data {
		buf[k] = f(v)
	}

	return newDense(buf, m.r, m.c, m.layout)
}

// ZipWith combines a and b element by element with f. The result has a's
// layout; b is converted first when its layout differs.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (rows or cols differ).
//
// Complexity:
//   - Time O(r*c), plus one O(r*c) conversion for mixed layouts.
func ZipWith(a, b *Dense, f func(x, y float64) float64) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opZipWith, err)
	}

	return zipWith(a, b, f), nil
}

// zipWith is ZipWith after validation.
func zipWith(a, b *Dense, f func(x, y float64) float64) *Dense {
	bb := b.asLayout(a.layout)
	buf := make([]float64, len(a.data))
	for k, v := range a.data {
		buf[k] = f(v, bb.data[k])
	}

	return newDense(buf, a.r, a.c, a.layout)
}

// Reduce left-folds f over all elements in storage order, starting at init.
// Storage order only matters for non-associative f.
func (m *Dense) Reduce(init float64, f func(acc, v float64) float64) float64 {
	acc := init
	for _, v := range m.data {
		acc = f(acc, v)
	}

	return acc
}

// Add computes the element-wise sum C = A + B (layout of A).
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
func Add(a, b *Dense) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return zipWith(a, b, func(x, y float64) float64 { return x + y }), nil
}

// Sub computes the element-wise difference C = A - B (layout of A).
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
func Sub(a, b *Dense) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return zipWith(a, b, func(x, y float64) float64 { return x - y }), nil
}

// Hadamard computes the element-wise product (a ⊙ b). Not to be confused
// with Mul, the matrix product.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
func Hadamard(a, b *Dense) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	return zipWith(a, b, func(x, y float64) float64 { return x * y }), nil
}

// Neg returns -m.
func (m *Dense) Neg() *Dense {
	return m.Map(func(x float64) float64 { return -x })
}

// AddScalar returns m + s element-wise.
func (m *Dense) AddScalar(s float64) *Dense {
	return m.Map(func(x float64) float64 { return x + s })
}

// SubScalar returns m - s element-wise.
func (m *Dense) SubScalar(s float64) *Dense {
	return m.Map(func(x float64) float64 { return x - s })
}

// Scale returns alpha * m element-wise. alpha = 0 yields an explicit zero
// matrix with the same shape; NaN/Inf propagate.
func (m *Dense) Scale(alpha float64) *Dense {
	return m.Map(func(x float64) float64 { return x * alpha })
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes; layouts may differ.
//   - rtol, atol are treated as |rtol|, |atol|; non-finite tolerances are rejected.
//
// Complexity: Time O(r*c). Deterministic.
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, fmt.Errorf("tolerance: %w", ErrNaNInf))
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	bb := b.asLayout(a.layout)
	for k, av := range a.data {
		bv := bb.data[k]
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}

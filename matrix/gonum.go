// SPDX-License-Identifier: MIT

// Package matrix: interop with gonum.org/v1/gonum/mat.
//
// gonum stores *mat.Dense row-major, so ToGonum converts ColMajor inputs
// once and hands the converted buffer over without a second copy.
// FromGonum accepts any mat.Matrix (views, transposes, triangular types)
// and reads it element by element.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum returns a *mat.Dense holding the same logical values as m.
// The result never aliases m.
// Errors: ErrNilMatrix.
func ToGonum(m *Dense) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}

	return mat.NewDense(m.r, m.c, m.ToLayout(RowMajor).data), nil
}

// FromGonum copies any gonum matrix into a new Dense in the requested
// layout. Options apply as in New (e.g. NaN/Inf policy).
//
// Errors:
//   - ErrNilMatrix for a nil a; the errors of New otherwise.
func FromGonum(a mat.Matrix, layout Layout, opts ...Option) (*Dense, error) {
	if a == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	if layout == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilLayout)
	}
	rows, cols := a.Dims()
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opFromGonum, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions))
	}

	buf := make([]float64, rows*cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			buf[layout.Offset(i, j, rows, cols)] = a.At(i, j)
		}
	}
	out, err := New(buf, rows, cols, layout, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}

	return out, nil
}

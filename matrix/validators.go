// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/structure checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with matrixErrorf.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Triangularity checks run O(n²) over the strict half only.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
func ValidateSameShape(a, b *Dense) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquare – Composite: NotNil → Rows == Cols.
// Errors: ErrNilMatrix, ErrNonSquare.
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBuffer checks a constructor request: positive dimensions,
// a non-nil layout and exactly rows*cols values.
func ValidateBuffer(n, rows, cols int, layout Layout) error {
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("ValidateBuffer", ErrInvalidDimensions)
	}
	if layout == nil {
		return validatorErrorf("ValidateBuffer", ErrNilLayout)
	}
	if n != rows*cols {
		return validatorErrorf("ValidateBuffer", ErrBadShape)
	}

	return nil
}

// ValidateFinite rejects the first NaN or ±Inf in data.
// Complexity: O(n).
func ValidateFinite(data []float64) error {
	for k, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(fmt.Sprintf("ValidateFinite[%d]", k), ErrNaNInf)
		}
	}

	return nil
}

// ValidateLowerTriangular – Composite: Square → every entry above the
// diagonal is zero within eps.
func ValidateLowerTriangular(m *Dense, eps float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateLowerTriangular", err)
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = i + 1; j < m.c; j++ {
			if !NearlyEqualTol(m.at(i, j), 0, eps) {
				return validatorErrorf(fmt.Sprintf("ValidateLowerTriangular(%d,%d)", i, j), ErrNotTriangular)
			}
		}
	}

	return nil
}

// ValidateUpperTriangular – Composite: Square → every entry below the
// diagonal is zero within eps.
func ValidateUpperTriangular(m *Dense, eps float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateUpperTriangular", err)
	}
	var i, j int
	for i = 1; i < m.r; i++ {
		for j = 0; j < i; j++ {
			if !NearlyEqualTol(m.at(i, j), 0, eps) {
				return validatorErrorf(fmt.Sprintf("ValidateUpperTriangular(%d,%d)", i, j), ErrNotTriangular)
			}
		}
	}

	return nil
}

// ValidateNonZeroDiagonal rejects a square matrix with a diagonal entry
// that is zero within eps (ErrSingular).
func ValidateNonZeroDiagonal(m *Dense, eps float64) error {
	for i := 0; i < m.r; i++ {
		if NearlyEqualTol(m.at(i, i), 0, eps) {
			return validatorErrorf(fmt.Sprintf("ValidateNonZeroDiagonal(%d)", i), ErrSingular)
		}
	}

	return nil
}

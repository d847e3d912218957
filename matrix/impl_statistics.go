// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column-wise descriptive statistics on observation matrices
//     (rows = observations, columns = features).
//   - Compose the canonical kernels (ColSums, Transpose, Mul, Scale)
//     instead of re-implementing loops.
//
// Exposed API:
//   - ColMeans(X)      → per-column arithmetic means.
//   - CenterColumns(X) → X with every column mean subtracted, plus the means.
//   - Covariance(X)    → sample covariance (unbiased, n-1) and the means.
//
// Determinism & Performance:
//   - Fixed loop orders; no map iteration.
//   - Covariance costs one O(r*c) centering pass plus one O(r*c²) product.

package matrix

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opColMeans      = "ColMeans"
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
)

// ColMeans returns the arithmetic mean of each column.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func ColMeans(X *Dense) ([]float64, error) {
	sums, err := ColSums(X)
	if err != nil {
		return nil, matrixErrorf(opColMeans, err)
	}
	inv := 1 / float64(X.r)
	for j := range sums {
		sums[j] *= inv
	}

	return sums, nil
}

// CenterColumns returns X - 1·meansᵀ (layout of X) and the column means.
//
// Implementation:
//   - Stage 1: means via ColMeans.
//   - Stage 2: one pass in storage order; Coords yields the column of each slot.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c + c).
func CenterColumns(X *Dense) (*Dense, []float64, error) {
	means, err := ColMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	out := X.Clone()
	var j int
	for k := range out.data {
		_, j = out.layout.Coords(k, out.r, out.c)
		out.data[k] -= means[j]
	}

	return out, means, nil
}

// Covariance returns the c×c sample covariance Cov = XcᵀXc/(r-1) of the
// columns of X, where Xc is the column-centered X, plus the column means.
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when X has fewer than two rows.
//
// Complexity:
//   - Time O(r*c²), Space O(r*c + c²).
func Covariance(X *Dense) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	if X.r < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}

	Xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	// Xcᵀ is a relabelled buffer; Mul picks the layouts it needs.
	G, err := Mul(Xc.Transpose(), Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return G.Scale(1 / float64(X.r-1)), means, nil
}

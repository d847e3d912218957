// SPDX-License-Identifier: MIT

// Package matrix: recursive block inversion of triangular matrices.
//
// Both inverters split the input into quadrants (Block), invert the two
// diagonal quadrants recursively and rebuild the off-diagonal quadrant
// from them:
//
//	lower [[A1, 0], [A3, A4]]⁻¹ = [[A1⁻¹, 0], [-A4⁻¹·A3·A1⁻¹, A4⁻¹]]
//	upper [[A1, A2], [0, A4]]⁻¹ = [[A1⁻¹, -A1⁻¹·A2·A4⁻¹], [0, A4⁻¹]]
//
// The diagonal quadrants are disjoint fresh copies, so the two recursive
// calls may run concurrently (WithParallelThreshold).

package matrix

import "golang.org/x/sync/errgroup"

const (
	opInvertLower = "InvertLower"
	opInvertUpper = "InvertUpper"
)

// InvertLower returns the inverse of a non-singular lower triangular matrix.
// The result keeps m's layout and is lower triangular.
//
// Implementation:
//   - Stage 1: fail fast on a non-square or non-lower-triangular input
//     (entries above the diagonal must be zero within eps).
//   - Stage 2: reject a near-zero diagonal entry (ErrSingular).
//   - Stage 3: recurse: sizes 1 and 2 use closed forms, larger inputs
//     go through Block / Combine.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNotTriangular, ErrSingular.
//
// Complexity:
//   - Time O(n³) (dominated by the off-diagonal products), Space O(n²) per level.
func InvertLower(m *Dense, opts ...Option) (*Dense, error) {
	out, err := invertLower(m, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opInvertLower, err)
	}

	return out, nil
}

// InvertUpper returns the inverse of a non-singular upper triangular matrix.
// Mirror image of InvertLower; same errors and complexity.
func InvertUpper(m *Dense, opts ...Option) (*Dense, error) {
	out, err := invertUpper(m, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opInvertUpper, err)
	}

	return out, nil
}

func invertLower(m *Dense, o Options) (*Dense, error) {
	if err := ValidateLowerTriangular(m, o.eps); err != nil {
		return nil, err
	}
	if err := ValidateNonZeroDiagonal(m, o.eps); err != nil {
		return nil, err
	}

	return lowerRec(m, o)
}

func invertUpper(m *Dense, o Options) (*Dense, error) {
	if err := ValidateUpperTriangular(m, o.eps); err != nil {
		return nil, err
	}
	if err := ValidateNonZeroDiagonal(m, o.eps); err != nil {
		return nil, err
	}

	return upperRec(m, o)
}

// lowerRec assumes a validated lower triangular input.
func lowerRec(m *Dense, o Options) (*Dense, error) {
	switch m.r {
	case 1:
		return newDense([]float64{1 / m.data[0]}, 1, 1, m.layout), nil
	case 2:
		a, c, d := m.at(0, 0), m.at(1, 0), m.at(1, 1)
		return from2x2(1/a, 0, -c/(a*d), 1/d, m.layout), nil
	}

	a1, _, a3, a4, err := m.Block()
	if err != nil {
		return nil, err
	}
	var i1, i4 *Dense
	err = both(o, m.r,
		func() (err error) { i1, err = lowerRec(a1, o); return },
		func() (err error) { i4, err = lowerRec(a4, o); return },
	)
	if err != nil {
		return nil, err
	}

	bl := mul(mul(i4, a3), i1).Neg()

	return Combine(i1, zeros(i1.r, i4.c, m.layout), bl, i4)
}

// upperRec assumes a validated upper triangular input.
func upperRec(m *Dense, o Options) (*Dense, error) {
	switch m.r {
	case 1:
		return newDense([]float64{1 / m.data[0]}, 1, 1, m.layout), nil
	case 2:
		a, b, d := m.at(0, 0), m.at(0, 1), m.at(1, 1)
		return from2x2(1/a, -b/(a*d), 0, 1/d, m.layout), nil
	}

	a1, a2, _, a4, err := m.Block()
	if err != nil {
		return nil, err
	}
	var i1, i4 *Dense
	err = both(o, m.r,
		func() (err error) { i1, err = upperRec(a1, o); return },
		func() (err error) { i4, err = upperRec(a4, o); return },
	)
	if err != nil {
		return nil, err
	}

	tr := mul(mul(i1, a2), i4).Neg()

	return Combine(i1, tr, zeros(i4.r, i1.c, m.layout), i4)
}

// from2x2 builds [[a, b], [c, d]] in the given layout.
func from2x2(a, b, c, d float64, layout Layout) *Dense {
	out := zeros(2, 2, layout)
	out.data[layout.Offset(0, 0, 2, 2)] = a
	out.data[layout.Offset(0, 1, 2, 2)] = b
	out.data[layout.Offset(1, 0, 2, 2)] = c
	out.data[layout.Offset(1, 1, 2, 2)] = d

	return out
}

// both runs f1 and f2, concurrently when the block size n reaches the
// configured threshold, and returns the first error.
func both(o Options, n int, f1, f2 func() error) error {
	if o.parallelThreshold > 0 && n >= o.parallelThreshold {
		var g errgroup.Group
		g.Go(f1)
		g.Go(f2)

		return g.Wait()
	}
	if err := f1(); err != nil {
		return err
	}

	return f2()
}

// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels on *Dense: matrix
// multiplication, row/column swaps, complete-pivoting LU factorization,
// determinant, general inverse and LU-based linear solves. All functions
// perform strict fail-fast validation and return clear errors on
// dimension mismatches.
//
// Purpose:
//   - Declare canonical kernels and shared operation tags for uniform error reporting.
//   - Keep numeric decisions (near-zero pivots) behind the Options tolerance.
//
// Notes:
//   - Triangular inversion lives in impl_triangular.go; it is reused here.
//   - All kernels return plain sentinels wrapped via matrixErrorf at the facade.

package matrix

import (
	"errors"
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for dot products and substitutions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opMul      = "Mul"
	opHadamard = "Hadamard"
	opSwapRows = "SwapRows"
	opSwapCols = "SwapCols"
	opLU       = "LU"
	opDet      = "Det"
	opInverse  = "Inverse"
	opSolve    = "Solve"
	opMulVec   = "MulVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Normalize A to RowMajor and B to ColMajor (converting only
//     the operands that are not already there).
//   - Stage 3: one dot product of two contiguous runs per output cell.
//
// Returns:
//   - *Dense: new RowMajor matrix with shape (A.Rows × B.Cols).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c) plus at most two O(size) conversions.
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return mul(a, b), nil
}

// mul is Mul after validation.
func mul(a, b *Dense) *Dense {
	ar := a.asLayout(RowMajor)
	bc := b.asLayout(ColMajor)
	rows, inner, cols := a.r, a.c, b.c
	out := make([]float64, rows*cols)

	var (
		i, j, k    int
		rowA, colB []float64
		s          float64
	)
	for i = 0; i < rows; i++ {
		rowA = ar.data[i*inner : (i+1)*inner]
		for j = 0; j < cols; j++ {
			colB = bc.data[j*inner : (j+1)*inner]
			s = ZeroSum
			for k = 0; k < inner; k++ {
				s += rowA[k] * colB[k]
			}
			out[i*cols+j] = s
		}
	}

	return newDense(out, rows, cols, RowMajor)
}

// MulVec computes y = m·x for a column vector x.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != m.Cols()).
// Complexity: Time O(r*c), Space O(r) for y.
func (m *Dense) MulVec(x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if len(x) != m.c {
		return nil, matrixErrorf(opMulVec, ErrDimensionMismatch)
	}
	y := make([]float64, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			y[i] += m.at(i, j) * x[j]
		}
	}

	return y, nil
}

// SwapRows returns a copy of m with rows i and j exchanged (same layout).
// Errors: ErrOutOfRange.
func (m *Dense) SwapRows(i, j int) (*Dense, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		return nil, matrixErrorf(opSwapRows, fmt.Errorf("(%d,%d): %w", i, j, ErrOutOfRange))
	}
	out := m.Clone()
	out.swapRows(i, j)

	return out, nil
}

// SwapCols returns a copy of m with columns i and j exchanged (same layout).
// Errors: ErrOutOfRange.
func (m *Dense) SwapCols(i, j int) (*Dense, error) {
	if i < 0 || i >= m.c || j < 0 || j >= m.c {
		return nil, matrixErrorf(opSwapCols, fmt.Errorf("(%d,%d): %w", i, j, ErrOutOfRange))
	}
	out := m.Clone()
	out.swapCols(i, j)

	return out, nil
}

// swapRows exchanges rows i and j in place. Kernels call it only on
// buffers they own.
func (m *Dense) swapRows(i, j int) {
	if i == j {
		return
	}
	var a, b int
	for k := 0; k < m.c; k++ {
		a = m.layout.Offset(i, k, m.r, m.c)
		b = m.layout.Offset(j, k, m.r, m.c)
		m.data[a], m.data[b] = m.data[b], m.data[a]
	}
}

// swapCols exchanges columns i and j in place (owned buffers only).
func (m *Dense) swapCols(i, j int) {
	if i == j {
		return
	}
	var a, b int
	for k := 0; k < m.r; k++ {
		a = m.layout.Offset(k, i, m.r, m.c)
		b = m.layout.Offset(k, j, m.r, m.c)
		m.data[a], m.data[b] = m.data[b], m.data[a]
	}
}

// LU factors a square matrix with complete pivoting: P·A·Q = L·U.
// MAIN DESCRIPTION:
//   - L is unit lower triangular, U is upper triangular, both RowMajor.
//   - p logs row swaps, q logs column swaps, in the order they happened.
//
// Implementation:
//   - Stage 1: copy A into a RowMajor working buffer.
//   - Stage 2: for each step k, pick the largest |entry| of the active
//     sub-matrix (rows, cols ≥ k; first hit in row-major scan wins ties),
//     swap it onto (k, k) and log (k, row) in p / (k, col) in q when the
//     index moved.
//   - Stage 3: a pivot that is zero under eps means the whole active
//     block is zero: abort with ErrSingular, no partial result.
//   - Stage 4: eliminate below the pivot, storing multipliers in place.
//   - Stage 5: split the buffer into L (unit diagonal) and U.
//
// Behavior highlights:
//   - Whole-row swaps carry the stored multipliers along, so L and U equal
//     the Doolittle recurrence applied to the fully pivoted matrix:
//     U[i][k] = A'[i][k] - Σ_{j<i} L[i][j]·U[j][k],
//     L[k][i] = (A'[k][i] - Σ_{j<i} L[k][j]·U[j][i]) / U[i][i].
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n³) (the pivot search adds O(n³) in total), Space O(n²).
func LU(m *Dense, opts ...Option) (*PQLU, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)
	n := m.r
	w := m.ToLayout(RowMajor) // owned working copy

	var (
		p, q           Perms
		k, i, j        int
		pr, pc         int
		best, v, pivot float64
		f              float64
		rowK, rowI     []float64
	)
	for k = 0; k < n; k++ {
		// Stage 2: complete pivot search over the active block.
		best, pr, pc = -1, k, k
		for i = k; i < n; i++ {
			for j = k; j < n; j++ {
				if v = math.Abs(w.data[i*n+j]); v > best {
					best, pr, pc = v, i, j
				}
			}
		}
		if pr != k {
			w.swapRows(k, pr)
			p = append(p, Swap{A: k, B: pr})
		}
		if pc != k {
			w.swapCols(k, pc)
			q = append(q, Swap{A: k, B: pc})
		}

		// Stage 3: near-singularity.
		pivot = w.data[k*n+k]
		if nearZero(pivot, o.eps) {
			return nil, matrixErrorf(opLU, fmt.Errorf("pivot %d: %w", k, ErrSingular))
		}

		// Stage 4: eliminate.
		rowK = w.data[k*n : (k+1)*n]
		for i = k + 1; i < n; i++ {
			rowI = w.data[i*n : (i+1)*n]
			f = rowI[k] / pivot
			rowI[k] = f
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				rowI[j] -= f * rowK[j]
			}
		}
	}

	// Stage 5: split into L and U.
	l := zeros(n, n, RowMajor)
	u := zeros(n, n, RowMajor)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case j < i:
				l.data[i*n+j] = w.data[i*n+j]
			case j == i:
				l.data[i*n+j] = 1
				u.data[i*n+j] = w.data[i*n+j]
			default:
				u.data[i*n+j] = w.data[i*n+j]
			}
		}
	}

	return &PQLU{p: p, q: q, l: l, u: u}, nil
}

// P returns a copy of the row swap log.
func (f *PQLU) P() Perms { return append(Perms(nil), f.p...) }

// Q returns a copy of the column swap log.
func (f *PQLU) Q() Perms { return append(Perms(nil), f.q...) }

// L returns a copy of the unit lower triangular factor.
func (f *PQLU) L() *Dense { return f.l.Clone() }

// U returns a copy of the upper triangular factor.
func (f *PQLU) U() *Dense { return f.u.Clone() }

// Sign returns the combined parity of both swap logs: (-1)^(len p + len q).
func (f *PQLU) Sign() float64 { return f.p.Parity() * f.q.Parity() }

// Det returns det(A) = Π diag(U) · sign(p) · sign(q).
func (f *PQLU) Det() float64 {
	d := f.Sign()
	n := f.u.r
	for i := 0; i < n; i++ {
		d *= f.u.data[i*(n+1)]
	}

	return d
}

// Reconstruct rebuilds A = Pᵀ·(L·U)·Qᵀ. Undoing the logs means replaying
// each of them from the last recorded swap back to the first.
func (f *PQLU) Reconstruct() *Dense {
	a := mul(f.l, f.u)
	for k := len(f.p) - 1; k >= 0; k-- {
		a.swapRows(f.p[k].A, f.p[k].B)
	}
	for k := len(f.q) - 1; k >= 0; k-- {
		a.swapCols(f.q[k].A, f.q[k].B)
	}

	return a
}

// Inverse computes A⁻¹ = Q·U⁻¹·L⁻¹·P from the factors.
// Implementation:
//   - Stage 1: M = InvertUpper(U) × InvertLower(L) (recursive block inverses).
//   - Stage 2: left-multiplying by Q replays q as row swaps on M,
//     right-multiplying by P replays p as column swaps; both logs run
//     from the last recorded swap back to the first.
//
// Errors:
//   - ErrSingular if a factor has a near-zero diagonal under the options' eps.
func (f *PQLU) Inverse(opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	ui, err := invertUpper(f.u, o)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	li, err := invertLower(f.l, o)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	x := mul(ui, li)
	for k := len(f.q) - 1; k >= 0; k-- {
		x.swapRows(f.q[k].A, f.q[k].B)
	}
	for k := len(f.p) - 1; k >= 0; k-- {
		x.swapCols(f.p[k].A, f.p[k].B)
	}

	return x, nil
}

// Solve returns x with A·x = b using the factors:
// L·U·y = P·b (P replays p forward), then x = Q·y (q replayed backwards).
// Errors: ErrDimensionMismatch when len(b) != n.
// Complexity: Time O(n²).
func (f *PQLU) Solve(b []float64) ([]float64, error) {
	n := f.l.r
	if len(b) != n {
		return nil, matrixErrorf(opSolve, ErrDimensionMismatch)
	}
	y := make([]float64, n)
	copy(y, b)
	for _, s := range f.p {
		y[s.A], y[s.B] = y[s.B], y[s.A]
	}

	var (
		i, k int
		sum  float64
	)
	// Forward substitution: L has a unit diagonal.
	for i = 0; i < n; i++ {
		sum = ZeroSum
		for k = 0; k < i; k++ {
			sum += f.l.data[i*n+k] * y[k]
		}
		y[i] -= sum
	}
	// Backward substitution on U.
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		for k = i + 1; k < n; k++ {
			sum += f.u.data[i*n+k] * y[k]
		}
		y[i] = (y[i] - sum) / f.u.data[i*n+i]
	}

	for k = len(f.q) - 1; k >= 0; k-- {
		s := f.q[k]
		y[s.A], y[s.B] = y[s.B], y[s.A]
	}

	return y, nil
}

// Det returns the determinant of a square matrix. A matrix whose LU
// factorization hits a near-zero pivot has determinant 0 (nil error).
// Errors: ErrNilMatrix, ErrNonSquare.
func Det(m *Dense, opts ...Option) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	f, err := LU(m, opts...)
	if errors.Is(err, ErrSingular) {
		return 0, nil
	}
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return f.Det(), nil
}

// Inverse returns A⁻¹ for a square non-singular matrix (RowMajor result).
// Implementation:
//   - Stage 1: LU with complete pivoting.
//   - Stage 2: PQLU.Inverse (recursive triangular inverses + permutation replay).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (recoverable; no partial result).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse(m *Dense, opts ...Option) (*Dense, error) {
	f, err := LU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return f.Inverse(opts...)
}

// Solve returns x with A·x = b for a square non-singular A.
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular, ErrDimensionMismatch.
func Solve(a *Dense, b []float64, opts ...Option) ([]float64, error) {
	f, err := LU(a, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return f.Solve(b)
}

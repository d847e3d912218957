// Package matrix is a dense float64 matrix engine with two interchangeable
// storage layouts and an exact-pivoting linear-algebra core.
//
// The matrix package provides:
//
//   - Dense: a flat buffer of rows*cols values plus a Layout strategy
//     (RowMajor or ColMajor). Both layouts describe the same logical
//     matrix; ChangeLayout reorders the buffer in one modular pass and
//     Transpose is a free relabelling.
//   - Functional operators (Map, ZipWith, Reduce) and the arithmetic built
//     on them (Add, Sub, Hadamard, Neg, Scale, scalar forms), plus the
//     matrix product Mul.
//   - Block / Combine quadrant partitioning, used by the recursive
//     triangular inverters InvertLower and InvertUpper.
//   - LU with complete pivoting (P·A·Q = L·U), Det, Inverse and Solve.
//   - A table printer (String / Spread) and gonum interop (ToGonum,
//     FromGonum).
//
// Every operator returns a new matrix; inputs are never modified. Errors
// are sentinel values (ErrSingular, ErrDimensionMismatch, ...) wrapped
// with the operation name, so callers match them with errors.Is.
// Singularity is an ordinary result: LU and Inverse return ErrSingular,
// Det returns 0.
//
// Tolerances follow one rule (NearlyEqual, DefaultEpsilon = 1e-7):
// x ≈ y when |x-y| < eps or |x-y| / min(MaxFloat64, |x|+|y|) < eps.
// WithEpsilon overrides it per call.
//
// See the examples in this package and in examples/ for usage patterns.
package matrix

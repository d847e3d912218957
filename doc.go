// Package linalg is a dense numerical matrix engine for Go: one flat-buffer
// matrix type, two interchangeable memory layouts and an exact linear-algebra
// core built on complete-pivoting LU.
//
// 🚀 What is in linalg?
//
//	• Storage: row-major and column-major Dense matrices over one buffer
//	• Layout conversion in a single modular pass, free transposition
//	• Functional operators: Map, ZipWith, Reduce and the arithmetic on top
//	• Matrix product, quadrant Block / Combine
//	• LU with complete pivoting, determinant, inverse, linear solves
//	• Recursive block inversion of triangular matrices (optionally parallel)
//	• gonum/mat interop and a readable table printer
//
// ✨ Conventions
//
//   - Every operator returns a new matrix; inputs are never modified.
//   - Errors are sentinels wrapped with the operation name (errors.Is).
//   - Singularity is a result, not a crash: ErrSingular, Det = 0.
//   - One tolerance rule everywhere (1e-7 by default, WithEpsilon per call).
//
// Layout:
//
//	matrix/   : Dense, Layout strategies, kernels, LU / Det / Inverse
//	examples/ : runnable walkthrough (nodal analysis of a resistor network)
//
// Quick example:
//
//	m, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//	d, _ := matrix.Det(m)      // -2
//	inv, _ := matrix.Inverse(m) // [[-2, 1], [1.5, -0.5]]
//
//	go get github.com/katalvlaran/linalg/matrix
package linalg

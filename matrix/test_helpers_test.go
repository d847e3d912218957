// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

// layouts enumerates both storage strategies for table-driven tests.
var layouts = []matrix.Layout{matrix.RowMajor, matrix.ColMajor}

// MustNew BUILDS a matrix from a flat buffer in the given layout or fails the test.
func MustNew(t testing.TB, data []float64, r, c int, layout matrix.Layout) *matrix.Dense {
	t.Helper()
	m, err := matrix.New(data, r, c, layout)
	require.NoError(t, err, "New(%d,%d,%s)", r, c, layout)

	return m
}

// MustRows BUILDS a RowMajor matrix from literal rows or fails the test.
func MustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt READS (i,j) or fails the test.
func MustAt(t testing.TB, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	x, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return x
}

// RandDense FILLS an r×c matrix with uniform values in [-1, 1) from a
// fixed seed, stored in the given layout.
func RandDense(t testing.TB, r, c int, seed int64, layout matrix.Layout) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	buf := make([]float64, r*c)
	for k := range buf {
		buf[k] = rng.Float64()*2 - 1
	}

	return MustNew(t, buf, r, c, layout)
}

// RandNonSingular RETURNS a random n×n matrix made strictly diagonally
// dominant (hence invertible), then scrambled by a row swap so that the
// largest entries are not all on the diagonal.
func RandNonSingular(t testing.TB, n int, seed int64, layout matrix.Layout) *matrix.Dense {
	t.Helper()
	rows := RandDense(t, n, n, seed, matrix.RowMajor).ToRows()
	for i := range rows {
		rows[i][i] += float64(n) + 1
	}
	if n > 1 {
		rows[0], rows[n-1] = rows[n-1], rows[0]
	}
	buf := make([]float64, 0, n*n)
	for _, r := range rows {
		buf = append(buf, r...)
	}

	return MustNew(t, buf, n, n, matrix.RowMajor).ToLayout(layout)
}

// RandLower RETURNS a random lower triangular n×n matrix with diagonal
// entries in [1, 2) and off-diagonal entries in [-0.5, 0.5).
func RandLower(t testing.TB, n int, seed int64, layout matrix.Layout) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	buf := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			buf[i*n+j] = rng.Float64() - 0.5
		}
		buf[i*n+i] = 1 + rng.Float64()
	}

	return MustNew(t, buf, n, n, matrix.RowMajor).ToLayout(layout)
}

// RequireClose ASSERTS equal shapes and element-wise NearlyEqualTol.
func RequireClose(t testing.TB, want, got *matrix.Dense, eps float64) {
	t.Helper()
	require.NotNil(t, got)
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			w, g := MustAt(t, want, i, j), MustAt(t, got, i, j)
			require.Truef(t, matrix.NearlyEqualTol(w, g, eps),
				"(%d,%d): want %.12g, got %.12g", i, j, w, g)
		}
	}
}

// RequireRows ASSERTS exact logical values row by row.
func RequireRows(t testing.TB, want [][]float64, got *matrix.Dense) {
	t.Helper()
	require.Equal(t, want, got.ToRows())
}

// AssertErrorIs FAILS unless errors.Is(err, target).
func AssertErrorIs(t testing.TB, err, target error) {
	t.Helper()
	require.Error(t, err)
	require.Truef(t, errors.Is(err, target), "want %v, got %v", target, err)
}

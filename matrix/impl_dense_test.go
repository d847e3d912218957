// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense storage and accessors.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		data   []float64
		r, c   int
		layout matrix.Layout
		want   error
	}{
		{"zero rows", nil, 0, 2, matrix.RowMajor, matrix.ErrInvalidDimensions},
		{"negative cols", []float64{1}, 1, -1, matrix.RowMajor, matrix.ErrInvalidDimensions},
		{"nil layout", []float64{1, 2}, 1, 2, nil, matrix.ErrNilLayout},
		{"short buffer", []float64{1, 2, 3}, 2, 2, matrix.RowMajor, matrix.ErrBadShape},
		{"long buffer", []float64{1, 2, 3, 4, 5}, 2, 2, matrix.ColMajor, matrix.ErrBadShape},
		{"nan", []float64{1, math.NaN()}, 1, 2, matrix.RowMajor, matrix.ErrNaNInf},
		{"inf", []float64{math.Inf(-1), 1}, 2, 1, matrix.ColMajor, matrix.ErrNaNInf},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.New(tc.data, tc.r, tc.c, tc.layout)
			assert.Nil(t, m)
			AssertErrorIs(t, err, tc.want)
		})
	}
}

func TestNew_NoValidateNaNInf(t *testing.T) {
	t.Parallel()

	m, err := matrix.New([]float64{math.NaN(), math.Inf(1)}, 1, 2, matrix.RowMajor, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	assert.True(t, math.IsNaN(MustAt(t, m, 0, 0)))
	require.NoError(t, m.Set(0, 1, math.Inf(-1)), "policy travels with the matrix")
}

func TestNew_CopiesBuffer(t *testing.T) {
	t.Parallel()

	buf := []float64{1, 2, 3, 4}
	m := MustNew(t, buf, 2, 2, matrix.RowMajor)
	buf[0] = 99
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))

	out := m.Data()
	out[1] = 99
	assert.Equal(t, 2.0, MustAt(t, m, 0, 1), "Data returns a copy")
}

// Same buffer, two layouts, two different logical matrices.
func TestLayout_SameBufferDifferentMatrix(t *testing.T) {
	t.Parallel()

	buf := []float64{1, 2, 3, 4}
	row := MustNew(t, buf, 2, 2, matrix.RowMajor)
	col := MustNew(t, buf, 2, 2, matrix.ColMajor)

	RequireRows(t, [][]float64{{1, 2}, {3, 4}}, row)
	RequireRows(t, [][]float64{{1, 3}, {2, 4}}, col)
	assert.Equal(t, row.Data(), col.Data())
	assert.Equal(t, "Row", row.Layout().String())
	assert.Equal(t, "Col", col.Layout().String())
	assert.False(t, row.Equal(col))
}

func TestNewFrom_Integers(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewFrom([]int{1, 2, 3, 4, 5, 6}, 2, 3, matrix.ColMajor)
	require.NoError(t, err)
	RequireRows(t, [][]float64{{1, 3, 5}, {2, 4, 6}}, m)

	_, err = matrix.NewFrom([]uint8{1, 2}, 2, 2, matrix.RowMajor)
	AssertErrorIs(t, err, matrix.ErrBadShape)
}

func TestAtSet_Bounds(t *testing.T) {
	t.Parallel()

	for _, layout := range layouts {
		t.Run(layout.String(), func(t *testing.T) {
			m := MustNew(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3, layout)
			for _, ij := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
				_, err := m.At(ij[0], ij[1])
				AssertErrorIs(t, err, matrix.ErrOutOfRange)
				AssertErrorIs(t, m.Set(ij[0], ij[1], 0), matrix.ErrIndexOutOfBounds)
			}

			require.NoError(t, m.Set(1, 2, 42))
			assert.Equal(t, 42.0, MustAt(t, m, 1, 2))
			AssertErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
		})
	}
}

func TestRowColDiag(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	for _, layout := range layouts {
		t.Run(layout.String(), func(t *testing.T) {
			m := MustRows(t, rows).ToLayout(layout)

			r, err := m.Row(1)
			require.NoError(t, err)
			assert.Equal(t, []float64{4, 5, 6}, r)

			c, err := m.Col(2)
			require.NoError(t, err)
			assert.Equal(t, []float64{3, 6, 9}, c)

			d, err := m.Diag()
			require.NoError(t, err)
			assert.Equal(t, []float64{1, 5, 9}, d)

			_, err = m.Row(3)
			AssertErrorIs(t, err, matrix.ErrOutOfRange)
			_, err = m.Col(-1)
			AssertErrorIs(t, err, matrix.ErrOutOfRange)
		})
	}

	_, err := MustNew(t, []float64{1, 2}, 1, 2, matrix.RowMajor).Diag()
	AssertErrorIs(t, err, matrix.ErrNonSquare)
}

func TestClone_Independent(t *testing.T) {
	t.Parallel()

	m := MustNew(t, []float64{1, 2, 3, 4}, 2, 2, matrix.ColMajor)
	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, -1))
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))
	assert.Equal(t, matrix.ColMajor, cp.Layout())
}

func TestEqual_AcrossLayouts(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := a.ChangeLayout()
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	c := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6 + 1e-9}})
	assert.True(t, a.Equal(c), "within default tolerance")
	assert.False(t, a.EqualTol(c, 0))

	d := MustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	assert.False(t, a.Equal(d), "shape differs")
	assert.False(t, a.Equal(nil))
}

func TestShapeAccessors(t *testing.T) {
	t.Parallel()

	m := MustNew(t, make([]float64, 6), 2, 3, matrix.RowMajor)
	r, c := m.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 6, m.Len())
}

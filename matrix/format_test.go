// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/linalg/matrix"
)

func TestSpread_Integers(t *testing.T) {
	t.Parallel()

	m := MustNew(t, []float64{1, 2, 3, 4}, 2, 2, matrix.RowMajor)
	want := "" +
		"      c[0] c[1]\n" +
		" r[0]    1    2\n" +
		" r[1]    3    4"
	assert.Equal(t, want, m.Spread())
	assert.Equal(t, want, fmt.Sprint(m))

	col := MustNew(t, []float64{1, 2, 3, 4}, 2, 2, matrix.ColMajor)
	assert.Equal(t, ""+
		"      c[0] c[1]\n"+
		" r[0]    1    3\n"+
		" r[1]    2    4", col.String())
}

func TestSpread_ShorterForm(t *testing.T) {
	t.Parallel()

	m := MustNew(t, []float64{0.123456789, -2.5}, 1, 2, matrix.RowMajor)
	want := "" +
		"        c[0]   c[1]\n" +
		" r[0] 0.1235   -2.5"
	assert.Equal(t, want, m.Spread())
}

func TestSpread_NoTrailingNewline(t *testing.T) {
	t.Parallel()

	s := RandDense(t, 4, 3, 3, matrix.ColMajor).Spread()
	assert.False(t, strings.HasSuffix(s, "\n"))
	assert.Len(t, strings.Split(s, "\n"), 5, "header + 4 rows")

	var m *matrix.Dense
	assert.Equal(t, "<nil>", m.String())
}

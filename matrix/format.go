// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Printer geometry.
const (
	labelWidth    = 5 // width of the "r[i]" column and the minimum cell width
	fixedDecimals = 4 // digits after the point in the rounded form
)

// String implements fmt.Stringer via Spread.
func (m *Dense) String() string {
	if m == nil {
		return "<nil>"
	}

	return m.Spread()
}

// Spread renders m as a table with "c[j]" column headers and "r[i]" row
// labels, all right-aligned:
//
//	      c[0] c[1]
//	 r[0]    1    2
//	 r[1]    3    4
//
// Each value prints as the shorter of its 4-decimal rounding and its
// shortest exact form. The cell width is the longest such string plus one,
// never less than 5. There is no trailing newline.
func (m *Dense) Spread() string {
	cells := make([]string, m.r*m.c)
	space := 0
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			s := formatCell(m.at(i, j))
			cells[i*m.c+j] = s
			space = max(space, len(s))
		}
	}
	space = max(space+1, labelWidth)

	var sb strings.Builder
	sb.WriteString(pad("", labelWidth))
	for j = 0; j < m.c; j++ {
		sb.WriteString(pad(fmt.Sprintf("c[%d]", j), space))
	}
	sb.WriteByte('\n')
	for i = 0; i < m.r; i++ {
		sb.WriteString(pad(fmt.Sprintf("r[%d]", i), labelWidth))
		for j = 0; j < m.c; j++ {
			sb.WriteString(pad(cells[i*m.c+j], space))
		}
		if i < m.r-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// formatCell picks the rounded form only when it is strictly shorter.
func formatCell(x float64) string {
	rounded := strconv.FormatFloat(x, 'f', fixedDecimals, 64)
	exact := strconv.FormatFloat(x, 'f', -1, 64)
	if len(rounded) < len(exact) {
		return rounded
	}

	return exact
}

// pad right-aligns s in width columns; longer strings are left as they are.
func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}

	return strings.Repeat(" ", width-len(s)) + s
}

// SPDX-License-Identifier: MIT

// Package matrix: layout conversion and transposition.
//
// Both layouts describe the same logical matrix, so a conversion only
// reorders the buffer. Kernels convert lazily: an operand is re-laid only
// when the algorithm needs a specific physical order (binary elementwise
// ops with mismatched layouts, the RowMajor×ColMajor product).

package matrix

// ChangeLayout returns a copy of m with identical logical values and the
// opposite layout.
//
// Implementation:
//   - With l = r*c - 1 and k = Stride (cols from RowMajor, rows from
//     ColMajor), every destination slot i in [0, l) reads the source slot
//     (i*k) mod l; slot l (the bottom-right element) never moves.
//   - This is the closed form of the transpose-like remap for every (r, c):
//     a ColMajor slot i = a + b*r times c is a*c + b*(r*c) ≡ a*c + b
//     (mod r*c - 1), the RowMajor slot of (a, b). The symmetric argument
//     covers the other direction; gcd(r, c) plays no role.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) (one fresh buffer, single pass).
func (m *Dense) ChangeLayout() *Dense {
	n := len(m.data)
	buf := make([]float64, n)
	l := n - 1
	if l == 0 {
		buf[0] = m.data[0] // 1×1: nothing to remap
		return newDense(buf, m.r, m.c, m.layout.Opposite())
	}

	k := m.layout.Stride(m.r, m.c)
	for i := 0; i < l; i++ {
		buf[i] = m.data[(i*k)%l]
	}
	buf[l] = m.data[l]

	return newDense(buf, m.r, m.c, m.layout.Opposite())
}

// ToLayout returns m in the requested layout: a conversion when layouts
// differ, a plain clone otherwise. The result never aliases m.
func (m *Dense) ToLayout(layout Layout) *Dense {
	if m.layout == layout {
		return m.Clone()
	}

	return m.ChangeLayout()
}

// asLayout is ToLayout without the defensive copy: kernels that only read
// an operand use it to skip a clone when the layout already matches.
func (m *Dense) asLayout(layout Layout) *Dense {
	if m.layout == layout {
		return m
	}

	return m.ChangeLayout()
}

// Transpose returns mᵀ by reinterpreting a copy of the buffer with swapped
// dimensions and the opposite layout: a RowMajor r×c buffer read as
// ColMajor c×r is exactly the transpose.
// Complexity: Time O(r*c) (buffer copy), no reindexing.
func (m *Dense) Transpose() *Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return newDense(buf, m.c, m.r, m.layout.Opposite())
}

// ToRows materializes m as a slice of rows (logical order, any layout).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		row := make([]float64, m.c)
		for j = 0; j < m.c; j++ {
			row[j] = m.at(i, j)
		}
		out[i] = row
	}

	return out
}

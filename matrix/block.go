// SPDX-License-Identifier: MIT

// Package matrix: quadrant partition and recombination.
//
// Block and Combine are exact inverses: Combine(Block(M)) == M for every M
// with rows, cols ≥ 2. Both walk the flat buffer once in storage order and
// route each element through the Layout strategy, so the same code serves
// RowMajor and ColMajor sources.

package matrix

import "fmt"

const (
	opBlock   = "Block"
	opCombine = "Combine"
)

// quadrant identifies one of the four blocks of a 2×2 partition.
type quadrant int

const (
	topLeft quadrant = iota
	topRight
	bottomLeft
	bottomRight
)

// split returns the quadrant containing (i, j) for a cut after row l and
// column l, plus the coordinates inside that quadrant.
func split(i, j, l int) (quadrant, int, int) {
	switch {
	case i < l && j < l:
		return topLeft, i, j
	case i < l:
		return topRight, i, j - l
	case j < l:
		return bottomLeft, i - l, j
	default:
		return bottomRight, i - l, j - l
	}
}

// Block splits m into four quadrants at l = min(rows, cols) / 2:
//
//	tl: l×l        tr: l×(cols-l)
//	bl: (rows-l)×l br: (rows-l)×(cols-l)
//
// Every quadrant is a fresh matrix in m's layout.
//
// Errors:
//   - ErrBadShape when rows < 2 or cols < 2 (a quadrant would be empty).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Block() (tl, tr, bl, br *Dense, err error) {
	if m.r < 2 || m.c < 2 {
		return nil, nil, nil, nil, matrixErrorf(opBlock, fmt.Errorf("%dx%d: %w", m.r, m.c, ErrBadShape))
	}

	l := min(m.r, m.c) / 2
	blocks := [4]*Dense{
		topLeft:     zeros(l, l, m.layout),
		topRight:    zeros(l, m.c-l, m.layout),
		bottomLeft:  zeros(m.r-l, l, m.layout),
		bottomRight: zeros(m.r-l, m.c-l, m.layout),
	}

	var (
		k, i, j, qi, qj int
		q               quadrant
		dst             *Dense
	)
	for k = 0; k < len(m.data); k++ { // storage order of the source
		i, j = m.layout.Coords(k, m.r, m.c)
		q, qi, qj = split(i, j, l)
		dst = blocks[q]
		dst.data[dst.layout.Offset(qi, qj, dst.r, dst.c)] = m.data[k]
	}

	return blocks[topLeft], blocks[topRight], blocks[bottomLeft], blocks[bottomRight], nil
}

// Combine reassembles four quadrants into one matrix laid out like tl.
// Quadrants in another layout are converted first.
//
// Implementation:
//   - Stage 1: validate non-nil and aligned edges (tl|tr and bl|br share
//     row counts, tl/bl and tr/br share column counts).
//   - Stage 2: walk the result in storage order and pull each element
//     from its quadrant.
//
// Notes:
//   - tl need not be square; the cut sits after tl.Rows() rows and
//     tl.Cols() columns.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func Combine(tl, tr, bl, br *Dense) (*Dense, error) {
	for _, q := range [...]*Dense{tl, tr, bl, br} {
		if err := ValidateNotNil(q); err != nil {
			return nil, matrixErrorf(opCombine, err)
		}
	}
	if tl.r != tr.r || bl.r != br.r || tl.c != bl.c || tr.c != br.c {
		return nil, matrixErrorf(opCombine, ErrDimensionMismatch)
	}

	layout := tl.layout
	blocks := [4]*Dense{
		topLeft:     tl,
		topRight:    tr.asLayout(layout),
		bottomLeft:  bl.asLayout(layout),
		bottomRight: br.asLayout(layout),
	}
	rows, cols := tl.r+bl.r, tl.c+tr.c
	lr, lc := tl.r, tl.c
	out := zeros(rows, cols, layout)

	var (
		k, i, j int
		src     *Dense
	)
	for k = 0; k < len(out.data); k++ {
		i, j = layout.Coords(k, rows, cols)
		switch {
		case i < lr && j < lc:
			src = blocks[topLeft]
		case i < lr:
			src, j = blocks[topRight], j-lc
		case j < lc:
			src, i = blocks[bottomLeft], i-lr
		default:
			src, i, j = blocks[bottomRight], i-lr, j-lc
		}
		out.data[k] = src.data[layout.Offset(i, j, src.r, src.c)]
	}

	return out, nil
}

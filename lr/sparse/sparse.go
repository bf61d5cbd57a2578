/*
Package sparse implements a simple type for sparse integer matrices.
It is mainly used for parser tables (GOTO-table and ACTION-table).

This implementation uses the COO algorithm (a.k.a. triplet-encoding).

   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229

Every position holds at most one value. A parse table which would need two
values at one position has a conflict and is malformed input to setra, so
(unlike general sparse-matrix packages) there is no support for storing
entry pairs.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import "sort"

// IntMatrix is a sparse matrix of int32 values. Construct with
//
//     M := NewIntMatrix(-1)    // parameter is M's null-value
//
// Now
//
//     M.Set(2, 3, 4711)        // set a value
//     v := M.Value(2, 3)       // returns 4711
//     v = M.Value(10, 10)      // returns -1, i.e. the null-value
//
// The matrix grows as needed; there is no fixed dimension. Values cannot be
// deleted, but may be overwritten with the null-value. Space for null-values
// is not re-claimed.
type IntMatrix struct {
	cells   []cell // sorted by (row, col)
	nullval int32
}

type cell struct {
	row, col int
	value    int32
}

// DefaultNullValue is the default empty-value for matrices (min int32).
const DefaultNullValue = -2147483648

// NewIntMatrix creates an empty matrix. The argument is a null-value,
// indicating empty entries (use DefaultNullValue if you haven't any specific
// requirements).
func NewIntMatrix(nullValue int32) *IntMatrix {
	return &IntMatrix{nullval: nullValue}
}

// NullValue returns this matrix' null value.
func (m *IntMatrix) NullValue() int32 {
	return m.nullval
}

// ValueCount returns the number of positions set in the matrix.
func (m *IntMatrix) ValueCount() int {
	return len(m.cells)
}

// find returns the index of (i,j) in the sorted cell slice, or the index
// where it would have to be inserted.
func (m *IntMatrix) find(i, j int) int {
	return sort.Search(len(m.cells), func(k int) bool {
		c := m.cells[k]
		return c.row > i || (c.row == i && c.col >= j)
	})
}

// Value returns the value at position (i,j), or NullValue.
func (m *IntMatrix) Value(i, j int) int32 {
	k := m.find(i, j)
	if k < len(m.cells) && m.cells[k].row == i && m.cells[k].col == j {
		return m.cells[k].value
	}
	return m.nullval
}

// Set stores a value at position (i,j), overwriting any previous one.
func (m *IntMatrix) Set(i, j int, value int32) {
	k := m.find(i, j)
	if k < len(m.cells) && m.cells[k].row == i && m.cells[k].col == j {
		m.cells[k].value = value
		return
	}
	m.cells = append(m.cells, cell{})
	copy(m.cells[k+1:], m.cells[k:])
	m.cells[k] = cell{row: i, col: j, value: value}
}

// Each calls f for every position set in the matrix, in row-major order.
func (m *IntMatrix) Each(f func(i, j int, value int32)) {
	for _, c := range m.cells {
		f(c.row, c.col, c.value)
	}
}

// Package dense: sparse-to-dense and dense-to-sparse conversions.

package dense

import (
	"cmp"
	"maps"
	"slices"

	"github.com/katalvlaran/map2d"
)

// Grid is a rectangular dense snapshot of a map2d.Map.
//
// Rows and Cols hold the distinct keys in ascending order; RowIndex and
// ColIndex translate a key to its position. Data[i][j] holds the value
// stored at (Rows[i], Cols[j]), or the fill value chosen at export time
// when that cell was absent.
type Grid[R cmp.Ordered, C cmp.Ordered, V any] struct {
	Rows     []R
	Cols     []C
	RowIndex map[R]int
	ColIndex map[C]int
	Data     [][]V
}

// At returns the value at the cell addressed by (row, col) and whether both
// keys are part of the grid layout. Absent cells carry the export fill
// value, which At cannot distinguish from a stored value.
// Complexity: O(1).
func (g *Grid[R, C, V]) At(row R, col C) (V, bool) {
	i, ok := g.RowIndex[row]
	if !ok {
		var zero V
		return zero, false
	}
	j, ok := g.ColIndex[col]
	if !ok {
		var zero V
		return zero, false
	}

	return g.Data[i][j], true
}

// Export materializes m as a Grid. Row keys are the rows of m, column keys
// are the union of all column keys across rows, both sorted ascending;
// cells with no stored value receive fill. An empty container yields an
// empty Grid. Returns ErrNilMap when m is nil.
// Complexity: O(n + r·log r + c·log c) time, O(r·c) space.
func Export[R cmp.Ordered, C cmp.Ordered, V any](m *map2d.Map[R, C, V], fill V) (*Grid[R, C, V], error) {
	if m == nil {
		return nil, ErrNilMap
	}
	// Snapshot first; the grid must not alias the container's inner maps.
	view := m.RowMapView()

	rows := slices.Sorted(maps.Keys(view))
	colSet := make(map[C]struct{})
	for _, inner := range view {
		for col := range inner {
			colSet[col] = struct{}{}
		}
	}
	cols := slices.Sorted(maps.Keys(colSet))

	rowIdx := make(map[R]int, len(rows))
	for i, row := range rows {
		rowIdx[row] = i
	}
	colIdx := make(map[C]int, len(cols))
	for j, col := range cols {
		colIdx[col] = j
	}

	data := make([][]V, len(rows))
	for i := range data {
		data[i] = make([]V, len(cols))
		for j := range data[i] {
			data[i][j] = fill
		}
	}
	for row, inner := range view {
		for col, val := range inner {
			data[rowIdx[row]][colIdx[col]] = val
		}
	}

	return &Grid[R, C, V]{
		Rows:     rows,
		Cols:     cols,
		RowIndex: rowIdx,
		ColIndex: colIdx,
		Data:     data,
	}, nil
}

// FromGrid rebuilds a sparse map2d.Map from g. Cells where skip(value)
// reports true are omitted; a nil skip keeps every cell. Only Rows, Cols,
// and Data participate; the index maps are ignored.
//
// Returns ErrNilGrid for a nil grid, ErrDimensionMismatch when Data and
// Rows disagree in length, and ErrNonRectangular when any Data row differs
// in length from Cols.
// Complexity: O(r·c).
func FromGrid[R cmp.Ordered, C cmp.Ordered, V any](g *Grid[R, C, V], skip func(V) bool) (*map2d.Map[R, C, V], error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if len(g.Data) != len(g.Rows) {
		return nil, ErrDimensionMismatch
	}
	for _, rowData := range g.Data {
		if len(rowData) != len(g.Cols) {
			return nil, ErrNonRectangular
		}
	}

	m := map2d.New[R, C, V]()
	for i, row := range g.Rows {
		flat := make(map[C]V, len(g.Cols))
		for j, col := range g.Cols {
			val := g.Data[i][j]
			if skip != nil && skip(val) {
				continue
			}
			flat[col] = val
		}
		m.PutAllToRow(flat, row)
	}

	return m, nil
}

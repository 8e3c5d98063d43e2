// Package map2d: snapshot views.
//
// Every view is a deep, independently owned copy taken at call time.
// Mutating the container after a view is taken never changes the view, and
// mutating a returned map never changes the container. There is no lazy or
// incremental view; each call pays the full copy cost it documents.

package map2d

import "maps"

// RowView returns a snapshot of one row as a flat column-to-value map.
// The result is non-nil and empty when the row is absent.
// Complexity: O(len(row)).
func (m *Map[R, C, V]) RowView(row R) map[C]V {
	inner, ok := m.rows[row]
	if !ok {
		return map[C]V{}
	}

	return maps.Clone(inner)
}

// ColumnView returns a snapshot of one column as a flat row-to-value map.
// The result is non-nil and empty when no row stores the column.
//
// The column is extracted from a full ColumnMapView materialization, so the
// cost is O(n) over all stored entries, not O(len(column)).
func (m *Map[R, C, V]) ColumnView(col C) map[R]V {
	column, ok := m.ColumnMapView()[col]
	if !ok {
		return map[R]V{}
	}
	// The transpose is freshly built, so the column map is already an
	// independent copy.
	return column
}

// RowMapView returns a deep snapshot of the whole container keyed by row:
// every inner map is a fresh copy. The result is non-nil and empty when the
// container is empty.
// Complexity: O(n).
func (m *Map[R, C, V]) RowMapView() map[R]map[C]V {
	view := make(map[R]map[C]V, len(m.rows))
	for row, inner := range m.rows {
		view[row] = maps.Clone(inner)
	}

	return view
}

// ColumnMapView returns the transpose of the container as a deep snapshot
// keyed by column: view[col][row] = value for every stored entry. Built in
// a single pass over all entries, grouping by column key. The result is
// non-nil and empty when the container is empty.
// Complexity: O(n).
func (m *Map[R, C, V]) ColumnMapView() map[C]map[R]V {
	view := make(map[C]map[R]V)
	for row, inner := range m.rows {
		for col, val := range inner {
			column, ok := view[col]
			if !ok {
				column = make(map[R]V)
				view[col] = column
			}
			column[row] = val
		}
	}

	return view
}

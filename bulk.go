// SPDX-License-Identifier: MIT
// Package map2d: bulk merge operations.
//
// Contract (strict, preserved from the original design):
//   - Every bulk operation returns the receiver for call chaining.
//   - A nil source or target map is a silent no-op, never an error.
//   - Keys arriving through flat source maps are stored as-is; only Put
//     validates composite-key components.

package map2d

import "maps"

// FillMapFromRow clears target and overwrites it with a copy of the row's
// entries. It is a no-op, leaving target completely untouched, when target
// is nil, the container is empty, or the row is absent.
// Returns the container itself for chaining.
// Complexity: O(len(target) + len(row)).
func (m *Map[R, C, V]) FillMapFromRow(target map[C]V, row R) *Map[R, C, V] {
	if target == nil || m.size == 0 {
		return m
	}
	inner, ok := m.rows[row]
	if !ok {
		return m
	}
	clear(target)
	maps.Copy(target, inner)

	return m
}

// FillMapFromColumn clears target and overwrites it with a copy of the
// column's entries, extracted from a full ColumnMapView materialization.
// It is a no-op, leaving target completely untouched, when target is nil,
// the container is empty, or no row stores the column.
// Returns the container itself for chaining.
// Complexity: O(n) over all stored entries.
func (m *Map[R, C, V]) FillMapFromColumn(target map[R]V, col C) *Map[R, C, V] {
	if target == nil {
		return m
	}
	view := m.ColumnMapView()
	if len(view) == 0 {
		return m
	}
	column, ok := view[col]
	if !ok || len(column) == 0 {
		return m
	}
	clear(target)
	maps.Copy(target, column)

	return m
}

// PutAll copies every entry of src into the container, overwriting on key
// collision. A nil src is a no-op. Passing the container itself is allowed
// and leaves it unchanged.
// Returns the container itself for chaining.
// Complexity: O(len(src)).
func (m *Map[R, C, V]) PutAll(src *Map[R, C, V]) *Map[R, C, V] {
	if src == nil {
		return m
	}
	for row, inner := range src.rows {
		dst, ok := m.rows[row]
		if !ok {
			dst = make(map[C]V, len(inner))
			m.rows[row] = dst
		}
		before := len(dst)
		maps.Copy(dst, inner)
		m.size += len(dst) - before
	}

	return m
}

// PutAllToRow merges a flat column-to-value map into the container under a
// fixed row key: every key of src becomes a column key. An existing row is
// merged in place (overwriting on collision); otherwise a new row is
// created. The size counter is adjusted by the net change in the row's
// entry count. A nil src is a no-op, and an empty src never creates a row.
// Returns the container itself for chaining.
// Complexity: O(len(src)).
func (m *Map[R, C, V]) PutAllToRow(src map[C]V, row R) *Map[R, C, V] {
	if src == nil {
		return m
	}
	inner, ok := m.rows[row]
	if !ok {
		if len(src) == 0 {
			return m
		}
		inner = make(map[C]V, len(src))
		m.rows[row] = inner
	}
	before := len(inner)
	maps.Copy(inner, src)
	m.size += len(inner) - before

	return m
}

// PutAllToColumn merges a flat row-to-value map into the container under a
// fixed column key: every key of src becomes a row key holding col. Rows
// are created as needed; collisions overwrite in place. A nil src is a
// no-op.
// Returns the container itself for chaining.
// Complexity: O(len(src)).
func (m *Map[R, C, V]) PutAllToColumn(src map[R]V, col C) *Map[R, C, V] {
	if src == nil {
		return m
	}
	for row, val := range src {
		inner, ok := m.rows[row]
		if !ok {
			inner = make(map[C]V)
			m.rows[row] = inner
		}
		if _, exists := inner[col]; !exists {
			m.size++
		}
		inner[col] = val
	}

	return m
}

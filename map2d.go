// Package map2d: core container type and single-cell operations.
//
// This file declares Map, its constructors, and the O(1) cell-level
// operations (Put/Get/Remove and the presence checks). Storage is a nested
// map rows[rowKey][columnKey] = value; a running size counter always equals
// the sum of inner-map sizes. Rows that become empty are pruned, so the
// outer map never holds an empty inner map.

package map2d

import (
	"maps"
	"reflect"
)

// Map is a mutable two-dimensional associative container.
//
// Every stored value is addressed by a composite (row, column) key. Row and
// column keys compare by value equality; values carry no constraint at all.
// Map is not safe for concurrent mutation.
//
// The zero value of Map is not usable; construct instances with New or
// FromRows.
type Map[R comparable, C comparable, V any] struct {
	// rows[rowKey][columnKey] = value; inner maps are exclusively owned,
	// never shared with callers.
	rows map[R]map[C]V

	// size is the total number of stored (row, column) pairs.
	size int
}

// New creates an empty Map.
// Complexity: O(1).
func New[R comparable, C comparable, V any]() *Map[R, C, V] {
	return &Map[R, C, V]{rows: make(map[R]map[C]V)}
}

// FromRows creates a Map holding a deep copy of src. Empty inner maps in
// src are skipped; a nil src yields an empty Map.
// Complexity: O(n) over the entries of src.
func FromRows[R comparable, C comparable, V any](src map[R]map[C]V) *Map[R, C, V] {
	m := New[R, C, V]()
	for row, inner := range src {
		if len(inner) == 0 {
			continue
		}
		m.rows[row] = maps.Clone(inner)
		m.size += len(inner)
	}

	return m
}

// Put stores val at the composite key (row, col), inserting or overwriting.
// It returns the value previously stored at that exact key, with
// replaced=true when one existed. The size counter grows only on a fresh
// key.
//
// Returns ErrNilKey when either key is a nil pointer, interface, or
// channel; for non-nilable key kinds Put cannot fail.
// Complexity: O(1) amortized.
func (m *Map[R, C, V]) Put(row R, col C, val V) (prev V, replaced bool, err error) {
	// Validate input: nil composite-key components are not allowed.
	if isNilKey(row) || isNilKey(col) {
		return prev, false, ErrNilKey
	}
	inner, ok := m.rows[row]
	if !ok {
		// Lazily allocate the row on first insert.
		inner = make(map[C]V)
		m.rows[row] = inner
	}
	prev, replaced = inner[col]
	inner[col] = val
	if !replaced {
		m.size++
	}

	return prev, replaced, nil
}

// Get returns the value stored at (row, col) and whether one is present.
// Missing keys (including a missing row) are normal absence, never an
// error. A stored zero value is a present entry.
// Complexity: O(1).
func (m *Map[R, C, V]) Get(row R, col C) (V, bool) {
	val, ok := m.rows[row][col]

	return val, ok
}

// GetOrDefault returns the value stored at (row, col), or def when the key
// is absent.
// Complexity: O(1).
func (m *Map[R, C, V]) GetOrDefault(row R, col C, def V) V {
	if val, ok := m.rows[row][col]; ok {
		return val
	}

	return def
}

// Remove deletes the value at (row, col) and returns it, with removed=true
// when an entry existed. The size counter shrinks exactly when a value was
// present. A row left empty by the removal is pruned from the outer map.
// Complexity: O(1).
func (m *Map[R, C, V]) Remove(row R, col C) (prev V, removed bool) {
	inner, ok := m.rows[row]
	if !ok {
		return prev, false
	}
	prev, removed = inner[col]
	if !removed {
		return prev, false
	}
	delete(inner, col)
	// Prune the row so ContainsRow stays O(1) and truthful.
	if len(inner) == 0 {
		delete(m.rows, row)
	}
	m.size--

	return prev, true
}

// Len returns the number of stored (row, column) pairs. O(1).
func (m *Map[R, C, V]) Len() int {
	return m.size
}

// IsEmpty reports whether the container holds no values. O(1).
func (m *Map[R, C, V]) IsEmpty() bool {
	return m.size == 0
}

// NonEmpty reports whether the container holds at least one value. O(1).
func (m *Map[R, C, V]) NonEmpty() bool {
	return m.size != 0
}

// Clear removes every entry and resets the size counter. Idempotent.
// Complexity: O(1), the old storage is released to the garbage collector.
func (m *Map[R, C, V]) Clear() {
	m.rows = make(map[R]map[C]V)
	m.size = 0
}

// ContainsKey reports whether a value is stored at (row, col).
// Complexity: O(1).
func (m *Map[R, C, V]) ContainsKey(row R, col C) bool {
	_, ok := m.rows[row][col]

	return ok
}

// ContainsRow reports whether at least one value is stored under row.
// Rows are pruned when emptied, so presence of the row implies presence of
// a value.
// Complexity: O(1).
func (m *Map[R, C, V]) ContainsRow(row R) bool {
	_, ok := m.rows[row]

	return ok
}

// ContainsColumn reports whether at least one value is stored under col in
// any row.
// Complexity: O(rows), every row is probed once.
func (m *Map[R, C, V]) ContainsColumn(col C) bool {
	for _, inner := range m.rows {
		if _, ok := inner[col]; ok {
			return true
		}
	}

	return false
}

// ForEach invokes fn once per stored entry, in unspecified order. A nil fn
// is a no-op. fn must not mutate the container.
// Complexity: O(n).
func (m *Map[R, C, V]) ForEach(fn func(row R, col C, val V)) {
	if fn == nil {
		return
	}
	for row, inner := range m.rows {
		for col, val := range inner {
			fn(row, col, val)
		}
	}
}

// isNilKey reports whether k is a nil value of a nilable comparable kind.
// The comparable constraint already excludes maps, slices, and funcs, so
// only pointers, interfaces, channels, and unsafe pointers remain.
func isNilKey(k any) bool {
	if k == nil {
		return true
	}
	switch rv := reflect.ValueOf(k); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

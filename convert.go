// SPDX-License-Identifier: MIT
// Package map2d: whole-container copies, transforms, and comparisons.
//
// Operations that need extra type parameters (Convert) or tighter
// constraints (Equal, ContainsValue require comparable values) live here as
// package-level functions, since Go methods cannot introduce either.

package map2d

import "maps"

// Clone returns a deep, independent copy of the container. Mutating the
// clone never affects the original and vice versa.
// Complexity: O(n).
func (m *Map[R, C, V]) Clone() *Map[R, C, V] {
	out := New[R, C, V]()
	for row, inner := range m.rows {
		out.rows[row] = maps.Clone(inner)
	}
	out.size = m.size

	return out
}

// Convert produces a new, independent container by applying a row-key
// transform, a column-key transform, and a value transform to every entry
// of src. A nil src yields an empty container.
//
// Collision policy: when two source entries map to the same transformed
// (row, column) pair, the first-encountered value wins. Iteration order
// over the backing maps is unspecified, so which value survives a
// collision is explicitly non-deterministic.
//
// The transform functions must be non-nil; calling a nil function panics.
// Complexity: O(n) transform calls.
func Convert[R comparable, C comparable, V any, R2 comparable, C2 comparable, V2 any](
	src *Map[R, C, V],
	rowFn func(R) R2,
	colFn func(C) C2,
	valFn func(V) V2,
) *Map[R2, C2, V2] {
	out := New[R2, C2, V2]()
	if src == nil {
		return out
	}
	for row, inner := range src.rows {
		for col, val := range inner {
			row2, col2 := rowFn(row), colFn(col)
			// First value wins on collision.
			if _, exists := out.rows[row2][col2]; exists {
				continue
			}
			dst, ok := out.rows[row2]
			if !ok {
				dst = make(map[C2]V2)
				out.rows[row2] = dst
			}
			dst[col2] = valFn(val)
			out.size++
		}
	}

	return out
}

// Equal reports structural equality of two containers: the same set of
// (row, column) keys mapping to equal values. A nil container is treated
// as empty.
// Complexity: O(n).
func Equal[R comparable, C comparable, V comparable](a, b *Map[R, C, V]) bool {
	la, lb := 0, 0
	if a != nil {
		la = a.size
	}
	if b != nil {
		lb = b.size
	}
	if la != lb {
		return false
	}
	if la == 0 {
		return true
	}
	// Sizes match, so one-directional containment implies equality.
	for row, inner := range a.rows {
		other, ok := b.rows[row]
		if !ok {
			return false
		}
		for col, val := range inner {
			got, ok := other[col]
			if !ok || got != val {
				return false
			}
		}
	}

	return true
}

// ContainsValue reports whether any stored entry equals val. A nil
// container contains nothing.
// Complexity: O(n) full scan.
func ContainsValue[R comparable, C comparable, V comparable](m *Map[R, C, V], val V) bool {
	if m == nil {
		return false
	}
	for _, inner := range m.rows {
		for _, v := range inner {
			if v == val {
				return true
			}
		}
	}

	return false
}

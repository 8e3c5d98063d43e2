// Package map2d provides a generic two-dimensional associative container:
// a map keyed by an ordered pair (row key, column key).
//
// 🚀 What is map2d?
//
//	A mutable in-memory table Map[R, C, V], stored as nested hash maps
//	(rows[rowKey][columnKey] = value) with an incrementally maintained
//	element count, so Len/IsEmpty are O(1) and single-cell operations run
//	in O(1) expected time:
//		• Cell lifecycle: Put, Get, GetOrDefault, Remove, Clear
//		• Presence checks: ContainsKey, ContainsRow, ContainsColumn, ContainsValue
//		• Snapshot views: RowView, ColumnView, RowMapView, ColumnMapView
//		• Bulk merges: PutAll, PutAllToRow, PutAllToColumn,
//		  FillMapFromRow, FillMapFromColumn (all chainable)
//		• Whole-container transforms: Clone, Convert, Equal
//
// ✨ Why choose map2d?
//
//   - Minimal API, clear naming, pure Go, no hidden deps
//   - Views are deep snapshots: a returned map never reflects later
//     mutation of the container, and mutating a view never touches the
//     container
//   - Bulk merges are lenient: a nil source or target is a silent no-op,
//     and every merge returns the container itself for call chaining
//
// The container is not safe for concurrent mutation; callers that share a
// Map across goroutines must supply their own synchronization.
//
// The dense/ subpackage converts between a sparse Map and a rectangular
// dense grid with sorted, deterministic row/column indexes.
//
//	go get github.com/katalvlaran/map2d
package map2d

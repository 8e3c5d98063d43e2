// Package dense converts between the sparse map2d.Map container and a
// rectangular dense grid representation.
//
// A Grid pins a deterministic layout onto the unordered container: row and
// column keys are sorted ascending (hence the cmp.Ordered constraint), an
// index map translates keys to positions, and Data[i][j] holds the value at
// (Rows[i], Cols[j]) or a caller-chosen fill value for absent cells.
//
// Use Export to materialize a Grid from a Map and FromGrid to rebuild a
// sparse Map, optionally skipping fill cells:
//
//	g, err := dense.Export(m, 0)
//	...
//	m2, err := dense.FromGrid(g, func(v int) bool { return v == 0 })
//
// Grids are plain value snapshots: like every map2d view, a Grid carries no
// live reference back into the container it was exported from.
package dense

// SPDX-License-Identifier: MIT
// Package dense: sentinel error set.
// All conversions return these sentinels and callers branch with errors.Is;
// no conversion panics on user input.

package dense

import "errors"

var (
	// ErrNilMap indicates that a nil *map2d.Map was passed to Export.
	ErrNilMap = errors.New("dense: map is nil")

	// ErrNilGrid indicates that a nil *Grid was passed to FromGrid.
	ErrNilGrid = errors.New("dense: grid is nil")

	// ErrDimensionMismatch indicates that Data disagrees with the Rows key
	// slice (len(Data) != len(Rows)).
	ErrDimensionMismatch = errors.New("dense: data dimensions disagree with key slices")

	// ErrNonRectangular indicates a Data row whose length differs from
	// len(Cols).
	ErrNonRectangular = errors.New("dense: all data rows must have the same length")
)

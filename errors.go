// SPDX-License-Identifier: MIT
// Package map2d: sentinel error set.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Put is the only operation that can fail; every other operation treats
//     a missing key as normal absence and returns a zero/default value.

package map2d

import "errors"

// ErrNilKey indicates that Put received a nil row or column key.
// Only keys of pointer, interface, or channel kind can be nil; for ordinary
// value kinds (strings, integers, structs, ...) every key is valid and Put
// never returns an error.
// Usage: if errors.Is(err, map2d.ErrNilKey) { /* reject the key upstream */ }.
var ErrNilKey = errors.New("map2d: nil row or column key")

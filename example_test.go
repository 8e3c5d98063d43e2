package map2d_test

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/katalvlaran/map2d"
)

// printSorted prints a flat view in ascending key order for stable output.
func printSorted(view map[string]int) {
	parts := make([]string, 0, len(view))
	for _, k := range slices.Sorted(maps.Keys(view)) {
		parts = append(parts, fmt.Sprintf("%s=%d", k, view[k]))
	}
	fmt.Println(strings.Join(parts, " "))
}

// ExampleMap demonstrates basic cell lifecycle and axis views.
func ExampleMap() {
	// 1) Create an empty table and fill three cells:
	m := map2d.New[string, string, int]()
	m.PutAllToRow(map[string]int{"x": 1, "y": 2}, "A")
	m.PutAllToRow(map[string]int{"x": 3}, "B")

	// 2) Inspect size and both axis views:
	fmt.Println("size:", m.Len())
	printSorted(m.RowView("A"))
	printSorted(m.ColumnView("x"))

	// 3) Remove one cell:
	prev, removed := m.Remove("A", "x")
	fmt.Println("removed:", prev, removed, "size:", m.Len())

	// Output:
	// size: 3
	// x=1 y=2
	// A=1 B=3
	// removed: 1 true size: 2
}

// ExampleMap_chaining shows the floating returns of the bulk operations.
func ExampleMap_chaining() {
	target := make(map[string]int)
	m := map2d.New[string, string, int]().
		PutAllToRow(map[string]int{"mon": 10, "tue": 20}, "alice").
		PutAllToColumn(map[string]int{"bob": 15}, "mon").
		FillMapFromRow(target, "alice")

	fmt.Println("size:", m.Len())
	printSorted(target)

	// Output:
	// size: 3
	// mon=10 tue=20
}

// ExampleConvert demonstrates a type-changing whole-container transform.
func ExampleConvert() {
	m := map2d.New[int, int, int]()
	m.PutAllToRow(map[int]int{1: 11, 2: 12}, 1)

	out := map2d.Convert(m,
		func(r int) string { return fmt.Sprintf("r%d", r) },
		func(c int) string { return fmt.Sprintf("c%d", c) },
		func(v int) int { return v * 10 },
	)
	printSorted(out.RowView("r1"))

	// Output:
	// c1=110 c2=120
}

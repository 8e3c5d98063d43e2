package dense_test

import (
	"fmt"

	"github.com/katalvlaran/map2d"
	"github.com/katalvlaran/map2d/dense"
)

// ExampleExport turns a sparse table into a dense grid with a fill value.
func ExampleExport() {
	m := map2d.New[string, string, int]()
	m.PutAllToRow(map[string]int{"x": 1, "y": 2}, "A")
	m.PutAllToRow(map[string]int{"x": 3}, "B")

	g, _ := dense.Export(m, 0)
	fmt.Println("rows:", g.Rows)
	fmt.Println("cols:", g.Cols)
	for _, row := range g.Data {
		fmt.Println(row)
	}

	// Output:
	// rows: [A B]
	// cols: [x y]
	// [1 2]
	// [3 0]
}

// ExampleFromGrid rebuilds a sparse table, skipping fill cells.
func ExampleFromGrid() {
	g := &dense.Grid[string, string, int]{
		Rows: []string{"A", "B"},
		Cols: []string{"x", "y"},
		Data: [][]int{{1, 0}, {0, 4}},
	}

	m, _ := dense.FromGrid(g, func(v int) bool { return v == 0 })
	fmt.Println("size:", m.Len())
	fmt.Println(m.GetOrDefault("B", "y", -1))

	// Output:
	// size: 2
	// 4
}

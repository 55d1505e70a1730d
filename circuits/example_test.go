package circuits_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2025/circuits"
)

// ExampleSolveLines wires four boxes with a snapshot after the first wire.
func ExampleSolveLines() {
	res, err := circuits.SolveLines(
		[]string{"0,0,0", "1,0,0", "2,0,0", "10,10,10"},
		circuits.WithThreshold(1),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("part 1:", res.SnapshotProduct, res.Snapshot)
	fmt.Println("part 2:", res.ClosingProduct, "after", res.Processed, "edges")
	// Output:
	// part 1: 2 [2 1 1]
	// part 2: 20 after 4 edges
}

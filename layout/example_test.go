// SPDX-License-Identifier: MIT

package layout_test

import (
	"fmt"

	"github.com/katalvlaran/mazechase/layout"
	"github.com/katalvlaran/mazechase/maze"
)

// ExampleLattice builds a 3×3 lattice and counts its corridors.
func ExampleLattice() {
	segs, err := layout.Lattice(3, 3, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	m := maze.MustNew(segs)
	fmt.Printf("segments=%d intersections=%d paths=%d\n", len(segs), m.Len(), len(m.Edges()))
	// Output: segments=6 intersections=9 paths=24
}

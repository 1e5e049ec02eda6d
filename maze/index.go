// SPDX-License-Identifier: MIT

package maze

import (
	"fmt"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// queryTolerance pads point queries so boxes touching p are returned too.
const queryTolerance = 1e-9

// indexEntry is one box stored in the R-tree: either the snap box around an
// intersection or the tolerance box around one of its outgoing corridors.
type indexEntry struct {
	node int
	box  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *indexEntry) Bounds() rtreego.Rect {
	return e.box
}

// spatialIndex narrows localisation to the intersections near a point.
type spatialIndex struct {
	tree *rtreego.Rtree
}

func newSpatialIndex(nodes []Intersection, hw float64) (*spatialIndex, error) {
	tree := rtreego.NewTree(2, 25, 50)

	for i, n := range nodes {
		x, y := n.Coordinates.X(), n.Coordinates.Y()
		if err := insertBox(tree, i, x-hw, y-hw, x+hw, y+hw); err != nil {
			return nil, err
		}
		for _, d := range Directions {
			p, ok := n.Path(d)
			if !ok {
				continue
			}
			var err error
			switch d {
			case Forward:
				err = insertBox(tree, i, x-hw, y, x+hw, y+p.Length)
			case Backward:
				err = insertBox(tree, i, x-hw, y-p.Length, x+hw, y)
			case Right:
				err = insertBox(tree, i, x, y-hw, x+p.Length, y+hw)
			case Left:
				err = insertBox(tree, i, x-p.Length, y-hw, x, y+hw)
			}
			if err != nil {
				return nil, err
			}
		}
	}

	return &spatialIndex{tree: tree}, nil
}

func insertBox(tree *rtreego.Rtree, node int, minX, minY, maxX, maxY float64) error {
	box, err := rtreego.NewRect(
		rtreego.Point{minX, minY},
		[]float64{maxX - minX, maxY - minY},
	)
	if err != nil {
		return fmt.Errorf("maze: index box for intersection %d: %w", node, err)
	}
	tree.Insert(&indexEntry{node: node, box: box})
	return nil
}

func (si *spatialIndex) candidates(p orb.Point) []int {
	hits := si.tree.SearchIntersect(rtreego.Point{p.X(), p.Y()}.ToRect(queryTolerance))
	if len(hits) == 0 {
		return nil
	}

	seen := make(map[int]struct{}, len(hits))
	out := make([]int, 0, len(hits))
	for _, h := range hits {
		n := h.(*indexEntry).node
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Ints(out)

	return out
}

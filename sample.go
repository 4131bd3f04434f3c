// seehuhn.de/go/lambert - modified Lambert projections for pole figures
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package lambert

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// EdgePolicy selects the neighbour used by the bilinear sampler past the
// last column or row of a grid.
type EdgePolicy int

const (
	// EdgeWrap uses column (row) 0 as the right (upper) neighbour of the
	// last column (row). This is the default.
	EdgeWrap EdgePolicy = iota

	// EdgeClamp uses the last column (row) as its own neighbour.
	EdgeClamp
)

func (e EdgePolicy) String() string {
	switch e {
	case EdgeWrap:
		return "wrap"
	case EdgeClamp:
		return "clamp"
	default:
		return "invalid edge policy"
	}
}

// InterpolatedValue returns the bilinear interpolation of the grid values
// at the square coordinate c. Cell (col, row) contributes with full weight
// at the lower-left corner of the cell; the upper neighbours are chosen
// according to edge.
func (g *SquareGrid) InterpolatedValue(c vec.Vec2, edge EdgePolicy) float64 {
	col0, fx := g.fracBin(c.X)
	row0, fy := g.fracBin(c.Y)
	col1 := g.next(col0, edge)
	row1 := g.next(row0, edge)

	v00 := g.values[g.Index(col0, row0)]
	v10 := g.values[g.Index(col1, row0)]
	v01 := g.values[g.Index(col0, row1)]
	v11 := g.values[g.Index(col1, row1)]

	return v00*(1-fx)*(1-fy) +
		v10*fx*(1-fy) +
		v01*(1-fx)*fy +
		v11*fx*fy
}

// fracBin splits the fractional bin position of s into a cell number in
// [0, dimension) and a weight in [0, 1].
func (g *SquareGrid) fracBin(s float64) (int, float64) {
	pos := (s + g.maxCoord) / g.resolution
	k := min(max(int(math.Floor(pos)), 0), g.dimension-1)
	f := min(max(pos-float64(k), 0), 1)
	return k, f
}

func (g *SquareGrid) next(k int, edge EdgePolicy) int {
	k++
	if k < g.dimension {
		return k
	}
	if edge == EdgeClamp {
		return g.dimension - 1
	}
	return k - g.dimension
}

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
	"slices"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// SquareGrid is one hemisphere of a modified Lambert projection: a square
// of dimension×dimension cells with edge length resolution, centred on the
// origin. Values are stored in row-major order, the cell in column x and
// row y has index y*dimension + x.
//
// A SquareGrid is not safe for concurrent modification.
type SquareGrid struct {
	dimension  int
	resolution float64
	maxCoord   float64
	values     []float64
}

// NewSquareGrid returns a zero-filled grid.
func NewSquareGrid(dimension int, resolution float64) (*SquareGrid, error) {
	if err := checkShape(dimension, resolution); err != nil {
		return nil, err
	}
	return newSquareGrid(dimension, resolution), nil
}

func newSquareGrid(dimension int, resolution float64) *SquareGrid {
	return &SquareGrid{
		dimension:  dimension,
		resolution: resolution,
		maxCoord:   float64(dimension) * resolution / 2,
		values:     make([]float64, dimension*dimension),
	}
}

// Dimension returns the number of cells along each side.
func (g *SquareGrid) Dimension() int {
	return g.dimension
}

// Resolution returns the edge length of a cell.
func (g *SquareGrid) Resolution() float64 {
	return g.resolution
}

// MaxCoord returns dimension*resolution/2. Square coordinates lie in
// [-MaxCoord, MaxCoord).
func (g *SquareGrid) MaxCoord() float64 {
	return g.maxCoord
}

// Bounds returns the square covered by the grid.
func (g *SquareGrid) Bounds() rect.Rect {
	return rect.Rect{
		LLx: -g.maxCoord,
		LLy: -g.maxCoord,
		URx: g.maxCoord,
		URy: g.maxCoord,
	}
}

// Values returns the backing slice of the grid. Changes to the slice
// change the grid.
func (g *SquareGrid) Values() []float64 {
	return g.values
}

// Index returns the flat index of the cell in column col and row row.
func (g *SquareGrid) Index(col, row int) int {
	return row*g.dimension + col
}

// Value returns the value stored in the given cell.
func (g *SquareGrid) Value(col, row int) float64 {
	return g.values[g.Index(col, row)]
}

// SetValue overwrites the value of the given cell.
func (g *SquareGrid) SetValue(col, row int, v float64) {
	g.values[g.Index(col, row)] = v
}

// AddValue adds v to the given cell.
func (g *SquareGrid) AddValue(col, row int, v float64) {
	g.values[g.Index(col, row)] += v
}

// Cell returns the column and row containing the square coordinate c.
// Coordinates outside the grid are clamped to the nearest boundary cell.
func (g *SquareGrid) Cell(c vec.Vec2) (col, row int) {
	return g.bin(c.X), g.bin(c.Y)
}

// SquareIndex returns the flat index of the cell containing c.
// The result always lies in [0, dimension²).
func (g *SquareGrid) SquareIndex(c vec.Vec2) int {
	col, row := g.Cell(c)
	return g.Index(col, row)
}

func (g *SquareGrid) bin(s float64) int {
	k := int(math.Floor((s + g.maxCoord) / g.resolution))
	return min(max(k, 0), g.dimension-1)
}

// CellCenter returns the square coordinate of the centre of a cell.
func (g *SquareGrid) CellCenter(col, row int) vec.Vec2 {
	return vec.Vec2{
		X: (float64(col)+0.5)*g.resolution - g.maxCoord,
		Y: (float64(row)+0.5)*g.resolution - g.maxCoord,
	}
}

// Project maps a direction onto this grid's square.
// See [ForwardProject].
func (g *SquareGrid) Project(d r3.Vector) (vec.Vec2, Hemisphere, error) {
	return ForwardProject(d, g.maxCoord)
}

// Sum returns the sum of all cell values.
func (g *SquareGrid) Sum() float64 {
	return floats.Sum(g.values)
}

// Clone returns an independent copy of the grid.
func (g *SquareGrid) Clone() *SquareGrid {
	c := *g
	c.values = slices.Clone(g.values)
	return &c
}

// Add adds the values of other to g, cell by cell.
func (g *SquareGrid) Add(other *SquareGrid) error {
	if !g.sameShape(other) {
		return ErrGridMismatch
	}
	floats.Add(g.values, other.values)
	return nil
}

func (g *SquareGrid) sameShape(other *SquareGrid) bool {
	return g.dimension == other.dimension && g.resolution == other.resolution
}

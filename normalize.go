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
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Normalize divides every cell by the sum of all cells, so that the grid
// sums to 1. A grid which sums to zero is left unchanged and Normalize
// returns ErrEmptyGrid.
func (g *SquareGrid) Normalize() error {
	return g.scaleBySum(1)
}

// NormalizeToMRD normalizes the grid and multiplies every cell by
// dimension², so that a uniform distribution gives the value 1 in every
// cell. A grid which sums to zero is left unchanged and NormalizeToMRD
// returns ErrEmptyGrid.
func (g *SquareGrid) NormalizeToMRD() error {
	return g.scaleBySum(float64(g.dimension * g.dimension))
}

func (g *SquareGrid) scaleBySum(total float64) error {
	sum := g.Sum()
	if sum == 0 {
		return ErrEmptyGrid
	}
	floats.Scale(total/sum, g.values)
	return nil
}

// Normalize normalizes the northern and southern grid independently, so
// that each non-empty grid sums to 1. Grids which sum to zero are left at
// zero; for each of them the returned error wraps ErrEmptyGrid.
func (p *ProjectionPair) Normalize() error {
	return p.each((*SquareGrid).Normalize)
}

// NormalizeToMRD rescales each non-empty grid to multiples of a random
// distribution: after the call, a uniform distribution of directions
// gives the value 1 in every cell. Empty grids are reported as in
// [ProjectionPair.Normalize].
func (p *ProjectionPair) NormalizeToMRD() error {
	return p.each((*SquareGrid).NormalizeToMRD)
}

func (p *ProjectionPair) each(normalize func(*SquareGrid) error) error {
	var errs []error
	for _, h := range []Hemisphere{North, South} {
		if err := normalize(p.Grid(h)); err != nil {
			errs = append(errs, fmt.Errorf("%s grid: %w", h, err))
		}
	}
	return errors.Join(errs...)
}

// Empty reports whether neither grid holds any weight.
func (p *ProjectionPair) Empty() bool {
	return p.North.Sum() == 0 && p.South.Sum() == 0
}

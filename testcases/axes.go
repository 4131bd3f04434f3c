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

package testcases

import "github.com/golang/geo/r3"

var axesCases = []TestCase{
	{
		Name:       "six_axes",
		Dimension:  8,
		Resolution: hemisphereResolution(8),
		Size:       64,
		Directions: []r3.Vector{
			{X: 1}, {X: -1},
			{Y: 1}, {Y: -1},
			{Z: 1}, {Z: -1},
		},
	},
	{
		// Directions on the diagonals |x| == |y| switch between the two
		// branches of the forward projection.
		Name:       "diagonals",
		Dimension:  12,
		Resolution: hemisphereResolution(12),
		Size:       64,
		Directions: []r3.Vector{
			dir(1, 1, 1), dir(-1, 1, 1), dir(-1, -1, 1), dir(1, -1, 1),
			dir(1, 1, -1), dir(-1, 1, -1), dir(-1, -1, -1), dir(1, -1, -1),
		},
	},
	{
		Name:       "equator",
		Dimension:  20,
		Resolution: hemisphereResolution(20),
		Size:       96,
		Directions: greatCircle(72),
	},
	{
		// The grid is smaller than the hemisphere, so that most
		// directions are clamped to the boundary cells.
		Name:       "undersized",
		Dimension:  10,
		Resolution: 0.2,
		Size:       64,
		Directions: greatCircle(36),
	},
}

// greatCircle returns n directions evenly spaced on the equator.
func greatCircle(n int) []r3.Vector {
	res := make([]r3.Vector, n)
	for i := range res {
		res[i] = polar(90, float64(i)*360/float64(n))
	}
	return res
}

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

var poleCases = []TestCase{
	{
		Name:       "north",
		Dimension:  10,
		Resolution: 0.2,
		Size:       64,
		Directions: []r3.Vector{{Z: 1}},
	},
	{
		Name:       "south",
		Dimension:  10,
		Resolution: 0.2,
		Size:       64,
		Directions: []r3.Vector{{Z: -1}},
	},
	{
		Name:       "both",
		Dimension:  16,
		Resolution: hemisphereResolution(16),
		Size:       64,
		Directions: []r3.Vector{{Z: 1}, {Z: -1}},
	},
	{
		Name:       "cap_north",
		Dimension:  32,
		Resolution: hemisphereResolution(32),
		Size:       128,
		Directions: polarCap(0, 15, 24),
	},
}

// polarCap returns n directions evenly spaced in azimuth on each of the
// cones with polar angles theta0, theta0+1, ..., theta1 degrees.
func polarCap(theta0, theta1 float64, n int) []r3.Vector {
	var res []r3.Vector
	for theta := theta0; theta <= theta1; theta++ {
		if theta == 0 {
			res = append(res, r3.Vector{Z: 1})
			continue
		}
		for i := range n {
			res = append(res, polar(theta, float64(i)*360/float64(n)))
		}
	}
	return res
}

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

// Package testcases defines named sets of pole directions which are shared
// by the tests of the projection engine and by the export tool.
package testcases

import (
	"math"

	"github.com/golang/geo/r3"
)

// TestCase defines a single projection test.
type TestCase struct {
	Name       string      // lowercase a-z, 0-9 and _ only
	Dimension  int         // cells along each side of the square grids
	Resolution float64     // cell edge length
	Size       int         // edge length of the stereographic image in pixels
	Directions []r3.Vector // the pole directions to bin
}

// MaxCoord returns the half-width of the square grids of the test case.
func (tc TestCase) MaxCoord() float64 {
	return float64(tc.Dimension) * tc.Resolution / 2
}

// hemisphereResolution returns the resolution for which a grid of the
// given dimension covers exactly one hemisphere.
func hemisphereResolution(dimension int) float64 {
	return 2 * math.Sqrt(math.Pi/2) / float64(dimension)
}

// dir is a helper to create a unit vector from x, y, z coordinates.
func dir(x, y, z float64) r3.Vector {
	return r3.Vector{X: x, Y: y, Z: z}.Normalize()
}

// polar returns the unit vector with polar angle theta (from +z) and
// azimuth phi, both in degrees.
func polar(theta, phi float64) r3.Vector {
	t := theta * math.Pi / 180
	p := phi * math.Pi / 180
	return r3.Vector{
		X: math.Sin(t) * math.Cos(p),
		Y: math.Sin(t) * math.Sin(p),
		Z: math.Cos(t),
	}
}

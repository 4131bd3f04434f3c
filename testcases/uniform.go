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

import (
	"math"
	"math/rand/v2"

	"github.com/golang/geo/r3"
)

var uniformCases = []TestCase{
	{
		Name:       "uniform_1k",
		Dimension:  8,
		Resolution: hemisphereResolution(8),
		Size:       64,
		Directions: Uniform(1000, 1),
	},
	{
		Name:       "uniform_100k",
		Dimension:  32,
		Resolution: hemisphereResolution(32),
		Size:       128,
		Directions: Uniform(100_000, 2),
	},
}

// Uniform returns n directions drawn uniformly from the unit sphere.
// The result only depends on n and seed.
func Uniform(n int, seed uint64) []r3.Vector {
	rng := rand.New(rand.NewPCG(seed, 0x9e3779b97f4a7c15))
	res := make([]r3.Vector, n)
	for i := range res {
		// Archimedes: z is uniform on [-1, 1] for the uniform measure.
		z := 2*rng.Float64() - 1
		phi := 2 * math.Pi * rng.Float64()
		rho := math.Sqrt(1 - z*z)
		res[i] = r3.Vector{X: rho * math.Cos(phi), Y: rho * math.Sin(phi), Z: z}
	}
	return res
}

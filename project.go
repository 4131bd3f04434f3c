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

	"github.com/golang/geo/r3"
	"seehuhn.de/go/geom/vec"
)

// Hemisphere selects one of the two grids of a projection.
type Hemisphere int

const (
	North Hemisphere = iota // z >= 0
	South                   // z < 0
)

func (h Hemisphere) String() string {
	switch h {
	case North:
		return "north"
	case South:
		return "south"
	default:
		return "invalid hemisphere"
	}
}

// ForwardProject maps the direction d onto the modified Lambert square of
// half-width maxCoord, which must be positive. Directions with d.Z >= 0
// belong to the northern hemisphere, all others to the southern one.
//
// d should have unit length; it is not normalized. A direction on the
// polar axis (d.X == d.Y == 0) maps to the origin. Coordinates which reach
// maxCoord are moved just inside the square.
//
// The usual modified Lambert mapping clamps only at the upper bound, since
// for a hemisphere-sized square its range is symmetric. ForwardProject
// departs from this and also sets coordinates below -maxCoord to
// -maxCoord, so that every result lies in [-maxCoord, maxCoord) even when
// maxCoord is smaller than [HemisphereMaxCoord]. For squares which cover
// the hemisphere it only absorbs rounding errors at the equator.
//
// The zero vector and vectors with non-finite components cannot be
// projected; ForwardProject returns ErrDegenerateDirection for these.
func ForwardProject(d r3.Vector, maxCoord float64) (vec.Vec2, Hemisphere, error) {
	if !isFinite(d) || d == (r3.Vector{}) {
		return vec.Vec2{}, North, ErrDegenerateDirection
	}

	// The sign of adjust lets one formula serve both hemispheres.
	h := North
	adjust := -1.0
	if d.Z < 0 {
		h = South
		adjust = 1
	}

	var c vec.Vec2
	if d.X != 0 || d.Y != 0 {
		r := math.Sqrt(max(2*(1+d.Z*adjust), 0))
		if math.Abs(d.X) >= math.Abs(d.Y) {
			s := math.Copysign(r, d.X)
			c.X = s * lambertC1
			c.Y = s * lambertC2 * math.Atan(d.Y/d.X)
		} else {
			s := math.Copysign(r, d.Y)
			c.X = s * lambertC2 * math.Atan(d.X/d.Y)
			c.Y = s * lambertC1
		}
	}

	c.X = clampCoord(c.X, maxCoord)
	c.Y = clampCoord(c.Y, maxCoord)
	return c, h, nil
}

func clampCoord(s, maxCoord float64) float64 {
	if s >= maxCoord {
		return maxCoord - coordEpsilon
	}
	if s < -maxCoord {
		return -maxCoord
	}
	return s
}

func isFinite(d r3.Vector) bool {
	return !math.IsNaN(d.X) && !math.IsInf(d.X, 0) &&
		!math.IsNaN(d.Y) && !math.IsInf(d.Y, 0) &&
		!math.IsNaN(d.Z) && !math.IsInf(d.Z, 0)
}

// InverseProject returns the unit direction in hemisphere h which
// [ForwardProject] maps to the square coordinate c. Coordinates outside
// the hemisphere square [-HemisphereMaxCoord, HemisphereMaxCoord]² are
// mapped onto the equator.
func InverseProject(c vec.Vec2, h Hemisphere) r3.Vector {
	zPole := 1.0
	if h == South {
		zPole = -1
	}
	if c.X == 0 && c.Y == 0 {
		return r3.Vector{Z: zPole}
	}

	a, b := c.X, c.Y // dominant and minor coordinate
	swapped := math.Abs(a) < math.Abs(b)
	if swapped {
		a, b = b, a
	}

	r := math.Abs(a) / lambertC1
	theta := b / a * (math.Pi / 4)
	z := zPole * max(1-r*r/2, 0)
	rho := math.Sqrt(max(1-z*z, 0))

	s := math.Copysign(rho, a)
	p, q := s*math.Cos(theta), s*math.Sin(theta)
	if swapped {
		return r3.Vector{X: q, Y: p, Z: z}
	}
	return r3.Vector{X: p, Y: q, Z: z}
}

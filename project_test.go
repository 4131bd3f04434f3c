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
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lambert/testcases"
)

func TestForwardProjectRange(t *testing.T) {
	dirs := testcases.Uniform(20000, 11)
	for _, maxCoord := range []float64{HemisphereMaxCoord, 1, 0.3} {
		for _, d := range dirs {
			c, _, err := ForwardProject(d, maxCoord)
			if err != nil {
				t.Fatalf("ForwardProject(%v): %v", d, err)
			}
			if c.X < -maxCoord || c.X >= maxCoord || c.Y < -maxCoord || c.Y >= maxCoord {
				t.Fatalf("ForwardProject(%v, %g) = %v, out of range", d, maxCoord, c)
			}
		}
	}
}

func TestForwardProjectHemisphere(t *testing.T) {
	tests := []struct {
		d    r3.Vector
		want Hemisphere
	}{
		{r3.Vector{Z: 1}, North},
		{r3.Vector{Z: -1}, South},
		{r3.Vector{X: 1}, North}, // the equator belongs to the north
		{r3.Vector{X: 0.6, Y: 0, Z: -0.8}, South},
		{r3.Vector{X: -0.6, Y: 0.8, Z: 0}, North},
	}
	for _, tt := range tests {
		_, h, err := ForwardProject(tt.d, HemisphereMaxCoord)
		if err != nil {
			t.Fatal(err)
		}
		if h != tt.want {
			t.Errorf("hemisphere of %v = %s, want %s", tt.d, h, tt.want)
		}
	}
}

func TestForwardProjectPoles(t *testing.T) {
	for _, d := range []r3.Vector{{Z: 1}, {Z: -1}, {X: math.Copysign(0, -1), Z: -1}} {
		c, _, err := ForwardProject(d, HemisphereMaxCoord)
		if err != nil {
			t.Fatalf("ForwardProject(%v): %v", d, err)
		}
		if c != (vec.Vec2{}) {
			t.Errorf("pole %v maps to %v, want origin", d, c)
		}
	}
}

func TestForwardProjectDegenerate(t *testing.T) {
	bad := []r3.Vector{
		{},
		{X: math.NaN(), Y: 0, Z: 1},
		{X: 0, Y: math.Inf(1), Z: 0},
		{X: 0, Y: 0, Z: math.Inf(-1)},
	}
	for _, d := range bad {
		c, _, err := ForwardProject(d, 1)
		if !errors.Is(err, ErrDegenerateDirection) {
			t.Errorf("ForwardProject(%v): got error %v", d, err)
		}
		if math.IsNaN(c.X) || math.IsNaN(c.Y) {
			t.Errorf("ForwardProject(%v) returned NaN coordinates", d)
		}
	}
}

func TestForwardProjectEquator(t *testing.T) {
	// The equator maps onto the boundary of the hemisphere square.
	tests := []struct {
		d    r3.Vector
		want vec.Vec2
	}{
		{r3.Vector{X: 1}, vec.Vec2{X: HemisphereMaxCoord, Y: 0}},
		{r3.Vector{X: -1}, vec.Vec2{X: -HemisphereMaxCoord, Y: 0}},
		{r3.Vector{Y: 1}, vec.Vec2{X: 0, Y: HemisphereMaxCoord}},
		{r3.Vector{Y: -1}, vec.Vec2{X: 0, Y: -HemisphereMaxCoord}},
		{r3.Vector{X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2}, vec.Vec2{X: HemisphereMaxCoord, Y: HemisphereMaxCoord}},
	}
	for _, tt := range tests {
		// Use a slightly larger square so that no clamping happens.
		c, _, err := ForwardProject(tt.d, 2)
		if err != nil {
			t.Fatal(err)
		}
		if c.Sub(tt.want).Length() > 1e-12 {
			t.Errorf("ForwardProject(%v) = %v, want %v", tt.d, c, tt.want)
		}
	}
}

func TestForwardProjectClamp(t *testing.T) {
	c, _, err := ForwardProject(r3.Vector{X: 1}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if c.X != 1-coordEpsilon {
		t.Errorf("upper coordinate not clamped: %g", c.X)
	}
	c, _, _ = ForwardProject(r3.Vector{X: -1}, 1)
	if c.X != -1 {
		t.Errorf("lower coordinate not clamped: %g", c.X)
	}

	// On the hemisphere square the lower clamp leaves the equator in place.
	c, _, _ = ForwardProject(r3.Vector{X: -1}, HemisphereMaxCoord)
	if math.Abs(c.X+HemisphereMaxCoord) > 1e-12 {
		t.Errorf("equator moved to %g, want %g", c.X, -HemisphereMaxCoord)
	}
}

func TestInverseProjectRoundTrip(t *testing.T) {
	for _, d := range testcases.Uniform(5000, 3) {
		c, h, err := ForwardProject(d, 2)
		if err != nil {
			t.Fatal(err)
		}
		back := InverseProject(c, h)
		if back.Sub(d).Norm() > 1e-9 {
			t.Fatalf("InverseProject(ForwardProject(%v)) = %v", d, back)
		}
	}
}

func TestInverseProjectPoles(t *testing.T) {
	if d := InverseProject(vec.Vec2{}, North); d != (r3.Vector{Z: 1}) {
		t.Errorf("north origin maps to %v", d)
	}
	if d := InverseProject(vec.Vec2{}, South); d != (r3.Vector{Z: -1}) {
		t.Errorf("south origin maps to %v", d)
	}
	d := InverseProject(vec.Vec2{X: 10, Y: 3}, North)
	if math.Abs(d.Z) > 1e-12 || math.Abs(d.Norm()-1) > 1e-12 {
		t.Errorf("point outside the square maps to %v, want equator", d)
	}
}

// TestCellCenterFixedPoint checks that the direction belonging to the
// centre of a cell is binned into that cell again.
func TestCellCenterFixedPoint(t *testing.T) {
	for _, dim := range []int{1, 4, 7, 16, 33} {
		g, err := NewSquareGrid(dim, HemisphereResolution(dim))
		if err != nil {
			t.Fatal(err)
		}
		for _, h := range []Hemisphere{North, South} {
			for row := range dim {
				for col := range dim {
					d := InverseProject(g.CellCenter(col, row), h)
					c, gotH, err := g.Project(d)
					if err != nil {
						t.Fatal(err)
					}
					gotCol, gotRow := g.Cell(c)
					if gotH != h || gotCol != col || gotRow != row {
						t.Errorf("dim %d: cell (%d, %d, %s) maps to (%d, %d, %s)",
							dim, col, row, h, gotCol, gotRow, gotH)
					}
				}
			}
		}
	}
}

func TestSquareIndexInRange(t *testing.T) {
	for _, dim := range []int{1, 2, 5, 64} {
		for _, res := range []float64{HemisphereResolution(dim), 0.01, 3} {
			g, _ := NewSquareGrid(dim, res)
			for _, d := range testcases.Uniform(2000, uint64(dim)) {
				c, _, _ := g.Project(d)
				if idx := g.SquareIndex(c); idx < 0 || idx >= dim*dim {
					t.Fatalf("dim %d res %g: index %d out of range", dim, res, idx)
				}
			}
		}
	}
}

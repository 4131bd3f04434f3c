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
	"strings"
	"testing"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/stat"

	"seehuhn.de/go/lambert/testcases"
)

func TestNormalize(t *testing.T) {
	dirs := testcases.Uniform(10_000, 21)
	pair, _, err := BuildProjection(dirs, 16, HemisphereResolution(16), nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := pair.Normalize(); err != nil {
		t.Fatal(err)
	}
	for _, h := range []Hemisphere{North, South} {
		if sum := pair.Grid(h).Sum(); math.Abs(sum-1) > 1e-9 {
			t.Errorf("%s grid sums to %g after Normalize", h, sum)
		}
	}
}

func TestNormalizeEmptyGrid(t *testing.T) {
	dirs := []r3.Vector{{Z: 1}, {X: 0.6, Z: 0.8}}
	tests := []struct {
		name  string
		total float64
		call  func(*ProjectionPair) error
	}{
		{"probability", 1, (*ProjectionPair).Normalize},
		{"mrd", 64, (*ProjectionPair).NormalizeToMRD},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair, _, err := BuildProjection(dirs, 8, HemisphereResolution(8), nil)
			if err != nil {
				t.Fatal(err)
			}

			err = tt.call(pair)
			if !errors.Is(err, ErrEmptyGrid) {
				t.Fatalf("got error %v, want ErrEmptyGrid", err)
			}
			if !strings.Contains(err.Error(), "south grid") {
				t.Errorf("error %q does not name the southern grid", err)
			}
			if strings.Contains(err.Error(), "north grid") {
				t.Errorf("error %q names the northern grid", err)
			}

			if sum := pair.North.Sum(); math.Abs(sum-tt.total) > 1e-9 {
				t.Errorf("northern grid sums to %g, want %g", sum, tt.total)
			}
			for i, v := range pair.South.Values() {
				if v != 0 {
					t.Fatalf("southern cell %d = %g, want 0", i, v)
				}
			}
		})
	}

	empty, _ := NewProjectionPair(3, 1)
	if !empty.Empty() {
		t.Error("new pair is not empty")
	}
	err := empty.Normalize()
	if !errors.Is(err, ErrEmptyGrid) {
		t.Errorf("empty pair: got %v", err)
	}
	for _, h := range []string{"north grid", "south grid"} {
		if err != nil && !strings.Contains(err.Error(), h) {
			t.Errorf("error %q does not mention %s", err, h)
		}
	}
}

func TestSquareGridNormalize(t *testing.T) {
	g, err := NewSquareGrid(4, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Normalize(); !errors.Is(err, ErrEmptyGrid) {
		t.Errorf("empty grid: got %v, want ErrEmptyGrid", err)
	}

	g.SetValue(1, 2, 3)
	g.SetValue(3, 0, 1)
	if err := g.Normalize(); err != nil {
		t.Fatal(err)
	}
	if v := g.Value(1, 2); v != 0.75 {
		t.Errorf("cell (1, 2) = %g, want 0.75", v)
	}
	if err := g.NormalizeToMRD(); err != nil {
		t.Fatal(err)
	}
	if v := g.Value(3, 0); v != 4 {
		t.Errorf("cell (3, 0) = %g, want 4", v)
	}
}

// TestNormalizeToMRDCellCenters places one direction at the centre of every
// cell of both grids; the result is the uniform distribution.
func TestNormalizeToMRDCellCenters(t *testing.T) {
	const dim = 4
	res := HemisphereResolution(dim)
	g, _ := NewSquareGrid(dim, res)

	var dirs []r3.Vector
	for _, h := range []Hemisphere{North, South} {
		for row := range dim {
			for col := range dim {
				dirs = append(dirs, InverseProject(g.CellCenter(col, row), h))
			}
		}
	}

	pair, stats, err := BuildProjection(dirs, dim, res, nil)
	if err != nil {
		t.Fatal(err)
	}
	if stats.North != dim*dim || stats.South != dim*dim {
		t.Fatalf("unexpected stats: %s", stats)
	}
	if err := pair.NormalizeToMRD(); err != nil {
		t.Fatal(err)
	}
	for _, h := range []Hemisphere{North, South} {
		for i, v := range pair.Grid(h).Values() {
			if math.Abs(v-1) > 1e-12 {
				t.Errorf("%s cell %d = %g, want 1", h, i, v)
			}
		}
	}
}

// TestNormalizeToMRDUniform checks that uniformly distributed directions
// give values close to 1 in every cell, since the projection preserves
// area.
func TestNormalizeToMRDUniform(t *testing.T) {
	n := 1_000_000
	if testing.Short() {
		n = 100_000
	}
	const dim = 8
	pair, _, err := BuildProjection(testcases.Uniform(n, 42), dim, HemisphereResolution(dim), nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := pair.NormalizeToMRD(); err != nil {
		t.Fatal(err)
	}

	// Each cell receives about n/(2*dim²) directions; allow five standard
	// deviations of the count.
	tol := 5 / math.Sqrt(float64(n)/(2*dim*dim))
	for _, h := range []Hemisphere{North, South} {
		values := pair.Grid(h).Values()
		if mean := stat.Mean(values, nil); math.Abs(mean-1) > 1e-9 {
			t.Errorf("%s: mean cell value %g, want 1", h, mean)
		}
		for i, v := range values {
			if math.Abs(v-1) > tol {
				t.Errorf("%s cell %d = %g, want 1±%g", h, i, v, tol)
			}
		}
	}
}

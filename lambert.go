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

// Package lambert bins crystallographic pole directions on the modified
// Lambert equal-area square and resamples the result as a stereographic
// pole figure.
//
// A [ProjectionPair] holds one square grid per hemisphere. Directions are
// added with [BuildProjection] or [ProjectionPair.AddDirection], the grids
// are rescaled with [ProjectionPair.Normalize] or
// [ProjectionPair.NormalizeToMRD], and [Resample] turns the pair into a
// square intensity image.
package lambert

//go:generate go run ./testcases/export

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// Errors reported by the projection engine.
var (
	ErrInvalidDimension    = errors.New("lambert: dimension must be positive")
	ErrInvalidResolution   = errors.New("lambert: resolution must be positive and finite")
	ErrDegenerateDirection = errors.New("lambert: degenerate direction")
	ErrEmptyGrid           = errors.New("lambert: cannot normalize a grid with zero sum")
	ErrGridMismatch        = errors.New("lambert: grids differ in dimension or resolution")
)

// DirectionError reports a direction which cannot be projected.
type DirectionError struct {
	Index int       // position in the input slice
	Dir   r3.Vector // the offending direction
}

func (e *DirectionError) Error() string {
	return fmt.Sprintf("direction %d (%g, %g, %g): %v",
		e.Index, e.Dir.X, e.Dir.Y, e.Dir.Z, ErrDegenerateDirection)
}

// Unwrap returns ErrDegenerateDirection.
func (e *DirectionError) Unwrap() error {
	return ErrDegenerateDirection
}

// checkShape validates the construction parameters of a square grid.
func checkShape(dimension int, resolution float64) error {
	if dimension <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDimension, dimension)
	}
	if !(resolution > 0) || math.IsInf(resolution, 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidResolution, resolution)
	}
	return nil
}

// Constants of the modified Lambert mapping.
const (
	// lambertC1 scales the dominant square coordinate, √π/2.
	lambertC1 = math.SqrtPi / 2

	// lambertC2 scales the angular square coordinate, 2/√π.
	lambertC2 = 2 / math.SqrtPi

	// HemisphereMaxCoord is √(π/2), the half-width of the square which
	// exactly covers one hemisphere. The equator maps onto its boundary.
	HemisphereMaxCoord = math.SqrtPi / math.Sqrt2
)

// Numerical tolerances.
const (
	// coordEpsilon is subtracted from square coordinates which reach the
	// upper boundary, so that they fall into the last cell.
	coordEpsilon = 1e-6

	// minPartition is the smallest number of directions given to a
	// single accumulation worker.
	minPartition = 4096

	// minRowBand is the smallest number of output rows given to a single
	// resampling worker.
	minRowBand = 8
)

// HemisphereResolution returns the cell edge length for which a grid of
// the given dimension spans exactly one hemisphere.
func HemisphereResolution(dimension int) float64 {
	return 2 * HemisphereMaxCoord / float64(dimension)
}

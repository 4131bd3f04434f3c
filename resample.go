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
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/golang/geo/r3"
	"seehuhn.de/go/geom/matrix"
)

// Image is a square stereographic intensity image in row-major order.
// Pixels whose centre lies outside the unit circle hold the value 0.
type Image struct {
	Size int
	Pix  []float64
}

// At returns the value of the pixel in column x and row y.
func (img *Image) At(x, y int) float64 {
	return img.Pix[y*img.Size+x]
}

// Inside reports whether the centre of pixel (x, y) lies within the unit
// circle of the stereographic projection.
func (img *Image) Inside(x, y int) bool {
	u, v := planeCoords(pixelToPlane(img.Size), x, y)
	return u*u+v*v <= 1
}

// Range returns the smallest and largest value of the pixels inside the
// unit circle. For an image without such pixels both values are 0.
func (img *Image) Range() (lo, hi float64) {
	m := pixelToPlane(img.Size)
	first := true
	for y := range img.Size {
		for x := range img.Size {
			u, v := planeCoords(m, x, y)
			if u*u+v*v > 1 {
				continue
			}
			val := img.Pix[y*img.Size+x]
			if first {
				lo, hi = val, val
				first = false
				continue
			}
			lo = min(lo, val)
			hi = max(hi, val)
		}
	}
	return lo, hi
}

// ResampleOptions controls [Resample].
// A nil pointer uses one worker per CPU and the EdgeWrap policy.
type ResampleOptions struct {
	Workers int // <= 0 means runtime.NumCPU()
	Edge    EdgePolicy
}

// Resample renders the pair as a size×size stereographic pole figure.
//
// Each pixel centre inside the unit circle is mapped back onto the sphere
// by the inverse stereographic projection. The pixel value is the mean of
// the interpolated grid values at that direction and at its antipode.
// Pixels outside the circle are left at 0.
//
// The pair is only read; rows of the output are computed concurrently.
func Resample(pair *ProjectionPair, size int, opts *ResampleOptions) (*Image, error) {
	if size <= 0 {
		return nil, fmt.Errorf("image size: %w: got %d", ErrInvalidDimension, size)
	}
	if opts == nil {
		opts = &ResampleOptions{}
	}

	img := &Image{
		Size: size,
		Pix:  make([]float64, size*size),
	}
	m := pixelToPlane(size)

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = max(min(workers, size/minRowBand), 1)
	band := (size + workers - 1) / workers

	var wg sync.WaitGroup
	for y0 := 0; y0 < size; y0 += band {
		y1 := min(y0+band, size)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := y0; y < y1; y++ {
				row := img.Pix[y*size : (y+1)*size]
				for x := range row {
					d, ok := StereographicDirection(planeCoords(m, x, y))
					if !ok {
						continue
					}
					row[x] = (pair.sample(d, opts.Edge) + pair.sample(d.Mul(-1), opts.Edge)) / 2
				}
			}
		}()
	}
	wg.Wait()

	return img, nil
}

// sample returns the interpolated value of the pair at direction d.
func (p *ProjectionPair) sample(d r3.Vector, edge EdgePolicy) float64 {
	c, h, err := ForwardProject(d, p.MaxCoord())
	if err != nil {
		return 0
	}
	return p.Grid(h).InterpolatedValue(c, edge)
}

// pixelToPlane returns the transformation from pixel coordinates of a
// size×size image to the plane of the stereographic projection, which
// maps the image square onto [-1, 1]².
func pixelToPlane(size int) matrix.Matrix {
	s := 2 / float64(size)
	return matrix.Matrix{s, 0, 0, s, -1, -1}
}

// planeCoords returns the plane coordinates of the centre of pixel (x, y).
func planeCoords(m matrix.Matrix, x, y int) (u, v float64) {
	px := float64(x) + 0.5
	py := float64(y) + 0.5
	u = m[0]*px + m[2]*py + m[4]
	v = m[1]*px + m[3]*py + m[5]
	return u, v
}

// StereographicDirection returns the unit direction which the
// stereographic projection maps to the plane point (u, v), or false if the
// point lies outside the unit circle.
func StereographicDirection(u, v float64) (r3.Vector, bool) {
	r2 := u*u + v*v
	if r2 > 1 || math.IsNaN(r2) {
		return r3.Vector{}, false
	}
	w := -(r2 - 1) / (r2 + 1)
	return r3.Vector{X: u * (1 + w), Y: v * (1 + w), Z: w}, true
}

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

// Package export encodes stereographic pole figures as grayscale PNG and
// PDF files.
package export

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"seehuhn.de/go/lambert"
)

// Gray maps the pole figure linearly onto gray levels, so that lo becomes
// black and hi becomes white. Pixels outside the unit circle are black.
func Gray(img *lambert.Image, lo, hi float64) *image.Gray {
	out := image.NewGray(image.Rect(0, 0, img.Size, img.Size))
	for y := range img.Size {
		row := out.Pix[y*out.Stride:]
		for x := range img.Size {
			if !img.Inside(x, y) {
				continue
			}
			row[x] = grayLevel(img.At(x, y), lo, hi)
		}
	}
	return out
}

func grayLevel(v, lo, hi float64) uint8 {
	if hi <= lo {
		return 0
	}
	t := (v - lo) / (hi - lo)
	return uint8(max(0, min(255, int(t*256))))
}

// Upscale enlarges src by an integer factor using bilinear interpolation.
func Upscale(src *image.Gray, factor int) *image.Gray {
	if factor <= 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// DrawRim paints the boundary circle of the pole figure onto dst, as a
// white anti-aliased ring of the given width in pixels.
func DrawRim(dst *image.Gray, width float32) {
	size := dst.Bounds().Dx()
	r := vector.NewRasterizer(size, size)

	c := float32(size) / 2
	outer := c
	inner := max(c-width, 0)
	addCircle(r, c, c, outer, false)
	addCircle(r, c, c, inner, true)

	r.Draw(dst, dst.Bounds(), image.NewUniform(color.Gray{Y: 255}), image.Point{})
}

// addCircle adds a circle to a vector.Rasterizer using cubic Bézier curves.
func addCircle(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const k = float32(circleKappa)
	kr := k * radius

	if clockwise {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	} else {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	}
	r.ClosePath()
}

// circleKappa is the control point distance for approximating a quarter
// circle of radius 1 with a cubic Bézier curve.
const circleKappa = 0.5522847498

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, img)
}

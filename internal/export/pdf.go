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

package export

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/lambert"
)

// PDFOptions controls WritePDF.
type PDFOptions struct {
	PixelSize float64 // edge length of one pixel in PDF points; 0 means 1
	Rim       bool    // stroke the boundary circle
}

// WritePDF writes the pole figure to a single-page PDF file. Every pixel
// inside the unit circle becomes a filled square with a gray level
// between lo (black) and hi (white).
func WritePDF(path string, img *lambert.Image, lo, hi float64, opts *PDFOptions) error {
	if opts == nil {
		opts = &PDFOptions{}
	}
	unit := opts.PixelSize
	if unit <= 0 {
		unit = 1
	}
	side := float64(img.Size) * unit

	paper := &pdf.Rectangle{
		URx: side,
		URy: side,
	}
	page, err := document.CreateSinglePage(path, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, side, side)
	page.Fill()

	// PDF origin is bottom-left; image rows run top to bottom.
	page.Transform(matrix.Matrix{unit, 0, 0, -unit, 0, side})

	for y := range img.Size {
		for x := range img.Size {
			if !img.Inside(x, y) {
				continue
			}
			g := grayLevel(img.At(x, y), lo, hi)
			if g == 0 {
				continue
			}
			page.SetFillColor(color.DeviceGray(float64(g) / 255))
			page.Rectangle(float64(x), float64(y), 1, 1)
			page.Fill()
		}
	}

	if opts.Rim {
		c := float64(img.Size) / 2
		page.SetStrokeColor(color.DeviceGray(1))
		page.SetLineWidth(1)
		strokeCircle(page, c, c, c-0.5)
	}

	return page.Close()
}

// strokeCircle strokes a circle using four cubic Bézier curves.
func strokeCircle(page *document.Page, cx, cy, r float64) {
	kr := circleKappa * r
	page.MoveTo(cx, cy-r)
	page.CurveTo(cx+kr, cy-r, cx+r, cy-kr, cx+r, cy)
	page.CurveTo(cx+r, cy+kr, cx+kr, cy+r, cx, cy+r)
	page.CurveTo(cx-kr, cy+r, cx-r, cy+kr, cx-r, cy)
	page.CurveTo(cx-r, cy-kr, cx-kr, cy-r, cx, cy-r)
	page.ClosePath()
	page.Stroke()
}

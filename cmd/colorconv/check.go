// seehuhn.de/go/color - convert colors between color spaces
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

package main

import (
	"fmt"
	"io"
	"math"

	"seehuhn.de/go/color"
	"seehuhn.de/go/color/internal/float"
)

type checkResult struct {
	tested     int
	mismatches int

	// maxXYZ is the largest difference between an XYZ value and the
	// result of converting it to Lab and back.
	maxXYZ float64
	worst  color.Srgb[uint8]
}

// checkRoundTrips converts 8-bit sRGB colors to XYZ and Lab and back.
// Only every step-th value of each component is used.
func checkRoundTrips(step int) *checkResult {
	res := &checkResult{}
	for r := 0; r < 256; r += step {
		for g := 0; g < 256; g += step {
			for b := 0; b < 256; b += step {
				c := color.NewSrgb(uint8(r), uint8(g), uint8(b))
				res.tested++

				xyz := c.Xyz()
				if color.XyzToSrgb[uint8](xyz) != c {
					res.mismatches++
				}

				lab := xyz.Lab()
				if color.LabToSrgb[uint8](lab) != c {
					res.mismatches++
				}

				xyz2 := lab.Xyz()
				d := max(math.Abs(xyz.X-xyz2.X), math.Abs(xyz.Y-xyz2.Y), math.Abs(xyz.Z-xyz2.Z))
				if d > res.maxXYZ {
					res.maxXYZ = d
					res.worst = c
				}
			}
		}
	}
	return res
}

func (res *checkResult) report(w io.Writer) {
	rate := 0.0
	if res.tested > 0 {
		// each color goes through two round trips
		rate = float.Round(100*float64(res.mismatches)/float64(2*res.tested), 2)
	}
	fmt.Fprintf(w, "tested %d colors, %d mismatches (%g%%)\n", res.tested, res.mismatches, rate)
	fmt.Fprintf(w, "largest XYZ -> Lab -> XYZ error: %s (%s)\n",
		float.Format(res.maxXYZ, 18), res.worst)
}

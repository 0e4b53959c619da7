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

package color

import (
	"golang.org/x/exp/constraints"

	"seehuhn.de/go/color/channel"
	"seehuhn.de/go/color/whitepoint"
)

// Yxy is a color in the CIE xyY color space, given by the chromaticity
// coordinates X, Y and the luminance Luma.
type Yxy[T constraints.Float, W whitepoint.WhitePoint] struct {
	X, Y, Luma T
}

// NewYxy returns the CIE xyY color with the given chromaticity and
// luminance.
func NewYxy[T constraints.Float, W whitepoint.WhitePoint](x, y, luma T) Yxy[T, W] {
	return Yxy[T, W]{X: x, Y: y, Luma: luma}
}

// WhitePoint returns the reference white of c.
func (c Yxy[T, W]) WhitePoint() W {
	var w W
	return w
}

// Add returns the component-wise sum of c and other.
// Note that the result is not the additive mixture of the two colors; use
// the [Xyz] representation for this.
func (c Yxy[T, W]) Add(other Yxy[T, W]) Yxy[T, W] {
	return Yxy[T, W]{
		X:    channel.Add(c.X, other.X),
		Y:    channel.Add(c.Y, other.Y),
		Luma: channel.Add(c.Luma, other.Luma),
	}
}

// Mul returns c with all components multiplied by s.
func (c Yxy[T, W]) Mul(s float64) Yxy[T, W] {
	return Yxy[T, W]{
		X:    channel.Scale(c.X, s),
		Y:    channel.Scale(c.Y, s),
		Luma: channel.Scale(c.Luma, s),
	}
}

// Xyz converts c to CIE XYZ.
func (c Yxy[T, W]) Xyz() Xyz[T, W] {
	return YxyToXyz[T](c)
}

func (c Yxy[T, W]) String() string {
	return "Yxy[" + c.WhitePoint().Name() + "]{" + formatChannels(c.X, c.Y, c.Luma) + "}"
}

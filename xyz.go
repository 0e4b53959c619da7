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

// Xyz is a color in the CIE 1931 XYZ color space, relative to the white
// point W.
type Xyz[T constraints.Float, W whitepoint.WhitePoint] struct {
	X, Y, Z T
}

// NewXyz returns the CIE XYZ color with the given tristimulus values.
func NewXyz[T constraints.Float, W whitepoint.WhitePoint](x, y, z T) Xyz[T, W] {
	return Xyz[T, W]{X: x, Y: y, Z: z}
}

// WhitePoint returns the reference white of c.
func (c Xyz[T, W]) WhitePoint() W {
	var w W
	return w
}

// Add returns the component-wise sum of c and other.
func (c Xyz[T, W]) Add(other Xyz[T, W]) Xyz[T, W] {
	return Xyz[T, W]{
		X: channel.Add(c.X, other.X),
		Y: channel.Add(c.Y, other.Y),
		Z: channel.Add(c.Z, other.Z),
	}
}

// Mul returns c with all components multiplied by s.
func (c Xyz[T, W]) Mul(s float64) Xyz[T, W] {
	return Xyz[T, W]{
		X: channel.Scale(c.X, s),
		Y: channel.Scale(c.Y, s),
		Z: channel.Scale(c.Z, s),
	}
}

// Lab converts c to CIE L*a*b*.
func (c Xyz[T, W]) Lab() Lab[T, W] {
	return XyzToLab[T](c)
}

// Yxy converts c to CIE xyY.
func (c Xyz[T, W]) Yxy() Yxy[T, W] {
	return XyzToYxy[T](c)
}

func (c Xyz[T, W]) String() string {
	return "Xyz[" + c.WhitePoint().Name() + "]{" + formatChannels(c.X, c.Y, c.Z) + "}"
}

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
	"math"

	"golang.org/x/exp/constraints"

	"seehuhn.de/go/color/channel"
	"seehuhn.de/go/color/whitepoint"
	"seehuhn.de/go/geom/vec"
)

// Lab is a color in the CIE 1976 L*a*b* color space, relative to the white
// point W.
//
// L is the lightness, in the range 0 (black) to 100 (diffuse white).
// A and B are the coordinates on the green-red and blue-yellow opponent
// axes.
type Lab[T constraints.Float, W whitepoint.WhitePoint] struct {
	L, A, B T
}

// NewLab returns the CIE L*a*b* color with the given components.
func NewLab[T constraints.Float, W whitepoint.WhitePoint](l, a, b T) Lab[T, W] {
	return Lab[T, W]{L: l, A: a, B: b}
}

// WhitePoint returns the reference white of c.
func (c Lab[T, W]) WhitePoint() W {
	var w W
	return w
}

// Brightness returns the lightness L*.
func (c Lab[T, W]) Brightness() T {
	return c.L
}

// AB returns the position of c in the a*b* plane.
func (c Lab[T, W]) AB() vec.Vec2 {
	return vec.Vec2{X: float64(c.A), Y: float64(c.B)}
}

// Chromacity returns the distance of c from the neutral axis.
func (c Lab[T, W]) Chromacity() T {
	return T(c.AB().Length())
}

// Hue returns the hue angle of c in radians.
// The result is in the range [0, 2π).  Neutral colors have hue 0.
func (c Lab[T, W]) Hue() T {
	h := math.Atan2(float64(c.B), float64(c.A))
	if h < 0 {
		h += 2 * math.Pi
	}
	res := T(h)
	if float64(res) >= 2*math.Pi {
		// A tiny negative angle can round up to a full turn.
		res = 0
	}
	return res
}

// OffsetChromacity returns a color with the same lightness and hue as c,
// whose chromacity is changed by delta.
//
// Neutral colors have no hue.  For these, c is returned unchanged.
func (c Lab[T, W]) OffsetChromacity(delta T) Lab[T, W] {
	ab := c.AB()
	l := ab.Length()
	if l == 0 {
		return c
	}
	ab = ab.Mul(1 + float64(delta)/l)
	return Lab[T, W]{L: c.L, A: T(ab.X), B: T(ab.Y)}
}

// Add returns the component-wise sum of c and other.
func (c Lab[T, W]) Add(other Lab[T, W]) Lab[T, W] {
	return Lab[T, W]{
		L: channel.Add(c.L, other.L),
		A: channel.Add(c.A, other.A),
		B: channel.Add(c.B, other.B),
	}
}

// Mul returns c with all components multiplied by s.
func (c Lab[T, W]) Mul(s float64) Lab[T, W] {
	return Lab[T, W]{
		L: channel.Scale(c.L, s),
		A: channel.Scale(c.A, s),
		B: channel.Scale(c.B, s),
	}
}

// Xyz converts c to CIE XYZ.
func (c Lab[T, W]) Xyz() Xyz[T, W] {
	return LabToXyz[T](c)
}

func (c Lab[T, W]) String() string {
	return "Lab[" + c.WhitePoint().Name() + "]{" + formatChannels(c.L, c.A, c.B) + "}"
}

const (
	labEpsilon = 216.0 / 24389.0 // (6/29)^3
	labKappa   = 24389.0 / 27.0  // (29/3)^3
	labDelta   = 16.0 / 116.0
)

// labF is the nonlinearity of the CIE L*a*b* definition.
func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return labKappa/116*t + labDelta
}

// labFInv is the inverse of labF.
func labFInv(f float64) float64 {
	f3 := f * f * f
	if f3 > labEpsilon {
		return f3
	}
	return (116*f - 16) / labKappa
}

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
	"fmt"
	"strconv"

	"seehuhn.de/go/color/channel"
	"seehuhn.de/go/color/internal/float"
)

// Rgb is a color given by linear light intensities for the sRGB primaries.
type Rgb[T channel.Channel] struct {
	R, G, B T
}

// NewRgb returns the linear RGB color with the given components.
func NewRgb[T channel.Channel](r, g, b T) Rgb[T] {
	return Rgb[T]{R: r, G: g, B: b}
}

// Add returns the component-wise sum of c and other.
func (c Rgb[T]) Add(other Rgb[T]) Rgb[T] {
	return Rgb[T]{
		R: channel.Add(c.R, other.R),
		G: channel.Add(c.G, other.G),
		B: channel.Add(c.B, other.B),
	}
}

// Mul returns c with all components multiplied by s.
func (c Rgb[T]) Mul(s float64) Rgb[T] {
	return Rgb[T]{
		R: channel.Scale(c.R, s),
		G: channel.Scale(c.G, s),
		B: channel.Scale(c.B, s),
	}
}

// Opaque returns c with full opacity.
func (c Rgb[T]) Opaque() Rgba[T] {
	return Rgba[T]{C: c, A: channel.FromFloat[T](1)}
}

// Srgb converts c to gamma encoded sRGB, keeping the channel type.
func (c Rgb[T]) Srgb() Srgb[T] {
	return RgbToSrgb[T](c)
}

// Xyz converts c to CIE XYZ.
func (c Rgb[T]) Xyz() Xyz[float64, D65] {
	return RgbToXyz[float64](c)
}

func (c Rgb[T]) String() string {
	return "Rgb{" + formatChannels(c.R, c.G, c.B) + "}"
}

// Srgb is a color in the sRGB color space, given by gamma encoded
// component values.
type Srgb[T channel.Channel] struct {
	R, G, B T
}

// NewSrgb returns the sRGB color with the given components.
func NewSrgb[T channel.Channel](r, g, b T) Srgb[T] {
	return Srgb[T]{R: r, G: g, B: b}
}

// Add returns the component-wise sum of c and other.
//
// The sum is computed on the encoded values.
func (c Srgb[T]) Add(other Srgb[T]) Srgb[T] {
	return Srgb[T]{
		R: channel.Add(c.R, other.R),
		G: channel.Add(c.G, other.G),
		B: channel.Add(c.B, other.B),
	}
}

// Mul returns c with all encoded components multiplied by s.
func (c Srgb[T]) Mul(s float64) Srgb[T] {
	return Srgb[T]{
		R: channel.Scale(c.R, s),
		G: channel.Scale(c.G, s),
		B: channel.Scale(c.B, s),
	}
}

// Opaque returns c with full opacity.
func (c Srgb[T]) Opaque() Srgba[T] {
	return Srgba[T]{C: c, A: channel.FromFloat[T](1)}
}

// Rgb converts c to linear RGB, keeping the channel type.
func (c Srgb[T]) Rgb() Rgb[T] {
	return SrgbToRgb[T](c)
}

// Xyz converts c to CIE XYZ.
func (c Srgb[T]) Xyz() Xyz[float64, D65] {
	return SrgbToXyz[float64](c)
}

// Lab converts c to CIE L*a*b*.
func (c Srgb[T]) Lab() Lab[float64, D65] {
	return SrgbToLab[float64](c)
}

func (c Srgb[T]) String() string {
	return "Srgb{" + formatChannels(c.R, c.G, c.B) + "}"
}

// Rgba is a linear RGB color with straight (not premultiplied) alpha.
type Rgba[T channel.Channel] struct {
	C Rgb[T]
	A T
}

// NewRgba returns the linear RGB color with the given components and
// opacity.
func NewRgba[T channel.Channel](r, g, b, a T) Rgba[T] {
	return Rgba[T]{C: Rgb[T]{R: r, G: g, B: b}, A: a}
}

func (c Rgba[T]) String() string {
	return "Rgba{" + formatChannels(c.C.R, c.C.G, c.C.B, c.A) + "}"
}

// Srgba is an sRGB color with straight (not premultiplied) alpha.
type Srgba[T channel.Channel] struct {
	C Srgb[T]
	A T
}

// NewSrgba returns the sRGB color with the given components and opacity.
func NewSrgba[T channel.Channel](r, g, b, a T) Srgba[T] {
	return Srgba[T]{C: Srgb[T]{R: r, G: g, B: b}, A: a}
}

func (c Srgba[T]) String() string {
	return "Srgba{" + formatChannels(c.C.R, c.C.G, c.C.B, c.A) + "}"
}

// formatChannels formats channel values for the String methods.
// Values of bounded types are shown as integers.
func formatChannels[T channel.Channel](values ...T) string {
	var buf []byte
	for i, v := range values {
		if i > 0 {
			buf = append(buf, ", "...)
		}
		if channel.Bounded[T]() {
			buf = strconv.AppendUint(buf, uint64(v), 10)
		} else {
			buf = append(buf, float.Format(float64(v), 6)...)
		}
	}
	return string(buf)
}

var _ fmt.Stringer = Srgb[uint8]{}

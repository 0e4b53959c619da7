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
	stdcolor "image/color"

	"seehuhn.de/go/color/channel"
)

// RGBA implements the [image/color.Color] interface.
func (c Srgb[T]) RGBA() (r, g, b, a uint32) {
	return to16(c.R), to16(c.G), to16(c.B), 0xffff
}

// RGBA implements the [image/color.Color] interface.
// The returned values are alpha-premultiplied.
func (c Srgba[T]) RGBA() (r, g, b, a uint32) {
	a = to16(c.A)
	r = to16(c.C.R) * a / 0xffff
	g = to16(c.C.G) * a / 0xffff
	b = to16(c.C.B) * a / 0xffff
	return r, g, b, a
}

func to16[T channel.Channel](v T) uint32 {
	return uint32(channel.FromFloat[uint16](channel.ToFloat(v)))
}

// SrgbModel returns the [image/color.Model] which converts colors to
// Srgb[T].  Transparency is discarded.
func SrgbModel[T channel.Channel]() stdcolor.Model {
	return stdcolor.ModelFunc(func(c stdcolor.Color) stdcolor.Color {
		if c, ok := c.(Srgb[T]); ok {
			return c
		}
		r, g, b, _ := unpremultiply(c)
		return Srgb[T]{
			R: channel.FromFloat[T](r),
			G: channel.FromFloat[T](g),
			B: channel.FromFloat[T](b),
		}
	})
}

// SrgbaModel returns the [image/color.Model] which converts colors to
// Srgba[T].
func SrgbaModel[T channel.Channel]() stdcolor.Model {
	return stdcolor.ModelFunc(func(c stdcolor.Color) stdcolor.Color {
		if c, ok := c.(Srgba[T]); ok {
			return c
		}
		r, g, b, a := unpremultiply(c)
		return Srgba[T]{
			C: Srgb[T]{
				R: channel.FromFloat[T](r),
				G: channel.FromFloat[T](g),
				B: channel.FromFloat[T](b),
			},
			A: channel.FromFloat[T](a),
		}
	})
}

// unpremultiply returns the straight color values of c, in the range [0, 1].
// Fully transparent colors are reported as transparent black.
func unpremultiply(c stdcolor.Color) (r, g, b, a float64) {
	r32, g32, b32, a32 := c.RGBA()
	if a32 == 0 {
		return 0, 0, 0, 0
	}
	a = float64(a32)
	return float64(r32) / a, float64(g32) / a, float64(b32) / a, a / 0xffff
}

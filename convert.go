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

// This file contains the conversions between the color types.
//
// All conversions are computed in float64.  The target type parameter U
// is given first, so that the source types can be inferred:
//
//	lab := color.SrgbToLab[float32](color.NewSrgb[uint8](255, 99, 71))
//
// Conversions involving RGB values use the sRGB primaries and the D65
// white point.  Results are not clamped, except where U is a bounded
// channel type.

// D65 is the white point of the RGB color types.
type D65 = whitepoint.D65

// ConvertRgb changes the channel type of a linear RGB color.
func ConvertRgb[U, T channel.Channel](c Rgb[T]) Rgb[U] {
	return Rgb[U]{
		R: channel.Convert[U](c.R),
		G: channel.Convert[U](c.G),
		B: channel.Convert[U](c.B),
	}
}

// ConvertSrgb changes the channel type of an sRGB color.
func ConvertSrgb[U, T channel.Channel](c Srgb[T]) Srgb[U] {
	return Srgb[U]{
		R: channel.Convert[U](c.R),
		G: channel.Convert[U](c.G),
		B: channel.Convert[U](c.B),
	}
}

// ConvertRgba changes the channel type of a linear RGB color with alpha.
func ConvertRgba[U, T channel.Channel](c Rgba[T]) Rgba[U] {
	return Rgba[U]{C: ConvertRgb[U](c.C), A: channel.Convert[U](c.A)}
}

// ConvertSrgba changes the channel type of an sRGB color with alpha.
func ConvertSrgba[U, T channel.Channel](c Srgba[T]) Srgba[U] {
	return Srgba[U]{C: ConvertSrgb[U](c.C), A: channel.Convert[U](c.A)}
}

// ConvertXyz changes the channel type of a CIE XYZ color.
func ConvertXyz[U, T constraints.Float, W whitepoint.WhitePoint](c Xyz[T, W]) Xyz[U, W] {
	return Xyz[U, W]{X: U(c.X), Y: U(c.Y), Z: U(c.Z)}
}

// ConvertYxy changes the channel type of a CIE xyY color.
func ConvertYxy[U, T constraints.Float, W whitepoint.WhitePoint](c Yxy[T, W]) Yxy[U, W] {
	return Yxy[U, W]{X: U(c.X), Y: U(c.Y), Luma: U(c.Luma)}
}

// ConvertLab changes the channel type of a CIE L*a*b* color.
func ConvertLab[U, T constraints.Float, W whitepoint.WhitePoint](c Lab[T, W]) Lab[U, W] {
	return Lab[U, W]{L: U(c.L), A: U(c.A), B: U(c.B)}
}

// SrgbToRgb removes the sRGB gamma encoding.
func SrgbToRgb[U, T channel.Channel](c Srgb[T]) Rgb[U] {
	return Rgb[U]{
		R: channel.FromFloat[U](srgbDecode(channel.ToFloat(c.R))),
		G: channel.FromFloat[U](srgbDecode(channel.ToFloat(c.G))),
		B: channel.FromFloat[U](srgbDecode(channel.ToFloat(c.B))),
	}
}

// RgbToSrgb applies the sRGB gamma encoding.
func RgbToSrgb[U, T channel.Channel](c Rgb[T]) Srgb[U] {
	return Srgb[U]{
		R: channel.FromFloat[U](srgbEncode(channel.ToFloat(c.R))),
		G: channel.FromFloat[U](srgbEncode(channel.ToFloat(c.G))),
		B: channel.FromFloat[U](srgbEncode(channel.ToFloat(c.B))),
	}
}

// SrgbaToRgba removes the sRGB gamma encoding.  Alpha is not changed.
func SrgbaToRgba[U, T channel.Channel](c Srgba[T]) Rgba[U] {
	return Rgba[U]{C: SrgbToRgb[U](c.C), A: channel.Convert[U](c.A)}
}

// RgbaToSrgba applies the sRGB gamma encoding.  Alpha is not changed.
func RgbaToSrgba[U, T channel.Channel](c Rgba[T]) Srgba[U] {
	return Srgba[U]{C: RgbToSrgb[U](c.C), A: channel.Convert[U](c.A)}
}

// RgbToXyz converts linear RGB to CIE XYZ.
func RgbToXyz[U constraints.Float, T channel.Channel](c Rgb[T]) Xyz[U, D65] {
	x, y, z := srgbToXYZ.Apply(channel.ToFloat(c.R), channel.ToFloat(c.G), channel.ToFloat(c.B))
	return Xyz[U, D65]{X: U(x), Y: U(y), Z: U(z)}
}

// XyzToRgb converts CIE XYZ to linear RGB.
func XyzToRgb[U channel.Channel, T constraints.Float](c Xyz[T, D65]) Rgb[U] {
	r, g, b := xyzToSRGB.Apply(float64(c.X), float64(c.Y), float64(c.Z))
	return Rgb[U]{
		R: channel.FromFloat[U](r),
		G: channel.FromFloat[U](g),
		B: channel.FromFloat[U](b),
	}
}

// SrgbToXyz converts sRGB to CIE XYZ.
func SrgbToXyz[U constraints.Float, T channel.Channel](c Srgb[T]) Xyz[U, D65] {
	return RgbToXyz[U](SrgbToRgb[float64](c))
}

// XyzToSrgb converts CIE XYZ to sRGB.
func XyzToSrgb[U channel.Channel, T constraints.Float](c Xyz[T, D65]) Srgb[U] {
	return RgbToSrgb[U](XyzToRgb[float64](c))
}

// XyzToYxy converts CIE XYZ to CIE xyY.
// The chromaticity of black, where X+Y+Z = 0, is reported as (0, 0).
func XyzToYxy[U, T constraints.Float, W whitepoint.WhitePoint](c Xyz[T, W]) Yxy[U, W] {
	x, y, z := float64(c.X), float64(c.Y), float64(c.Z)
	sum := x + y + z
	if sum == 0 {
		return Yxy[U, W]{Luma: U(y)}
	}
	return Yxy[U, W]{X: U(x / sum), Y: U(y / sum), Luma: U(y)}
}

// YxyToXyz converts CIE xyY to CIE XYZ.
// If the chromaticity coordinate Y is zero, the result is (0, 0, 0).
func YxyToXyz[U, T constraints.Float, W whitepoint.WhitePoint](c Yxy[T, W]) Xyz[U, W] {
	if c.Y == 0 {
		return Xyz[U, W]{}
	}
	x, y, luma := float64(c.X), float64(c.Y), float64(c.Luma)
	return Xyz[U, W]{
		X: U(x * luma / y),
		Y: U(luma),
		Z: U((1 - x - y) * luma / y),
	}
}

// XyzToLab converts CIE XYZ to CIE L*a*b*.
func XyzToLab[U, T constraints.Float, W whitepoint.WhitePoint](c Xyz[T, W]) Lab[U, W] {
	white := whitepoint.Of[W]()
	fx := labF(float64(c.X) / white.X)
	fy := labF(float64(c.Y) / white.Y)
	fz := labF(float64(c.Z) / white.Z)
	return Lab[U, W]{
		L: U(116*fy - 16),
		A: U(500 * (fx - fy)),
		B: U(200 * (fy - fz)),
	}
}

// LabToXyz converts CIE L*a*b* to CIE XYZ.
func LabToXyz[U, T constraints.Float, W whitepoint.WhitePoint](c Lab[T, W]) Xyz[U, W] {
	white := whitepoint.Of[W]()
	fy := (float64(c.L) + 16) / 116
	fx := fy + float64(c.A)/500
	fz := fy - float64(c.B)/200
	return Xyz[U, W]{
		X: U(labFInv(fx) * white.X),
		Y: U(labFInv(fy) * white.Y),
		Z: U(labFInv(fz) * white.Z),
	}
}

// YxyToLab converts CIE xyY to CIE L*a*b*.
func YxyToLab[U, T constraints.Float, W whitepoint.WhitePoint](c Yxy[T, W]) Lab[U, W] {
	return XyzToLab[U](YxyToXyz[float64](c))
}

// LabToYxy converts CIE L*a*b* to CIE xyY.
func LabToYxy[U, T constraints.Float, W whitepoint.WhitePoint](c Lab[T, W]) Yxy[U, W] {
	return XyzToYxy[U](LabToXyz[float64](c))
}

// RgbToYxy converts linear RGB to CIE xyY.
func RgbToYxy[U constraints.Float, T channel.Channel](c Rgb[T]) Yxy[U, D65] {
	return XyzToYxy[U](RgbToXyz[float64](c))
}

// YxyToRgb converts CIE xyY to linear RGB.
func YxyToRgb[U channel.Channel, T constraints.Float](c Yxy[T, D65]) Rgb[U] {
	return XyzToRgb[U](YxyToXyz[float64](c))
}

// RgbToLab converts linear RGB to CIE L*a*b*.
func RgbToLab[U constraints.Float, T channel.Channel](c Rgb[T]) Lab[U, D65] {
	return XyzToLab[U](RgbToXyz[float64](c))
}

// LabToRgb converts CIE L*a*b* to linear RGB.
func LabToRgb[U channel.Channel, T constraints.Float](c Lab[T, D65]) Rgb[U] {
	return XyzToRgb[U](LabToXyz[float64](c))
}

// SrgbToYxy converts sRGB to CIE xyY.
func SrgbToYxy[U constraints.Float, T channel.Channel](c Srgb[T]) Yxy[U, D65] {
	return XyzToYxy[U](SrgbToXyz[float64](c))
}

// YxyToSrgb converts CIE xyY to sRGB.
func YxyToSrgb[U channel.Channel, T constraints.Float](c Yxy[T, D65]) Srgb[U] {
	return XyzToSrgb[U](YxyToXyz[float64](c))
}

// SrgbToLab converts sRGB to CIE L*a*b*.
func SrgbToLab[U constraints.Float, T channel.Channel](c Srgb[T]) Lab[U, D65] {
	return XyzToLab[U](SrgbToXyz[float64](c))
}

// LabToSrgb converts CIE L*a*b* to sRGB.
func LabToSrgb[U channel.Channel, T constraints.Float](c Lab[T, D65]) Srgb[U] {
	return XyzToSrgb[U](LabToXyz[float64](c))
}

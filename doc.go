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

// Package color implements color values and the conversions between color
// models.
//
// The following color types are supported:
//   - [Rgb] holds linear light intensities for the sRGB primaries.
//   - [Srgb] holds gamma encoded sRGB values, as used in most image files.
//   - [Xyz] holds CIE 1931 XYZ tristimulus values.
//   - [Yxy] holds CIE xyY chromaticity and luminance.
//   - [Lab] holds CIE 1976 L*a*b* values.
//
// The RGB types are parametrized by a channel type, see
// [seehuhn.de/go/color/channel].  For example, Srgb[uint8] holds the usual
// 8-bit sRGB values, while Srgb[float32] holds values in the range [0, 1].
// The CIE types use floating point channels and are additionally
// parametrized by a white point from [seehuhn.de/go/color/whitepoint].
// Colors relative to different white points have different Go types.
// This package does not implement chromatic adaptation.
//
// Conversions are top-level functions, named after the source and target
// type, for example [SrgbToLab].  The first type parameter selects the
// channel type of the result.  Conversions to a bounded channel type clamp
// the result to the representable range; all other conversions preserve
// out-of-gamut values.
//
// RGB color spaces other than sRGB are described by [MatrixSpace] values.
package color

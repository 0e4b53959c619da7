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

import "math"

// TransferFunction maps between linear light and the display encoding of a
// single RGB component.
type TransferFunction interface {
	// Decode converts an encoded component value to linear light.
	Decode(v float64) float64

	// Encode converts a linear light value to the encoded representation.
	Encode(v float64) float64
}

// SRGBCurve is the piecewise transfer function of IEC 61966-2-1.
var SRGBCurve TransferFunction = srgbCurve{}

// LinearCurve is the identity transfer function.
var LinearCurve TransferFunction = linearCurve{}

type srgbCurve struct{}

// Decode implements the [TransferFunction] interface.
func (srgbCurve) Decode(v float64) float64 {
	return srgbDecode(v)
}

// Encode implements the [TransferFunction] interface.
func (srgbCurve) Encode(v float64) float64 {
	return srgbEncode(v)
}

func srgbDecode(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func srgbEncode(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

type linearCurve struct{}

func (linearCurve) Decode(v float64) float64 { return v }
func (linearCurve) Encode(v float64) float64 { return v }

// GammaCurve returns a pure power law transfer function.
// Decoding computes v^gamma.  Negative values are mapped through the
// mirror image of the curve, so that Decode(-v) = -Decode(v).
func GammaCurve(gamma float64) TransferFunction {
	return gammaCurve(gamma)
}

type gammaCurve float64

func (g gammaCurve) Decode(v float64) float64 {
	if v < 0 {
		return -math.Pow(-v, float64(g))
	}
	return math.Pow(v, float64(g))
}

func (g gammaCurve) Encode(v float64) float64 {
	if v < 0 {
		return -math.Pow(-v, 1/float64(g))
	}
	return math.Pow(v, 1/float64(g))
}

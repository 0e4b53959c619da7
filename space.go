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
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"seehuhn.de/go/color/channel"
	"seehuhn.de/go/color/whitepoint"
)

// MatrixSpace describes an RGB color space by its primaries, its white
// point and its transfer function.
//
// The conversion between linear RGB values and CIE XYZ is given by a pair
// of constant matrices.  Use [NewMatrixSpace] to construct a MatrixSpace
// for primaries which are not predefined.
type MatrixSpace struct {
	Name string

	// Red, Green and Blue are the chromaticities of the primaries.
	// The Luma field gives the luminance of the primary at full intensity.
	Red, Green, Blue Yxy[float64, whitepoint.D50]

	White    whitepoint.Reference
	Transfer TransferFunction

	toXYZ, fromXYZ Matrix
}

// ToXYZ returns the matrix which maps linear RGB values to CIE XYZ.
func (s *MatrixSpace) ToXYZ() Matrix {
	return s.toXYZ
}

// FromXYZ returns the matrix which maps CIE XYZ values to linear RGB.
func (s *MatrixSpace) FromXYZ() Matrix {
	return s.fromXYZ
}

func (s *MatrixSpace) String() string {
	return s.Name
}

// NewMatrixSpace returns a new RGB color space with the given primaries.
// The Luma values of the primaries are ignored; the stored primaries have
// the luminances implied by the white point.
func NewMatrixSpace(name string, red, green, blue Yxy[float64, whitepoint.D50], white whitepoint.Reference, transfer TransferFunction) (*MatrixSpace, error) {
	if white == nil {
		return nil, errors.New("NewMatrixSpace: missing white point")
	}
	if transfer == nil {
		transfer = LinearCurve
	}
	M, err := PrimaryMatrix(red, green, blue, white.XYZ())
	if err != nil {
		return nil, fmt.Errorf("NewMatrixSpace: %w", err)
	}
	red.Luma, green.Luma, blue.Luma = M[3], M[4], M[5]
	return &MatrixSpace{
		Name:     name,
		Red:      red,
		Green:    green,
		Blue:     blue,
		White:    white,
		Transfer: transfer,
		toXYZ:    M,
		fromXYZ:  M.Inv(),
	}, nil
}

// PrimaryMatrix computes the matrix which maps linear RGB values to CIE XYZ,
// for the given chromaticities of the primaries and the given white point.
// RGB value (1, 1, 1) is mapped to the white point.
func PrimaryMatrix(red, green, blue Yxy[float64, whitepoint.D50], white whitepoint.Tristimulus) (Matrix, error) {
	if red.Y == 0 || green.Y == 0 || blue.Y == 0 {
		return Matrix{}, errDegeneratePrimaries
	}
	column := func(c Yxy[float64, whitepoint.D50]) (float64, float64, float64) {
		return c.X / c.Y, 1, (1 - c.X - c.Y) / c.Y
	}
	var P Matrix
	P[0], P[3], P[6] = column(red)
	P[1], P[4], P[7] = column(green)
	P[2], P[5], P[8] = column(blue)
	if P.Det() == 0 {
		return Matrix{}, errDegeneratePrimaries
	}

	sr, sg, sb := P.Inv().Apply(white.X, white.Y, white.Z)
	return P.Mul(Diagonal(sr, sg, sb)), nil
}

var errDegeneratePrimaries = errors.New("degenerate primaries")

// WhitePointError is returned when a color space is used with color values
// which refer to a different white point.
type WhitePointError struct {
	Space string
	Have  string // white point of the color space
	Want  string // white point of the color value
}

func (err *WhitePointError) Error() string {
	return fmt.Sprintf("color space %q uses white point %s, not %s",
		err.Space, err.Have, err.Want)
}

func (s *MatrixSpace) checkWhite(w whitepoint.Reference) error {
	if !whitepoint.Same(s.White, w) {
		return &WhitePointError{Space: s.Name, Have: s.White.Name(), Want: w.Name()}
	}
	return nil
}

// SpaceToXyz converts encoded RGB values in the color space s to CIE XYZ.
// An error of type [*WhitePointError] is returned if the white point of s
// is not W.
func SpaceToXyz[U constraints.Float, W whitepoint.WhitePoint](s *MatrixSpace, r, g, b float64) (Xyz[U, W], error) {
	var w W
	if err := s.checkWhite(w); err != nil {
		return Xyz[U, W]{}, err
	}
	x, y, z := s.toXYZ.Apply(s.Transfer.Decode(r), s.Transfer.Decode(g), s.Transfer.Decode(b))
	return Xyz[U, W]{X: U(x), Y: U(y), Z: U(z)}, nil
}

// XyzToSpace converts a CIE XYZ value to encoded RGB values in the color
// space s.  The result is not clamped: colors outside the gamut of s give
// values outside the range [0, 1].
// An error of type [*WhitePointError] is returned if the white point of s
// is not W.
func XyzToSpace[T constraints.Float, W whitepoint.WhitePoint](s *MatrixSpace, c Xyz[T, W]) (r, g, b float64, err error) {
	var w W
	if err := s.checkWhite(w); err != nil {
		return 0, 0, 0, err
	}
	r, g, b = s.fromXYZ.Apply(float64(c.X), float64(c.Y), float64(c.Z))
	return s.Transfer.Encode(r), s.Transfer.Encode(g), s.Transfer.Encode(b), nil
}

// SpaceToSrgb converts encoded RGB values in the D65 color space s to sRGB.
// Colors outside the sRGB gamut are clamped if T is a bounded type.
func SpaceToSrgb[T channel.Channel](s *MatrixSpace, r, g, b float64) (Srgb[T], error) {
	c, err := SpaceToXyz[float64, whitepoint.D65](s, r, g, b)
	if err != nil {
		return Srgb[T]{}, err
	}
	return XyzToSrgb[T](c), nil
}

// SRGB is the sRGB color space of IEC 61966-2-1.
var SRGB = &MatrixSpace{
	Name:     "sRGB",
	Red:      Yxy[float64, whitepoint.D50]{X: 0.64, Y: 0.33, Luma: 0.2126729},
	Green:    Yxy[float64, whitepoint.D50]{X: 0.30, Y: 0.60, Luma: 0.7151522},
	Blue:     Yxy[float64, whitepoint.D50]{X: 0.15, Y: 0.06, Luma: 0.0721750},
	White:    whitepoint.D65{},
	Transfer: SRGBCurve,
	toXYZ:    srgbToXYZ,
	fromXYZ:  xyzToSRGB,
}

var (
	srgbToXYZ = Matrix{
		0.4124564, 0.3575761, 0.1804375,
		0.2126729, 0.7151522, 0.0721750,
		0.0193339, 0.1191920, 0.9503041,
	}
	xyzToSRGB = Matrix{
		3.2404542, -1.5371385, -0.4985314,
		-0.9692660, 1.8760108, 0.0415560,
		0.0556434, -0.2040259, 1.0572252,
	}
)

// AdobeRGB is the Adobe RGB (1998) color space.
var AdobeRGB = &MatrixSpace{
	Name:     "Adobe RGB (1998)",
	Red:      Yxy[float64, whitepoint.D50]{X: 0.64, Y: 0.33, Luma: 0.2973769},
	Green:    Yxy[float64, whitepoint.D50]{X: 0.21, Y: 0.71, Luma: 0.6273491},
	Blue:     Yxy[float64, whitepoint.D50]{X: 0.15, Y: 0.06, Luma: 0.0752741},
	White:    whitepoint.D65{},
	Transfer: GammaCurve(563.0 / 256.0),
	toXYZ: Matrix{
		0.5767309, 0.1855540, 0.1881852,
		0.2973769, 0.6273491, 0.0752741,
		0.0270343, 0.0706872, 0.9911085,
	},
	fromXYZ: Matrix{
		2.0413691, -0.5649466, -0.3446945,
		-0.9692661, 1.8760109, 0.0415560,
		0.0134473, -0.1183897, 1.0154096,
	},
}

// DisplayP3 is the Display P3 color space, which combines the DCI-P3
// primaries with the D65 white point and the sRGB transfer function.
var DisplayP3 = &MatrixSpace{
	Name:     "Display P3",
	Red:      Yxy[float64, whitepoint.D50]{X: 0.680, Y: 0.320, Luma: 0.2290036},
	Green:    Yxy[float64, whitepoint.D50]{X: 0.265, Y: 0.690, Luma: 0.6917267},
	Blue:     Yxy[float64, whitepoint.D50]{X: 0.150, Y: 0.060, Luma: 0.0792697},
	White:    whitepoint.D65{},
	Transfer: SRGBCurve,
	toXYZ: Matrix{
		0.4866327, 0.2656632, 0.1981742,
		0.2290036, 0.6917267, 0.0792697,
		0.0000000, 0.0451126, 1.0437174,
	},
	fromXYZ: Matrix{
		2.4931805, -0.9312656, -0.4026597,
		-0.8295031, 1.7626942, 0.0236250,
		0.0358536, -0.0761889, 0.9570926,
	},
}

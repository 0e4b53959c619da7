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

// Package whitepoint defines reference white points for the CIE color
// models.
//
// Each white point is a zero-size tag type, for example [D65].  Color types
// use these tags as type parameters, so that values which refer to different
// white points have different Go types and cannot be combined by accident.
// The tristimulus values of all white points are normalized to Y = 1.
//
// The values are the CIE 1931 2° observer values as tabulated by
// http://www.brucelindbloom.com/index.html?Eqn_ChromAdapt.html .
package whitepoint

import (
	"slices"

	"golang.org/x/exp/maps"
)

// Tristimulus holds the CIE 1931 XYZ coordinates of a white point.
type Tristimulus struct {
	X, Y, Z float64
}

// Chromaticity returns the CIE xy chromaticity coordinates.
// For the degenerate value (0, 0, 0), the result is (0, 0).
func (t Tristimulus) Chromaticity() (x, y float64) {
	sum := t.X + t.Y + t.Z
	if sum == 0 {
		return 0, 0
	}
	return t.X / sum, t.Y / sum
}

// Reference describes a white point at run time.
type Reference interface {
	// Name returns the conventional name of the illuminant, e.g. "D65".
	Name() string

	// XYZ returns the tristimulus values of the white point.
	XYZ() Tristimulus
}

// WhitePoint is the type constraint satisfied by the white point tags.
type WhitePoint interface {
	comparable
	Reference
}

// Of returns the tristimulus values of the white point W.
func Of[W WhitePoint]() Tristimulus {
	var w W
	return w.XYZ()
}

// Same reports whether a and b describe the same white point.
func Same(a, b Reference) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Name() == b.Name() && a.XYZ() == b.XYZ()
}

// A is CIE standard illuminant A (incandescent light, 2856 K).
type A struct{}

func (A) Name() string     { return "A" }
func (A) XYZ() Tristimulus { return Tristimulus{1.09850, 1, 0.35585} }

// C is CIE illuminant C (average daylight, obsolete).
type C struct{}

func (C) Name() string     { return "C" }
func (C) XYZ() Tristimulus { return Tristimulus{0.98074, 1, 1.18232} }

// D50 is CIE illuminant D50 (horizon light, 5003 K).
// This is the profile connection space white point of ICC profiles.
type D50 struct{}

func (D50) Name() string     { return "D50" }
func (D50) XYZ() Tristimulus { return Tristimulus{0.96422, 1, 0.82521} }

// D55 is CIE illuminant D55 (mid-morning daylight, 5503 K).
type D55 struct{}

func (D55) Name() string     { return "D55" }
func (D55) XYZ() Tristimulus { return Tristimulus{0.95682, 1, 0.92149} }

// D65 is CIE illuminant D65 (noon daylight, 6504 K).
// This is the white point of sRGB, Adobe RGB and Display P3.
type D65 struct{}

func (D65) Name() string     { return "D65" }
func (D65) XYZ() Tristimulus { return Tristimulus{0.95047, 1, 1.08883} }

// D75 is CIE illuminant D75 (north sky daylight, 7504 K).
type D75 struct{}

func (D75) Name() string     { return "D75" }
func (D75) XYZ() Tristimulus { return Tristimulus{0.94972, 1, 1.22638} }

// E is the equal-energy illuminant.
type E struct{}

func (E) Name() string     { return "E" }
func (E) XYZ() Tristimulus { return Tristimulus{1, 1, 1} }

// F2 is CIE illuminant F2 (cool white fluorescent).
type F2 struct{}

func (F2) Name() string     { return "F2" }
func (F2) XYZ() Tristimulus { return Tristimulus{0.99187, 1, 0.67395} }

// F7 is CIE illuminant F7 (broad-band daylight fluorescent).
type F7 struct{}

func (F7) Name() string     { return "F7" }
func (F7) XYZ() Tristimulus { return Tristimulus{0.95044, 1, 1.08755} }

// F11 is CIE illuminant F11 (narrow-band white fluorescent).
type F11 struct{}

func (F11) Name() string     { return "F11" }
func (F11) XYZ() Tristimulus { return Tristimulus{1.00966, 1, 0.64370} }

var registry = map[string]Reference{
	"A":   A{},
	"C":   C{},
	"D50": D50{},
	"D55": D55{},
	"D65": D65{},
	"D75": D75{},
	"E":   E{},
	"F2":  F2{},
	"F7":  F7{},
	"F11": F11{},
}

// Lookup returns the white point with the given name.
func Lookup(name string) (Reference, bool) {
	ref, ok := registry[name]
	return ref, ok
}

// Names returns the names of all known white points, in sorted order.
func Names() []string {
	names := maps.Keys(registry)
	slices.Sort(names)
	return names
}

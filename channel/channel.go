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

// Package channel implements the numeric types which hold a single color
// component.
//
// A channel type is either an unsigned integer type or a floating point
// type.  Unsigned integer types are bounded: the largest representable value
// stands for 1.0 and zero stands for 0.0.  Floating point types are
// unbounded and hold the component value itself, so that out-of-gamut
// values and values outside [0, 1] survive conversions unchanged.
//
// All conversions go through float64, which is the canonical representation
// of a channel value.  Conversion to a bounded type clamps to the
// representable range and rounds to the nearest value.
package channel

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Channel is the set of types which can be used for color components.
type Channel interface {
	constraints.Unsigned | constraints.Float
}

// Bounded reports whether T is an integer type with a fixed range.
func Bounded[T Channel]() bool {
	var x T
	x--
	return x > 0
}

// Max returns the canonical value of the largest value of T.
// For bounded types this is 2^n-1, for floating point types it is 1.
func Max[T Channel]() float64 {
	var x T
	x--
	if x > 0 {
		return float64(x)
	}
	return 1
}

// ToFloat returns the canonical float64 value of v.
// Bounded types are mapped to the range [0, 1].
func ToFloat[T Channel](v T) float64 {
	if Bounded[T]() {
		return float64(v) / Max[T]()
	}
	return float64(v)
}

// FromFloat converts a canonical value to the representation T.
//
// For bounded types x is clamped to [0, 1] and rounded to the nearest
// representable value; NaN is mapped to 0.  For floating point types x is
// converted unchanged.
func FromFloat[T Channel](x float64) T {
	if !Bounded[T]() {
		return T(x)
	}
	var top T
	top--
	switch {
	case !(x > 0): // this includes NaN
		return 0
	case x >= 1:
		return top
	}
	y := math.Round(x * float64(top))
	if y >= float64(top) {
		// float64(top) may be rounded up for 64-bit types
		return top
	}
	return T(y)
}

// Convert changes the representation of a channel value.
func Convert[U, T Channel](v T) U {
	if u, ok := any(v).(U); ok {
		return u
	}
	return FromFloat[U](ToFloat(v))
}

// Add returns the sum of two channel values.
// The result of a bounded type saturates instead of wrapping around.
func Add[T Channel](a, b T) T {
	return FromFloat[T](ToFloat(a) + ToFloat(b))
}

// Scale returns the channel value a multiplied by s.
// The result of a bounded type is clamped to the representable range.
func Scale[T Channel](a T, s float64) T {
	return FromFloat[T](ToFloat(a) * s)
}

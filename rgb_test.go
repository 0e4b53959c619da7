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
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/color/whitepoint"
)

func TestArithmetic(t *testing.T) {
	a := Srgb[uint8]{200, 100, 0}
	b := Srgb[uint8]{100, 100, 10}
	if got := a.Add(b); got != (Srgb[uint8]{255, 200, 10}) {
		t.Errorf("Add: %s", got)
	}
	if got := a.Mul(0.5); got != (Srgb[uint8]{100, 50, 0}) {
		t.Errorf("Mul: %s", got)
	}
	if got := a.Mul(-1); got != (Srgb[uint8]{}) {
		t.Errorf("Mul(-1): %s", got)
	}

	r := Rgb[float32]{0.5, 0.25, 1}
	if got := r.Add(r); got != (Rgb[float32]{1, 0.5, 2}) {
		t.Errorf("Add: %s", got)
	}
	if got := r.Mul(4); got != (Rgb[float32]{2, 1, 4}) {
		t.Errorf("Mul: %s", got)
	}

	x := NewXyz[float64, D65](0.5, 0.25, 0.125)
	if got := x.Add(x).Mul(0.5); got != x {
		t.Errorf("Xyz: %s", got)
	}
	y := NewYxy[float64, D65](0.5, 0.25, 0.125)
	if got := y.Add(y).Mul(0.5); got != y {
		t.Errorf("Yxy: %s", got)
	}
	l := NewLab[float64, D65](50, -20, 10)
	if got := l.Add(l).Mul(0.5); got != l {
		t.Errorf("Lab: %s", got)
	}
	if got := l.Mul(-1); got != (Lab[float64, D65]{-50, 20, -10}) {
		t.Errorf("Lab: %s", got)
	}
}

// TestArithmeticChannels checks that arithmetic on bounded channels
// agrees with arithmetic on the equivalent float values.
func TestArithmeticChannels(t *testing.T) {
	a := Rgb[uint16]{1000, 30000, 65535}
	b := Rgb[uint16]{2000, 40000, 1}

	want := ConvertRgb[uint16](ConvertRgb[float64](a).Add(ConvertRgb[float64](b)))
	if d := cmp.Diff(want, a.Add(b)); d != "" {
		t.Error(d)
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		in   fmt.Stringer
		want string
	}{
		{NewSrgb[uint8](255, 99, 71), "Srgb{255, 99, 71}"},
		{NewSrgb[float64](1, 0.5, 0), "Srgb{1, 0.5, 0}"},
		{NewRgb[uint16](0, 1, 65535), "Rgb{0, 1, 65535}"},
		{NewSrgba[uint8](1, 2, 3, 4), "Srgba{1, 2, 3, 4}"},
		{NewRgba[float32](0.25, 0, 1, 0.5), "Rgba{0.25, 0, 1, 0.5}"},
		{NewXyz[float64, D65](0.95047, 1, 1.08883), "Xyz[D65]{0.95047, 1, 1.08883}"},
		{NewYxy[float64, whitepoint.D50](0.3457, 0.3585, 1), "Yxy[D50]{0.3457, 0.3585, 1}"},
		{NewLab[float64, D65](53.2408, -0.0000001, 67.2), "Lab[D65]{53.2408, 0, 67.2}"},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Errorf("got %q, want %q", got, c.want)
		}
	}
}

func TestWhitePointMethod(t *testing.T) {
	var c Lab[float64, whitepoint.D50]
	if name := c.WhitePoint().Name(); name != "D50" {
		t.Errorf("WhitePoint() = %s", name)
	}
	if c.WhitePoint() != (whitepoint.D50{}) {
		t.Error("wrong white point")
	}
	var x Xyz[float32, D65]
	var y Yxy[float32, D65]
	if x.WhitePoint() != y.WhitePoint() {
		t.Error("white points differ")
	}
}

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

package float

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		x         float64
		precision int
		want      string
	}{
		{0, 3, "0"},
		{1, 3, "1"},
		{-1, 3, "-1"},
		{0.5, 3, "0.5"},
		{-0.25, 3, "-0.25"},
		{1.5, 6, "1.5"},
		{100, 2, "100"},
		{0.95047, 6, "0.95047"},
		{1.0000001, 6, "1"},
		{-0.0000001, 6, "0"},
		{math.Copysign(0, -1), 2, "0"},
		{2.0 / 3.0, 4, "0.6667"},
		{53.24079, 2, "53.24"},
	}
	for _, c := range cases {
		got := Format(c.x, c.precision)
		if got != c.want {
			t.Errorf("Format(%g, %d) = %q, want %q", c.x, c.precision, got, c.want)
		}
	}
}

func TestRound(t *testing.T) {
	cases := []struct {
		x      float64
		digits int
		want   float64
	}{
		{1.23456, 2, 1.23},
		{1.235001, 2, 1.24},
		{-0.0004, 3, 0},
		{99.99999, 3, 100},
	}
	for _, c := range cases {
		got := Round(c.x, c.digits)
		if got != c.want {
			t.Errorf("Round(%g, %d) = %g, want %g", c.x, c.digits, got, c.want)
		}
	}
}

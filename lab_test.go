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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/color/whitepoint"
)

func TestHue(t *testing.T) {
	cases := []struct {
		a, b float64
		want float64
	}{
		{1, 0, 0},
		{0, 1, math.Pi / 2},
		{-1, 0, math.Pi},
		{0, -1, 3 * math.Pi / 2},
		{1, 1, math.Pi / 4},
		{0, 0, 0},
		{1, -1e-300, 0},
	}
	for _, c := range cases {
		lab := NewLab[float64, D65](50, c.a, c.b)
		got := lab.Hue()
		if math.Abs(got-c.want) > 1e-12 {
			t.Errorf("Hue(%g, %g) = %g, want %g", c.a, c.b, got, c.want)
		}
		if got < 0 || got >= 2*math.Pi {
			t.Errorf("Hue(%g, %g) = %g is out of range", c.a, c.b, got)
		}
	}
}

func TestHueFloat32(t *testing.T) {
	lab := NewLab[float32, whitepoint.D50](50, 1, -1e-10)
	h := lab.Hue()
	if h < 0 || float64(h) >= 2*math.Pi {
		t.Errorf("Hue() = %g is out of range", h)
	}
}

func TestChromacity(t *testing.T) {
	lab := Lab[float64, D65]{L: 50, A: 3, B: 4}
	if got := lab.Chromacity(); got != 5 {
		t.Errorf("Chromacity() = %g, want 5", got)
	}
	if got := lab.Brightness(); got != 50 {
		t.Errorf("Brightness() = %g, want 50", got)
	}
	if got := (Lab[float32, D65]{L: 50, A: -3, B: -4}).Chromacity(); got != 5 {
		t.Errorf("Chromacity() = %g, want 5", got)
	}
}

func TestOffsetChromacity(t *testing.T) {
	lab := Lab[float64, D65]{L: 50, A: 3, B: 4}
	cases := []struct {
		delta float64
		want  Lab[float64, D65]
	}{
		{0, lab},
		{5, Lab[float64, D65]{50, 6, 8}},
		{-2.5, Lab[float64, D65]{50, 1.5, 2}},
		{-5, Lab[float64, D65]{50, 0, 0}},
	}
	for _, c := range cases {
		got := lab.OffsetChromacity(c.delta)
		if d := cmp.Diff(c.want, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
			t.Errorf("OffsetChromacity(%g): %s", c.delta, d)
		}
		if math.Abs(got.Chromacity()-math.Abs(5+c.delta)) > 1e-12 {
			t.Errorf("OffsetChromacity(%g): chromacity %g", c.delta, got.Chromacity())
		}
	}

	// The hue is preserved.
	got := lab.OffsetChromacity(7)
	if math.Abs(got.Hue()-lab.Hue()) > 1e-12 {
		t.Errorf("hue changed from %g to %g", lab.Hue(), got.Hue())
	}
}

func TestOffsetChromacitySmall(t *testing.T) {
	for _, c := range []float64{5e-10, 1e-15, 1e-300} {
		lab := NewLab[float64, D65](50, c, 0)
		got := lab.OffsetChromacity(10)
		if math.Abs(got.Chromacity()-10) > 1e-9 {
			t.Errorf("chroma %g: OffsetChromacity(10) has chromacity %g", c, got.Chromacity())
		}
		if got.Hue() != 0 || got.L != 50 {
			t.Errorf("chroma %g: OffsetChromacity(10) = %s", c, got)
		}
	}
}

func TestOffsetChromacityNeutral(t *testing.T) {
	gray := NewLab[float64, D65](40, 0, 0)
	got := gray.OffsetChromacity(10)
	if got != gray {
		t.Errorf("OffsetChromacity on a neutral color gave %s", got)
	}
	if math.IsNaN(got.A) || math.IsNaN(got.B) {
		t.Error("NaN result")
	}
}

func TestAB(t *testing.T) {
	lab := NewLab[float32, D65](10, 0.5, -2)
	ab := lab.AB()
	if ab.X != 0.5 || ab.Y != -2 {
		t.Errorf("AB() = %v", ab)
	}
}

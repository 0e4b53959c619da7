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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestIdentityMatrix(t *testing.T) {
	for i, A := range testMatrices {
		t.Run(fmt.Sprintf("mat%d", i), func(t *testing.T) {
			B := A.Mul(IdentityMatrix)
			if d := cmp.Diff(A, B); d != "" {
				t.Error(d)
			}
			C := IdentityMatrix.Mul(A)
			if d := cmp.Diff(A, C); d != "" {
				t.Error(d)
			}
		})
	}
}

func TestMatrixInverse1(t *testing.T) {
	for i, A := range testMatrices {
		t.Run(fmt.Sprintf("mat%d", i), func(t *testing.T) {
			Ainv := A.Inv()

			B := Ainv.Mul(A)
			if d := cmp.Diff(IdentityMatrix, B, cmpopts.EquateApprox(1e-6, 1e-6)); d != "" {
				t.Error(d)
			}

			B = A.Mul(Ainv)
			if d := cmp.Diff(IdentityMatrix, B, cmpopts.EquateApprox(1e-6, 1e-6)); d != "" {
				t.Error(d)
			}
		})
	}
}

func TestMatrixInverse2(t *testing.T) {
	for i, A := range testMatrices {
		t.Run(fmt.Sprintf("mat%d", i), func(t *testing.T) {
			Ainv := A.Inv()
			B := Ainv.Inv()
			if d := cmp.Diff(A, B, cmpopts.EquateApprox(1e-6, 1e-6)); d != "" {
				t.Error(d)
			}
		})
	}
}

func TestMatrixApply(t *testing.T) {
	A := Matrix{1, 2, 3, 4, 5, 6, 7, 8, 10}
	B := Matrix{0, 1, 0, 0, 0, 1, 1, 0, 0}

	x, y, z := 0.5, -1.0, 2.0
	x1, y1, z1 := B.Apply(x, y, z)
	x2, y2, z2 := A.Apply(x1, y1, z1)
	x3, y3, z3 := A.Mul(B).Apply(x, y, z)

	got := []float64{x3, y3, z3}
	want := []float64{x2, y2, z2}
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Error(d)
	}
}

func TestMatrixDet(t *testing.T) {
	cases := []struct {
		M    Matrix
		want float64
	}{
		{IdentityMatrix, 1},
		{Diagonal(2, 3, 4), 24},
		{Matrix{1, 2, 3, 4, 5, 6, 7, 8, 9}, 0},
		{Matrix{1, 2, 3, 4, 5, 6, 7, 8, 10}, -3},
		{Matrix{0, 1, 0, 1, 0, 0, 0, 0, 1}, -1},
	}
	for i, c := range cases {
		if got := c.M.Det(); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("%d: Det() = %g, want %g", i, got, c.want)
		}
	}
}

func TestSingularMatrix(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Inv() of a singular matrix did not panic")
		}
	}()
	Matrix{1, 2, 3, 2, 4, 6, 0, 0, 1}.Inv()
}

var testMatrices = []Matrix{
	IdentityMatrix,
	{2, 3, 4, 5, 6, 7, 8, 9, 11},
	Diagonal(0.5, 0.5, 0.5),
	Diagonal(2, 1, 3),
	Diagonal(-1, -1, -1),
	{0, 1, 0, 0, 0, 1, 1, 0, 0},
	{1, 0.5, 0, 0, 1, 0, 0, 0.25, 1},
	SRGB.ToXYZ(),
	SRGB.FromXYZ(),
	AdobeRGB.ToXYZ(),
	DisplayP3.ToXYZ(),
}

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

// Matrix is a 3x3 matrix, stored in row-major order.
//
// Matrices act on column vectors: the vector (x, y, z) is mapped to
// (M[0]*x + M[1]*y + M[2]*z, M[3]*x + M[4]*y + M[5]*z, M[6]*x + M[7]*y + M[8]*z).
type Matrix [9]float64

// Apply applies the matrix to the column vector (x, y, z).
func (M Matrix) Apply(x, y, z float64) (float64, float64, float64) {
	return M[0]*x + M[1]*y + M[2]*z,
		M[3]*x + M[4]*y + M[5]*z,
		M[6]*x + M[7]*y + M[8]*z
}

// Mul returns the matrix product M·B.
// Applying the result is the same as first applying B, then M.
func (M Matrix) Mul(B Matrix) Matrix {
	var C Matrix
	for i := range 3 {
		for j := range 3 {
			C[3*i+j] = M[3*i]*B[j] + M[3*i+1]*B[3+j] + M[3*i+2]*B[6+j]
		}
	}
	return C
}

// Det returns the determinant of the matrix.
func (M Matrix) Det() float64 {
	return M[0]*(M[4]*M[8]-M[5]*M[7]) -
		M[1]*(M[3]*M[8]-M[5]*M[6]) +
		M[2]*(M[3]*M[7]-M[4]*M[6])
}

// Inv returns the inverse of the matrix.
// This panics if the matrix is singular.
func (M Matrix) Inv() Matrix {
	det := M.Det()
	if det == 0 {
		panic("singular matrix")
	}
	invDet := 1 / det
	return Matrix{
		(M[4]*M[8] - M[5]*M[7]) * invDet,
		(M[2]*M[7] - M[1]*M[8]) * invDet,
		(M[1]*M[5] - M[2]*M[4]) * invDet,

		(M[5]*M[6] - M[3]*M[8]) * invDet,
		(M[0]*M[8] - M[2]*M[6]) * invDet,
		(M[2]*M[3] - M[0]*M[5]) * invDet,

		(M[3]*M[7] - M[4]*M[6]) * invDet,
		(M[1]*M[6] - M[0]*M[7]) * invDet,
		(M[0]*M[4] - M[1]*M[3]) * invDet,
	}
}

// IdentityMatrix is the identity transformation.
var IdentityMatrix = Matrix{1, 0, 0, 0, 1, 0, 0, 0, 1}

// Diagonal returns the matrix which scales the three coordinates
// independently.
func Diagonal(a, b, c float64) Matrix {
	return Matrix{a, 0, 0, 0, b, 0, 0, 0, c}
}

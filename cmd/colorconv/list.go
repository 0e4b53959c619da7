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

package main

import (
	"fmt"
	"io"

	"seehuhn.de/go/color/internal/float"
	"seehuhn.de/go/color/named"
	"seehuhn.de/go/color/whitepoint"
)

// list writes the known color names, followed by the known white points
// with their tristimulus values and chromaticities.
func list(w io.Writer) {
	for _, name := range named.Names() {
		fmt.Fprintln(w, name)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "white points:")
	for _, name := range whitepoint.Names() {
		ref, _ := whitepoint.Lookup(name)
		t := ref.XYZ()
		x, y := t.Chromaticity()
		fmt.Fprintf(w, "  %-4s XYZ %s %s %s  xy %s %s\n", name,
			float.Format(t.X, 5), float.Format(t.Y, 5), float.Format(t.Z, 5),
			float.Format(x, 5), float.Format(y, 5))
	}
}

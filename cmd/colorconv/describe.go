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
	"math"
	"strings"

	"seehuhn.de/go/color"
	"seehuhn.de/go/color/internal/float"
)

// parseModels parses a comma-separated list of model names.
func parseModels(s string) ([]color.Model, error) {
	var res []color.Model
	seen := make(map[color.Model]bool)
	for _, name := range strings.Split(s, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		m, err := color.ParseModel(name)
		if err != nil {
			return nil, err
		}
		if seen[m] {
			continue
		}
		seen[m] = true
		res = append(res, m)
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("no color models in %q", s)
	}
	return res, nil
}

// describe writes the representation of c in each of the given models.
// If swatch is set, a sample of the color is shown using 24-bit ANSI
// escape sequences.
func describe(w io.Writer, name string, c color.Srgb[uint8], models []color.Model, swatch bool) {
	fmt.Fprint(w, name)
	if swatch {
		fmt.Fprintf(w, " \x1b[48;2;%d;%d;%dm      \x1b[0m", c.R, c.G, c.B)
	}
	fmt.Fprintln(w)

	for _, m := range models {
		switch m {
		case color.ModelSRGB:
			fmt.Fprintf(w, "  %-5s #%02x%02x%02x (%d, %d, %d)\n", m, c.R, c.G, c.B, c.R, c.G, c.B)
		case color.ModelRGB:
			v := color.SrgbToRgb[float64](c)
			writeValues(w, m.String(), 6, v.R, v.G, v.B)
		case color.ModelXYZ:
			v := c.Xyz()
			writeValues(w, m.String(), 6, v.X, v.Y, v.Z)
		case color.ModelYxy:
			v := color.SrgbToYxy[float64](c)
			writeValues(w, m.String(), 6, v.X, v.Y, v.Luma)
		case color.ModelLab:
			v := c.Lab()
			writeValues(w, m.String(), 4, v.L, v.A, v.B)
			writeValues(w, "lch", 4, v.L, v.Chromacity(), v.Hue()*180/math.Pi)
		}
	}
}

func writeValues(w io.Writer, label string, precision int, values ...float64) {
	parts := make([]string, len(values))
	for i, x := range values {
		parts[i] = float.Format(x, precision)
	}
	fmt.Fprintf(w, "  %-5s %s\n", label, strings.Join(parts, " "))
}

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

// Package named provides the sRGB values of the SVG 1.1 color keywords,
// like "tomato" or "cornflowerblue".
package named

import (
	"encoding/hex"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"

	"seehuhn.de/go/color"
)

// Lookup returns the color with the given name.
// Case and spaces are ignored, so that "Cornflower Blue" and
// "cornflowerblue" refer to the same color.
func Lookup(name string) (color.Srgb[uint8], bool) {
	c, ok := colornames.Map[normalize(name)]
	if !ok {
		return color.Srgb[uint8]{}, false
	}
	return color.NewSrgb(c.R, c.G, c.B), true
}

// Names returns the names of all known colors, in alphabetical order.
func Names() []string {
	names := maps.Keys(colornames.Map)
	slices.Sort(names)
	return names
}

// Parse converts a color name or a hexadecimal color specification of the
// form "#rrggbb" or "#rgb" to an sRGB value.
func Parse(s string) (color.Srgb[uint8], error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	if c, ok := Lookup(s); ok {
		return c, nil
	}
	return color.Srgb[uint8]{}, fmt.Errorf("unknown color %q", s)
}

func parseHex(s string) (color.Srgb[uint8], error) {
	digits := s
	if len(s) == 3 {
		digits = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(digits) != 6 {
		return color.Srgb[uint8]{}, fmt.Errorf("invalid color #%s", s)
	}
	buf, err := hex.DecodeString(digits)
	if err != nil {
		return color.Srgb[uint8]{}, fmt.Errorf("invalid color #%s: %w", s, err)
	}
	return color.NewSrgb(buf[0], buf[1], buf[2]), nil
}

func normalize(name string) string {
	// A Caser keeps state and must not be shared between goroutines.
	name = cases.Fold().String(name)
	return strings.Join(strings.Fields(name), "")
}

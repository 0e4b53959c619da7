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

package named

import (
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/color"
)

func TestLookup(t *testing.T) {
	cases := []struct {
		name string
		want color.Srgb[uint8]
	}{
		{"tomato", color.Srgb[uint8]{R: 0xFF, G: 0x63, B: 0x47}},
		{"Tomato", color.Srgb[uint8]{R: 0xFF, G: 0x63, B: 0x47}},
		{"TOMATO", color.Srgb[uint8]{R: 0xFF, G: 0x63, B: 0x47}},
		{"Cornflower Blue", color.Srgb[uint8]{R: 0x64, G: 0x95, B: 0xED}},
		{" white ", color.Srgb[uint8]{R: 0xFF, G: 0xFF, B: 0xFF}},
		{"black", color.Srgb[uint8]{R: 0, G: 0, B: 0}},
	}
	for _, c := range cases {
		got, ok := Lookup(c.name)
		if !ok {
			t.Errorf("Lookup(%q) failed", c.name)
			continue
		}
		if got != c.want {
			t.Errorf("Lookup(%q) = %s, want %s", c.name, got, c.want)
		}
	}

	for _, name := range []string{"", "rebeccapurple", "tomatoes"} {
		if _, ok := Lookup(name); ok {
			t.Errorf("Lookup(%q) succeeded", name)
		}
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 147 {
		t.Errorf("got %d names, want 147", len(names))
	}
	if !slices.IsSorted(names) {
		t.Error("names are not sorted")
	}
	for _, name := range names {
		if _, ok := Lookup(name); !ok {
			t.Errorf("Lookup(%q) failed", name)
		}
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want color.Srgb[uint8]
	}{
		{"#ff6347", color.Srgb[uint8]{R: 0xFF, G: 0x63, B: 0x47}},
		{"#FF6347", color.Srgb[uint8]{R: 0xFF, G: 0x63, B: 0x47}},
		{"#f00", color.Srgb[uint8]{R: 0xFF, G: 0, B: 0}},
		{"#123", color.Srgb[uint8]{R: 0x11, G: 0x22, B: 0x33}},
		{"navy", color.Srgb[uint8]{R: 0, G: 0, B: 0x80}},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("Parse(%q) = %s, want %s", c.in, got, c.want)
		}
	}

	for _, in := range []string{"", "#", "#12", "#12345", "#gggggg", "notacolor"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) succeeded", in)
		}
	}

	// Error messages show the input as given.
	for _, in := range []string{"#abz", "#12345", "#12345z"} {
		_, err := Parse(in)
		if err == nil {
			t.Errorf("Parse(%q) succeeded", in)
			continue
		}
		msg := err.Error()
		if msg != "invalid color "+in && !strings.HasPrefix(msg, "invalid color "+in+": ") {
			t.Errorf("Parse(%q): unexpected error %q", in, msg)
		}
	}
}

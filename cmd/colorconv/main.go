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

// Colorconv prints colors in all supported color models.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/color"
	"seehuhn.de/go/color/internal/buildinfo"
	"seehuhn.de/go/color/internal/profile"
	"seehuhn.de/go/color/named"
)

var (
	toArg      = flag.String("to", "srgb,rgb,xyz,yxy,lab", "comma-separated list of color `models`")
	iccArg     = flag.String("icc", "", "report the color model of an ICC profile `file`")
	checkArg   = flag.Bool("check", false, "verify round trips for all 8-bit sRGB colors")
	listArg    = flag.Bool("list", false, "list the known color names and white points")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "colorconv - show a color in different color models\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Version("colorconv"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  colorconv [options] <color>...\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  color   an SVG color name, or #rrggbb, or #rgb\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  colorconv tomato '#6495ed'\n")
		fmt.Fprintf(os.Stderr, "  colorconv -to lab,xyz white\n")
		fmt.Fprintf(os.Stderr, "  colorconv -icc sRGB.icc\n")
	}
	flag.Parse()

	if flag.NArg() < 1 && *iccArg == "" && !*checkArg && !*listArg {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() (err error) {
	prof, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer func() {
		if err2 := prof.Stop(); err == nil {
			err = err2
		}
	}()

	if *listArg {
		list(os.Stdout)
	}

	if *iccArg != "" {
		data, err := os.ReadFile(*iccArg)
		if err != nil {
			return err
		}
		m, err := color.ModelOfProfile(data)
		if err != nil {
			return fmt.Errorf("%s: %w", *iccArg, err)
		}
		fmt.Printf("%s: %s\n", *iccArg, m)
	}

	if *checkArg {
		res := checkRoundTrips(1)
		res.report(os.Stdout)
		if res.mismatches > 0 {
			return fmt.Errorf("%d colors did not survive the round trip", res.mismatches)
		}
	}

	models, err := parseModels(*toArg)
	if err != nil {
		return err
	}
	swatch := term.IsTerminal(int(os.Stdout.Fd()))
	for _, arg := range flag.Args() {
		c, err := named.Parse(arg)
		if err != nil {
			return err
		}
		describe(os.Stdout, arg, c, models, swatch)
	}
	return nil
}

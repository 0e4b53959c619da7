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
	"strings"

	"seehuhn.de/go/icc"
)

// Model identifies one of the color types of this package.
type Model int

// These are the supported color models.
const (
	ModelRGB Model = iota + 1
	ModelSRGB
	ModelXYZ
	ModelYxy
	ModelLab
)

var modelNames = map[Model]string{
	ModelRGB:  "rgb",
	ModelSRGB: "srgb",
	ModelXYZ:  "xyz",
	ModelYxy:  "yxy",
	ModelLab:  "lab",
}

// AllModels lists the supported color models.
var AllModels = []Model{ModelSRGB, ModelRGB, ModelXYZ, ModelYxy, ModelLab}

func (m Model) String() string {
	if name, ok := modelNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Model(%d)", int(m))
}

// ParseModel returns the model with the given name.
// Case is ignored.
func ParseModel(name string) (Model, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for m, mName := range modelNames {
		if mName == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown color model %q", name)
}

// ModelOfProfile returns the color model which describes the device values
// of the given ICC profile.
//
// RGB profiles are reported as [ModelSRGB], which here only means that the
// device values are transfer-encoded RGB values; the primaries of the profile
// are not inspected, so Adobe RGB and Display P3 profiles give [ModelSRGB] as
// well.  CIE L*a*b* profiles are reported as [ModelLab].  Other data color
// spaces give an error.
func ModelOfProfile(profile []byte) (Model, error) {
	if len(profile) == 0 {
		return 0, fmt.Errorf("ModelOfProfile: missing profile")
	}

	p, err := icc.Decode(profile)
	if err != nil {
		return 0, fmt.Errorf("ModelOfProfile: %w", err)
	}

	switch p.ColorSpace {
	case icc.RGBSpace:
		return ModelSRGB, nil
	case icc.CIELabSpace:
		return ModelLab, nil
	case icc.GraySpace, icc.CMYKSpace:
		return 0, fmt.Errorf("ModelOfProfile: %d-component color space %v is not supported",
			p.ColorSpace.NumComponents(), p.ColorSpace)
	default:
		return 0, fmt.Errorf("ModelOfProfile: unsupported color space %v", p.ColorSpace)
	}
}

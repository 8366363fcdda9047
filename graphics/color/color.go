// pslib - a library for writing PostScript and EPS files
// Copyright (C) 2026  The pslib Authors
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

import "fmt"

// Space identifies a PostScript device color space.
type Space int

// The supported color spaces.
const (
	SpaceDeviceRGB Space = iota + 1
	SpaceDeviceCMYK
)

// Channels returns the number of color values for colors in the space.
func (s Space) Channels() int {
	switch s {
	case SpaceDeviceRGB:
		return 3
	case SpaceDeviceCMYK:
		return 4
	default:
		return 0
	}
}

// Operator returns the PostScript operator which selects a color in
// the space.
func (s Space) Operator() string {
	switch s {
	case SpaceDeviceRGB:
		return "setrgbcolor"
	case SpaceDeviceCMYK:
		return "setcmykcolor"
	default:
		return ""
	}
}

func (s Space) String() string {
	switch s {
	case SpaceDeviceRGB:
		return "DeviceRGB"
	case SpaceDeviceCMYK:
		return "DeviceCMYK"
	default:
		return fmt.Sprintf("Space(%d)", int(s))
	}
}

// Color represents a PostScript color.
type Color interface {
	ColorSpace() Space

	// Values returns the color values, in the order expected by the
	// operator of the color space.
	Values() []float64
}

// The following types implement the Color interface.
var (
	_ Color = colorDeviceRGB{}
	_ Color = colorDeviceCMYK{}
)

func clamp(x float64) float64 {
	if x != x || x < 0 { // NaN compares false
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

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

// == DeviceRGB ==============================================================

type colorDeviceRGB [3]float64

// DeviceRGB returns a color in the DeviceRGB color space.
// The parameters r, g, and b are clamped to the range from 0 to 1.
func DeviceRGB(r, g, b float64) Color {
	return colorDeviceRGB{clamp(r), clamp(g), clamp(b)}
}

// ColorSpace implements the [Color] interface.
func (c colorDeviceRGB) ColorSpace() Space {
	return SpaceDeviceRGB
}

// Values implements the [Color] interface.
func (c colorDeviceRGB) Values() []float64 {
	return c[:]
}

// == DeviceCMYK =============================================================

type colorDeviceCMYK [4]float64

// DeviceCMYK returns a color in the DeviceCMYK color space.
// The parameters c, m, y, and k are clamped to the range from 0 to 1.
func DeviceCMYK(c, m, y, k float64) Color {
	return colorDeviceCMYK{clamp(c), clamp(m), clamp(y), clamp(k)}
}

// ColorSpace implements the [Color] interface.
func (c colorDeviceCMYK) ColorSpace() Space {
	return SpaceDeviceCMYK
}

// Values implements the [Color] interface.
func (c colorDeviceCMYK) Values() []float64 {
	return c[:]
}

// Black is the default color for strokes.
var Black = DeviceRGB(0, 0, 0)

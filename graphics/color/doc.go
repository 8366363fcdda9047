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

// Package color implements the PostScript device colors.
//
// Every color is represented by a color space and a set of color values.
// Two color spaces are supported:
//   - [DeviceRGB]: RGB colors, set with the "setrgbcolor" operator
//   - [DeviceCMYK]: CMYK colors, set with the "setcmykcolor" operator
//
// All color values are clamped to the range from 0 to 1.  Colors are
// comparable values and can be tested for equality using "==".
package color

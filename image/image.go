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

// Package image converts raster images into PostScript procedures.
//
// Each image becomes a prolog procedure which paints the image into the
// unit square of the current user space.  Pages place the image with
// [github.com/codewithkyle/pslib/shape.Image], which scales the unit
// square to the target box.
package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"strconv"

	xdraw "golang.org/x/image/draw"

	"github.com/codewithkyle/pslib/graphics"
	"github.com/codewithkyle/pslib/internal/ascii85"
	"github.com/codewithkyle/pslib/procset"
)

// Options control the conversion of images.
type Options struct {
	// MaxSize, if positive, limits the width and height of the embedded
	// image, in pixels.  Larger images are scaled down, keeping the aspect
	// ratio.
	MaxSize int

	// Background is painted below transparent areas of the image.
	// If this is nil, white is used.
	Background color.Color
}

var defaultOptions = &Options{}

// Encode converts src into a procedure with the given name.  The
// procedure paints the image into the unit square, using 8 bits per RGB
// component.
func Encode(name string, src image.Image, opt *Options) (*procset.Procedure, error) {
	if !graphics.IsValidName(name) {
		return nil, fmt.Errorf("invalid procedure name %q", name)
	}
	if opt == nil {
		opt = defaultOptions
	}

	img := flatten(src, opt)
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width == 0 || height == 0 {
		return nil, errEmpty
	}

	buf := &bytes.Buffer{}
	buf.WriteString("/" + name + "rows [\n")
	row := make([]byte, 3*width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.RGBAAt(b.Min.X+x, b.Min.Y+y)
			row[3*x] = c.R
			row[3*x+1] = c.G
			row[3*x+2] = c.B
		}
		buf.WriteString("<~")
		enc := ascii85.NewEncoder(buf)
		enc.Write(row)
		enc.Close()
	}
	buf.WriteString("] def\n")

	w := strconv.Itoa(width)
	h := strconv.Itoa(height)
	rows := name + "rows"
	counter := name + "row"
	buf.WriteString("/" + name + " {\n")
	buf.WriteString("/" + counter + " 0 def\n")
	buf.WriteString(w + " " + h + " 8 [" + w + " 0 0 -" + h + " 0 " + h + "]\n")
	buf.WriteString("{ " + rows + " " + counter + " get /" + counter + " " + counter + " 1 add def }\n")
	buf.WriteString("false 3 colorimage\n")
	buf.WriteString("} def\n")

	return &procset.Procedure{Name: name, Body: buf.String()}, nil
}

// flatten composes src onto the background color and scales the result
// down to the maximal size, if needed.
func flatten(src image.Image, opt *Options) *image.RGBA {
	sb := src.Bounds()
	width, height := scaledSize(sb.Dx(), sb.Dy(), opt.MaxSize)

	var bg color.Color = color.White
	if opt.Background != nil {
		bg = opt.Background
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, xdraw.Src)
	if width == sb.Dx() && height == sb.Dy() {
		xdraw.Draw(dst, dst.Bounds(), src, sb.Min, xdraw.Over)
	} else {
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, sb, xdraw.Over, nil)
	}
	return dst
}

// scaledSize reduces width and height proportionally, such that neither
// exceeds maxSize.  A maxSize of zero means no limit.
func scaledSize(width, height, maxSize int) (int, int) {
	if maxSize <= 0 || (width <= maxSize && height <= maxSize) {
		return width, height
	}
	if width >= height {
		return maxSize, max(1, height*maxSize/width)
	}
	return max(1, width*maxSize/height), maxSize
}

var errEmpty = errors.New("image has no pixels")

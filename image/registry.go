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

package image

import (
	"image"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"golang.org/x/exp/maps"

	"github.com/codewithkyle/pslib/procset"

	// image formats supported by [Registry.Load]
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// RawImage is an image file registered for inclusion in a document.
type RawImage struct {
	// Path is the cleaned file name.
	Path string

	// ProcName is the name of the procedure which paints the image.
	ProcName string

	// Width and Height give the size of the embedded image in pixels.
	// They are zero until the image has been loaded.
	Width, Height int
}

// Registry keeps track of the image files used in a document and assigns
// procedure names to them.  The zero value is an empty registry.
//
// Every call to [Registry.Add] allocates a new procedure name, even if the
// same file was added before.
type Registry struct {
	images []*RawImage
	byPath map[string]*RawImage
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byPath: make(map[string]*RawImage),
	}
}

// Add registers the image file at path and returns the name of the
// procedure which will paint it.  Names are "image1", "image2", and so on,
// in order of registration.
func (r *Registry) Add(path string) string {
	im := &RawImage{
		Path:     filepath.Clean(path),
		ProcName: "image" + strconv.Itoa(len(r.images)+1),
	}
	r.images = append(r.images, im)
	if r.byPath == nil {
		r.byPath = make(map[string]*RawImage)
	}
	r.byPath[im.Path] = im
	return im.ProcName
}

// ProcedureID returns the procedure name for the image file at path.
// If the file was added more than once, the most recent name is returned.
func (r *Registry) ProcedureID(path string) (string, bool) {
	im, ok := r.byPath[filepath.Clean(path)]
	if !ok {
		return "", false
	}
	return im.ProcName, true
}

// Get returns the most recent registration of the image file at path.
func (r *Registry) Get(path string) (*RawImage, bool) {
	im, ok := r.byPath[filepath.Clean(path)]
	return im, ok
}

// List returns all registrations, in order.
func (r *Registry) List() []*RawImage {
	return slices.Clone(r.images)
}

// Sources returns the distinct file names in the registry, in sorted
// order.
func (r *Registry) Sources() []string {
	keys := maps.Keys(r.byPath)
	slices.Sort(keys)
	return keys
}

// Len returns the number of registrations.
func (r *Registry) Len() int {
	return len(r.images)
}

// Load reads all registered image files and adds the corresponding
// procedures to procs.  Each file is decoded once, even if it was
// registered more than once.  PNG, JPEG, GIF, BMP, TIFF and WebP files
// are supported.
func (r *Registry) Load(procs *procset.Registry, opt *Options) error {
	maxSize := 0
	if opt != nil {
		maxSize = opt.MaxSize
	}

	decoded := make(map[string]image.Image)
	for _, im := range r.images {
		src, ok := decoded[im.Path]
		if !ok {
			var err error
			src, err = decodeFile(im.Path)
			if err != nil {
				return err
			}
			decoded[im.Path] = src
		}

		p, err := Encode(im.ProcName, src, opt)
		if err != nil {
			return &DecodeError{Path: im.Path, Err: err}
		}
		b := src.Bounds()
		im.Width, im.Height = scaledSize(b.Dx(), b.Dy(), maxSize)
		procs.Add(p)
	}
	return nil
}

func decodeFile(path string) (image.Image, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer fd.Close()

	img, _, err := image.Decode(fd)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return img, nil
}

// DecodeError is returned when an image file cannot be read.
type DecodeError struct {
	Path string
	Err  error
}

func (err *DecodeError) Error() string {
	return "image " + strconv.Quote(err.Path) + ": " + err.Err.Error()
}

func (err *DecodeError) Unwrap() error {
	return err.Err
}

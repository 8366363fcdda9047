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

// Package ghostscript renders PostScript output in unit tests.
package ghostscript

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"sync"
	"testing"

	"github.com/codewithkyle/pslib"
)

// Render converts a PostScript or EPS document to an image, using the
// ghostscript command-line tool at 72 dpi, so that one pixel corresponds
// to one PostScript point.  EPS files are cropped to their bounding box.
// The test is skipped if ghostscript is not installed.
//
// This function can be used to verify that Ghostscript's idea of
// PostScript matches our own.
func Render(t *testing.T, data []byte, tp pslib.DocumentType) image.Image {
	t.Helper()

	if !isAvailable() {
		t.Skip("ghostscript not found")
	}

	dir := t.TempDir()
	inName := filepath.Join(dir, "test.ps")
	if tp == pslib.EPS {
		inName = filepath.Join(dir, "test.eps")
	}
	err := os.WriteFile(inName, data, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	pngName := filepath.Join(dir, "test.png")

	args := []string{
		"-q", "-dSAFER", "-dBATCH", "-dNOPAUSE",
		"-sDEVICE=png16m", fmt.Sprintf("-r%d", gsResolution),
	}
	if tp == pslib.EPS {
		args = append(args, "-dEPSCrop")
	}
	args = append(args, "-o", pngName, inName)

	cmd := exec.Command("gs", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("ghostscript failed: %v\n%s", err, out)
	}
	if len(out) > 0 {
		t.Logf("unexpected ghostscript output:\n%s", out)
	}

	fd, err := os.Open(pngName)
	if err != nil {
		t.Fatal(err)
	}
	defer fd.Close()

	img, err := png.Decode(fd)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

// isAvailable returns true if the ghostscript command-line tool is available.
func isAvailable() bool {
	gsOnce.Do(func() {
		out, err := exec.Command("gs", "-h").Output()
		if err != nil {
			return
		}
		gsFound = gsPNGRe.Match(out)
	})
	return gsFound
}

var (
	gsOnce  sync.Once
	gsPNGRe = regexp.MustCompile(`\bpng16m\b`)
	gsFound bool
)

const gsResolution = 72

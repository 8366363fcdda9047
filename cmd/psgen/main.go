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

// Psgen converts a YAML scene description into a PostScript or EPS file.
//
// Usage:
//
//	psgen [options] scene.yaml
//
// The output is written to the file given by -o, or to standard output.
// PostScript is not written to a terminal unless -f is given.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/codewithkyle/pslib/scene"
)

var (
	outFile  = flag.String("o", "", "output file (default: standard output)")
	eps      = flag.Bool("eps", false, "write an EPS file, regardless of the scene type")
	strict   = flag.Bool("strict", false, "reject duplicate and malformed procedures")
	force    = flag.Bool("f", false, "write to standard output even if it is a terminal")
	maxImage = flag.Int("max-image", 0, "limit embedded images to `N` pixels per side")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] scene.yaml\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	err := run(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
}

func run(sceneFile string) error {
	s, err := scene.LoadFile(sceneFile)
	if err != nil {
		return err
	}
	if *eps {
		s.Type = "eps"
	}
	if *strict {
		s.Strict = true
	}
	if *maxImage > 0 {
		s.ImageMaxSize = *maxImage
	}

	if *outFile == "" || *outFile == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) && !*force {
			return errTerminal
		}
		w := bufio.NewWriter(os.Stdout)
		err = s.Render(w)
		if err != nil {
			return err
		}
		return w.Flush()
	}

	fd, err := os.Create(*outFile)
	if err != nil {
		return err
	}
	err = render(s, fd)
	if err != nil {
		os.Remove(*outFile)
		return err
	}
	return nil
}

// render writes the scene to w and closes w.
func render(s *scene.Scene, w io.WriteCloser) error {
	err := s.Render(w)
	err2 := w.Close()
	if err != nil {
		return err
	}
	return err2
}

var errTerminal = errors.New("refusing to write PostScript to a terminal, use -o or -f")

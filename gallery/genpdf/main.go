// seehuhn.de/go/mathgraph - geometric primitives for raster and vector output
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

// Command genpdf writes every 2D gallery scene as a PDF file.  With -gs,
// the PDF files are also rendered to PNG using Ghostscript, to give
// reference images from an independent renderer.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"

	"seehuhn.de/go/mathgraph"
	"seehuhn.de/go/mathgraph/gallery"
	"seehuhn.de/go/mathgraph/pdfcanvas"
)

func main() {
	outDir := flag.String("o", "gallery-pdf", "output directory")
	ghostscript := flag.Bool("gs", false, "render the PDF files to PNG using Ghostscript")
	verbose := flag.Bool("v", false, "log debug messages")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	mathgraph.SetLogger(logger)
	slog.SetDefault(logger)

	if err := run(*outDir, *ghostscript); err != nil {
		fmt.Fprintln(os.Stderr, "genpdf:", err)
		os.Exit(1)
	}
}

func run(outDir string, ghostscript bool) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	for _, category := range slices.Sorted(maps.Keys(gallery.All)) {
		for _, s := range gallery.All[category] {
			name := category + "_" + s.Name
			pdfPath := filepath.Join(outDir, name+".pdf")

			if err := generatePDF(s, pdfPath); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			slog.Debug("wrote PDF", "file", pdfPath)

			if ghostscript {
				pngPath := filepath.Join(outDir, name+".png")
				if err := renderPNG(pdfPath, pngPath); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
			}
		}
	}
	return nil
}

func generatePDF(s gallery.Scene, pdfPath string) error {
	// 1 point = 1 pixel at 72 DPI
	paper := &pdf.Rectangle{
		URx: gallery.Width,
		URy: gallery.Height,
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	c := pdfcanvas.New(page, gallery.Height)
	if err := s.Draw(c); err != nil {
		page.Close()
		return err
	}
	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

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

// Command export renders every gallery scene to PNG and SVG files, and
// writes an index of the generated files in JSON format.
//
// Each 2D scene is written three times: rendered by the raster back end
// (NAME.png), as vector graphics (NAME.svg), and the vector graphics
// rendered by an independent SVG rasteriser (NAME_svg.png).  3D scenes
// are written as NAME.png only.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/mathgraph"
	"seehuhn.de/go/mathgraph/gallery"
	"seehuhn.de/go/mathgraph/raster"
	"seehuhn.de/go/mathgraph/scene3d"
	"seehuhn.de/go/mathgraph/svg"
)

type index struct {
	Scenes []entry `json:"scenes"`
}

type entry struct {
	Name   string   `json:"name"`
	Kind   string   `json:"kind"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Files  []string `json:"files"`
}

func main() {
	outDir := flag.String("o", "gallery-out", "output directory")
	width := flag.Int("width", 900, "width of 3D images")
	height := flag.Int("height", 600, "height of 3D images")
	verbose := flag.Bool("v", false, "log debug messages")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	mathgraph.SetLogger(logger)
	slog.SetDefault(logger)

	if err := run(*outDir, *width, *height); err != nil {
		fmt.Fprintln(os.Stderr, "export:", err)
		os.Exit(1)
	}
}

func run(outDir string, width, height int) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	var out index
	for _, category := range slices.Sorted(maps.Keys(gallery.All)) {
		for _, s := range gallery.All[category] {
			name := category + "_" + s.Name
			files, err := export2D(outDir, name, s)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			out.Scenes = append(out.Scenes, entry{
				Name:   name,
				Kind:   "2d",
				Width:  gallery.Width,
				Height: gallery.Height,
				Files:  files,
			})
		}
	}

	for _, s := range gallery.Space {
		name := "space_" + s.Name
		img, err := s.Image(scene3d.WithSize(width, height))
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		fname := name + ".png"
		if err := writePNG(filepath.Join(outDir, fname), img); err != nil {
			return err
		}
		out.Scenes = append(out.Scenes, entry{
			Name:   name,
			Kind:   "3d",
			Width:  width,
			Height: height,
			Files:  []string{fname},
		})
	}

	f, err := os.Create(filepath.Join(outDir, "index.json"))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return err
	}
	slog.Info("gallery exported", "dir", outDir, "scenes", len(out.Scenes))
	return f.Close()
}

func export2D(outDir, name string, s gallery.Scene) ([]string, error) {
	img, err := s.Image(raster.WithBackground(color.White))
	if err != nil {
		return nil, err
	}
	doc, err := s.SVG()
	if err != nil {
		return nil, err
	}
	ref, err := svg.Rasterize(doc, gallery.Width, gallery.Height)
	if err != nil {
		return nil, err
	}

	files := []string{name + ".png", name + ".svg", name + "_svg.png"}
	if err := writePNG(filepath.Join(outDir, files[0]), img); err != nil {
		return nil, err
	}
	if err := writeSVG(filepath.Join(outDir, files[1]), doc); err != nil {
		return nil, err
	}
	if err := writePNG(filepath.Join(outDir, files[2]), ref); err != nil {
		return nil, err
	}
	return files, nil
}

func writePNG(fname string, img image.Image) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeSVG(fname string, doc *svg.Node) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := doc.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

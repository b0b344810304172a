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


package main

import (
	"image"
	"image/color"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestBrailleBits(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.setPixel(0, 0)
	b.setPixel(1, 3)
	b.setPixel(3, 1)
	b.setPixel(4, 0) // outside
	got := b.lines()
	if len(got) != 1 {
		t.Fatalf("got %d lines, want 1", len(got))
	}
	want := string([]rune{0x2800 + 0x01 + 0x80, 0x2800 + 0x10})
	if got[0] != want {
		t.Errorf("got %q, want %q", got[0], want)
	}
}

func TestToBraille(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	for y := range 40 {
		for x := range 40 {
			c := color.RGBA{255, 255, 255, 255}
			if x >= 20 {
				c = color.RGBA{0, 0, 0, 255}
			}
			img.SetRGBA(x, y, c)
		}
	}

	lines := toBraille(img, 4, 2)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for i, l := range lines {
		r := []rune(l)
		if len(r) != 4 {
			t.Fatalf("line %d: got %d cells, want 4", i, len(r))
		}
		if r[0] != 0x2800 {
			t.Errorf("line %d: left cell %q is not blank", i, r[0])
		}
		if r[3] != 0x28ff {
			t.Errorf("line %d: right cell %q is not full", i, r[3])
		}
	}
}

func TestSceneItems(t *testing.T) {
	items := sceneItems()
	flat, space := 0, 0
	for _, it := range items {
		s := it.(sceneItem)
		switch {
		case s.flat != nil:
			flat++
		case s.space != nil:
			space++
		}
		if s.Title() == "" {
			t.Error("empty title")
		}
	}
	if flat == 0 || space == 0 {
		t.Errorf("got %d 2D and %d 3D items", flat, space)
	}
}

func TestProbe(t *testing.T) {
	m, err := newModel()
	if err != nil {
		t.Fatal(err)
	}
	m.probeOn = true
	m.l.Select(0)
	if !m.moveProbe("right") {
		t.Fatal("probe did not move")
	}
	v, _ := m.panel.Value(probeFolder, "x")
	if v != m.probe.Point.Center.X {
		t.Errorf("panel x %v, probe x %v", v, m.probe.Point.Center.X)
	}
	if m.status != "probe at (1.20, 1.00)" {
		t.Errorf("status %q", m.status)
	}
}

func TestRedrawCoalesced(t *testing.T) {
	m, err := newModel()
	if err != nil {
		t.Fatal(err)
	}
	defer m.stopRedraw()
	msgs := make(chan tea.Msg, 8)
	m.send = func(msg tea.Msg) { msgs <- msg }
	m.probeOn = true
	m.l.Select(0)

	x0 := m.probe.Point.Center.X
	for _, k := range []tea.KeyType{tea.KeyRight, tea.KeyRight, tea.KeyUp} {
		m.Update(tea.KeyMsg{Type: k})
	}
	if got := m.probe.Point.Center.X - x0; got != 2*probeStep {
		t.Errorf("probe moved by %g, want %g", got, 2*probeStep)
	}

	select {
	case msg := <-msgs:
		if _, ok := msg.(redrawMsg); !ok {
			t.Fatalf("got %T, want redrawMsg", msg)
		}
	case <-time.After(20 * redrawWait):
		t.Fatal("no redraw requested")
	}
	select {
	case msg := <-msgs:
		t.Errorf("second redraw %T for one burst of moves", msg)
	case <-time.After(3 * redrawWait):
	}

	v, _ := m.panel.Value(probeFolder, "y")
	if v != m.probe.Point.Center.Y {
		t.Errorf("panel y %v, probe y %v", v, m.probe.Point.Center.Y)
	}
}

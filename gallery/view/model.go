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
	"fmt"
	"image"
	"image/color"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"seehuhn.de/go/mathgraph"
	"seehuhn.de/go/mathgraph/axis"
	"seehuhn.de/go/mathgraph/control"
	"seehuhn.de/go/mathgraph/gallery"
	"seehuhn.de/go/mathgraph/raster"
	"seehuhn.de/go/mathgraph/scene3d"
	"seehuhn.de/go/mathgraph/shape2d"
	"seehuhn.de/go/mathgraph/style"
)

const (
	sidebarWidth = 30
	probeFolder  = "probe"
	probeStep    = 10.0
	orbitStep    = 0.15

	// key repeats closer together than this are drawn as one frame
	redrawWait = 60 * time.Millisecond
)

// redrawMsg asks the model to render the preview again.
type redrawMsg struct{}

type sceneItem struct {
	title, desc string
	flat        *gallery.Scene
	space       *gallery.SpaceScene
}

func (i sceneItem) Title() string       { return i.title }
func (i sceneItem) Description() string { return i.desc }
func (i sceneItem) FilterValue() string { return i.title }

// sceneItems lists all gallery scenes, 2D scenes first.
func sceneItems() []list.Item {
	title := cases.Title(language.English)
	var items []list.Item
	for _, cat := range slices.Sorted(maps.Keys(gallery.All)) {
		for _, s := range gallery.All[cat] {
			items = append(items, sceneItem{
				title: title.String(cat + ": " + strings.ReplaceAll(s.Name, "_", " ")),
				desc:  "2D",
				flat:  &s,
			})
		}
	}
	for _, s := range gallery.Space {
		items = append(items, sceneItem{
			title: title.String("space: " + strings.ReplaceAll(s.Name, "_", " ")),
			desc:  "3D",
			space: &s,
		})
	}
	return items
}

type model struct {
	l             list.Model
	width, height int

	panel   *control.Panel
	probe   *shape2d.PointWithProjections
	probeOn bool

	// live 3D scene of the selected item, if any
	space    *scene3d.Scene
	spaceFor *gallery.SpaceScene

	preview []string
	status  string

	// send delivers messages to the running program
	send       func(tea.Msg)
	redraw     func(struct{})
	stopRedraw func()
}

func newModel() (*model, error) {
	m := &model{panel: control.NewPanel("view")}

	ax := axis.Default()
	probe, err := shape2d.NewPointWithProjections(shape2d.ProjectionParams{
		Name:       probeFolder,
		Point:      ax.CoordsToPoint(1, 1),
		Origin:     ax.Origin(),
		PointStyle: style.Style{Color: style.String("#7c3aed")},
	})
	if err != nil {
		return nil, err
	}
	m.probe = probe
	shape2d.Bind(m.panel, probeFolder, probe, m.probeChanged)

	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(sceneItems(), d, 0, 0)
	m.l.Title = "mathgraph gallery"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	m.redraw, m.stopRedraw = control.Debounce(func(struct{}) {
		if m.send != nil {
			m.send(redrawMsg{})
		}
	}, redrawWait)

	m.status = "enter: preview  p: probe  o: projection  q: quit"
	return m, nil
}

// probeChanged reports the logical coordinates of the probe.
func (m *model) probeChanged(c control.Change) {
	x, _ := c.Target["x"].(float64)
	y, _ := c.Target["y"].(float64)
	ax := axis.Default()
	o := ax.Origin()
	m.status = fmt.Sprintf("probe at (%.2f, %.2f)", (x-o.X)/ax.UnitX(), (o.Y-y)/ax.UnitY())
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.l.SetSize(sidebarWidth, max(msg.Height-3, 1))
		m.refresh()
		return m, nil

	case redrawMsg:
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if m.l.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "ctrl+c":
			m.stopRedraw()
			return m, tea.Quit
		case "enter":
			m.refresh()
			return m, nil
		case "p":
			m.probeOn = !m.probeOn
			m.refresh()
			return m, nil
		case "o":
			if m.space != nil {
				m.space.ToggleProjection()
				m.refresh()
			}
			return m, nil
		case "+", "-":
			if m.space != nil {
				f := 1.25
				if msg.String() == "-" {
					f = 1 / f
				}
				m.space.Controls().Zoom(f)
				m.refresh()
			}
			return m, nil
		case "left", "right", "up", "down":
			if m.moveProbe(msg.String()) || m.orbit(msg.String()) {
				m.redraw(struct{}{})
				return m, nil
			}
		}
	}

	prev := m.l.Index()
	var cmd tea.Cmd
	m.l, cmd = m.l.Update(msg)
	if m.l.Index() != prev {
		m.refresh()
	}
	return m, cmd
}

// moveProbe moves the probe point in probe mode, if a 2D scene is shown.
func (m *model) moveProbe(key string) bool {
	it, ok := m.l.SelectedItem().(sceneItem)
	if !m.probeOn || !ok || it.flat == nil {
		return false
	}
	name, step := "x", probeStep
	switch key {
	case "left":
		step = -step
	case "up":
		name, step = "y", -step
	case "down":
		name = "y"
	}
	v, _ := m.panel.Value(probeFolder, name)
	cur, _ := v.(float64)
	if err := m.panel.Set(probeFolder, name, cur+step); err != nil {
		m.status = "probe: " + err.Error()
	}
	return true
}

// orbit rotates the camera of the live 3D scene.
func (m *model) orbit(key string) bool {
	if m.space == nil {
		return false
	}
	c := m.space.Controls()
	switch key {
	case "left":
		c.Rotate(-orbitStep, 0)
	case "right":
		c.Rotate(orbitStep, 0)
	case "up":
		c.Rotate(0, -orbitStep)
	case "down":
		c.Rotate(0, orbitStep)
	}
	return true
}

// refresh renders the selected scene into the preview.
func (m *model) refresh() {
	cols := m.width - sidebarWidth - 5
	rows := m.height - 5
	if cols <= 0 || rows <= 0 {
		m.preview = nil
		return
	}
	it, ok := m.l.SelectedItem().(sceneItem)
	if !ok {
		m.preview = nil
		return
	}

	var img image.Image
	var err error
	switch {
	case it.flat != nil:
		m.space, m.spaceFor = nil, nil
		img, err = m.flatImage(*it.flat)
	case it.space != nil:
		img, err = m.spaceImage(it.space, 2*cols, 4*rows)
	}
	if err != nil {
		m.status = "error: " + err.Error()
		mathgraph.Logger().Warn("preview failed", "scene", it.title, "error", err)
		m.preview = nil
		return
	}
	m.preview = toBraille(img, cols, rows)
}

func (m *model) flatImage(s gallery.Scene) (image.Image, error) {
	c := raster.NewCanvas(gallery.Width, gallery.Height, raster.WithBackground(color.White))
	if err := s.Draw(c); err != nil {
		return nil, err
	}
	if m.probeOn {
		if err := m.probe.Draw(c, style.Style{}); err != nil {
			return nil, err
		}
	}
	return c.Image(), nil
}

// spaceImage renders the live 3D scene, which is rebuilt whenever the
// selection changes.  Camera changes survive re-rendering.
func (m *model) spaceImage(s *gallery.SpaceScene, w, h int) (image.Image, error) {
	if m.spaceFor != s || m.space == nil {
		sc, err := s.Scene(scene3d.WithSize(w, h))
		if err != nil {
			return nil, err
		}
		m.space, m.spaceFor = sc, s
	}
	if err := m.space.Render(); err != nil {
		return nil, err
	}
	st := m.space.Stats()
	m.status = fmt.Sprintf("%d faces, %d lines, %d culled", st.Faces, st.Lines, st.Culled)
	return m.space.Frame(), nil
}

func (m *model) View() string {
	if m.width == 0 {
		return ""
	}
	header := titleStyle.Render(" mathgraph ─ geometric primitives ")
	sidebar := lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())

	body := dimStyle.Render("no preview")
	if m.preview != nil {
		body = strings.Join(m.preview, "\n")
	}
	preview := boxStyle.Render(body)

	status := dimStyle.Render(" " + m.status + " ")
	if strings.HasPrefix(m.status, "error") {
		status = warnStyle.Render(" " + m.status + " ")
	}
	mode := ""
	if m.probeOn {
		mode = titleStyle.Render(" [probe] ")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", preview),
		lipgloss.JoinHorizontal(lipgloss.Bottom, mode, status),
	)
}

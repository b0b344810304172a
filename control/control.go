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

// Package control describes tunable shape parameters and delivers change
// notifications for them.
//
// A [Panel] holds the current value of every control, grouped in optional
// folders.  User interfaces render the [Descriptor] list and report edits
// through [Panel.Set]; the panel then calls the registered handler with a
// [Change].  Handlers run synchronously, use [Debounce] to coalesce bursts.
package control

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"seehuhn.de/go/mathgraph"
)

// Kind is the type of a control.
type Kind int

// These are the supported kinds of controls.
const (
	Range Kind = iota
	Color
	Boolean
	Array
	Button
)

func (k Kind) String() string {
	switch k {
	case Range:
		return "range"
	case Color:
		return "color"
	case Boolean:
		return "boolean"
	case Array:
		return "array"
	case Button:
		return "button"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Descriptor describes a single control.
type Descriptor struct {
	Folder string
	Name   string
	Kind   Kind

	// Min, Max and Step bound Range controls.
	Min, Max, Step float64

	// Value is the initial value: float64 for Range, string for Color,
	// bool for Boolean and []string for Array.  Buttons have no value.
	Value any

	// Separator joins the elements of Array controls for editing.
	Separator string
}

// Change reports a new control value.
type Change struct {
	Folder string
	Name   string
	Value  any

	// Target holds the current values of all controls in the same folder,
	// keyed by name, after the change was applied.
	Target map[string]any
}

// Float returns the value of a Range change.
func (c Change) Float() (float64, error) {
	v, ok := c.Value.(float64)
	if !ok {
		return 0, c.typeError("a number")
	}
	return v, nil
}

// Text returns the value of a Color change.
func (c Change) Text() (string, error) {
	v, ok := c.Value.(string)
	if !ok {
		return "", c.typeError("a string")
	}
	return v, nil
}

// Bool returns the value of a Boolean change.
func (c Change) Bool() (bool, error) {
	v, ok := c.Value.(bool)
	if !ok {
		return false, c.typeError("a boolean")
	}
	return v, nil
}

// Strings returns the value of an Array change.
func (c Change) Strings() ([]string, error) {
	v, ok := c.Value.([]string)
	if !ok {
		return nil, c.typeError("a list")
	}
	return v, nil
}

func (c Change) typeError(want string) error {
	return mathgraph.Wrap("control", c.Name,
		fmt.Errorf("value %v is not %s: %w", c.Value, want, mathgraph.ErrInvalidGeometryInput))
}

// Option modifies a control while it is added to a panel.
type Option func(*Descriptor)

// InFolder places the control in the named folder.
func InFolder(folder string) Option {
	return func(d *Descriptor) {
		d.Folder = folder
	}
}

// Bounds sets the limits and step size of a Range control.
func Bounds(lo, hi, step float64) Option {
	return func(d *Descriptor) {
		d.Min, d.Max, d.Step = lo, hi, step
	}
}

// Separator sets the separator of an Array control.
func Separator(sep string) Option {
	return func(d *Descriptor) {
		d.Separator = sep
	}
}

// Default bounds of range controls.
const (
	DefaultMin  = -5
	DefaultMax  = 5
	DefaultStep = 1
)

type key struct {
	folder, name string
}

type entry struct {
	desc    Descriptor
	handler func(Change)
}

// Panel is a set of controls.  A Panel is safe for concurrent use; handlers
// are called without the panel lock held.
type Panel struct {
	Name string

	mu      sync.Mutex
	entries []*entry
	index   map[key]*entry
	data    map[string]map[string]any // folder -> name -> value
}

// NewPanel returns an empty panel.
func NewPanel(name string) *Panel {
	return &Panel{
		Name:  name,
		index: make(map[key]*entry),
		data:  make(map[string]map[string]any),
	}
}

// AddRange adds a numeric control.  The default bounds are [-5, 5] with
// step 1.
func (p *Panel) AddRange(name string, value float64, onChange func(Change), opts ...Option) {
	d := Descriptor{Name: name, Kind: Range, Min: DefaultMin, Max: DefaultMax, Step: DefaultStep, Value: value}
	p.Add(d, onChange, opts...)
}

// AddColor adds a color control.
func (p *Panel) AddColor(name, value string, onChange func(Change), opts ...Option) {
	p.Add(Descriptor{Name: name, Kind: Color, Value: value}, onChange, opts...)
}

// AddBoolean adds an on/off control.
func (p *Panel) AddBoolean(name string, value bool, onChange func(Change), opts ...Option) {
	p.Add(Descriptor{Name: name, Kind: Boolean, Value: value}, onChange, opts...)
}

// AddArray adds a list control, edited as text with the elements joined
// by a separator (a space by default).
func (p *Panel) AddArray(name string, value []string, onChange func(Change), opts ...Option) {
	p.Add(Descriptor{Name: name, Kind: Array, Value: slices.Clone(value), Separator: " "}, onChange, opts...)
}

// AddButton adds a button.  Pressing it calls onClick with a Change
// without value.
func (p *Panel) AddButton(name string, onClick func(Change), opts ...Option) {
	p.Add(Descriptor{Name: name, Kind: Button}, onClick, opts...)
}

// Add adds the control described by d.  A control with the same folder
// and name replaces the previous one.
func (p *Panel) Add(d Descriptor, onChange func(Change), opts ...Option) {
	for _, opt := range opts {
		opt(&d)
	}
	if d.Kind == Array && d.Separator == "" {
		d.Separator = " "
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	k := key{d.Folder, d.Name}
	e := &entry{desc: d, handler: onChange}
	if old, ok := p.index[k]; ok {
		i := slices.Index(p.entries, old)
		p.entries[i] = e
	} else {
		p.entries = append(p.entries, e)
	}
	p.index[k] = e

	folder := p.data[d.Folder]
	if folder == nil {
		folder = make(map[string]any)
		p.data[d.Folder] = folder
	}
	if d.Kind != Button {
		folder[d.Name] = d.Value
	}
}

// Descriptors returns the controls in the order they were added.
func (p *Panel) Descriptors() []Descriptor {
	p.mu.Lock()
	defer p.mu.Unlock()

	res := make([]Descriptor, len(p.entries))
	for i, e := range p.entries {
		res[i] = e.desc
	}
	return res
}

// Folders returns the names of all non-empty folders in the order of
// their first control.  The top level is the empty string.
func (p *Panel) Folders() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	var res []string
	for _, e := range p.entries {
		if !slices.Contains(res, e.desc.Folder) {
			res = append(res, e.desc.Folder)
		}
	}
	return res
}

// Value returns the current value of a control.
func (p *Panel) Value(folder, name string) (any, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	v, ok := p.data[folder][name]
	return v, ok
}

// Set changes the value of a control and calls its handler.  For Array
// controls, value may be a []string or the edited text, which is split at
// the separator with empty elements dropped.  Range values are clamped to
// the bounds of the control.  Setting a button presses it.
func (p *Panel) Set(folder, name string, value any) error {
	p.mu.Lock()
	e, ok := p.index[key{folder, name}]
	if !ok {
		p.mu.Unlock()
		return mathgraph.Wrap("control.Set", folder+"/"+name, errUnknownControl)
	}

	v, err := e.desc.convert(value)
	if err != nil {
		p.mu.Unlock()
		return mathgraph.Wrap("control.Set", folder+"/"+name, err)
	}
	target := p.data[folder]
	if e.desc.Kind != Button {
		target[name] = v
	}
	change := Change{Folder: folder, Name: name, Value: v, Target: maps.Clone(target)}
	handler := e.handler
	p.mu.Unlock()

	if handler != nil {
		handler(change)
	}
	return nil
}

// Press presses a button.
func (p *Panel) Press(folder, name string) error {
	return p.Set(folder, name, nil)
}

var errUnknownControl = fmt.Errorf("unknown control: %w", mathgraph.ErrInvalidGeometryInput)

func (d *Descriptor) convert(value any) (any, error) {
	switch d.Kind {
	case Range:
		var v float64
		switch x := value.(type) {
		case float64:
			v = x
		case int:
			v = float64(x)
		default:
			return nil, fmt.Errorf("%T for range control: %w", value, mathgraph.ErrInvalidGeometryInput)
		}
		if d.Min <= d.Max {
			v = min(max(v, d.Min), d.Max)
		}
		return v, nil
	case Color:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%T for color control: %w", value, mathgraph.ErrInvalidGeometryInput)
		}
		return s, nil
	case Boolean:
		b, ok := value.(bool)
		if !ok {
			return nil, fmt.Errorf("%T for boolean control: %w", value, mathgraph.ErrInvalidGeometryInput)
		}
		return b, nil
	case Array:
		switch x := value.(type) {
		case []string:
			return slices.DeleteFunc(slices.Clone(x), isEmpty), nil
		case string:
			return slices.DeleteFunc(strings.Split(x, d.Separator), isEmpty), nil
		default:
			return nil, fmt.Errorf("%T for array control: %w", value, mathgraph.ErrInvalidGeometryInput)
		}
	default:
		return nil, nil
	}
}

func isEmpty(s string) bool {
	return s == ""
}

// DefaultWait is the delay used by Debounce when wait is zero.
const DefaultWait = 500 * time.Millisecond

// Debounce returns a function which calls fn with the most recent
// argument once no further calls have happened for the duration wait.
// The returned stop function cancels a pending call.
func Debounce[T any](fn func(T), wait time.Duration) (call func(T), stop func()) {
	if wait <= 0 {
		wait = DefaultWait
	}

	var mu sync.Mutex
	var timer *time.Timer
	call = func(arg T) {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(wait, func() { fn(arg) })
	}
	stop = func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
			timer = nil
		}
	}
	return call, stop
}

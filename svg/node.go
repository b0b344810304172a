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

// Package svg builds SVG element trees and converts SVG path data back into
// geometry.
//
// Elements are plain values: a tag, an ordered attribute list, children and
// optional character data.  Nodes are detached until appended to a parent,
// so shapes can hand out fresh nodes which the caller inserts into its own
// document.
package svg

import (
	"bufio"
	"encoding/xml"
	"io"
	"math"
	"strconv"
	"strings"
)

// Namespace is the SVG XML namespace.
const Namespace = "http://www.w3.org/2000/svg"

// Attr is a single attribute.
type Attr struct {
	Name, Value string
}

// Node is an element of an SVG tree.
type Node struct {
	Tag      string
	Attrs    []Attr
	Children []*Node
	Text     string
}

// NewElement returns a detached element with the given tag name.
func NewElement(tag string) *Node {
	return &Node{Tag: tag}
}

// NewDocument returns a root <svg> element covering the rectangle from
// (0, 0) to (width, height) in user units.
func NewDocument(width, height float64) *Node {
	w, h := Num(width), Num(height)
	return NewElement("svg").
		SetAttr("xmlns", Namespace).
		SetAttr("width", w).
		SetAttr("height", h).
		SetAttr("viewBox", "0 0 "+w+" "+h)
}

// SetAttr sets the attribute name to value, replacing an existing value.
// The method returns n to allow chaining.
func (n *Node) SetAttr(name, value string) *Node {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return n
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
	return n
}

// SetAttrs sets all attributes in attrs, in order.
// Attributes with an empty value are skipped.  Any other value, "0"
// included, is set.
func (n *Node) SetAttrs(attrs []Attr) *Node {
	for _, a := range attrs {
		if a.Value != "" {
			n.SetAttr(a.Name, a.Value)
		}
	}
	return n
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Append adds children to n.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// SetText sets the character data of n.
func (n *Node) SetText(s string) *Node {
	n.Text = s
	return n
}

// Walk calls fn for n and all its descendants in document order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// MarshalXML implements xml.Marshaler.
func (n *Node) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: xml.Name{Local: n.Tag}}
	for _, a := range n.Attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if n.Text != "" {
		if err := e.EncodeToken(xml.CharData(n.Text)); err != nil {
			return err
		}
	}
	for _, c := range n.Children {
		if err := c.MarshalXML(e, xml.StartElement{}); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// Encode writes n and its descendants as indented XML to w.
func (n *Node) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	enc := xml.NewEncoder(bw)
	enc.Indent("", "  ")
	if err := n.MarshalXML(enc, xml.StartElement{}); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	if _, err := bw.WriteString("\n"); err != nil {
		return err
	}
	return bw.Flush()
}

// String returns the compact XML form of n.
func (n *Node) String() string {
	b := &strings.Builder{}
	enc := xml.NewEncoder(b)
	if err := n.MarshalXML(enc, xml.StartElement{}); err != nil {
		return ""
	}
	if err := enc.Flush(); err != nil {
		return ""
	}
	return b.String()
}

// Num formats a number for use in path data and attributes, using the
// shortest representation which reads back to the same value.
// Negative zero is written as "0".
func Num(v float64) string {
	if v == 0 {
		return "0"
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

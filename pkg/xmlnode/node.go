// Copyright 2015 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package xmlnode implements the schema-directed tree core: the XML
// node model, schema binding, sibling ordering, binary search, and
// merge/diff matching that a NETCONF-style configuration engine needs.
package xmlnode

import (
	"github.com/openyang/yangcore/pkg/value"
	"github.com/openyang/yangcore/pkg/yang"
)

// Kind tags the variant an xmlnode.Node holds.
type Kind int

const (
	// Element is a named node that may own attributes and children.
	Element Kind = iota
	// Attribute is a name/value pair attached to an Element; it never
	// participates in ordering or keying.
	Attribute
	// Body is a text leaf under an Element.
	Body
)

// Node is one node of an XML-shaped configuration tree. A parent owns
// its children exclusively; the Parent field is a weak, non-owning
// back-reference used only for namespace lookup.
type Node struct {
	Kind   Kind
	Name   string
	Prefix string // element/attribute prefix, "" if unprefixed
	Text   string // Attribute value, or Body text

	Parent   *Node
	Attrs    []*Node // Kind == Attribute, insertion order
	Children []*Node // Kind == Element or Body, insertion order

	// Stmt is the YANG statement bound to this element by the Resolver,
	// nil until resolution runs or if none applies.
	Stmt *yang.Stmt

	typed    value.Value
	typedSet bool
}

// NewElement returns a new, unattached element node.
func NewElement(name string) *Node {
	return &Node{Kind: Element, Name: name}
}

// NewBody returns a new body (text) node.
func NewBody(text string) *Node {
	return &Node{Kind: Body, Text: text}
}

// AppendChild appends c to n's children, taking ownership of it.
func (n *Node) AppendChild(c *Node) {
	c.Parent = n
	n.Children = append(n.Children, c)
}

// InsertChildAt inserts c at index i, taking ownership of it. Used by
// the merge/edit path once InsertPosition has computed i.
func (n *Node) InsertChildAt(i int, c *Node) {
	c.Parent = n
	n.Children = append(n.Children, nil)
	copy(n.Children[i+1:], n.Children[i:])
	n.Children[i] = c
}

// RemoveChildAt removes and returns the child at index i, transferring
// ownership to the caller.
func (n *Node) RemoveChildAt(i int) *Node {
	c := n.Children[i]
	copy(n.Children[i:], n.Children[i+1:])
	n.Children[len(n.Children)-1] = nil
	n.Children = n.Children[:len(n.Children)-1]
	c.Parent = nil
	return c
}

// SetAttr sets (or replaces) the attribute named name/prefix to value.
func (n *Node) SetAttr(prefix, name, val string) {
	for _, a := range n.Attrs {
		if a.Prefix == prefix && a.Name == name {
			a.Text = val
			return
		}
	}
	n.Attrs = append(n.Attrs, &Node{Kind: Attribute, Prefix: prefix, Name: name, Text: val, Parent: n})
}

// Attr returns the attribute named name/prefix, or nil.
func (n *Node) Attr(prefix, name string) *Node {
	for _, a := range n.Attrs {
		if a.Prefix == prefix && a.Name == name {
			return a
		}
	}
	return nil
}

// ElementChildren returns n's Element-kind children, the collection
// Sort/Search/Compare operate over; attributes are a separate
// sub-collection.
func (n *Node) ElementChildren() []*Node {
	out := make([]*Node, 0, len(n.Children))
	for _, c := range n.Children {
		if c.Kind == Element {
			out = append(out, c)
		}
	}
	return out
}

// Body returns the text of n's first Body child, or "" if n has none.
func (n *Node) Body() string {
	for _, c := range n.Children {
		if c.Kind == Body {
			return c.Text
		}
	}
	return ""
}

// FindBody returns the body text of the direct element child named
// name, used to read list key values.
func (n *Node) FindBody(name string) (string, bool) {
	for _, c := range n.Children {
		if c.Kind == Element && c.Name == name {
			return c.Body(), true
		}
	}
	return "", false
}

// HasBody reports whether n carries a Body child at all, distinguishing
// an empty-type leaf ("") from a leaf with no value present.
func (n *Node) HasBody() bool {
	for _, c := range n.Children {
		if c.Kind == Body {
			return true
		}
	}
	return false
}

// TypedValue returns the cached parse of n's body under its bound
// statement's resolved type, parsing and caching it on first read.
func (n *Node) TypedValue() (value.Value, error) {
	if n.typedSet {
		return n.typed, nil
	}
	if n.Stmt == nil || n.Stmt.Type == nil {
		return value.Value{}, &value.TypeResolutionError{Reason: "node has no resolved type"}
	}
	v, err := value.Parse(n.Body(), n.Stmt.Type)
	if err != nil {
		return value.Value{}, err
	}
	n.typed = v
	n.typedSet = true
	return v, nil
}

// InvalidateTypedValue clears the cached typed value, required after a
// caller mutates a leaf's body directly instead of replacing the node.
func (n *Node) InvalidateTypedValue() {
	n.typedSet = false
}

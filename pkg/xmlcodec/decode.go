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

package xmlcodec

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/openyang/yangcore/pkg/xmlnode"
)

// Parse reads data as XML and returns a synthetic, unnamed root node whose
// element children are the document's top-level elements. xmlns and
// xmlns:pfx declarations are preserved verbatim as attributes; callers
// bind a schema and resolve namespaces afterward (xmlnode.Bind,
// xmlnode.EffectiveNamespace), the same as a hand-built tree.
func Parse(data []byte) (*xmlnode.Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	root := xmlnode.NewElement("")
	stack := []*xmlnode.Node{root}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			line, col := dec.InputPos()
			return nil, &ParseError{Line: line, Col: col, Reason: err.Error()}
		}
		switch t := tok.(type) {
		case xml.StartElement:
			elem := xmlnode.NewElement(t.Name.Local)
			for _, a := range t.Attr {
				setParsedAttr(elem, a)
			}
			parent := stack[len(stack)-1]
			parent.AppendChild(elem)

			// The decoder resolves a declared prefix straight to its
			// namespace URI in t.Name.Space, discarding the prefix
			// text, but leaves an undeclared prefix in t.Name.Space as
			// written. A Space no in-scope xmlns declaration binds is
			// kept literally as elem's prefix. A resolved namespace is
			// re-declared as elem's own default only when it would not
			// already be inherited, so EffectiveNamespace recovers
			// exactly what the decoder saw.
			declared := false
			for cur := elem; cur != nil; cur = cur.Parent {
				for _, a := range cur.Attrs {
					if (a.Prefix == "xmlns" || a.Name == "xmlns") && a.Text == t.Name.Space {
						declared = true
					}
				}
			}
			switch {
			case t.Name.Space != "" && !declared:
				elem.Prefix = t.Name.Space
			case t.Name.Space != "" && t.Name.Space != xmlnode.EffectiveNamespace(parent):
				xmlnode.SetDefaultNamespace(elem, t.Name.Space)
			}
			stack = append(stack, elem)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			text := strings.TrimSpace(string(t))
			if text == "" {
				continue
			}
			parent := stack[len(stack)-1]
			parent.AppendChild(xmlnode.NewBody(text))
		}
	}
	if len(stack) != 1 {
		return nil, &ParseError{Reason: "unbalanced element nesting"}
	}
	return root, nil
}

// setParsedAttr records one parsed attribute, keeping default and
// prefixed xmlns declarations exactly as xmlnode.ResolveNamespace expects
// to find them (the "xmlns"/prefix, ""/"xmlns" slots namespace.go reads).
func setParsedAttr(elem *xmlnode.Node, a xml.Attr) {
	switch {
	case a.Name.Space == "xmlns":
		elem.SetAttr("xmlns", a.Name.Local, a.Value)
	case a.Name.Local == "xmlns" && a.Name.Space == "":
		elem.SetAttr("", "xmlns", a.Value)
	default:
		elem.SetAttr("", a.Name.Local, a.Value)
	}
}

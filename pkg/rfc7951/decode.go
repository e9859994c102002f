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

package rfc7951

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/openyang/yangcore/pkg/xmlnode"
	"github.com/openyang/yangcore/pkg/yang"
)

// Decode parses RFC 7951 JSON into an xmlnode.Node tree, binds it against
// resolver's schema, rewrites identityref bodies, and sorts it. The
// returned node is a synthetic, unnamed root whose element children
// are the decoded top-level, module-qualified members.
func Decode(data []byte, resolver *xmlnode.Resolver) (*xmlnode.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	d := &jsonDecoder{dec: dec, data: data, spec: resolver.Spec}

	tok, err := d.token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, &ParseError{Reason: "expected top-level JSON object"}
	}

	root := xmlnode.NewElement("")
	if err := d.decodeObjectMembers(root, "", true); err != nil {
		return nil, err
	}

	xmlnode.Bind(resolver, root)
	if err := rewriteIdentityrefs(root, resolver.Spec); err != nil {
		return nil, err
	}
	xmlnode.SortTree(root)
	return root, nil
}

// jsonDecoder threads the token stream, the original bytes (for error
// position reporting) and the schema through the recursive descent.
type jsonDecoder struct {
	dec  *json.Decoder
	data []byte
	spec *yang.Spec
}

func (d *jsonDecoder) token() (json.Token, error) {
	tok, err := d.dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, &ParseError{Reason: "unexpected end of JSON input"}
		}
		line, col := lineCol(d.data, d.dec.InputOffset())
		return nil, &ParseError{Line: line, Col: col, Reason: err.Error()}
	}
	return tok, nil
}

// decodeObjectMembers reads object members up to (and including) the
// closing '}', given the opening '{' already consumed by the caller.
// Top-level members must carry a module prefix (RFC 7951 §4); nested
// members inherit ancestorNamespace when bare.
func (d *jsonDecoder) decodeObjectMembers(parent *xmlnode.Node, ancestorNamespace string, topLevel bool) error {
	for d.dec.More() {
		keyTok, err := d.token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)
		prefix, local := splitQName(key)
		namespace := ancestorNamespace
		switch {
		case prefix != "":
			mod := d.spec.FindModuleByName(prefix)
			if mod == nil {
				return &UnknownModule{Module: prefix}
			}
			namespace = mod.Namespace
		case topLevel:
			return &MissingTopLevelQualifier{Member: key}
		}
		if err := d.decodeValue(parent, local, namespace); err != nil {
			return err
		}
	}
	tok, err := d.token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '}' {
		return &ParseError{Reason: "expected '}'"}
	}
	return nil
}

// decodeValue reads one JSON value - object, array, scalar, or null - and
// appends the element(s) it denotes to parent under name local. An array
// appends one sibling element per entry, reconstructing the XML
// repeated-element form the JSON array shape came from.
func (d *jsonDecoder) decodeValue(parent *xmlnode.Node, local, namespace string) error {
	tok, err := d.token()
	if err != nil {
		return err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			elem := d.newElement(parent, local, namespace)
			return d.decodeObjectMembers(elem, namespace, false)
		case '[':
			for d.dec.More() {
				if err := d.decodeValue(parent, local, namespace); err != nil {
					return err
				}
			}
			closeTok, err := d.token()
			if err != nil {
				return err
			}
			if delim, ok := closeTok.(json.Delim); !ok || delim != ']' {
				return &ParseError{Reason: "expected ']'"}
			}
			return nil
		default:
			return &ParseError{Reason: "unexpected JSON delimiter"}
		}
	case nil:
		// A leaf's "null" marker: the element acquires no body child.
		d.newElement(parent, local, namespace)
		return nil
	case string:
		elem := d.newElement(parent, local, namespace)
		elem.AppendChild(xmlnode.NewBody(t))
		return nil
	case json.Number:
		elem := d.newElement(parent, local, namespace)
		elem.AppendChild(xmlnode.NewBody(t.String()))
		return nil
	case bool:
		elem := d.newElement(parent, local, namespace)
		body := "false"
		if t {
			body = "true"
		}
		elem.AppendChild(xmlnode.NewBody(body))
		return nil
	default:
		return &ParseError{Reason: "unsupported JSON value"}
	}
}

// newElement creates local as a new child of parent in namespace, setting
// its default namespace so every subsequent lookup (ResolveNamespace,
// EffectiveNamespace) sees it without a prefix.
func (d *jsonDecoder) newElement(parent *xmlnode.Node, local, namespace string) *xmlnode.Node {
	elem := xmlnode.NewElement(local)
	parent.AppendChild(elem)
	if namespace != "" {
		xmlnode.SetDefaultNamespace(elem, namespace)
	}
	return elem
}

// rewriteIdentityrefs: an identityref body decoded as "m:id" gets
// module m resolved, an xmlns:pfx declaration
// found or injected for its namespace, and its body rewritten to
// "pfx:id". A bare "id" already inherits its enclosing element's default
// namespace and needs no rewrite.
func rewriteIdentityrefs(root *xmlnode.Node, spec *yang.Spec) error {
	var walkErr error
	xmlnode.Walk(root, func(x *xmlnode.Node, depth int) xmlnode.WalkResult {
		if x.Stmt == nil || x.Stmt.Type == nil || x.Stmt.Type.Kind != yang.Yidentityref {
			return xmlnode.WalkContinue
		}
		modName, local := splitQName(x.Body())
		if modName == "" {
			return xmlnode.WalkContinue
		}
		mod := spec.FindModuleByName(modName)
		if mod == nil {
			walkErr = &UnknownModule{Module: modName}
			return xmlnode.WalkStop
		}
		prefix := xmlnode.EnsurePrefixedNamespace(x, mod.Namespace, mod.Name)
		setBody(x, prefix+":"+local)
		return xmlnode.WalkContinue
	})
	return walkErr
}

func setBody(x *xmlnode.Node, text string) {
	for _, c := range x.Children {
		if c.Kind == xmlnode.Body {
			c.Text = text
			x.InvalidateTypedValue()
			return
		}
	}
	x.AppendChild(xmlnode.NewBody(text))
	x.InvalidateTypedValue()
}

func lineCol(data []byte, offset int64) (line, col int) {
	line, col = 1, 1
	for i := int64(0); i < offset && int(i) < len(data); i++ {
		if data[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

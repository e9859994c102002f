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

	"github.com/openyang/yangcore/pkg/xmlnode"
)

// Serialize writes n's element children as XML text, in the order they
// appear in the tree (callers needing the canonical Child Comparator
// order call xmlnode.SortTree first). Attributes, including xmlns
// declarations, are emitted exactly as stored on each node.
func Serialize(n *xmlnode.Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	for _, c := range n.ElementChildren() {
		if err := encodeElement(enc, c); err != nil {
			return nil, err
		}
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func qualified(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + ":" + name
}

func encodeElement(enc *xml.Encoder, n *xmlnode.Node) error {
	name := xml.Name{Local: qualified(n.Prefix, n.Name)}
	start := xml.StartElement{Name: name}
	for _, a := range n.Attrs {
		start.Attr = append(start.Attr, xml.Attr{
			Name:  xml.Name{Local: qualified(a.Prefix, a.Name)},
			Value: a.Text,
		})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if n.HasBody() {
		if err := enc.EncodeToken(xml.CharData(n.Body())); err != nil {
			return err
		}
	}
	for _, c := range n.ElementChildren() {
		if err := encodeElement(enc, c); err != nil {
			return err
		}
	}
	return enc.EncodeToken(xml.EndElement{Name: name})
}

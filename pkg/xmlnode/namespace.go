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

package xmlnode

import "strconv"

const xmlnsPrefix = "xmlns"

// ResolveNamespace walks n's ancestors, consulting xmlns/xmlns:pfx
// attributes, to find the namespace URI bound to prefix on n. An empty
// prefix looks up the default namespace.
func ResolveNamespace(n *Node, prefix string) string {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Kind != Element {
			continue
		}
		if prefix == "" {
			if a := cur.Attr("", xmlnsPrefix); a != nil {
				return a.Text
			}
			continue
		}
		if a := cur.Attr(xmlnsPrefix, prefix); a != nil {
			return a.Text
		}
	}
	return ""
}

// EffectiveNamespace returns the namespace URI that governs element n:
// its own prefix resolved against ancestor xmlns declarations, or the
// inherited default namespace when n is unprefixed.
func EffectiveNamespace(n *Node) string {
	return ResolveNamespace(n, n.Prefix)
}

// SetDefaultNamespace finds or injects the xmlns attribute on n that
// makes it carry namespace as its default namespace, rewriting any
// existing conflicting default declaration.
func SetDefaultNamespace(n *Node, namespace string) {
	if a := n.Attr("", xmlnsPrefix); a != nil {
		a.Text = namespace
		return
	}
	n.SetAttr("", xmlnsPrefix, namespace)
}

// EnsurePrefixedNamespace finds an existing xmlns:pfx attribute on n
// (walking ancestors) that already binds namespace, or injects a new
// one on n under a synthesized prefix, returning the prefix to use.
// Used by the identityref decode path when an incoming identity value
// needs a namespace declaration its element lacks.
func EnsurePrefixedNamespace(n *Node, namespace, hint string) string {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Kind != Element {
			continue
		}
		for _, a := range cur.Attrs {
			if a.Prefix == xmlnsPrefix && a.Text == namespace {
				return a.Name
			}
		}
	}
	prefix := hint
	if prefix == "" {
		prefix = "id"
	}
	base := prefix
	for i := 0; n.Attr(xmlnsPrefix, prefix) != nil; i++ {
		prefix = base + strconv.Itoa(i+1)
	}
	n.SetAttr(xmlnsPrefix, prefix, namespace)
	return prefix
}

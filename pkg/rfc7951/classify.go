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
	"github.com/openyang/yangcore/pkg/xmlnode"
	"github.com/openyang/yangcore/pkg/yang"
)

// childKind classifies an element's own children: null (none), body
// (exactly one body child), or any (everything else, including a
// single element child).
type childKind int

const (
	nullChild childKind = iota
	bodyChild
	anyChild
)

func classifyChild(x *xmlnode.Node) childKind {
	switch len(x.Children) {
	case 0:
		return nullChild
	case 1:
		if x.Children[0].Kind == xmlnode.Body {
			return bodyChild
		}
		return anyChild
	default:
		return anyChild
	}
}

// isNullContainer reports whether a null-child element should render as
// "{}" (a container with nothing in it) rather than "null" (a leaf,
// leaf-list entry, anydata or anyxml with nothing in it), per the matrix's
// null-child column.
func isNullContainer(x *xmlnode.Node) bool {
	return x.Stmt != nil && x.Stmt.Keyword == yang.KContainer
}

// forcesArray reports whether x's statement keyword always renders as a
// JSON array regardless of run length: list (RFC 7951 §5.3) and leaf-list
// (RFC 7951 §5.4) are arrays even with a single instance, unlike the
// "single" case the source groups under its list-only SINGLE_ARRAY rule.
func forcesArray(x *xmlnode.Node) bool {
	return x.Stmt != nil && (x.Stmt.Keyword == yang.KList || x.Stmt.Keyword == yang.KLeafList)
}

// sameSeries reports whether two siblings belong to the same array
// run: same local name, same effective namespace.
func sameSeries(a, b *xmlnode.Node) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Name == b.Name && xmlnode.EffectiveNamespace(a) == xmlnode.EffectiveNamespace(b)
}

// runAt groups the maximal run of siblings starting at i that share a
// series with siblings[i], returning the run and the index just past it.
func runAt(siblings []*xmlnode.Node, i int) (run []*xmlnode.Node, next int) {
	j := i
	for j+1 < len(siblings) && sameSeries(siblings[j], siblings[j+1]) {
		j++
	}
	return siblings[i : j+1], j + 1
}

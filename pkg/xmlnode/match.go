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

import "github.com/openyang/yangcore/pkg/yang"

// QueryForNode builds the Query that would locate a counterpart of x
// among sorted siblings, reading its identifying fields (name, order,
// keys or leaf-list value) off x's bound statement.
func QueryForNode(x *Node) Query {
	q := Query{Name: x.Name}
	if x.Stmt == nil {
		return q
	}
	q.Order = x.Stmt.Order
	q.Keyword = x.Stmt.Keyword
	switch x.Stmt.Keyword {
	case yang.KLeafList:
		q.Value = x.Body()
	case yang.KList:
		q.KeyNames = x.Stmt.Keys
		q.KeyVals = make([]string, len(x.Stmt.Keys))
		for i, k := range x.Stmt.Keys {
			q.KeyVals[i], _ = x.FindBody(k)
		}
	}
	return q
}

// IsSchemaBound reports whether every element child of n carries a
// bound statement, the condition Match requires to take the optimized
// Search path instead of a linear scan.
func IsSchemaBound(n *Node) bool {
	for _, c := range n.ElementChildren() {
		if c.Stmt == nil {
			return false
		}
	}
	return true
}

// Match locates m's counterpart in base, the operation merge/diff use
// to pair a "modification" child with its "base" sibling.
func Match(base, m *Node) (counterpart *Node, ok bool) {
	if m.Stmt != nil {
		if choice := m.Stmt.ChoiceParent(); choice != nil {
			return matchByChoice(base, choice)
		}
	}
	if IsSchemaBound(base) {
		return Search(base, QueryForNode(m))
	}
	return matchLinear(base, m)
}

// matchByChoice finds any base child whose resolved statement shares
// choice as its lexical choice parent: the lexical name may differ
// because choice permits alternative cases.
func matchByChoice(base *Node, choice *yang.Stmt) (*Node, bool) {
	for _, c := range base.ElementChildren() {
		if c.Stmt == nil {
			continue
		}
		if c.Stmt.ChoiceParent() == choice {
			return c, true
		}
	}
	return nil, false
}

// matchLinear scans base's children one by one with the same
// keyword-specific predicate Search uses, for trees not yet schema
// bound.
func matchLinear(base, m *Node) (*Node, bool) {
	q := QueryForNode(m)
	for _, c := range base.ElementChildren() {
		if c.Name != q.Name {
			continue
		}
		if kc, _ := keyCompare(c, q); kc == 0 {
			return c, true
		}
	}
	return nil, false
}

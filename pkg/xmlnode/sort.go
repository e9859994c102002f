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

import "sort"

// Sort orders n's element children in place with the stable child
// comparator. State data (config false) is left in arrival order.
// Attribute children are untouched. Sort is not recursive; callers
// walk the tree themselves (see Walk) to sort every level.
func Sort(n *Node) {
	if n.Stmt != nil && !n.Stmt.Config {
		return
	}
	elems := n.ElementChildren()
	if len(elems) < 2 {
		return
	}
	sort.SliceStable(elems, func(i, j int) bool {
		return Compare(elems[i], elems[j]) < 0
	})
	merged := make([]*Node, 0, len(n.Children))
	ei := 0
	for _, c := range n.Children {
		if c.Kind == Element {
			merged = append(merged, elems[ei])
			ei++
			continue
		}
		merged = append(merged, c)
	}
	n.Children = merged
}

// SortTree sorts n and every descendant element, depth-first.
func SortTree(n *Node) {
	Sort(n)
	for _, c := range n.ElementChildren() {
		SortTree(c)
	}
}

// Verify walks n's element children once and asserts the comparator
// puts each adjacent pair in non-decreasing order, returning the first
// offending pair on failure.
func Verify(n *Node) (ok bool, first, second *Node) {
	elems := n.ElementChildren()
	for i := 1; i < len(elems); i++ {
		if Compare(elems[i-1], elems[i]) > 0 {
			return false, elems[i-1], elems[i]
		}
	}
	return true, nil, nil
}

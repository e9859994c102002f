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

import (
	"strings"

	"github.com/openyang/yangcore/pkg/yang"
)

// Query names the child a Search or InsertPosition call is looking
// for: its name, its YANG order index, its keyword, and (for
// leaf-list/list) the value(s) that identify the specific instance.
type Query struct {
	Name     string
	Order    int
	Keyword  yang.Keyword
	KeyNames []string // list
	KeyVals  []string // list, parallel to KeyNames
	Value    string   // leaf-list
}

// keyCompare implements the keyword-specific predicate shared by
// Search, Match, and InsertPosition, each of which calls it directly.
// It returns 0 on a match and a sign otherwise
// so binary search can keep narrowing within a run of siblings that share a
// YANG order index (e.g. list instances), exactly as it would narrow
// on the order index itself. userOrder reports back whether the
// candidate's own statement is ordered-by-user or state data, in
// which case a miss inside its equal-order run must fall back to a
// linear sweep rather than trust the sign.
func keyCompare(x *Node, q Query) (cmp int, userOrder bool) {
	y := x.Stmt
	if y != nil && (!y.Config || y.OrderedByUser) {
		userOrder = true
	}
	switch q.Keyword {
	case yang.KContainer, yang.KLeaf:
		return strings.Compare(q.Name, x.Name), userOrder
	case yang.KLeafList:
		body, has := bodyOf(x)
		if !has {
			return 1, userOrder
		}
		return strings.Compare(q.Value, body), userOrder
	case yang.KList:
		for i, kn := range q.KeyNames {
			b, ok := x.FindBody(kn)
			if !ok {
				return 1, userOrder
			}
			if c := strings.Compare(q.KeyVals[i], b); c != 0 {
				return c, userOrder
			}
		}
		return 0, userOrder
	default:
		return 0, userOrder
	}
}

func bodyOf(x *Node) (string, bool) {
	if !x.HasBody() {
		return "", false
	}
	return x.Body(), true
}

// Search performs a binary search to locate the child of parent
// matching q by YANG order index and the keyword-specific predicate.
// It never errors; a miss is reported as ok == false.
func Search(parent *Node, q Query) (result *Node, ok bool) {
	elems := parent.ElementChildren()
	i, hit := searchRange(elems, q, 0, len(elems)-1)
	if !hit {
		return nil, false
	}
	return elems[i], true
}

func searchRange(elems []*Node, q Query, low, high int) (int, bool) {
	if low > high {
		return 0, false
	}
	mid := (low + high) / 2
	if mid >= len(elems) {
		return 0, false
	}
	xc := elems[mid]
	if xc.Stmt == nil {
		return 0, false
	}
	cmp := q.Order - xc.Stmt.Order
	if cmp == 0 {
		kc, userOrder := keyCompare(xc, q)
		if userOrder && kc != 0 {
			return searchUserOrder(elems, q, mid)
		}
		cmp = kc
	}
	if cmp == 0 {
		return mid, true
	}
	if cmp < 0 {
		return searchRange(elems, q, low, mid-1)
	}
	return searchRange(elems, q, mid+1, high)
}

// searchUserOrder falls back to a linear sweep bounded to the run of
// elements sharing yangi, since order within an ordered-by-user run is
// arbitrary.
func searchUserOrder(elems []*Node, q Query, mid int) (int, bool) {
	yangi := elems[mid].Stmt.Order
	for i := mid + 1; i < len(elems) && elems[i].Stmt != nil && elems[i].Stmt.Order == yangi; i++ {
		if kc, _ := keyCompare(elems[i], q); kc == 0 {
			return i, true
		}
	}
	for i := mid - 1; i >= 0 && elems[i].Stmt != nil && elems[i].Stmt.Order == yangi; i-- {
		if kc, _ := keyCompare(elems[i], q); kc == 0 {
			return i, true
		}
	}
	return 0, false
}

// InsertPosition computes the index into parent's element children at
// which a new child matching q should be inserted to keep the
// children sorted. On a hit inside a user-ordered run it returns one
// past the last equal-name neighbour, i.e. append within the run.
func InsertPosition(parent *Node, q Query) int {
	elems := parent.ElementChildren()
	return insertPos(elems, q, 0, len(elems))
}

func insertPos(elems []*Node, q Query, low, high int) int {
	if high < low {
		return low
	}
	mid := (low + high) / 2
	if mid >= len(elems) {
		return len(elems)
	}
	xc := elems[mid]
	if xc.Stmt == nil {
		return len(elems)
	}
	cmp := q.Order - xc.Stmt.Order
	if cmp == 0 {
		kc, userOrder := keyCompare(xc, q)
		if userOrder {
			last := mid
			for i := mid + 1; i < len(elems) && elems[i].Name == q.Name; i++ {
				last = i
			}
			return last + 1
		}
		cmp = kc
	}
	if cmp == 0 {
		return mid
	}
	if cmp < 0 {
		return insertPos(elems, q, low, mid-1)
	}
	return insertPos(elems, q, mid+1, high)
}

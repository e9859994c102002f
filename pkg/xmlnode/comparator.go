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
	"github.com/openyang/yangcore/pkg/value"
	"github.com/openyang/yangcore/pkg/yang"
)

// Compare induces a strict weak order over two sibling elements a and
// b. It never errors: a node with no useful information
// (unbound, missing body) simply compares equal or sorts first.
func Compare(a, b *Node) int {
	// Rule 1: either side unbound compares equal (stability preserved).
	if a.Stmt == nil || b.Stmt == nil {
		return 0
	}
	// Rule 2: different statements compare by YANG order index.
	if a.Stmt != b.Stmt {
		return a.Stmt.Order - b.Stmt.Order
	}
	// Rule 3: state data or ordered-by-user never reorders.
	if !a.Stmt.Config || a.Stmt.OrderedByUser {
		return 0
	}
	switch a.Stmt.Keyword {
	case yang.KLeafList:
		return compareLeafListBody(a, b)
	case yang.KList:
		return compareListKeys(a, b, a.Stmt.Keys)
	default:
		return 0
	}
}

// compareLeafListBody: a missing body sorts strictly before a present
// one, otherwise compare typed values.
func compareLeafListBody(a, b *Node) int {
	aHas, bHas := a.HasBody(), b.HasBody()
	switch {
	case !aHas && !bHas:
		return 0
	case !aHas:
		return -1
	case !bHas:
		return 1
	}
	av, aerr := a.TypedValue()
	bv, berr := b.TypedValue()
	if aerr != nil || berr != nil {
		return 0
	}
	return value.Compare(av, bv)
}

// compareListKeys iterates the cached key-name sequence, comparing the
// string body of each keyed child in turn.
func compareListKeys(a, b *Node, keys []string) int {
	for _, k := range keys {
		ab, _ := a.FindBody(k)
		bb, _ := b.FindBody(k)
		if ab == bb {
			continue
		}
		if ab < bb {
			return -1
		}
		return 1
	}
	return 0
}

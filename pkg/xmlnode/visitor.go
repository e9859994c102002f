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

// WalkResult tells Walk how to proceed after visiting a node, modeling
// a callback-based tree apply as an explicit result instead of a
// coroutine.
type WalkResult int

const (
	// WalkContinue visits n's children, then its next sibling.
	WalkContinue WalkResult = iota
	// WalkSkipChildren moves to n's next sibling without descending.
	WalkSkipChildren
	// WalkStop halts the walk entirely.
	WalkStop
)

// Walk performs a depth-first pre-order traversal of n's element tree,
// calling visit(node, depth) at each element and honoring its
// WalkResult. It returns true if the walk ran to completion, false if
// a visit call returned WalkStop.
func Walk(n *Node, visit func(x *Node, depth int) WalkResult) bool {
	return walk(n, 0, visit)
}

func walk(n *Node, depth int, visit func(*Node, int) WalkResult) bool {
	switch visit(n, depth) {
	case WalkStop:
		return false
	case WalkSkipChildren:
		return true
	}
	for _, c := range n.ElementChildren() {
		if !walk(c, depth+1, visit) {
			return false
		}
	}
	return true
}

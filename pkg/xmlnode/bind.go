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

// Bind resolves and attaches a YANG statement to n and every element
// descendant, depth-first, so Sort/Search/Match have a fully annotated
// tree to work on.
func Bind(r *Resolver, n *Node) {
	bind(r, nil, n)
}

func bind(r *Resolver, parent, n *Node) {
	if n.Kind == Element {
		n.Stmt = r.Resolve(parent, n)
	}
	for _, c := range n.ElementChildren() {
		bind(r, n, c)
	}
}

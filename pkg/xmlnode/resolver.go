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

// Direction selects which rpc sub-statement rules 1 and 4 re-enter:
// Input for an incoming <rpc> payload, Output for an outgoing
// <rpc-reply>. The zero value is Input, the common case.
type Direction int

const (
	Input Direction = iota
	Output
)

func (d Direction) keyword() yang.Keyword {
	if d == Output {
		return yang.KOutput
	}
	return yang.KInput
}

// Resolver binds XML elements to the YANG statements that govern them.
// It is held on the engine handle alongside the strictness flags it
// needs, rather than in process globals.
type Resolver struct {
	Spec *yang.Spec
	// NonStrictNamespace enables the fallback inside rule 3 below: match
	// by argument name across any module when a namespace lookup misses.
	NonStrictNamespace bool
	// Direction selects input or output re-entry for an rpc statement.
	Direction Direction
}

// NewResolver returns a Resolver bound to spec with strict namespace
// matching and Input direction, the safe defaults.
func NewResolver(spec *yang.Spec) *Resolver {
	return &Resolver{Spec: spec}
}

// Resolve returns the YANG statement governing child, given its
// (possibly nil) parent element, following rules 1-4 in order.
func (r *Resolver) Resolve(parent, child *Node) *yang.Stmt {
	io := r.Direction.keyword()
	var y *yang.Stmt
	switch {
	case parent != nil && parent.Stmt != nil:
		// Rule 1: rpc re-enters its input (or, symmetrically, output)
		// sub-statement.
		if parent.Stmt.Keyword == yang.KRPC {
			if sub := parent.Stmt.Find(io); sub != nil {
				y = sub.FindDataChild(child.Name)
			}
			break
		}
		// Rule 2: search data-node children, transparent through choice/case.
		y = parent.Stmt.FindDataChild(child.Name)
	default:
		// Rule 3: no parent, resolve the module from namespace and
		// search its top-level schema nodes.
		mod := r.moduleForElement(child)
		if mod != nil {
			y = findTop(mod, child.Name)
		}
		if y == nil && r.NonStrictNamespace {
			y = r.findAnyModule(child.Name)
		}
	}
	// Rule 4: a resolved rpc descends once into its input (or output).
	if y != nil && y.Keyword == yang.KRPC {
		if sub := y.Find(io); sub != nil {
			y = sub
		}
	}
	return y
}

func findTop(m *yang.Module, name string) *yang.Stmt {
	for _, s := range m.Top {
		if s.Keyword == yang.KChoice || s.Keyword == yang.KCase {
			if found := s.FindDataChild(name); found != nil {
				return found
			}
			continue
		}
		if s.Argument == name {
			return s
		}
	}
	return nil
}

// findAnyModule implements the non-strict fallback of rule 3 above:
// matching purely on argument name, ambiguous whenever two modules
// declare the same top-level name. Callers that
// enable NonStrictNamespace accept that ambiguity; the engine does not
// silently disambiguate it further.
func (r *Resolver) findAnyModule(name string) *yang.Stmt {
	for _, m := range r.allModules() {
		if found := findTop(m, name); found != nil {
			return found
		}
	}
	return nil
}

func (r *Resolver) moduleForElement(x *Node) *yang.Module {
	ns := EffectiveNamespace(x)
	if ns == "" {
		return nil
	}
	return r.Spec.FindModuleByNamespace(ns)
}

// allModules returns every module registered in the spec, in no
// particular order; used only by the non-strict fallback.
func (r *Resolver) allModules() []*yang.Module {
	return r.Spec.Modules()
}

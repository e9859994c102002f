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

package yang

// Module is a YANG module: a namespace, a canonical prefix, and the
// module's top-level data-node statements.
type Module struct {
	Name      string
	Prefix    string
	Namespace string

	Top []*Stmt // top-level data-node statements, in declared order

	spec       *Spec
	identities map[string]*Identity
}

// Identities returns the identities declared directly in m.
func (m *Module) Identities() []*Identity {
	out := make([]*Identity, 0, len(m.identities))
	for _, id := range m.identities {
		out = append(out, id)
	}
	return out
}

// Spec is the forest root of an already-parsed YANG schema: the
// read-only contract the engine uses as its schema provider.
type Spec struct {
	modulesByName      map[string]*Module
	modulesByPrefix    map[string]*Module
	modulesByNamespace map[string]*Module
}

// NewSpec returns an empty Spec that modules can be registered into with
// AddModule. A Spec is immutable once handed to an engine.
func NewSpec() *Spec {
	return &Spec{
		modulesByName:      map[string]*Module{},
		modulesByPrefix:    map[string]*Module{},
		modulesByNamespace: map[string]*Module{},
	}
}

// AddModule registers m with the spec and returns m for chaining. It is
// a builder-time operation; do not call it once the Spec is shared with
// an engine.
func (s *Spec) AddModule(m *Module) *Module {
	m.spec = s
	if m.identities == nil {
		m.identities = map[string]*Identity{}
	}
	s.modulesByName[m.Name] = m
	s.modulesByPrefix[m.Prefix] = m
	s.modulesByNamespace[m.Namespace] = m
	for i, top := range m.Top {
		top.Module = m
		top.Order = i
		assignOrder(top)
	}
	return m
}

// assignOrder walks a statement's descendants assigning Order to each
// data-node child in declared order, so nested lists/containers get a
// stable order index within their own parent too. It also sets each
// descendant's Module and its lexical Parent.
func assignOrder(s *Stmt) {
	i := 0
	for _, c := range s.Children {
		c.Module = s.Module
		c.Parent = s
		if c.Keyword == KChoice || c.Keyword == KCase {
			assignOrder(c)
			continue
		}
		c.Order = i
		i++
		assignOrder(c)
	}
}

// FindModuleByName resolves a module by its module name.
func (s *Spec) FindModuleByName(name string) *Module {
	return s.modulesByName[name]
}

// FindModuleByPrefix resolves a module by its canonical prefix.
func (s *Spec) FindModuleByPrefix(prefix string) *Module {
	return s.modulesByPrefix[prefix]
}

// FindModuleByNamespace resolves a module by its XML namespace URI.
func (s *Spec) FindModuleByNamespace(namespace string) *Module {
	return s.modulesByNamespace[namespace]
}

// Modules returns every module registered with s, in no particular
// order. Used by the non-strict namespace fallback; most callers
// should prefer the targeted Find* lookups.
func (s *Spec) Modules() []*Module {
	out := make([]*Module, 0, len(s.modulesByName))
	for _, m := range s.modulesByName {
		out = append(out, m)
	}
	return out
}

// AddIdentity registers identity id, declared in module m, so that
// m.FindIdentity can look it up by name.
func (s *Spec) AddIdentity(m *Module, id *Identity) {
	if m.identities == nil {
		m.identities = map[string]*Identity{}
	}
	id.Module = m
	m.identities[id.Name] = id
}

// FindIdentity resolves the identity named name within module m.
func (m *Module) FindIdentity(name string) *Identity {
	if m == nil {
		return nil
	}
	return m.identities[name]
}

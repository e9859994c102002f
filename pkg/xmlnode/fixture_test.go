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

// testSchema bundles the statements a handful of tests across this
// package bind trees against: an ietf-interfaces-shaped list keyed by
// name, an ordered-by-user leaf-list, and a config-false subtree.
type testSchema struct {
	spec       *yang.Spec
	module     *yang.Module
	interfaces *yang.Stmt
	iface      *yang.Stmt
	name       *yang.Stmt
	enabled    *yang.Stmt
	desc       *yang.Stmt
	statistics *yang.Stmt
	packets    *yang.Stmt
}

func newTestSchema() *testSchema {
	name := &yang.Stmt{Keyword: yang.KLeaf, Argument: "name", Config: true, Type: &yang.Type{Kind: yang.Ystring}}
	enabled := &yang.Stmt{Keyword: yang.KLeaf, Argument: "enabled", Config: true, Type: &yang.Type{Kind: yang.Ybool}}
	desc := &yang.Stmt{Keyword: yang.KLeafList, Argument: "description", Config: true, OrderedByUser: true, Type: &yang.Type{Kind: yang.Ystring}}
	iface := &yang.Stmt{
		Keyword: yang.KList, Argument: "interface", Config: true, Keys: []string{"name"},
		Children: []*yang.Stmt{name, enabled, desc},
	}
	packets := &yang.Stmt{Keyword: yang.KLeaf, Argument: "packets", Config: false, Type: &yang.Type{Kind: yang.Yuint64}}
	statistics := &yang.Stmt{Keyword: yang.KContainer, Argument: "statistics", Config: false, Children: []*yang.Stmt{packets}}
	interfaces := &yang.Stmt{
		Keyword: yang.KContainer, Argument: "interfaces", Config: true,
		Children: []*yang.Stmt{iface, statistics},
	}

	spec := yang.NewSpec()
	mod := spec.AddModule(&yang.Module{
		Name: "example", Prefix: "ex", Namespace: "urn:example",
		Top: []*yang.Stmt{interfaces},
	})
	return &testSchema{
		spec: spec, module: mod, interfaces: interfaces, iface: iface,
		name: name, enabled: enabled, desc: desc, statistics: statistics, packets: packets,
	}
}

func leafElem(name string, s *yang.Stmt, body string) *Node {
	e := NewElement(name)
	e.Stmt = s
	e.AppendChild(NewBody(body))
	return e
}

func emptyElem(name string, s *yang.Stmt) *Node {
	e := NewElement(name)
	e.Stmt = s
	return e
}

func ifaceInstance(ts *testSchema, ifaceName string) *Node {
	e := NewElement("interface")
	e.Stmt = ts.iface
	e.AppendChild(leafElem("name", ts.name, ifaceName))
	e.AppendChild(leafElem("enabled", ts.enabled, "true"))
	return e
}

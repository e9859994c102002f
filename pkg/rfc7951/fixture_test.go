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

// ifTestSchema mirrors a slimmed-down ietf-interfaces: a config list
// keyed by name with a boolean leaf, an ordered-by-user leaf-list, an
// identityref leaf, and a config-false statistics container, plus a
// second module contributing the identity base and one derived
// identity to exercise cross-module identityref prefixing.
type ifTestSchema struct {
	spec       *yang.Spec
	ifModule   *yang.Module
	iftModule  *yang.Module
	interfaces *yang.Stmt
	iface      *yang.Stmt
	name       *yang.Stmt
	enabled    *yang.Stmt
	address    *yang.Stmt
	ifType     *yang.Stmt
	statistics *yang.Stmt
	inOctets   *yang.Stmt
	ethernet   *yang.Identity
	custom     *yang.Identity
}

func newIfTestSchema() *ifTestSchema {
	spec := yang.NewSpec()
	iftModule := spec.AddModule(&yang.Module{Name: "ianaift", Prefix: "ianaift", Namespace: "urn:ianaift"})
	ifaceType := &yang.Identity{Name: "iana-interface-type"}
	spec.AddIdentity(iftModule, ifaceType)
	ethernet := &yang.Identity{Name: "ethernetCsmacd"}
	spec.AddIdentity(iftModule, ethernet)

	name := &yang.Stmt{Keyword: yang.KLeaf, Argument: "name", Config: true, Type: &yang.Type{Kind: yang.Ystring}}
	enabled := &yang.Stmt{Keyword: yang.KLeaf, Argument: "enabled", Config: true, Type: &yang.Type{Kind: yang.Ybool}}
	address := &yang.Stmt{Keyword: yang.KLeafList, Argument: "address", Config: true, OrderedByUser: true, Type: &yang.Type{Kind: yang.Ystring}}
	ifType := &yang.Stmt{Keyword: yang.KLeaf, Argument: "type", Config: true, Type: &yang.Type{Kind: yang.Yidentityref, IdentityBase: ifaceType}}
	iface := &yang.Stmt{
		Keyword: yang.KList, Argument: "interface", Config: true, Keys: []string{"name"},
		Children: []*yang.Stmt{name, enabled, address, ifType},
	}
	inOctets := &yang.Stmt{Keyword: yang.KLeaf, Argument: "in-octets", Config: false, Type: &yang.Type{Kind: yang.Yuint64}}
	statistics := &yang.Stmt{Keyword: yang.KContainer, Argument: "statistics", Config: false, Children: []*yang.Stmt{inOctets}}
	interfaces := &yang.Stmt{
		Keyword: yang.KContainer, Argument: "interfaces", Config: true,
		Children: []*yang.Stmt{iface, statistics},
	}

	ifModule := spec.AddModule(&yang.Module{
		Name: "ietf-interfaces", Prefix: "if", Namespace: "urn:ietf-interfaces",
		Top: []*yang.Stmt{interfaces},
	})
	custom := &yang.Identity{Name: "custom-type"}
	spec.AddIdentity(ifModule, custom)

	return &ifTestSchema{
		spec: spec, ifModule: ifModule, iftModule: iftModule,
		interfaces: interfaces, iface: iface, name: name, enabled: enabled,
		address: address, ifType: ifType, statistics: statistics, inOctets: inOctets,
		ethernet: ethernet, custom: custom,
	}
}

func (ts *ifTestSchema) leaf(s *yang.Stmt, name, body string) *xmlnode.Node {
	e := xmlnode.NewElement(name)
	e.Stmt = s
	e.AppendChild(xmlnode.NewBody(body))
	return e
}

func (ts *ifTestSchema) empty(s *yang.Stmt, name string) *xmlnode.Node {
	e := xmlnode.NewElement(name)
	e.Stmt = s
	return e
}

// Copyright 2019 Google Inc.
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

// Package engine bundles the schema, the strictness flags, and the
// error reporter that every other package here treats as external
// collaborators into a single explicit handle, kept on the caller's
// side rather than in process globals.
package engine

import (
	"github.com/openyang/yangcore/pkg/reporter"
	"github.com/openyang/yangcore/pkg/xmlnode"
	"github.com/openyang/yangcore/pkg/yang"
)

// DefaultIndent is the two-space JSON pretty-print indent, a parameter
// on the engine rather than hard-coded.
const DefaultIndent = "  "

// Engine is the config surface bundling a Spec, the ns-strict and
// identityref-kludge flags, and the pretty-print indent, all explicit
// rather than global.
type Engine struct {
	Spec     *yang.Spec
	Resolver *xmlnode.Resolver
	Reporter reporter.Sink

	// NsStrict toggles the resolver's non-strict namespace fallback.
	NsStrict bool
	// IdentityrefKludge holds the identityref-kludge flag, off by
	// default. Nothing in this module reads it: identityref decoding in
	// rfc7951.Decode is the same whichever way it is set, and there is
	// no fallback path for inputs missing xmlns.
	IdentityrefKludge bool
	// Indent is the JSON pretty-print indent unit.
	Indent string
}

// New returns an Engine bound to spec with the safe defaults: strict
// namespace resolution, the identityref kludge disabled, and a
// two-space indent.
func New(spec *yang.Spec, sink reporter.Sink) *Engine {
	return &Engine{
		Spec:     spec,
		Resolver: xmlnode.NewResolver(spec),
		Reporter: sink,
		NsStrict: true,
		Indent:   DefaultIndent,
	}
}

// applyFlags keeps Resolver.NonStrictNamespace in sync with NsStrict
// whenever a caller flips it, so the two never drift.
func (e *Engine) applyFlags() {
	e.Resolver.NonStrictNamespace = !e.NsStrict
}

// SetNsStrict sets the ns-strict flag.
func (e *Engine) SetNsStrict(strict bool) {
	e.NsStrict = strict
	e.applyFlags()
}

// Bind resolves YANG statements onto every element of n using this
// engine's Resolver.
func (e *Engine) Bind(n *xmlnode.Node) {
	xmlnode.Bind(e.Resolver, n)
}

// report forwards r to the configured sink, if any.
func (e *Engine) report(r reporter.Report) {
	if e.Reporter != nil {
		e.Reporter.Report(r)
	}
}

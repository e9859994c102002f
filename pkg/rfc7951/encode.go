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
	"bytes"
	"encoding/json"
	"strings"

	"github.com/openyang/yangcore/pkg/value"
	"github.com/openyang/yangcore/pkg/xmlnode"
	"github.com/openyang/yangcore/pkg/yang"
)

// Options configures both directions of the codec. Spec is required
// whenever an identityref leaf or an unbound element needs its module
// resolved from a namespace URI; Pretty/Indent control output layout
// only.
type Options struct {
	Spec   *yang.Spec
	Pretty bool
	Indent string
}

func (o Options) indentUnit() string {
	if o.Indent == "" {
		return "  "
	}
	return o.Indent
}

// Encode renders n's element children as the members of one RFC 7951 JSON
// object, module-qualified at the top level as RFC 7951 §4 requires - the
// shape a NETCONF <config> or <rpc-reply> payload takes as JSON.
func Encode(n *xmlnode.Node, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	children := n.ElementChildren()
	if err := encodeMembers(&buf, children, "", true, opts, 1); err != nil {
		return nil, err
	}
	if opts.Pretty && len(children) > 0 {
		buf.WriteByte('\n')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encodeMembers writes each run of same-series siblings as one JSON member,
// bracketing it into an array when the run has more than one element or the
// bound statement always arrays (list, leaf-list).
func encodeMembers(buf *bytes.Buffer, siblings []*xmlnode.Node, ancestorModule string, topLevel bool, opts Options, level int) error {
	for i := 0; i < len(siblings); {
		if i > 0 {
			buf.WriteByte(',')
		}
		run, next := runAt(siblings, i)
		x := run[0]

		module, err := resolvedModule(x, ancestorModule, opts.Spec)
		if err != nil {
			return err
		}

		writeNL(buf, opts.Pretty)
		writeIndent(buf, opts, level)
		buf.WriteString(quoteString(memberName(x, module, ancestorModule, topLevel)))
		buf.WriteByte(':')
		if opts.Pretty {
			buf.WriteByte(' ')
		}

		if isArray := len(run) > 1 || forcesArray(x); isArray {
			buf.WriteByte('[')
			for k, e := range run {
				if k > 0 {
					buf.WriteByte(',')
				}
				writeNL(buf, opts.Pretty)
				writeIndent(buf, opts, level+1)
				if err := encodeValue(buf, e, module, opts, level+1); err != nil {
					return err
				}
			}
			writeNL(buf, opts.Pretty)
			writeIndent(buf, opts, level)
			buf.WriteByte(']')
		} else if err := encodeValue(buf, x, module, opts, level); err != nil {
			return err
		}
		i = next
	}
	return nil
}

// encodeValue writes a single element's value by child kind: null/"{}"
// for an empty element, the leaf's scalar for a body child, or a
// nested object for anything else.
func encodeValue(buf *bytes.Buffer, x *xmlnode.Node, module string, opts Options, level int) error {
	switch classifyChild(x) {
	case nullChild:
		if isNullContainer(x) {
			buf.WriteString("{}")
		} else {
			buf.WriteString("null")
		}
	case bodyChild:
		s, err := formatLeaf(x, module, opts.Spec)
		if err != nil {
			return err
		}
		buf.WriteString(s)
	case anyChild:
		buf.WriteByte('{')
		if err := encodeMembers(buf, x.ElementChildren(), module, false, opts, level+1); err != nil {
			return err
		}
		writeNL(buf, opts.Pretty)
		writeIndent(buf, opts, level)
		buf.WriteByte('}')
	}
	return nil
}

// formatLeaf renders a leaf or leaf-list body: integers, decimal64 and
// booleans unquoted, identityref rewritten to its module-qualified
// form, everything else quoted as a JSON string with CDATA unwrapped
// first.
func formatLeaf(x *xmlnode.Node, enclosingModule string, spec *yang.Spec) (string, error) {
	if x.Stmt == nil || x.Stmt.Type == nil {
		return quoteString(stripCDATA(x.Body())), nil
	}
	typ := x.Stmt.Type
	switch {
	case typ.Kind == yang.Yidentityref:
		return encodeIdentityref(x, enclosingModule, spec)
	case typ.Kind.IsInteger() || typ.Kind == yang.Ydecimal64 || typ.Kind == yang.Ybool:
		v, err := x.TypedValue()
		if err != nil {
			return "", err
		}
		return value.Format(v), nil
	default:
		return quoteString(stripCDATA(x.Body())), nil
	}
}

// encodeIdentityref rewrites an identityref leaf's XML-namespace-qualified
// body ("prefix:id", or "id" under the default namespace) to the RFC 7951
// form: "<module>:<id>" when the identity's module differs from the leaf's
// enclosing module, else plain "<id>".
func encodeIdentityref(x *xmlnode.Node, enclosingModule string, spec *yang.Spec) (string, error) {
	body := x.Body()
	prefix, local := splitQName(body)
	ns := xmlnode.ResolveNamespace(x, prefix)
	if ns == "" {
		return "", &InvalidIdentityRef{Value: body, Reason: "no namespace bound for prefix " + prefix}
	}
	if spec == nil {
		return "", &InvalidIdentityRef{Value: body, Reason: "no schema available to resolve identity module"}
	}
	idModule := spec.FindModuleByNamespace(ns)
	if idModule == nil {
		return "", &UnknownNamespace{Namespace: ns}
	}
	if idModule.Name != enclosingModule {
		return quoteString(idModule.Name + ":" + local), nil
	}
	return quoteString(local), nil
}

// resolvedModule returns the module that governs member naming for x: the
// module its bound statement belongs to, falling back to the ancestor
// module thread, falling back to a namespace lookup for an unbound element.
func resolvedModule(x *xmlnode.Node, ancestorModule string, spec *yang.Spec) (string, error) {
	if x.Stmt != nil && x.Stmt.Module != nil {
		return x.Stmt.Module.Name, nil
	}
	if ancestorModule != "" {
		return ancestorModule, nil
	}
	ns := xmlnode.EffectiveNamespace(x)
	if spec != nil {
		if m := spec.FindModuleByNamespace(ns); m != nil {
			return m.Name, nil
		}
	}
	return "", &UnknownNamespace{Namespace: ns}
}

// memberName applies the module-prefixing rule: prefixed at the top
// level or whenever the child's module differs from its ancestor's,
// bare otherwise.
func memberName(x *xmlnode.Node, module, ancestorModule string, topLevel bool) string {
	if topLevel || module != ancestorModule {
		return module + ":" + x.Name
	}
	return x.Name
}

func splitQName(s string) (prefix, local string) {
	if i := strings.IndexByte(s, ':'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return "", s
}

func stripCDATA(s string) string {
	const open, close = "<![CDATA[", "]]>"
	if strings.HasPrefix(s, open) && strings.HasSuffix(s, close) {
		return s[len(open) : len(s)-len(close)]
	}
	return s
}

func quoteString(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		// Marshal only fails on invalid UTF-8; fall back to the raw
		// bytes rather than drop the value.
		return `"` + s + `"`
	}
	return string(b)
}

func writeNL(buf *bytes.Buffer, pretty bool) {
	if pretty {
		buf.WriteByte('\n')
	}
}

func writeIndent(buf *bytes.Buffer, opts Options, level int) {
	if opts.Pretty {
		buf.WriteString(strings.Repeat(opts.indentUnit(), level))
	}
}

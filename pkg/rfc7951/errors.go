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

// Package rfc7951 translates between an xmlnode.Node tree and RFC 7951
// JSON, the wire form NETCONF/RESTCONF state and config use
// interchangeably with XML.
package rfc7951

import "fmt"

// UnknownModule is returned when a JSON member's prefix does not name any
// module registered with the schema.
type UnknownModule struct {
	Module string
}

func (e *UnknownModule) Error() string {
	return fmt.Sprintf("rfc7951: unknown module %q", e.Module)
}

// UnknownNamespace is returned when an XML element carries a namespace URI
// that resolves to no registered module, needed to encode a
// module-qualified member name.
type UnknownNamespace struct {
	Namespace string
}

func (e *UnknownNamespace) Error() string {
	return fmt.Sprintf("rfc7951: unknown namespace %q", e.Namespace)
}

// MissingTopLevelQualifier is returned when a top-level JSON member name
// carries no module prefix, a violation of RFC 7951 §4.
type MissingTopLevelQualifier struct {
	Member string
}

func (e *MissingTopLevelQualifier) Error() string {
	return fmt.Sprintf("rfc7951: top-level member %q is not module-qualified", e.Member)
}

// InvalidIdentityRef is returned when an identityref value cannot be split
// into a resolvable module/identity pair, on either the encode or decode
// path.
type InvalidIdentityRef struct {
	Value  string
	Reason string
}

func (e *InvalidIdentityRef) Error() string {
	return fmt.Sprintf("rfc7951: invalid identityref %q: %s", e.Value, e.Reason)
}

// ParseError reports a malformed JSON document at a token position.
type ParseError struct {
	Line, Col int
	Reason    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("rfc7951: parse error at %d:%d: %s", e.Line, e.Col, e.Reason)
}

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
	"testing"

	"github.com/openyang/yangcore/pkg/xmlnode"
)

// TestEncodeDecodeRoundTrip decodes a document carrying a cross-module
// identityref and a keyed list, re-encodes it, and checks the bytes come
// back unchanged: json_encode(json_decode(J)) = canonicalize(J) for a J
// already in canonical form.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	ts := newIfTestSchema()
	resolver := xmlnode.NewResolver(ts.spec)
	const doc = `{"ietf-interfaces:interfaces":{"interface":[{"name":"eth0","enabled":true,"type":"ianaift:ethernetCsmacd"}]}}`

	root, err := Decode([]byte(doc), resolver)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	out, err := Encode(root, Options{Spec: ts.spec})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if got := string(out); got != doc {
		t.Errorf("Encode(Decode(doc)) = %s, want %s", got, doc)
	}
}

// TestDecodeEncodeDecodeRoundTrip checks the other direction: decoding
// the re-encoded bytes produces a tree that decodes the same way again,
// i.e. a second decode/encode cycle is idempotent once the first has
// settled into sorted, schema-bound form.
func TestDecodeEncodeDecodeRoundTrip(t *testing.T) {
	ts := newIfTestSchema()
	resolver := xmlnode.NewResolver(ts.spec)
	const doc = `{"ietf-interfaces:interfaces":{"interface":[{"name":"eth0","enabled":true,"type":"ianaift:ethernetCsmacd"},{"name":"eth1","enabled":false,"type":"custom-type"}]}}`

	root, err := Decode([]byte(doc), resolver)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	first, err := Encode(root, Options{Spec: ts.spec})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	root2, err := Decode(first, resolver)
	if err != nil {
		t.Fatalf("Decode(Encode(doc)) error = %v", err)
	}
	second, err := Encode(root2, Options{Spec: ts.spec})
	if err != nil {
		t.Fatalf("Encode(Decode(Encode(doc))) error = %v", err)
	}

	if string(first) != string(second) {
		t.Errorf("round trip is not idempotent: first = %s, second = %s", first, second)
	}
}

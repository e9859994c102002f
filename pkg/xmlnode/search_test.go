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

import "testing"

func buildInterfaces(ts *testSchema, names ...string) *Node {
	root := NewElement("interfaces")
	root.Stmt = ts.interfaces
	for _, n := range names {
		root.AppendChild(ifaceInstance(ts, n))
	}
	return root
}

func TestSearchListByKey(t *testing.T) {
	ts := newTestSchema()
	root := buildInterfaces(ts, "eth0", "eth1", "eth2")
	SortTree(root)

	got, ok := Search(root, Query{Name: "interface", Order: ts.iface.Order, Keyword: ts.iface.Keyword, KeyNames: []string{"name"}, KeyVals: []string{"eth1"}})
	if !ok {
		t.Fatal("Search missed an existing key")
	}
	if body, _ := got.FindBody("name"); body != "eth1" {
		t.Errorf("Search returned wrong instance, name = %q", body)
	}
}

func TestSearchMiss(t *testing.T) {
	ts := newTestSchema()
	root := buildInterfaces(ts, "eth0", "eth1")
	SortTree(root)

	if _, ok := Search(root, Query{Name: "interface", Order: ts.iface.Order, Keyword: ts.iface.Keyword, KeyNames: []string{"name"}, KeyVals: []string{"eth9"}}); ok {
		t.Error("Search found a key that was never inserted")
	}
}

// TestSearchOrderedByUserAcrossRun is a regression test for a totality
// bug in the original binary search predicate: a plain boolean equality
// test collapsed "less" and "greater" into a single false outcome, so
// narrowing by sign alone could walk past a match sharing its YANG order
// index with several ordered-by-user siblings. Every description key
// below shares one order index, and the target sits in the middle of
// the run on both sides of the midpoint the binary search first probes.
func TestSearchOrderedByUserAcrossRun(t *testing.T) {
	ts := newTestSchema()
	iface := ifaceInstance(ts, "eth0")
	for _, body := range []string{"mm", "bb", "zz", "aa", "yy"} {
		iface.AppendChild(leafElem("description", ts.desc, body))
	}

	for _, want := range []string{"mm", "bb", "zz", "aa", "yy"} {
		got, ok := Search(iface, Query{Name: "description", Order: ts.desc.Order, Keyword: ts.desc.Keyword, Value: want})
		if !ok {
			t.Errorf("Search missed description %q", want)
			continue
		}
		if got.Body() != want {
			t.Errorf("Search(%q) returned body %q", want, got.Body())
		}
	}

	if _, ok := Search(iface, Query{Name: "description", Order: ts.desc.Order, Keyword: ts.desc.Keyword, Value: "nope"}); ok {
		t.Error("Search found a description value that was never inserted")
	}
}

func TestInsertPositionAppendsWithinUserOrderedRun(t *testing.T) {
	ts := newTestSchema()
	iface := ifaceInstance(ts, "eth0")
	iface.AppendChild(leafElem("description", ts.desc, "first"))
	iface.AppendChild(leafElem("description", ts.desc, "second"))

	pos := InsertPosition(iface, Query{Name: "description", Order: ts.desc.Order, Keyword: ts.desc.Keyword, Value: "third"})
	elems := iface.ElementChildren()
	if pos != len(elems) {
		t.Errorf("InsertPosition = %d, want append at %d", pos, len(elems))
	}
}

func TestInsertPositionOrdersByStatement(t *testing.T) {
	ts := newTestSchema()
	root := NewElement("interfaces")
	root.Stmt = ts.interfaces
	root.AppendChild(emptyElem("statistics", ts.statistics))

	pos := InsertPosition(root, Query{Name: "interface", Order: ts.iface.Order, Keyword: ts.iface.Keyword, KeyNames: []string{"name"}, KeyVals: []string{"eth0"}})
	if pos != 0 {
		t.Errorf("InsertPosition = %d, want 0 (interface declared before statistics)", pos)
	}
}

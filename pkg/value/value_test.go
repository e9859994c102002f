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

package value

import (
	"testing"

	"github.com/openconfig/gnmi/errdiff"

	"github.com/openyang/yangcore/pkg/yang"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		typ     *yang.Type
		want    string
		wantErr string
	}{
		{name: "int32 ok", body: "-42", typ: &yang.Type{Kind: yang.Yint32}, want: "-42"},
		{name: "int8 out of range", body: "200", typ: &yang.Type{Kind: yang.Yint8}, wantErr: "out of range"},
		{name: "uint16 ok", body: "65535", typ: &yang.Type{Kind: yang.Yuint16}, want: "65535"},
		{name: "uint8 negative rejected", body: "-1", typ: &yang.Type{Kind: yang.Yuint8}, wantErr: "not a valid"},
		{name: "bool true", body: "true", typ: &yang.Type{Kind: yang.Ybool}, want: "true"},
		{name: "bool garbage", body: "yes", typ: &yang.Type{Kind: yang.Ybool}, wantErr: "not a valid boolean"},
		{name: "empty", body: "", typ: &yang.Type{Kind: yang.Yempty}, want: ""},
		{name: "string passthrough", body: "hello world", typ: &yang.Type{Kind: yang.Ystring}, want: "hello world"},
		{
			name: "union tries members in order",
			body: "42",
			typ: &yang.Type{Kind: yang.Yunion, Union: []*yang.Type{
				{Kind: yang.Ybool},
				{Kind: yang.Yint32},
			}},
			want: "42",
		},
		{
			name: "union exhausts members",
			body: "not-a-number",
			typ: &yang.Type{Kind: yang.Yunion, Union: []*yang.Type{
				{Kind: yang.Ybool},
				{Kind: yang.Yint32},
			}},
			wantErr: "not a valid",
		},
		{name: "nil type", body: "x", typ: nil, wantErr: "nil type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse(tt.body, tt.typ)
			if diff := errdiff.Substring(err, tt.wantErr); diff != "" {
				t.Fatal(diff)
			}
			if err != nil {
				return
			}
			if got := Format(v); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	mustParse := func(body string, typ *yang.Type) Value {
		v, err := Parse(body, typ)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", body, err)
		}
		return v
	}
	tests := []struct {
		name string
		a, b Value
		want int
	}{
		{"int less", mustParse("1", &yang.Type{Kind: yang.Yint32}), mustParse("2", &yang.Type{Kind: yang.Yint32}), -1},
		{"int equal", mustParse("5", &yang.Type{Kind: yang.Yint32}), mustParse("5", &yang.Type{Kind: yang.Yint32}), 0},
		{"uint greater", mustParse("9", &yang.Type{Kind: yang.Yuint8}), mustParse("3", &yang.Type{Kind: yang.Yuint8}), 1},
		{"bool false<true", mustParse("false", &yang.Type{Kind: yang.Ybool}), mustParse("true", &yang.Type{Kind: yang.Ybool}), -1},
		{"empty always equal", mustParse("", &yang.Type{Kind: yang.Yempty}), mustParse("", &yang.Type{Kind: yang.Yempty}), 0},
		{"string lexical", mustParse("abc", &yang.Type{Kind: yang.Ystring}), mustParse("abd", &yang.Type{Kind: yang.Ystring}), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); sign(got) != sign(tt.want) {
				t.Errorf("Compare() = %d, want sign %d", got, tt.want)
			}
		})
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

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

// Package value converts leaf body text to and from typed scalars under
// a resolved YANG type. It backs both the child comparator, which needs
// numeric/decimal/lexical comparison, and the RFC 7951 JSON codec, which
// needs to know how to quote a body.
package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/openyang/yangcore/pkg/yang"
)

// Value is a typed leaf body: a yang.Kind tag plus the parsed scalar.
// A Value is immutable once parsed; it is safe to cache on a node and
// read repeatedly.
type Value struct {
	Kind yang.Kind

	i   int64  // Yint*, Ydecimal64 (unscaled digits)
	u   uint64 // Yuint*
	b   bool   // Ybool
	s   string // Ystring, Yenum, Yidentityref, Yleafref, YinstanceIdentifier, Ybits, Ybinary
	dfd int    // Ydecimal64 fraction-digits, threaded through from the type
}

// ParseError is returned when a body string does not match its base kind.
type ParseError struct {
	Field  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Field, e.Reason)
}

// TypeResolutionError is returned when the YANG type itself cannot be
// reduced to a base kind the engine knows how to handle.
type TypeResolutionError struct {
	Type   string
	Reason string
}

func (e *TypeResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve type %q: %s", e.Type, e.Reason)
}

// Parse converts body into a typed Value under typ. A union type is
// resolved by trying its member types in declared order.
func Parse(body string, typ *yang.Type) (Value, error) {
	if typ == nil {
		return Value{}, &TypeResolutionError{Reason: "nil type"}
	}
	switch typ.Kind {
	case yang.Yint8, yang.Yint16, yang.Yint32, yang.Yint64:
		return parseInt(body, typ)
	case yang.Yuint8, yang.Yuint16, yang.Yuint32, yang.Yuint64:
		return parseUint(body, typ)
	case yang.Ydecimal64:
		return parseDecimal64(body, typ.FractionDigits)
	case yang.Ybool:
		return parseBool(body)
	case yang.Yempty:
		return Value{Kind: yang.Yempty}, nil
	case yang.Ystring, yang.Yenum, yang.Ybits, yang.Ybinary, yang.Yleafref, yang.YinstanceIdentifier:
		return Value{Kind: typ.Kind, s: body}, nil
	case yang.Yidentityref:
		return Value{Kind: yang.Yidentityref, s: body}, nil
	case yang.Yunion:
		var lastErr error
		for _, member := range typ.Union {
			v, err := Parse(body, member)
			if err == nil {
				return v, nil
			}
			lastErr = err
		}
		if lastErr == nil {
			lastErr = &TypeResolutionError{Type: "union", Reason: "union has no member types"}
		}
		return Value{}, lastErr
	default:
		return Value{}, &TypeResolutionError{Type: typ.Name, Reason: "unsupported kind " + typ.Kind.String()}
	}
}

func intBounds(k yang.Kind) (min, max int64) {
	switch k {
	case yang.Yint8:
		return math.MinInt8, math.MaxInt8
	case yang.Yint16:
		return math.MinInt16, math.MaxInt16
	case yang.Yint32:
		return math.MinInt32, math.MaxInt32
	default:
		return math.MinInt64, math.MaxInt64
	}
}

func uintBounds(k yang.Kind) uint64 {
	switch k {
	case yang.Yuint8:
		return math.MaxUint8
	case yang.Yuint16:
		return math.MaxUint16
	case yang.Yuint32:
		return math.MaxUint32
	default:
		return math.MaxUint64
	}
}

func parseInt(body string, typ *yang.Type) (Value, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(body), 10, 64)
	if err != nil {
		return Value{}, &ParseError{Field: body, Reason: "not a valid " + typ.Kind.String()}
	}
	min, max := intBounds(typ.Kind)
	if n < min || n > max {
		return Value{}, &ParseError{Field: body, Reason: fmt.Sprintf("out of range for %s", typ.Kind)}
	}
	return Value{Kind: typ.Kind, i: n}, nil
}

func parseUint(body string, typ *yang.Type) (Value, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(body), 10, 64)
	if err != nil {
		return Value{}, &ParseError{Field: body, Reason: "not a valid " + typ.Kind.String()}
	}
	if n > uintBounds(typ.Kind) {
		return Value{}, &ParseError{Field: body, Reason: fmt.Sprintf("out of range for %s", typ.Kind)}
	}
	return Value{Kind: typ.Kind, u: n}, nil
}

func parseBool(body string) (Value, error) {
	switch strings.TrimSpace(body) {
	case "true":
		return Value{Kind: yang.Ybool, b: true}, nil
	case "false":
		return Value{Kind: yang.Ybool, b: false}, nil
	default:
		return Value{}, &ParseError{Field: body, Reason: "not a valid boolean"}
	}
}

// Int returns the value as an int64; valid for signed integer kinds.
func (v Value) Int() int64 { return v.i }

// Uint returns the value as a uint64; valid for unsigned integer kinds.
func (v Value) Uint() uint64 { return v.u }

// Bool returns the value as a bool; valid for Ybool.
func (v Value) Bool() bool { return v.b }

// String returns the value's textual form, valid for string-shaped
// kinds and as the canonical rendering for every other kind (Format).
func (v Value) String() string { return Format(v) }

// Format renders v back to the textual form a leaf body would carry.
func Format(v Value) string {
	switch v.Kind {
	case yang.Yint8, yang.Yint16, yang.Yint32, yang.Yint64:
		return strconv.FormatInt(v.i, 10)
	case yang.Yuint8, yang.Yuint16, yang.Yuint32, yang.Yuint64:
		return strconv.FormatUint(v.u, 10)
	case yang.Ydecimal64:
		return formatDecimal64(v)
	case yang.Ybool:
		if v.b {
			return "true"
		}
		return "false"
	case yang.Yempty:
		return ""
	default:
		return v.s
	}
}

// Compare orders two values of the same kind: numeric types compare
// numerically, decimal64 honors its fractional scale, booleans compare
// false<true, strings compare by code point, and empty values always
// compare equal.
func Compare(a, b Value) int {
	switch {
	case a.Kind.IsInteger() && a.Kind != yang.Yempty:
		return compareInteger(a, b)
	case a.Kind == yang.Ydecimal64:
		return compareDecimal64(a, b)
	case a.Kind == yang.Ybool:
		if a.b == b.b {
			return 0
		}
		if !a.b {
			return -1
		}
		return 1
	case a.Kind == yang.Yempty:
		return 0
	default:
		return strings.Compare(a.s, b.s)
	}
}

func compareInteger(a, b Value) int {
	signed := a.Kind != yang.Yuint8 && a.Kind != yang.Yuint16 && a.Kind != yang.Yuint32 && a.Kind != yang.Yuint64
	if signed {
		switch {
		case a.i < b.i:
			return -1
		case a.i > b.i:
			return 1
		default:
			return 0
		}
	}
	switch {
	case a.u < b.u:
		return -1
	case a.u > b.u:
		return 1
	default:
		return 0
	}
}

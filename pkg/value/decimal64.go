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
	"fmt"
	"strconv"
	"strings"

	"github.com/openyang/yangcore/pkg/yang"
)

// parseDecimal64 parses body as a fixed-point decimal with the given
// number of fraction digits (1..18, RFC 7950 §9.3), storing the value
// as unscaled integer digits plus the scale, so Compare can honor it
// without floating point.
func parseDecimal64(body string, fractionDigits int) (Value, error) {
	if fractionDigits < 1 || fractionDigits > 18 {
		return Value{}, &TypeResolutionError{Type: "decimal64", Reason: "fraction-digits must be 1..18"}
	}
	s := strings.TrimSpace(body)
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	intPart, fracPart, hasFrac := s, "", false
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart, hasFrac = s[:i], s[i+1:], true
	}
	if intPart == "" || (hasFrac && fracPart == "") {
		return Value{}, &ParseError{Field: body, Reason: "malformed decimal64"}
	}
	for _, r := range fracPart {
		if r < '0' || r > '9' {
			return Value{}, &ParseError{Field: body, Reason: "malformed decimal64"}
		}
	}
	if len(fracPart) > fractionDigits {
		return Value{}, &ParseError{Field: body, Reason: "too many fraction digits"}
	}
	fracPart = fracPart + strings.Repeat("0", fractionDigits-len(fracPart))

	digits := intPart + fracPart
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return Value{}, &ParseError{Field: body, Reason: "malformed decimal64"}
	}
	if neg {
		n = -n
	}
	return Value{Kind: yang.Ydecimal64, i: n, dfd: fractionDigits}, nil
}

// formatDecimal64 renders the unscaled digits back to "int.frac" form,
// trimming no digits: the fraction-digits count is part of the type,
// not the value, so the canonical form always shows every digit.
func formatDecimal64(v Value) string {
	neg := v.i < 0
	n := v.i
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	for len(s) <= v.dfd {
		s = "0" + s
	}
	intPart := s[:len(s)-v.dfd]
	fracPart := s[len(s)-v.dfd:]
	out := fmt.Sprintf("%s.%s", intPart, fracPart)
	if neg {
		out = "-" + out
	}
	return out
}

// compareDecimal64 compares two decimal64 values honoring their scale;
// values with differing fraction-digits are rescaled to the finer of
// the two (the larger fraction-digits) before comparing the unscaled
// digits.
func compareDecimal64(a, b Value) int {
	ai, bi := a.i, b.i
	switch {
	case a.dfd < b.dfd:
		ai *= pow10(b.dfd - a.dfd)
	case b.dfd < a.dfd:
		bi *= pow10(a.dfd - b.dfd)
	}
	switch {
	case ai < bi:
		return -1
	case ai > bi:
		return 1
	default:
		return 0
	}
}

func pow10(n int) int64 {
	r := int64(1)
	for i := 0; i < n; i++ {
		r *= 10
	}
	return r
}

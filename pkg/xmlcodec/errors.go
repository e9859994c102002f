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

package xmlcodec

import "fmt"

// ParseError reports a malformed XML document at its token position,
// mirroring the positional error surface rfc7951.ParseError gives the
// JSON side of the codec.
type ParseError struct {
	Line, Col int
	Reason    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("xmlcodec: parse error at %d:%d: %s", e.Line, e.Col, e.Reason)
}

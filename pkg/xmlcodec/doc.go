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

// Package xmlcodec reads and writes the literal XML text an xmlnode.Node
// tree represents. Parsing is deliberately prefix-preserving rather than
// namespace-resolving: xmlns and xmlns:pfx declarations are kept as
// ordinary attributes on the element that carries them, and namespace
// URIs are recovered later, on demand, by xmlnode.ResolveNamespace - the
// same mechanism a tree built by hand uses. This package never resolves
// a namespace itself.
package xmlcodec

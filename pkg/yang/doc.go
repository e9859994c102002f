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

// Package yang models an already-parsed YANG schema (RFC 7950): the
// statement tree that a NETCONF/RESTCONF data engine binds XML or JSON
// data nodes against.
//
// This package does not parse .yang source. It represents the product
// of a parse: a Spec holding Module trees of Stmt nodes, each carrying
// the fields a data engine needs at run time - keyword, argument,
// order index among siblings, the owning module, a list's key-name
// cache, and (for leaves) a resolved Type. Callers build a Spec once,
// by hand or from another parser's output, and treat it as read-only
// for the lifetime of every tree bound against it.
package yang

// Copyright 2016 Google Inc.
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

package yang

// Identity is a single YANG identity declaration (RFC 7950 §7.18),
// the thing an identityref value names. Unlike the original parser's
// identity dictionary, this model carries no base/derivation graph:
// the data engine only ever needs to know which module declared an
// identity, to decide how to module-qualify its wire form.
type Identity struct {
	Name   string
	Module *Module
}

// PrefixedName returns the identity qualified by its module's prefix,
// the form used on the XML side (prefix:id).
func (i *Identity) PrefixedName() string {
	if i == nil || i.Module == nil {
		return i.Name
	}
	return i.Module.Prefix + ":" + i.Name
}

// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package resolve

import "go/types"

type typePair struct {
	a, b types.Type
}

// Subtype reports whether a is a subtype of b under Go's declared
// relations: type identity, struct embedding chains and interface
// satisfaction. The relation is reflexive and transitive; pointers are
// treated transparently on both sides.
//
// Subtype is total: nil arguments report false. Results are cached for the
// lifetime of the context.
func (c *Context) Subtype(a, b types.Type) bool {
	if a == nil || b == nil {
		return false
	}

	key := typePair{a, b}
	if r, ok := c.subtypes[key]; ok {
		return r
	}

	// Seed the cache before descending so embedding cycles
	// (type T struct{ *T }) terminate.
	c.subtypes[key] = false

	r := c.subtype(a, b)
	c.subtypes[key] = r

	return r
}

func (c *Context) subtype(a, b types.Type) bool {
	if types.Identical(a, b) {
		return true
	}

	pa, pb := deref(a), deref(b)
	if types.Identical(pa, pb) {
		return true
	}

	if iface, ok := pb.Underlying().(*types.Interface); ok && c.implements(pa, iface) {
		return true
	}

	// Walk the embedding chain; transitivity follows from recursion.
	if st, ok := pa.Underlying().(*types.Struct); ok {
		for field := range st.Fields() {
			if field.Anonymous() && c.Subtype(field.Type(), b) {
				return true
			}
		}
	}

	return false
}

// implements checks interface satisfaction, including methods promoted to
// the pointer receiver.
func (c *Context) implements(a types.Type, iface *types.Interface) bool {
	if iface.Empty() {
		return true
	}

	if types.Implements(a, iface) {
		return true
	}

	if _, ok := a.Underlying().(*types.Interface); ok {
		return false
	}

	return types.Implements(types.NewPointer(a), iface)
}

// deref unwraps one level of pointer indirection.
func deref(t types.Type) types.Type {
	if p, ok := t.Underlying().(*types.Pointer); ok {
		return p.Elem()
	}

	return t
}

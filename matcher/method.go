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

package matcher

import (
	"fmt"
	"go/ast"
	"go/types"
	"slices"
	"strings"

	"fillmore-labs.com/rulekit/resolve"
)

// typeRef names a type by package path and simple name, resolved lazily
// against each unit's import graph.
type typeRef struct {
	path, name string
}

func (t typeRef) String() string { return t.path + "." + t.name }

// MethodMatcher matches calls of instance methods, narrowed by receiver
// type, method name and argument count. Build it fluently:
//
//	matcher.InstanceMethod().
//		OnDescendantOf("math/rand", "Rand").
//		Named("Int").
//		WithNoArguments()
//
// The zero configuration matches any method call. Configure a matcher
// fully before first use; it is immutable afterwards by convention.
type MethodMatcher struct {
	targets  []typeRef
	names    []string
	argCount int
}

// InstanceMethod starts a [MethodMatcher] accepting any instance method
// call.
func InstanceMethod() *MethodMatcher {
	return &MethodMatcher{argCount: -1}
}

// OnDescendantOf restricts the receiver's static type to descendants of
// the named type (per [resolve.Context.Subtype], so including the type
// itself). Multiple calls accept any of the given types.
func (m *MethodMatcher) OnDescendantOf(path, name string) *MethodMatcher {
	m.targets = append(m.targets, typeRef{path: path, name: name})

	return m
}

// Named restricts the method's simple name to one of the given names.
func (m *MethodMatcher) Named(names ...string) *MethodMatcher {
	m.names = append(m.names, names...)

	return m
}

// WithNoArguments requires a zero-argument call.
func (m *MethodMatcher) WithNoArguments() *MethodMatcher {
	return m.WithArgCount(0)
}

// WithArgCount requires exactly n call arguments.
func (m *MethodMatcher) WithArgCount(n int) *MethodMatcher {
	m.argCount = n

	return m
}

// Match implements [Matcher].
func (m *MethodMatcher) Match(rc *resolve.Context, n ast.Node) bool {
	call, ok := n.(*ast.CallExpr)
	if !ok {
		return false
	}

	if m.argCount >= 0 && len(call.Args) != m.argCount {
		return false
	}

	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return false
	}

	fn, ok := rc.ObjectOf(sel).(*types.Func)
	if !ok || fn.Signature().Recv() == nil {
		return false // not a method call
	}

	if len(m.names) > 0 && !slices.Contains(m.names, fn.Name()) {
		return false
	}

	return m.matchReceiver(rc, sel.X)
}

func (m *MethodMatcher) matchReceiver(rc *resolve.Context, recv ast.Expr) bool {
	if len(m.targets) == 0 {
		return true
	}

	rt := rc.TypeOf(recv)
	if rt == nil {
		return false
	}

	for _, target := range m.targets {
		if tt := rc.LookupType(target.path, target.name); tt != nil && rc.Subtype(rt, tt) {
			return true
		}
	}

	return false
}

// String implements [Matcher].
func (m *MethodMatcher) String() string {
	var b strings.Builder

	b.WriteString("instanceMethod(") // ignore error

	for i, target := range m.targets {
		if i > 0 {
			b.WriteByte('|') // ignore error
		}

		b.WriteString(target.String()) // ignore error
	}

	if len(m.names) > 0 {
		fmt.Fprintf(&b, ".%s", strings.Join(m.names, "|")) // ignore error
	}

	if m.argCount >= 0 {
		fmt.Fprintf(&b, "/%d", m.argCount) // ignore error
	}

	b.WriteByte(')') // ignore error

	return b.String()
}

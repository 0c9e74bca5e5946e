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

package matcher_test

import (
	"go/ast"
	"testing"

	"fillmore-labs.com/rulekit/internal/testsource"
	. "fillmore-labs.com/rulekit/matcher"
	"fillmore-labs.com/rulekit/resolve"
)

const randSrc = `package test

import "math/rand"

type source struct{ *rand.Rand }

func draws(rng *rand.Rand, src source) {
	_ = rng.Int()
	_ = rng.Intn(10)
	_ = rng.Int31()
	_ = src.Int()
	_ = rand.Int()
}
`

// callsIn collects the method and function calls of the file in source
// order.
func callsIn(tb testing.TB, src string) (*resolve.Context, []*ast.CallExpr) {
	tb.Helper()

	u := testsource.ParseUnit(tb, src)
	rc := resolve.NewContext(u)

	var calls []*ast.CallExpr
	ast.Inspect(u.File, func(n ast.Node) bool {
		if call, ok := n.(*ast.CallExpr); ok {
			calls = append(calls, call)
		}

		return true
	})

	return rc, calls
}

func TestInstanceMethod(t *testing.T) {
	t.Parallel()

	rc, calls := callsIn(t, randSrc)
	if len(calls) != 5 {
		t.Fatalf("Got %d calls, want 5", len(calls))
	}

	m := InstanceMethod().
		OnDescendantOf("math/rand", "Rand").
		Named("Int", "Int31", "Int63").
		WithNoArguments()

	want := [...]struct {
		name  string
		match bool
	}{
		{"rng.Int()", true},
		{"rng.Intn(10)", false}, // name and argument count
		{"rng.Int31()", true},
		{"src.Int()", true},   // promoted through embedding
		{"rand.Int()", false}, // package function, not a method
	}

	for i, w := range want {
		if got := m.Match(rc, calls[i]); got != w.match {
			t.Errorf("Match(%s) = %t, want %t", w.name, got, w.match)
		}
	}
}

func TestInstanceMethodUnconstrained(t *testing.T) {
	t.Parallel()

	rc, calls := callsIn(t, randSrc)

	m := InstanceMethod()

	// every method call matches, the package function does not
	for i, want := range [...]bool{true, true, true, true, false} {
		if got := m.Match(rc, calls[i]); got != want {
			t.Errorf("Match(call %d) = %t, want %t", i, got, want)
		}
	}
}

func TestInstanceMethodArgCount(t *testing.T) {
	t.Parallel()

	rc, calls := callsIn(t, randSrc)

	m := InstanceMethod().
		OnDescendantOf("math/rand", "Rand").
		Named("Intn").
		WithArgCount(1)

	for i, want := range [...]bool{false, true, false, false, false} {
		if got := m.Match(rc, calls[i]); got != want {
			t.Errorf("Match(call %d) = %t, want %t", i, got, want)
		}
	}
}

func TestInstanceMethodUnresolvedTarget(t *testing.T) {
	t.Parallel()

	rc, calls := callsIn(t, randSrc)

	// the target type is not in the import graph
	m := InstanceMethod().OnDescendantOf("math/rand/v2", "Rand").Named("Int")

	for i, call := range calls {
		if m.Match(rc, call) {
			t.Errorf("Match(call %d) = true, want false", i)
		}
	}
}

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

package genleak_test

import (
	"strings"
	"testing"

	"fillmore-labs.com/rulekit/diag"
	"fillmore-labs.com/rulekit/engine"
	"fillmore-labs.com/rulekit/internal/testsource"
	"fillmore-labs.com/rulekit/rule"
	. "fillmore-labs.com/rulekit/rules/genleak"
)

const (
	baseSrc = `package test

//autogen:impl
type Foo struct{}

func build() Foo {
	impl := GeneratedFoo{}

	return impl.Foo
}
`

	generatedSrc = `// Code generated by autogen. DO NOT EDIT.

package test

type GeneratedFoo struct{ Foo }
`
)

func checkPackage(tb testing.TB, sources map[string]string, opts ...Option) map[string][]diag.Diagnostic {
	tb.Helper()

	eng, err := engine.New([]*rule.Rule{New(opts...)})
	if err != nil {
		tb.Fatalf("New() failed: %v", err)
	}

	units := testsource.ParsePackage(tb, sources)

	results, err := eng.CheckAll(tb.Context(), units)
	if err != nil {
		tb.Fatalf("CheckAll() failed: %v", err)
	}

	byFile := make(map[string][]diag.Diagnostic, len(units))
	for i, u := range units {
		byFile[u.Filename()] = results[i]
	}

	return byFile
}

func TestOwningFileStaysSilent(t *testing.T) {
	t.Parallel()

	results := checkPackage(t, map[string]string{
		"base.go":    baseSrc,
		"foo_gen.go": generatedSrc,
	})

	for file, diags := range results {
		if len(diags) != 0 {
			t.Errorf("%s: got %d diagnostics, want none: %v", file, len(diags), diags)
		}
	}
}

func TestLeakReported(t *testing.T) {
	t.Parallel()

	results := checkPackage(t, map[string]string{
		"base.go":    baseSrc,
		"foo_gen.go": generatedSrc,
		"leak.go": `package test

var Leaked GeneratedFoo
`,
	})

	diags := results["leak.go"]
	if len(diags) != 1 {
		t.Fatalf("Got %d diagnostics, want 1: %v", len(diags), diags)
	}

	d := diags[0]
	if d.RuleID != ID || d.Severity != diag.SeverityWarning {
		t.Errorf("Got {%s, %s}, want {%s, WARNING}", d.RuleID, d.Severity, ID)
	}
	if !strings.Contains(d.Message, "GeneratedFoo") || !strings.Contains(d.Message, "autogen:impl") {
		t.Errorf("Message = %q, want the class and marker named", d.Message)
	}
}

func TestEveryLeakSiteReported(t *testing.T) {
	t.Parallel()

	results := checkPackage(t, map[string]string{
		"base.go":    baseSrc,
		"foo_gen.go": generatedSrc,
		"leak.go": `package test

func leak() GeneratedFoo {
	return GeneratedFoo{}
}
`,
	})

	if diags := results["leak.go"]; len(diags) != 2 {
		t.Errorf("Got %d diagnostics, want one per reference: %v", len(diags), diags)
	}
}

func TestUnmarkedPrefixReported(t *testing.T) {
	t.Parallel()

	// a hand-written type with the generated prefix leaks like any other
	results := checkPackage(t, map[string]string{
		"impl.go": `package test

type GeneratedByHand struct{}
`,
		"use.go": `package test

var _ GeneratedByHand
`,
	})

	if diags := results["use.go"]; len(diags) != 1 {
		t.Errorf("Got %d diagnostics, want 1: %v", len(diags), diags)
	}

	// the declaration itself is not a reference
	if diags := results["impl.go"]; len(diags) != 0 {
		t.Errorf("impl.go: got %d diagnostics at the declaration, want none: %v", len(diags), diags)
	}
}

func TestDeclarationSitesStaySilent(t *testing.T) {
	t.Parallel()

	results := checkPackage(t, map[string]string{
		"impl.go": `package test

type GeneratedByHand struct{}

func (g GeneratedByHand) clone() GeneratedByHand {
	return g
}
`,
	})

	// the type declaration stays silent, the two uses in the method
	// signature do not
	if diags := results["impl.go"]; len(diags) != 2 {
		t.Errorf("Got %d diagnostics, want one per use: %v", len(diags), diags)
	}
}

func TestGroupedDeclarationDirective(t *testing.T) {
	t.Parallel()

	// in a grouped declaration the group's directive marks no single type
	results := checkPackage(t, map[string]string{
		"base.go": `package test

//autogen:impl
type (
	Grouped struct{}

	Other struct{}
)

var local GeneratedGrouped
`,
		"grouped_gen.go": `// Code generated by autogen. DO NOT EDIT.

package test

type GeneratedGrouped struct{ Grouped }
`,
	})

	// the group directive confers ownership on no type, so even the
	// declaring file's reference is a leak
	if diags := results["base.go"]; len(diags) != 1 {
		t.Errorf("base.go: got %d diagnostics, want 1: %v", len(diags), diags)
	}
}

func TestGroupedSpecDirective(t *testing.T) {
	t.Parallel()

	// a directive on the spec inside a group still marks its type
	results := checkPackage(t, map[string]string{
		"base.go": `package test

type (
	//autogen:impl
	Grouped struct{}

	Other struct{}
)

func build() GeneratedGrouped {
	return GeneratedGrouped{}
}
`,
		"grouped_gen.go": `// Code generated by autogen. DO NOT EDIT.

package test

type GeneratedGrouped struct{ Grouped }
`,
	})

	if diags := results["base.go"]; len(diags) != 0 {
		t.Errorf("base.go: got %d diagnostics, want none: %v", len(diags), diags)
	}
}

func TestNonTypeIdentifiersIgnored(t *testing.T) {
	t.Parallel()

	results := checkPackage(t, map[string]string{
		"vars.go": `package test

var GeneratedCount int

func report() int {
	return GeneratedCount
}
`,
	})

	if diags := results["vars.go"]; len(diags) != 0 {
		t.Errorf("Got %d diagnostics for a variable, want none: %v", len(diags), diags)
	}
}

func TestCustomScheme(t *testing.T) {
	t.Parallel()

	results := checkPackage(t, map[string]string{
		"base.go": `package test

//derive:value
type Bar struct{}
`,
		"bar_gen.go": `// Code generated by derive. DO NOT EDIT.

package test

type ImplBar struct{ Bar }
`,
		"leak.go": `package test

var Leaked ImplBar
`,
	}, WithMarker("derive:value"), WithPrefix("Impl"))

	if diags := results["leak.go"]; len(diags) != 1 {
		t.Errorf("Got %d diagnostics, want 1: %v", len(diags), diags)
	}
	if diags := results["base.go"]; len(diags) != 0 {
		t.Errorf("base.go: got %d diagnostics, want none: %v", len(diags), diags)
	}
}

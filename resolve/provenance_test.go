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

package resolve_test

import (
	"go/types"
	"slices"
	"testing"

	"fillmore-labs.com/rulekit/internal/testsource"
	. "fillmore-labs.com/rulekit/resolve"
	"fillmore-labs.com/rulekit/unit"
)

var provenanceSources = map[string]string{
	"machine.go": `// Code generated by autogen. DO NOT EDIT.

package test

type GeneratedFoo struct{}
`,
	"hand.go": `package test

type Foo struct{}
`,
}

func TestFileProvenance(t *testing.T) {
	t.Parallel()

	units := testsource.ParsePackage(t, provenanceSources)
	hand, machine := units[0], units[1]

	generated := machine.Pkg.Scope().Lookup("GeneratedFoo")
	authored := hand.Pkg.Scope().Lookup("Foo")
	if generated == nil || authored == nil {
		t.Fatal("Can't find package-level types")
	}

	// The generated unit knows its own symbols' provenance.
	mc := NewContext(machine)
	if got := mc.GeneratedBy(generated); !slices.Equal(got, []string{"autogen"}) {
		t.Errorf("GeneratedBy(GeneratedFoo) = %v, want [autogen]", got)
	}
	if got := mc.GeneratedBy(authored); got != nil {
		t.Errorf("GeneratedBy(Foo) = %v, want nil", got)
	}

	// The hand-authored unit cannot vouch for symbols declared elsewhere.
	hc := NewContext(hand)
	if got := hc.GeneratedBy(generated); got != nil {
		t.Errorf("GeneratedBy(GeneratedFoo) from hand unit = %v, want nil", got)
	}
}

func TestGeneratedByNil(t *testing.T) {
	t.Parallel()

	u := testsource.ParseUnit(t, "package test\n")
	c := NewContext(u)

	if got := c.GeneratedBy(nil); got != nil {
		t.Errorf("GeneratedBy(nil) = %v, want nil", got)
	}
}

type stubProvenance struct{ mechanism string }

func (s stubProvenance) GeneratedBy(_ *unit.CompilationUnit, obj types.Object) []string {
	if obj == nil {
		return nil
	}

	return []string{s.mechanism}
}

func TestProvenancesUnion(t *testing.T) {
	t.Parallel()

	units := testsource.ParsePackage(t, provenanceSources)
	machine := units[1]

	generated := machine.Pkg.Scope().Lookup("GeneratedFoo")
	if generated == nil {
		t.Fatal("Can't find GeneratedFoo")
	}

	prov := Provenances{FileProvenance{}, stubProvenance{mechanism: "registry"}}
	c := NewContext(machine, WithProvenance(prov))

	got := c.GeneratedBy(generated)
	want := []string{"autogen", "registry"}
	if !slices.Equal(got, want) {
		t.Errorf("GeneratedBy() = %v, want %v", got, want)
	}
}

func TestWithProvenanceNil(t *testing.T) {
	t.Parallel()

	units := testsource.ParsePackage(t, provenanceSources)
	machine := units[1]

	generated := machine.Pkg.Scope().Lookup("GeneratedFoo")

	// a nil provenance keeps the default
	c := NewContext(machine, WithProvenance(nil))
	if got := c.GeneratedBy(generated); !slices.Equal(got, []string{"autogen"}) {
		t.Errorf("GeneratedBy() = %v, want [autogen]", got)
	}
}

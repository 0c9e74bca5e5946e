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

import (
	"go/token"
	"go/types"

	"fillmore-labs.com/rulekit/unit"
)

// Provenance answers "what mechanism produced this symbol". An empty
// result means the symbol is hand-authored. The mechanism set is
// open-ended, so implementations are injectable via [WithProvenance].
type Provenance interface {
	// GeneratedBy returns the mechanisms that produced the symbol, or
	// nil for hand-authored and unknown symbols.
	GeneratedBy(u *unit.CompilationUnit, obj types.Object) []string
}

// GeneratedBy returns the generation mechanisms for the symbol, cached per
// unit. A nil symbol and symbols outside this unit's knowledge report
// empty.
func (c *Context) GeneratedBy(obj types.Object) []string {
	if obj == nil {
		return nil
	}

	mechanisms, ok := c.generated[obj]
	if !ok {
		mechanisms = c.prov.GeneratedBy(c.unit, obj)
		c.generated[obj] = mechanisms
	}

	return mechanisms
}

// FileProvenance is the default [Provenance]: a symbol is generated iff it
// is declared in this unit and the unit's file follows the standard
// "Code generated ... DO NOT EDIT." convention. The mechanism is the tool
// named in that comment.
type FileProvenance struct{}

// GeneratedBy implements [Provenance].
func (FileProvenance) GeneratedBy(u *unit.CompilationUnit, obj types.Object) []string {
	if obj == nil || !u.Generated() {
		return nil
	}

	pos := obj.Pos()
	if !pos.IsValid() {
		return nil
	}

	handle := u.TokenFile()
	if pos < token.Pos(handle.Base()) || pos > token.Pos(handle.Base()+handle.Size()) {
		return nil // declared elsewhere; this unit cannot tell
	}

	return []string{u.GeneratedTool()}
}

// Provenances chains mechanisms; the result is the union of all answers.
type Provenances []Provenance

// GeneratedBy implements [Provenance].
func (p Provenances) GeneratedBy(u *unit.CompilationUnit, obj types.Object) []string {
	var mechanisms []string
	for _, prov := range p {
		mechanisms = append(mechanisms, prov.GeneratedBy(u, obj)...)
	}

	return mechanisms
}

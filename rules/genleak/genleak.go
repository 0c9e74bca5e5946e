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

// Package genleak flags references to generated derived classes outside
// the file that owns them.
//
// A type carrying the derive marker directive makes its file the owner of
// the tool-generated `Generated<Name>` class. The marked base type may be
// part of an API; the generated class is an implementation detail, and
// references to it from any other file leak that detail. References
// within the owning file (the generated class descends from a marked type
// declared there) stay silent, as do the generated declarations
// themselves, which the engine suppresses by provenance.
package genleak

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"fillmore-labs.com/rulekit/diag"
	"fillmore-labs.com/rulekit/matcher"
	"fillmore-labs.com/rulekit/rule"
	"fillmore-labs.com/rulekit/unit"
)

// ID identifies the rule.
const ID = "genleak"

// Defaults for the generation scheme.
const (
	// DefaultMarker is the directive that makes a type declaration
	// produce a derived class.
	DefaultMarker = "autogen:impl"

	// DefaultPrefix is the simple-name prefix of generated classes.
	DefaultPrefix = "Generated"
)

// Option configures the generation scheme the rule looks for.
type Option func(*options)

type options struct {
	marker string
	prefix string
}

// WithMarker sets the derive marker directive.
func WithMarker(marker string) Option {
	return func(o *options) { o.marker = marker }
}

// WithPrefix sets the generated-name prefix.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// New returns the genleak rule.
func New(opts ...Option) *rule.Rule {
	o := options{marker: DefaultMarker, prefix: DefaultPrefix}
	for _, opt := range opts {
		opt(&o)
	}

	return &rule.Rule{
		ID:       ID,
		Doc:      "Detects references to generated derived classes outside the file declaring their marked base type.",
		Severity: diag.SeverityWarning,
		Kinds:    []unit.Kind{unit.KindIdent},
		Match:    matcher.TypeNamePrefix(o.prefix),
		Begin:    o.begin,
		Report:   o.report,
	}
}

// begin collects the types declared in this unit that carry the derive
// marker. The set is rebuilt per unit; the rule itself stays stateless.
func (o *options) begin(uc *rule.UnitContext) (any, error) {
	var marked []types.Type

	for _, decl := range uc.Unit.File.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}

		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			// The declaration's doc falls back to the group's only for
			// ungrouped declarations, like go/ast doc attribution.
			doc := ts.Doc
			if doc == nil && len(gd.Specs) == 1 {
				doc = gd.Doc
			}

			if !uc.Resolve.HasDirective(doc, o.marker) {
				continue
			}

			if obj := uc.Resolve.Definition(ts); obj != nil {
				marked = append(marked, obj.Type())
			}
		}
	}

	return marked, nil
}

func (o *options) report(c *rule.Context) (*diag.Diagnostic, error) {
	obj := c.Resolve.ObjectOf(c.Node)
	if obj == nil {
		return nil, nil
	}

	// Only uses are references; the identifier of the declaration itself
	// is part of the declaration.
	if obj.Pos() == c.Node.Pos() {
		return nil, nil
	}

	// References inside declarations the generator itself produced are
	// not leaks.
	if len(c.Resolve.GeneratedBy(obj)) > 0 {
		return nil, nil
	}

	marked, _ := c.State.([]types.Type)
	for _, t := range marked {
		if c.Resolve.Subtype(obj.Type(), t) {
			return nil, nil // the owning file may use its generated class
		}
	}

	sp, err := c.Span(c.Node)
	if err != nil {
		return nil, nil // synthesized reference, nothing to point at
	}

	return &diag.Diagnostic{
		Span: sp,
		Message: fmt.Sprintf(
			"Do not refer to the generated class %s outside the file declaring its //%s base",
			obj.Name(), o.marker),
	}, nil
}

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

// Package randmod flags modulo bias on pseudo-random draws.
//
// `rng.Int() % n` draws from the generator's full range and folds it with
// a remainder, which skews the distribution and, depending on the method,
// keeps the sign of the left operand. The bounded sibling of the draw
// method exists for exactly this purpose, so the rule suggests
// `rng.Intn(n)` as a textual rewrite.
package randmod

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"

	"fillmore-labs.com/rulekit/diag"
	"fillmore-labs.com/rulekit/matcher"
	"fillmore-labs.com/rulekit/rule"
	"fillmore-labs.com/rulekit/unit"
)

// ID identifies the rule.
const ID = "randmod"

// generator describes one pseudo-random-generator type and the mapping
// from its zero-argument draw methods to their bounded siblings.
type generator struct {
	path, name string
	bounded    map[string]string
}

var generators = []generator{
	{
		path: "math/rand", name: "Rand",
		bounded: map[string]string{"Int": "Intn", "Int31": "Int31n", "Int63": "Int63n"},
	},
	{
		path: "math/rand/v2", name: "Rand",
		bounded: map[string]string{"Int": "IntN", "Int32": "Int32N", "Int64": "Int64N"},
	},
}

// ErrUnexpectedShape is reported when the matched node contradicts the
// matcher's guarantees.
var ErrUnexpectedShape = errors.New("unexpected node shape")

// New returns the randmod rule.
func New() *rule.Rule {
	draws := make([]matcher.Matcher, len(generators))
	for i, g := range generators {
		m := matcher.InstanceMethod().OnDescendantOf(g.path, g.name).WithNoArguments()
		for method := range g.bounded {
			m.Named(method)
		}

		draws[i] = m
	}

	return &rule.Rule{
		ID:       ID,
		Doc:      "Detects `rng.Int() % n` on pseudo-random generators and rewrites it to the bounded draw `rng.Intn(n)`.",
		Severity: diag.SeverityError,
		Kinds:    []unit.Kind{unit.KindBinary},
		Match:    matcher.And(matcher.Binary(token.REM), matcher.LHS(matcher.Or(draws...))),
		Report:   report,
	}
}

func report(c *rule.Context) (*diag.Diagnostic, error) {
	bin, ok := c.Node.(*ast.BinaryExpr)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnexpectedShape, c.Node)
	}

	call, ok := bin.X.(*ast.CallExpr)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnexpectedShape, bin.X)
	}

	sel := call.Fun.(*ast.SelectorExpr) // guaranteed by the matcher
	method := sel.Sel.Name

	bounded := boundedName(c, sel.X, method)
	if bounded == "" {
		return nil, nil
	}

	d := &diag.Diagnostic{
		Message: fmt.Sprintf("%s() %% n is biased and can be negative; use %s(n) instead", method, bounded),
	}

	var err error
	if d.Span, err = c.Span(bin); err != nil {
		return nil, err
	}

	// The rewrite is purely textual: read back the receiver and modulus
	// source and rebuild the call. The receiver text is spliced exactly
	// once, so side effects of the receiver expression keep their
	// single evaluation.
	d.Fix = buildFix(c, bin, sel.X, bounded)

	return d, nil
}

// boundedName picks the bounded sibling of the draw method for the
// receiver's generator type.
func boundedName(c *rule.Context, recv ast.Expr, method string) string {
	rt := c.Resolve.TypeOf(recv)

	for _, g := range generators {
		gt := c.Resolve.LookupType(g.path, g.name)
		if gt == nil || !c.Resolve.Subtype(rt, gt) {
			continue
		}

		if bounded, ok := g.bounded[method]; ok {
			return bounded
		}
	}

	return ""
}

// buildFix synthesizes the textual rewrite, or nil when a sub-expression
// has no source span.
func buildFix(c *rule.Context, bin *ast.BinaryExpr, recv ast.Expr, bounded string) *diag.Fix {
	recvText, err := c.NodeText(recv)
	if err != nil {
		return nil // synthesized receiver, diagnostic stands without a remedy
	}

	modText, err := c.NodeText(bin.Y)
	if err != nil {
		return nil
	}

	replacement := fmt.Sprintf("%s.%s(%s)", recvText, bounded, modText)

	edit, err := c.ReplaceNode(bin, replacement)
	if err != nil {
		return nil
	}

	return &diag.Fix{
		Message: fmt.Sprintf("Replace with %s", replacement),
		Edits:   []diag.TextEdit{edit},
	}
}

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

// Package matcher provides the declarative vocabulary rules use to express
// conditions over resolved nodes.
//
// Matchers are a small expression algebra: primitive predicates over one
// node plus the And/Or/Not combinators. Every matcher is a pure function
// and total over well-formed input — evaluating a matcher against a node
// of the wrong shape reports false instead of failing. Matchers carry a
// String form so composed conditions stay inspectable in isolation from
// any tree.
package matcher

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"fillmore-labs.com/rulekit/resolve"
	"fillmore-labs.com/rulekit/unit"
)

// Matcher is a boolean predicate over one node within a resolution
// context.
type Matcher interface {
	// Match reports whether the node satisfies the predicate. It must
	// not panic for any node, including nil.
	Match(rc *resolve.Context, n ast.Node) bool

	// String renders the predicate for inspection and test failure
	// output.
	String() string
}

// And matches when every sub-matcher matches. And() matches everything.
func And(ms ...Matcher) Matcher { return andMatcher(ms) }

type andMatcher []Matcher

func (m andMatcher) Match(rc *resolve.Context, n ast.Node) bool {
	for _, sub := range m {
		if !sub.Match(rc, n) {
			return false
		}
	}

	return true
}

func (m andMatcher) String() string { return combine("and", m) }

// Or matches when at least one sub-matcher matches. Or() matches nothing.
func Or(ms ...Matcher) Matcher { return orMatcher(ms) }

type orMatcher []Matcher

func (m orMatcher) Match(rc *resolve.Context, n ast.Node) bool {
	for _, sub := range m {
		if sub.Match(rc, n) {
			return true
		}
	}

	return false
}

func (m orMatcher) String() string { return combine("or", m) }

// Not inverts a matcher.
func Not(m Matcher) Matcher { return notMatcher{m} }

type notMatcher struct{ m Matcher }

func (m notMatcher) Match(rc *resolve.Context, n ast.Node) bool {
	return !m.m.Match(rc, n)
}

func (m notMatcher) String() string { return fmt.Sprintf("not(%s)", m.m) }

// IsKind matches nodes of the given kind.
func IsKind(k unit.Kind) Matcher { return kindMatcher(k) }

type kindMatcher unit.Kind

func (m kindMatcher) Match(_ *resolve.Context, n ast.Node) bool {
	return unit.KindOf(n) == unit.Kind(m)
}

func (m kindMatcher) String() string { return fmt.Sprintf("kind(%s)", unit.Kind(m)) }

// Binary matches binary expressions with the given operator.
func Binary(op token.Token) Matcher { return binaryMatcher(op) }

type binaryMatcher token.Token

func (m binaryMatcher) Match(_ *resolve.Context, n ast.Node) bool {
	bin, ok := n.(*ast.BinaryExpr)

	return ok && bin.Op == token.Token(m)
}

func (m binaryMatcher) String() string { return fmt.Sprintf("binary(%s)", token.Token(m)) }

// LHS applies a sub-matcher to the left operand of a binary expression.
// Non-binary nodes report false.
func LHS(m Matcher) Matcher { return operandMatcher{m, "lhs"} }

// RHS applies a sub-matcher to the right operand of a binary expression.
func RHS(m Matcher) Matcher { return operandMatcher{m, "rhs"} }

type operandMatcher struct {
	m    Matcher
	side string
}

func (m operandMatcher) Match(rc *resolve.Context, n ast.Node) bool {
	bin, ok := n.(*ast.BinaryExpr)
	if !ok {
		return false
	}

	operand := bin.X
	if m.side == "rhs" {
		operand = bin.Y
	}

	return m.m.Match(rc, operand)
}

func (m operandMatcher) String() string { return fmt.Sprintf("%s(%s)", m.side, m.m) }

// Receiver applies a sub-matcher to the receiver expression of a method
// call. Nodes that are not calls through a selector report false.
func Receiver(m Matcher) Matcher { return receiverMatcher{m} }

type receiverMatcher struct{ m Matcher }

func (m receiverMatcher) Match(rc *resolve.Context, n ast.Node) bool {
	call, ok := n.(*ast.CallExpr)
	if !ok {
		return false
	}

	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return false
	}

	return m.m.Match(rc, sel.X)
}

func (m receiverMatcher) String() string { return fmt.Sprintf("receiver(%s)", m.m) }

// TypeNamePrefix matches identifiers and member accesses whose resolved
// symbol is a declared type with the given simple-name prefix.
func TypeNamePrefix(prefix string) Matcher { return typeNamePrefixMatcher(prefix) }

type typeNamePrefixMatcher string

func (m typeNamePrefixMatcher) Match(rc *resolve.Context, n ast.Node) bool {
	tn, ok := rc.ObjectOf(n).(*types.TypeName)

	return ok && strings.HasPrefix(tn.Name(), string(m))
}

func (m typeNamePrefixMatcher) String() string {
	return fmt.Sprintf("typeNamePrefix(%s)", string(m))
}

func combine(op string, ms []Matcher) string {
	parts := make([]string, len(ms))
	for i, m := range ms {
		parts[i] = m.String()
	}

	return fmt.Sprintf("%s(%s)", op, strings.Join(parts, ", "))
}

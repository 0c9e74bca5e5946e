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

// Package rule defines the contract between the traversal engine and the
// checks registered with it.
//
// A [Rule] is a named predicate-action pair: a node-kind filter, a matcher
// over resolved nodes and a diagnostic-construction callback. Rules are
// registered once at engine construction and hold no state across
// compilation units; per-unit state is rebuilt by the optional Begin hook.
package rule

import (
	"errors"
	"fmt"
	"go/ast"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/rulekit/diag"
	"fillmore-labs.com/rulekit/internal/source"
	"fillmore-labs.com/rulekit/matcher"
	"fillmore-labs.com/rulekit/resolve"
	"fillmore-labs.com/rulekit/unit"
)

// Rule validation errors.
var (
	// ErrNoID is returned for rules without an identifier.
	ErrNoID = errors.New("rule has no id")

	// ErrNoKinds is returned for rules that register no node kinds.
	ErrNoKinds = errors.New("rule registers no node kinds")

	// ErrNoReport is returned for rules without a report callback.
	ErrNoReport = errors.New("rule has no report callback")
)

// Rule is one registered check. All fields except Match and Begin are
// required.
type Rule struct {
	// ID identifies the rule in diagnostics and nolint markers.
	ID string

	// Doc describes the rule.
	Doc string

	// Severity is fixed per rule and stamped onto every diagnostic.
	Severity diag.Severity

	// Kinds are the node kinds the rule fires on.
	Kinds []unit.Kind

	// Match guards Report. A nil matcher accepts every node of Kinds.
	Match matcher.Matcher

	// Begin optionally rebuilds per-unit state before traversal; the
	// result is handed to Report via [Context.State].
	Begin func(*UnitContext) (any, error)

	// Report builds zero or one diagnostic for a matched node.
	// Returning (nil, nil) declines a structural match after a failed
	// semantic check; this is normal, not an error.
	Report func(*Context) (*diag.Diagnostic, error)
}

// Validate checks the rule's required fields.
func (r *Rule) Validate() error {
	switch {
	case r.ID == "":
		return ErrNoID
	case len(r.Kinds) == 0:
		return fmt.Errorf("%s: %w", r.ID, ErrNoKinds)
	case r.Report == nil:
		return fmt.Errorf("%s: %w", r.ID, ErrNoReport)
	default:
		return nil
	}
}

// UnitContext carries the per-unit collaborators a rule may consult. It is
// private to one traversal.
type UnitContext struct {
	// Unit is the compilation unit under analysis.
	Unit *unit.CompilationUnit

	// Resolve answers symbol, type and provenance queries.
	Resolve *resolve.Context

	mapper *source.Mapper
}

// NewUnitContext assembles the per-unit context for one traversal.
func NewUnitContext(u *unit.CompilationUnit, rc *resolve.Context) *UnitContext {
	return &UnitContext{Unit: u, Resolve: rc, mapper: source.NewMapper(u)}
}

// Span returns the node's byte range in the unit's original source, or
// [source.ErrNoSourceSpan] for nodes without a textual origin.
func (uc *UnitContext) Span(n ast.Node) (diag.Span, error) {
	return uc.mapper.Span(n)
}

// Text reads back the original source covered by the span.
func (uc *UnitContext) Text(sp diag.Span) (string, error) {
	return uc.mapper.Text(sp)
}

// NodeText reads back the node's original source text.
func (uc *UnitContext) NodeText(n ast.Node) (string, error) {
	return uc.mapper.NodeText(n)
}

// Context is the per-node view handed to Report.
type Context struct {
	*UnitContext

	// Node is the matched node.
	Node ast.Node

	// Cursor is the traversal position of Node, for structural
	// navigation.
	Cursor inspector.Cursor

	// Scopes is the stack of enclosing container nodes, outermost
	// first.
	Scopes []ast.Node

	// State is the value built by the rule's Begin hook, or nil.
	State any
}

// ReplaceNode builds a text edit substituting the node's whole span.
// Nodes without a source span refuse with [source.ErrNoSourceSpan]; the
// caller then reports without a fix.
func (c *Context) ReplaceNode(n ast.Node, text string) (diag.TextEdit, error) {
	sp, err := c.Span(n)
	if err != nil {
		return diag.TextEdit{}, err
	}

	return diag.TextEdit{Span: sp, NewText: text}, nil
}

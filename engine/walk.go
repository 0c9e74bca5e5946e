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

package engine

import (
	"context"
	"go/ast"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/rulekit/diag"
	"fillmore-labs.com/rulekit/rule"
	"fillmore-labs.com/rulekit/unit"
)

// walker holds the mutable state of one traversal. All of it is private
// to one Check call; nothing here outlives the unit.
type walker struct {
	ctx    context.Context
	engine *Engine
	uc     *rule.UnitContext

	// states holds each rule's per-unit state, rebuilt by Begin.
	states map[string]any

	// scopes is the stack of enclosing container nodes, outermost
	// first. It is threaded explicitly through the walk, never global.
	scopes []ast.Node

	diags []diag.Diagnostic
}

// begin rebuilds each rule's per-unit state.
func (w *walker) begin() error {
	for _, r := range w.engine.rules {
		if r.Begin == nil {
			continue
		}

		state, err := w.beginRule(r)
		if err != nil {
			return err
		}

		w.states[r.ID] = state
	}

	return w.ctx.Err()
}

// beginRule isolates one Begin hook; a failing hook leaves the rule with
// nil state instead of aborting the walk.
func (w *walker) beginRule(r *rule.Rule) (state any, err error) {
	defer func() {
		if p := recover(); p != nil {
			w.internal(r, nil, "begin hook panicked: %v", p)
		}
	}()

	state, err = r.Begin(w.uc)
	if err != nil {
		w.internal(r, nil, "begin hook failed: %s", err)

		return nil, nil
	}

	return state, nil
}

// walk visits the subtree at c in pre-order. Suppressed subtrees are
// skipped entirely: no dispatch, no descent.
func (w *walker) walk(c inspector.Cursor) error {
	if err := w.ctx.Err(); err != nil {
		return err
	}

	n := c.Node()
	if w.suppressed(n) {
		return nil
	}

	k := unit.KindOf(n)
	w.dispatch(c, n, k)

	container := k.Container()
	if container {
		w.scopes = append(w.scopes, n)
	}

	for child := range c.Children() {
		if err := w.walk(child); err != nil {
			return err
		}
	}

	if container {
		w.scopes = w.scopes[:len(w.scopes)-1]
	}

	return nil
}

// suppressed evaluates the suppression predicate at subtree entry. It
// unifies "the declared symbol is machine-generated" and an explicit
// nolint marker on the declaration's line under one mechanism.
func (w *walker) suppressed(n ast.Node) bool {
	switch n.(type) {
	case *ast.FuncDecl, *ast.TypeSpec, *ast.GenDecl:
	default:
		return false
	}

	if obj := w.uc.Resolve.Definition(n); obj != nil {
		if len(w.uc.Resolve.GeneratedBy(obj)) > 0 {
			return true
		}
	}

	return w.uc.Unit.NoLint(n.Pos(), name)
}

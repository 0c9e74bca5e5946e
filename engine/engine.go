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

// Package engine implements the suppression-aware traversal that drives
// registered rules over compilation units.
//
// One [Engine] is built per process and is immutable afterwards. Checking
// a unit is a synchronous pure computation over read-only input; all
// mutable traversal state (scope stack, rule state, collected diagnostics)
// is private to one [Engine.Check] call, so units may be checked fully in
// parallel.
package engine

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime"
	"runtime/trace"
	"slices"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/rulekit/diag"
	"fillmore-labs.com/rulekit/internal/config"
	"fillmore-labs.com/rulekit/resolve"
	"fillmore-labs.com/rulekit/rule"
	"fillmore-labs.com/rulekit/unit"
)

// name is honored in nolint suppression markers.
const name = "rulekit"

// Registration errors.
var (
	// ErrNoRules is returned when an engine is constructed without
	// rules.
	ErrNoRules = errors.New("no rules registered")

	// ErrDuplicateRule is returned when two rules share an ID.
	ErrDuplicateRule = errors.New("duplicate rule id")

	// ErrInvalidKind is returned when a rule registers for
	// [unit.KindInvalid].
	ErrInvalidKind = errors.New("rule registers the invalid kind")
)

// Engine dispatches registered rules during a depth-first walk of each
// compilation unit.
type Engine struct {
	rules  []*rule.Rule
	byKind map[unit.Kind][]*rule.Rule
	flags  config.BitMask[config.Flags]
	prov   resolve.Provenance
}

// New registers the given rules and freezes the engine. Registration
// happens once per process; the engine is immutable and safe for
// concurrent use afterwards.
func New(rules []*rule.Rule, opts ...Option) (*Engine, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("engine: %w", ErrNoRules)
	}

	e := &Engine{
		rules:  slices.Clone(rules),
		byKind: make(map[unit.Kind][]*rule.Rule),
		flags:  config.Default(),
	}

	Options(opts).apply(e)

	seen := make(map[string]bool, len(rules))

	for _, r := range e.rules {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("engine: %w", err)
		}

		if seen[r.ID] {
			return nil, fmt.Errorf("engine: %w: %s", ErrDuplicateRule, r.ID)
		}

		seen[r.ID] = true

		for _, k := range r.Kinds {
			if k == unit.KindInvalid {
				return nil, fmt.Errorf("engine: %w: %s", ErrInvalidKind, r.ID)
			}

			e.byKind[k] = append(e.byKind[k], r)
		}
	}

	return e, nil
}

// Rules returns the registered rules.
func (e *Engine) Rules() []*rule.Rule {
	return slices.Clone(e.rules)
}

// Check walks one compilation unit and returns its diagnostics ordered by
// source position.
//
// Cancelling ctx terminates the traversal early and discards all
// diagnostics collected for the unit as one batch; a cancelled Check never
// returns a partial result.
func (e *Engine) Check(ctx context.Context, u *unit.CompilationUnit) ([]diag.Diagnostic, error) {
	ctx, task := trace.NewTask(ctx, "RuleKit")
	defer task.End()

	if u.Generated() && !e.flags.Enabled(config.IncludeGenerated) {
		return nil, nil
	}

	rc := resolve.NewContext(u, resolve.WithProvenance(e.prov))
	uc := rule.NewUnitContext(u, rc)

	w := &walker{
		ctx:    ctx,
		engine: e,
		uc:     uc,
		states: make(map[string]any, len(e.rules)),
	}

	if err := w.begin(); err != nil {
		return nil, err
	}

	region := trace.StartRegion(ctx, "Walk")
	root := inspector.New([]*ast.File{u.File}).Root()
	err := w.walk(root)
	region.End()

	if err != nil {
		return nil, err // diagnostics discarded as a batch
	}

	slices.SortFunc(w.diags, diag.Compare)

	return w.diags, nil
}

// CheckAll checks the units concurrently, one traversal per worker. The
// result holds each unit's diagnostics at the unit's index and is
// identical to checking the units sequentially in any order.
func (e *Engine) CheckAll(ctx context.Context, units []*unit.CompilationUnit) ([][]diag.Diagnostic, error) {
	results := make([][]diag.Diagnostic, len(units))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, u := range units {
		g.Go(func() error {
			ds, err := e.Check(ctx, u)
			if err != nil {
				return fmt.Errorf("%s: %w", u.Filename(), err)
			}

			results[i] = ds

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

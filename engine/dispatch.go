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
	"fmt"
	"go/ast"
	"slices"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/rulekit/diag"
	"fillmore-labs.com/rulekit/internal/config"
	"fillmore-labs.com/rulekit/rule"
	"fillmore-labs.com/rulekit/unit"
)

// dispatch evaluates every rule registered for the node's kind.
func (w *walker) dispatch(c inspector.Cursor, n ast.Node, k unit.Kind) {
	for _, r := range w.engine.byKind[k] {
		w.invoke(r, c, n)
	}
}

// invoke runs one rule against one node. A rule that fails internally is
// isolated: the failure becomes an internal diagnostic and the traversal
// continues with the next rule.
func (w *walker) invoke(r *rule.Rule, c inspector.Cursor, n ast.Node) {
	defer func() {
		if p := recover(); p != nil {
			w.internal(r, n, "rule panicked: %v", p)
		}
	}()

	if r.Match != nil && !r.Match.Match(w.uc.Resolve, n) {
		return
	}

	d, err := r.Report(&rule.Context{
		UnitContext: w.uc,
		Node:        n,
		Cursor:      c,
		Scopes:      slices.Clone(w.scopes),
		State:       w.states[r.ID],
	})

	switch {
	case err != nil:
		w.internal(r, n, "rule failed: %s", err)

		return
	case d == nil:
		return // matched structurally, declined semantically
	}

	// Severity and message are fixed per rule; the engine stamps the
	// identity so rules cannot misattribute diagnostics.
	d.RuleID, d.Severity = r.ID, r.Severity

	if w.uc.Unit.NoLint(n.Pos(), r.ID) {
		return
	}

	if d.Fix != nil {
		w.checkFix(r, n, d)
	}

	w.diags = append(w.diags, *d)
}

// checkFix enforces the non-overlap invariant. An offending fix is
// dropped; the diagnostic survives without an automated remedy.
func (w *walker) checkFix(r *rule.Rule, n ast.Node, d *diag.Diagnostic) {
	if w.engine.flags.Enabled(config.NoFixes) {
		d.Fix = nil

		return
	}

	if err := d.Fix.Validate(); err != nil {
		w.internal(r, n, "dropping fix: %s", err)
		d.Fix = nil
	}
}

// internal reports a non-fatal diagnostic about the rule itself. These
// indicate bugs in a rule, not issues in the analyzed code.
func (w *walker) internal(r *rule.Rule, n ast.Node, format string, args ...any) {
	if !w.engine.flags.Enabled(config.InternalDiagnostics) {
		return
	}

	sp, err := w.uc.Span(n)
	if err != nil {
		sp = diag.Span{}
	}

	msg := []byte("Internal error in rule " + r.ID + ": ")
	msg = fmt.Appendf(msg, format, args...)

	w.diags = append(w.diags, diag.Diagnostic{
		RuleID:   r.ID,
		Severity: diag.SeverityWarning,
		Span:     sp,
		Message:  string(msg),
	})
}

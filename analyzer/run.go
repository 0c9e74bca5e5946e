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

package analyzer

import (
	"context"
	"fmt"
	"go/token"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/rulekit/diag"
	"fillmore-labs.com/rulekit/engine"
	"fillmore-labs.com/rulekit/rule"
	"fillmore-labs.com/rulekit/rules"
	"fillmore-labs.com/rulekit/unit"
)

// runOptions represent configuration for the rulekit analyzer.
type runOptions struct {
	// rules is the catalog checked by this analyzer instance.
	rules []*rule.Rule

	// generated includes machine-generated files in the analysis.
	generated bool

	// fixes controls whether suggested fixes are attached.
	fixes bool
}

// defaultRunOptions initializes a new runOptions instance with the default
// rule catalog.
func defaultRunOptions() *runOptions {
	return &runOptions{
		rules: rules.Default(),
		fixes: true,
	}
}

// run executes the rulekit engine over every file of the pass, one
// compilation unit per file.
func (r *runOptions) run(p *analysis.Pass) (any, error) {
	eng, err := engine.New(r.rules,
		engine.WithGenerated(r.generated),
		engine.WithFixes(r.fixes),
	)
	if err != nil {
		return nil, err
	}

	units := make([]*unit.CompilationUnit, 0, len(p.Files))

	for _, file := range p.Files {
		handle := p.Fset.File(file.FileStart)
		if handle == nil {
			continue
		}

		src, err := p.ReadFile(handle.Name())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		u, err := unit.New(p.Fset, file, src, p.Pkg, p.TypesInfo)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		units = append(units, u)
	}

	results, err := eng.CheckAll(context.Background(), units)
	if err != nil {
		return nil, err
	}

	for i, diagnostics := range results {
		handle := units[i].TokenFile()
		for _, d := range diagnostics {
			p.Report(convert(handle, d))
		}
	}

	return nil, nil
}

// convert maps a rulekit diagnostic onto the analysis framework's
// representation. The rule ID travels in Category; severity has no
// counterpart there and stays a rulekit concept.
func convert(handle *token.File, d diag.Diagnostic) analysis.Diagnostic {
	ad := analysis.Diagnostic{
		Pos:      handle.Pos(d.Span.Start),
		End:      handle.Pos(d.Span.End),
		Category: d.RuleID,
		Message:  d.Message,
	}

	if d.Fix != nil {
		edits := make([]analysis.TextEdit, len(d.Fix.Edits))
		for i, e := range d.Fix.Edits {
			edits[i] = analysis.TextEdit{
				Pos:     handle.Pos(e.Span.Start),
				End:     handle.Pos(e.Span.End),
				NewText: []byte(e.NewText),
			}
		}

		ad.SuggestedFixes = []analysis.SuggestedFix{{Message: d.Fix.Message, TextEdits: edits}}
	}

	return ad
}

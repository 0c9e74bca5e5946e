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

package source_test

import (
	"errors"
	"go/ast"
	"testing"

	"fillmore-labs.com/rulekit/diag"
	. "fillmore-labs.com/rulekit/internal/source"
	"fillmore-labs.com/rulekit/internal/testsource"
)

func TestNodeText(t *testing.T) {
	t.Parallel()

	u, fn := testsource.ParseSnippet(t, "_ = 1 + 2")
	m := NewMapper(u)

	var bin *ast.BinaryExpr
	ast.Inspect(fn, func(n ast.Node) bool {
		if b, ok := n.(*ast.BinaryExpr); ok {
			bin = b
		}

		return true
	})
	if bin == nil {
		t.Fatal("Can't find binary expression")
	}

	got, err := m.NodeText(bin)
	if err != nil {
		t.Fatalf("NodeText() failed: %v", err)
	}

	if want := "1 + 2"; got != want {
		t.Errorf("NodeText() = %q, want %q", got, want)
	}
}

func TestSpanRoundTrip(t *testing.T) {
	t.Parallel()

	u, fn := testsource.ParseSnippet(t, "x := 42\n\t_ = x")
	m := NewMapper(u)

	sp, err := m.Span(fn.Body)
	if err != nil {
		t.Fatalf("Span() failed: %v", err)
	}

	text, err := m.Text(sp)
	if err != nil {
		t.Fatalf("Text() failed: %v", err)
	}

	if text[0] != '{' || text[len(text)-1] != '}' {
		t.Errorf("Text() = %q, want block braces", text)
	}
}

func TestSpanSynthesizedNode(t *testing.T) {
	t.Parallel()

	u, _ := testsource.ParseSnippet(t, "_ = 1")
	m := NewMapper(u)

	testCases := [...]struct {
		name string
		node ast.Node
	}{
		{"nil", nil},
		{"no position", &ast.Ident{Name: "synthesized"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if _, err := m.Span(tc.node); !errors.Is(err, ErrNoSourceSpan) {
				t.Errorf("Span() = %v, want %v", err, ErrNoSourceSpan)
			}
		})
	}
}

func TestTextOutOfRange(t *testing.T) {
	t.Parallel()

	u, _ := testsource.ParseSnippet(t, "_ = 1")
	m := NewMapper(u)

	testCases := [...]struct {
		name string
		span diag.Span
	}{
		{"beyond source", diag.Span{Start: 0, End: 1 << 20}},
		{"inverted", diag.Span{Start: 5, End: 2}},
		{"negative", diag.Span{Start: -1, End: 2}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if _, err := m.Text(tc.span); !errors.Is(err, ErrNoSourceSpan) {
				t.Errorf("Text(%v) = %v, want %v", tc.span, err, ErrNoSourceSpan)
			}
		})
	}
}

func TestTextWithoutSource(t *testing.T) {
	t.Parallel()

	u, fn := testsource.ParseSnippet(t, "_ = 1")
	u.Src = nil
	m := NewMapper(u)

	if _, err := m.NodeText(fn); !errors.Is(err, ErrNoSourceSpan) {
		t.Errorf("NodeText() = %v, want %v", err, ErrNoSourceSpan)
	}
}

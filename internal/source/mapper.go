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

// Package source maps nodes back to their original source text.
//
// Fix synthesis is purely textual: it reads the literal bytes a node
// occupies in the unit's immutable source buffer and never re-resolves or
// re-formats the tree. The mapper is the only place this read-back happens.
package source

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"

	"fillmore-labs.com/rulekit/diag"
	"fillmore-labs.com/rulekit/unit"
)

// ErrNoSourceSpan signals a node without a textual origin, typically a
// synthesized node. Fix construction must refuse such nodes; diagnostics
// may still be reported without a remedy.
var ErrNoSourceSpan = errors.New("node has no source span")

// Mapper performs pure, side-effect-free lookups between nodes, spans and
// source text for one compilation unit.
type Mapper struct {
	handle *token.File
	src    []byte
}

// NewMapper creates a [Mapper] for the unit's file and source buffer.
func NewMapper(u *unit.CompilationUnit) *Mapper {
	return &Mapper{handle: u.TokenFile(), src: u.Src}
}

// Span returns the byte-offset range the node occupies in the unit's
// source, or [ErrNoSourceSpan] when the node has no mapped position.
func (m *Mapper) Span(n ast.Node) (diag.Span, error) {
	if n == nil {
		return diag.Span{}, ErrNoSourceSpan
	}

	pos, end := n.Pos(), n.End()
	if !pos.IsValid() || !end.IsValid() || !m.contains(pos) || !m.contains(end) {
		return diag.Span{}, ErrNoSourceSpan
	}

	return diag.Span{Start: m.handle.Offset(pos), End: m.handle.Offset(end)}, nil
}

// Text returns the literal substring of the original source covered by the
// span.
func (m *Mapper) Text(sp diag.Span) (string, error) {
	if m.src == nil || !sp.Valid() || sp.End > len(m.src) {
		return "", fmt.Errorf("%w: [%d, %d)", ErrNoSourceSpan, sp.Start, sp.End)
	}

	return string(m.src[sp.Start:sp.End]), nil
}

// NodeText returns the original source text of the node.
func (m *Mapper) NodeText(n ast.Node) (string, error) {
	sp, err := m.Span(n)
	if err != nil {
		return "", err
	}

	return m.Text(sp)
}

// contains reports whether pos falls within the mapper's file.
func (m *Mapper) contains(pos token.Pos) bool {
	return token.Pos(m.handle.Base()) <= pos && pos <= token.Pos(m.handle.Base()+m.handle.Size())
}

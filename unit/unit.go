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

// Package unit models the input of a rulekit run: one resolved compilation
// unit, produced by the external front end (go/parser plus go/types).
//
// A compilation unit is one file of a type-checked package: one tree, one
// source buffer and the type information shared with the package's other
// files. Units are read-only inputs; rulekit never mutates a node, symbol
// or type.
package unit

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"regexp"
	"slices"
	"strings"
)

// rulekit is the name honored in suppression markers.
const rulekit = "rulekit"

// Unit construction errors.
var (
	// ErrMissingInput is returned when a required constructor argument is nil.
	ErrMissingInput = errors.New("missing input")

	// ErrUnknownFile is returned when the file is not part of the file set.
	ErrUnknownFile = errors.New("file not in file set")
)

// CompilationUnit is the root container handed to the engine: one resolved
// tree, its original source text and the package-level resolution results.
type CompilationUnit struct {
	// Fset maps positions of File back to offsets and lines.
	Fset *token.FileSet

	// File is the resolved tree.
	File *ast.File

	// Src is the original source text of File. It backs span lookups and
	// fix synthesis; a nil Src disables fixes but not diagnostics.
	Src []byte

	// Pkg is the type-checked package containing File. May be nil for
	// partially resolved input; type queries then come up empty.
	Pkg *types.Package

	// Info holds the symbol and type resolution for the package.
	Info *types.Info

	handle    *token.File
	generated bool
	genTool   string
}

// New validates the front end's artifacts and assembles a compilation unit.
func New(fset *token.FileSet, file *ast.File, src []byte, pkg *types.Package, info *types.Info) (*CompilationUnit, error) {
	if fset == nil || file == nil || info == nil {
		return nil, fmt.Errorf("unit: %w", ErrMissingInput)
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return nil, fmt.Errorf("unit: %w", ErrUnknownFile)
	}

	u := &CompilationUnit{
		Fset: fset,
		File: file,
		Src:  src,
		Pkg:  pkg,
		Info: info,

		handle:    handle,
		generated: ast.IsGenerated(file),
	}

	if u.generated {
		u.genTool = generatedTool(file)
	}

	return u, nil
}

// Filename returns the name of the unit's source file.
func (u *CompilationUnit) Filename() string {
	return u.handle.Name()
}

// TokenFile returns the unit's file handle within Fset.
func (u *CompilationUnit) TokenFile() *token.File {
	return u.handle
}

// Generated reports whether the whole unit is machine-generated, following
// the standard "Code generated ... DO NOT EDIT." convention.
func (u *CompilationUnit) Generated() bool {
	return u.generated
}

// GeneratedTool names the mechanism that generated the unit, or "" for
// hand-authored units. Unrecognizable generators yield "unknown".
func (u *CompilationUnit) GeneratedTool() string {
	return u.genTool
}

var generatedByPattern = regexp.MustCompile(`^// Code generated by ("[^"]+"|\S+)`)

// generatedTool extracts the generator name from the conventional header
// comment.
func generatedTool(file *ast.File) string {
	for _, group := range file.Comments {
		if group.Pos() > file.Package {
			break
		}

		for _, comment := range group.List {
			matches := generatedByPattern.FindStringSubmatch(comment.Text)
			if matches == nil {
				continue
			}

			return strings.Trim(matches[1], `".`)
		}
	}

	return "unknown"
}

// NoLint checks whether the line holding pos carries a //nolint comment
// naming one of the given linters or "all".
func (u *CompilationUnit) NoLint(pos token.Pos, names ...string) bool {
	if u.File == nil || !pos.IsValid() {
		return false
	}

	// find the first comment group starting at or after pos
	i, _ := slices.BinarySearchFunc(u.File.Comments, pos,
		func(c *ast.CommentGroup, p token.Pos) int { return int(c.Pos() - p) })
	if i >= len(u.File.Comments) {
		return false
	}

	comment := u.File.Comments[i].List[0]
	if u.line(comment.Pos()) != u.line(pos) {
		return false // not on this line
	}

	return commentHasNoLint(comment, names)
}

func (u *CompilationUnit) line(pos token.Pos) int {
	return u.handle.PositionFor(pos, false).Line
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// commentHasNoLint checks whether the comment is a nolint directive naming
// one of the given linters.
func commentHasNoLint(comment *ast.Comment, names []string) bool {
	matches := nolintPattern.FindStringSubmatch(comment.Text)
	if matches == nil {
		return false
	}

	for linter := range strings.SplitSeq(matches[1], ",") {
		l := strings.TrimSpace(linter)
		if l == "all" || l == rulekit || slices.Contains(names, l) {
			return true
		}
	}

	return false
}

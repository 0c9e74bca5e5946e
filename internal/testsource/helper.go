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

// Package testsource provides utilities for parsing and analyzing Go source code in tests.
//
// It handles the common boilerplate of parsing, type checking and building
// [unit.CompilationUnit] values from Go source fragments or whole files.
package testsource

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"maps"
	"slices"
	"strings"
	"testing"

	"fillmore-labs.com/rulekit/unit"
)

const testpkg = "test"

// ParseUnit parses and type-checks a single complete Go source file and
// returns it as a compilation unit. The source must contain a package clause.
func ParseUnit(tb testing.TB, src string) *unit.CompilationUnit {
	tb.Helper()

	units := ParsePackage(tb, map[string]string{"test.go": src})

	return units[0]
}

// ParsePackage parses and type-checks a package built from the given file
// name to source mapping and returns one compilation unit per file, ordered
// by file name.
func ParsePackage(tb testing.TB, sources map[string]string) []*unit.CompilationUnit {
	tb.Helper()

	fset := token.NewFileSet()

	names := slices.Sorted(maps.Keys(sources))
	files := make([]*ast.File, len(names))
	for i, name := range names {
		f, err := parser.ParseFile(fset, name, sources[name], parser.ParseComments|parser.SkipObjectResolution)
		if err != nil {
			tb.Fatalf("Failed to parse %s: %v", name, err)
		}

		files[i] = f
	}

	pkg, info := check(tb, fset, files)

	units := make([]*unit.CompilationUnit, len(names))
	for i, name := range names {
		u, err := unit.New(fset, files[i], []byte(sources[name]), pkg, info)
		if err != nil {
			tb.Fatalf("Failed to build compilation unit for %s: %v", name, err)
		}

		units[i] = u
	}

	return units
}

// ParseSnippet wraps a statement-level source fragment in a package and a
// function body and returns the resulting compilation unit together with the
// wrapper function. This allows testing expression and statement matching
// without constructing the surrounding scaffolding by hand.
func ParseSnippet(tb testing.TB, src string) (*unit.CompilationUnit, *ast.FuncDecl) {
	tb.Helper()

	u := ParseUnit(tb, WrapSnippet(src))

	for _, decl := range u.File.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok {
			return u, fn
		}
	}

	tb.Fatal("Can't find wrapper function")

	return nil, nil
}

// WrapSnippet embeds a statement-level fragment in a minimal source file.
func WrapSnippet(src string) string {
	var sb strings.Builder
	sb.Grow(len(src) + 32)

	sb.WriteString("package " + testpkg + "\n\nfunc _() {\n") // ignore error
	sb.WriteString(src)                                       // ignore error
	sb.WriteString("\n}\n")                                   // ignore error

	return sb.String()
}

func check(tb testing.TB, fset *token.FileSet, files []*ast.File) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:  make(map[ast.Expr]types.TypeAndValue),
		Defs:   make(map[*ast.Ident]types.Object),
		Uses:   make(map[*ast.Ident]types.Object),
		Scopes: make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(testpkg, fset, files, info)
	if err != nil {
		tb.Fatalf("Failed to type check source: %v", err)
	}

	return pkg, info
}

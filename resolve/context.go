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

// Package resolve answers symbol and type questions for one compilation
// unit: identifier-to-symbol lookup, the subtype relation and generation
// provenance.
//
// All queries are total over partially resolved input. A failed lookup
// returns nil or an empty result, never an error or a panic; rules built
// on top treat that as "does not match". Results are cached per unit, and
// a [Context] is private to one traversal, so no locking is needed.
package resolve

import (
	"go/ast"
	"go/types"
	"regexp"

	"fillmore-labs.com/rulekit/unit"
)

// Context provides the resolution queries for one compilation unit.
// It is created per traversal and must not be shared between units.
type Context struct {
	unit *unit.CompilationUnit
	prov Provenance

	subtypes  map[typePair]bool
	generated map[types.Object][]string
	imports   map[string]*types.Package
}

// Option configures a [NewContext].
type Option func(*Context)

// WithProvenance replaces the default generation-provenance mechanism.
func WithProvenance(p Provenance) Option {
	return func(c *Context) {
		if p != nil {
			c.prov = p
		}
	}
}

// NewContext creates the resolution context for one unit.
func NewContext(u *unit.CompilationUnit, opts ...Option) *Context {
	c := &Context{
		unit: u,
		prov: FileProvenance{},

		subtypes:  make(map[typePair]bool),
		generated: make(map[types.Object][]string),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Unit returns the compilation unit this context resolves for.
func (c *Context) Unit() *unit.CompilationUnit {
	return c.unit
}

// TypeOf returns the resolved type of the expression, or nil when the
// front end did not resolve it.
func (c *Context) TypeOf(e ast.Expr) types.Type {
	if e == nil || c.unit.Info == nil {
		return nil
	}

	return c.unit.Info.TypeOf(e)
}

// ObjectOf returns the symbol an identifier or member access denotes, or
// nil. Two calls for references to the same declared entity return the
// same object.
func (c *Context) ObjectOf(n ast.Node) types.Object {
	if c.unit.Info == nil {
		return nil
	}

	switch n := n.(type) {
	case *ast.Ident:
		return c.unit.Info.ObjectOf(n)
	case *ast.SelectorExpr:
		return c.unit.Info.ObjectOf(n.Sel)
	default:
		return nil
	}
}

// Definition returns the symbol a declaration node defines, or nil for
// non-declaration nodes.
func (c *Context) Definition(n ast.Node) types.Object {
	if c.unit.Info == nil {
		return nil
	}

	switch n := n.(type) {
	case *ast.TypeSpec:
		return c.unit.Info.Defs[n.Name]
	case *ast.FuncDecl:
		return c.unit.Info.Defs[n.Name]
	default:
		return nil
	}
}

// LookupType resolves a named type by package path and simple name through
// the unit's import graph. Returns nil when the type is not reachable.
func (c *Context) LookupType(path, name string) types.Type {
	pkg := c.lookupPackage(path)
	if pkg == nil {
		return nil
	}

	obj, ok := pkg.Scope().Lookup(name).(*types.TypeName)
	if !ok {
		return nil
	}

	return obj.Type()
}

// lookupPackage finds a package by path in the unit's import graph,
// memoizing the whole graph on first use.
func (c *Context) lookupPackage(path string) *types.Package {
	if c.imports == nil {
		c.imports = make(map[string]*types.Package)
		if c.unit.Pkg != nil {
			collectImports(c.imports, c.unit.Pkg)
		}
	}

	return c.imports[path]
}

func collectImports(seen map[string]*types.Package, pkg *types.Package) {
	if _, ok := seen[pkg.Path()]; ok {
		return
	}

	seen[pkg.Path()] = pkg
	for _, imp := range pkg.Imports() {
		collectImports(seen, imp)
	}
}

var directivePattern = regexp.MustCompile(`^//([a-z0-9]+:[a-zA-Z0-9_-]+)`)

// HasDirective reports whether the doc comment group carries the named
// directive comment (a `//tool:verb` line without leading whitespace).
// This answers the "does this declaration carry annotation A" query.
func (c *Context) HasDirective(doc *ast.CommentGroup, name string) bool {
	if doc == nil {
		return false
	}

	for _, comment := range doc.List {
		matches := directivePattern.FindStringSubmatch(comment.Text)
		if matches == nil {
			continue
		}

		if matches[1] == name {
			return true
		}
	}

	return false
}

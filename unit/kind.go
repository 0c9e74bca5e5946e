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

package unit

import "go/ast"

// Kind is a closed tag over the node shapes rules can register for.
// Adding a rule never extends this set; rules are handlers over existing
// kinds.
type Kind uint8

//go:generate go tool stringer -type=Kind

const (
	// KindInvalid tags nil nodes. Rules cannot register for it.
	KindInvalid Kind = iota

	KindFile
	KindFuncDecl
	KindTypeDecl
	KindValueDecl
	KindField
	KindIdent
	KindSelector
	KindCall
	KindBinary
	KindUnary
	KindParen
	KindLiteral
	KindComposite
	KindIndex
	KindSlice
	KindStar
	KindKeyValue
	KindFuncLit
	KindAssign
	KindReturn
	KindIf
	KindFor
	KindRange
	KindSwitch
	KindTypeSwitch
	KindSelect
	KindCase
	KindBlock

	// KindOther tags every remaining node shape.
	KindOther
)

// KindOf maps a node to its kind. Nil nodes map to [KindInvalid].
func KindOf(n ast.Node) Kind {
	switch n.(type) {
	case nil:
		return KindInvalid
	case *ast.File:
		return KindFile
	case *ast.FuncDecl:
		return KindFuncDecl
	case *ast.TypeSpec:
		return KindTypeDecl
	case *ast.ValueSpec:
		return KindValueDecl
	case *ast.Field:
		return KindField
	case *ast.Ident:
		return KindIdent
	case *ast.SelectorExpr:
		return KindSelector
	case *ast.CallExpr:
		return KindCall
	case *ast.BinaryExpr:
		return KindBinary
	case *ast.UnaryExpr:
		return KindUnary
	case *ast.ParenExpr:
		return KindParen
	case *ast.BasicLit:
		return KindLiteral
	case *ast.CompositeLit:
		return KindComposite
	case *ast.IndexExpr:
		return KindIndex
	case *ast.SliceExpr:
		return KindSlice
	case *ast.StarExpr:
		return KindStar
	case *ast.KeyValueExpr:
		return KindKeyValue
	case *ast.FuncLit:
		return KindFuncLit
	case *ast.AssignStmt:
		return KindAssign
	case *ast.ReturnStmt:
		return KindReturn
	case *ast.IfStmt:
		return KindIf
	case *ast.ForStmt:
		return KindFor
	case *ast.RangeStmt:
		return KindRange
	case *ast.SwitchStmt:
		return KindSwitch
	case *ast.TypeSwitchStmt:
		return KindTypeSwitch
	case *ast.SelectStmt:
		return KindSelect
	case *ast.CaseClause, *ast.CommClause:
		return KindCase
	case *ast.BlockStmt:
		return KindBlock
	default:
		return KindOther
	}
}

// Container reports whether nodes of this kind open a scope frame during
// traversal.
func (k Kind) Container() bool {
	switch k {
	case KindFile, KindFuncDecl, KindFuncLit, KindTypeDecl, KindBlock:
		return true
	default:
		return false
	}
}

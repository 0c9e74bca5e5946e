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

// Package analyzer exposes the rulekit engine as a [golang.org/x/tools/go/analysis]
// pass.
//
// # Overview
//
// RuleKit detects structural and semantic anti-patterns in resolved Go
// source and, where a safe textual rewrite exists, attaches a suggested
// fix. Checks are declarative rules (a node-kind filter, a matcher over
// resolved nodes and a diagnostic builder) dispatched by a traversal that
// skips machine-generated subtrees.
//
// # Example
//
// Before:
//
//	func roll(rng *rand.Rand) int {
//	    return rng.Int() % 6  // biased, and Int63 variants can go negative
//	}
//
// After applying rulekit's suggested fix:
//
//	func roll(rng *rand.Rand) int {
//	    return rng.Intn(6)
//	}
//
// # Shipped rules
//
//   - randmod: modulo bias on pseudo-random draws, with a textual rewrite
//     to the bounded draw method.
//   - genleak: references to generated derived classes outside the file
//     declaring their marked base type.
//
// Additional rules register through [WithRules].
package analyzer

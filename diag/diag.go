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

// Package diag defines the diagnostic and fix values produced by a rulekit run.
//
// A [Diagnostic] is an immutable finding from one rule for one compilation
// unit, located by a byte-offset [Span] into the unit's original source. An
// optional [Fix] carries textual edits; edits within one fix are pairwise
// non-overlapping so that applying them in descending start-offset order
// reconstructs valid source.
package diag

import "strings"

// Severity classifies the importance of a [Diagnostic].
type Severity uint8

const (
	// SeverityWarning marks findings that are suspect but not certainly broken.
	SeverityWarning Severity = iota + 1

	// SeverityError marks findings that are certainly defects.
	SeverityError
)

// String returns the conventional upper-case name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Span is a half-open byte-offset range [Start, End) into a compilation
// unit's original source text.
type Span struct {
	Start int
	End   int
}

// Valid reports whether the span describes a well-formed range.
func (s Span) Valid() bool {
	return s.Start >= 0 && s.End >= s.Start
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Overlaps reports whether two spans share any offset.
// Empty spans at the same offset are considered overlapping, since two
// insertions at one point have no well-defined order.
func (s Span) Overlaps(o Span) bool {
	if s.Start == o.Start {
		return true
	}

	return s.Start < o.End && o.Start < s.End
}

// Diagnostic is one finding reported by a rule. Values are immutable once
// handed to the reporting collaborator.
type Diagnostic struct {
	// RuleID identifies the rule that produced this diagnostic.
	RuleID string

	// Severity is fixed per rule.
	Severity Severity

	// Span locates the finding in the unit's original source.
	Span Span

	// Message is the human-readable description.
	Message string

	// Fix is an optional automated remedy. Nil when no safe textual
	// rewrite exists.
	Fix *Fix
}

// Compare orders diagnostics by source position, then by rule ID.
// It is suitable for [slices.SortFunc].
func Compare(a, b Diagnostic) int {
	switch {
	case a.Span.Start != b.Span.Start:
		return a.Span.Start - b.Span.Start
	case a.Span.End != b.Span.End:
		return a.Span.End - b.Span.End
	default:
		return strings.Compare(a.RuleID, b.RuleID)
	}
}

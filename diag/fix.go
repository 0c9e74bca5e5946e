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

package diag

import (
	"errors"
	"fmt"
	"slices"
)

// Fix construction errors.
var (
	// ErrInvalidSpan is returned when an edit's span is malformed or
	// outside the source text.
	ErrInvalidSpan = errors.New("invalid edit span")

	// ErrOverlappingEdits is returned when two edits of one fix share an
	// offset.
	ErrOverlappingEdits = errors.New("overlapping text edits")
)

// TextEdit replaces the text of Span with NewText. An empty span inserts,
// empty NewText deletes.
type TextEdit struct {
	Span    Span
	NewText string
}

// Fix is an ordered set of textual edits over a unit's original source.
//
// Invariant: edits are pairwise non-overlapping. A fix violating the
// invariant is never handed out; the engine drops it and reports the
// diagnostic without a remedy.
type Fix struct {
	// Message describes the fix to a human.
	Message string

	// Edits are the replacements, in ascending span order after Validate.
	Edits []TextEdit
}

// Validate checks the non-overlap invariant and normalizes the edit order
// to ascending start offsets.
func (f *Fix) Validate() error {
	if f == nil || len(f.Edits) == 0 {
		return ErrInvalidSpan
	}

	for _, e := range f.Edits {
		if !e.Span.Valid() {
			return fmt.Errorf("%w: [%d, %d)", ErrInvalidSpan, e.Span.Start, e.Span.End)
		}
	}

	slices.SortFunc(f.Edits, func(a, b TextEdit) int { return a.Span.Start - b.Span.Start })

	for i := 1; i < len(f.Edits); i++ {
		prev, next := f.Edits[i-1].Span, f.Edits[i].Span
		if prev.End > next.Start || prev.Start == next.Start {
			return fmt.Errorf("%w: [%d, %d) and [%d, %d)",
				ErrOverlappingEdits, prev.Start, prev.End, next.Start, next.End)
		}
	}

	return nil
}

// Apply returns a copy of src with all edits applied. Edits are applied in
// descending start-offset order, so earlier offsets stay valid throughout.
//
// Apply validates the fix first and never modifies src.
func (f *Fix) Apply(src []byte) ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	if last := f.Edits[len(f.Edits)-1].Span.End; last > len(src) {
		return nil, fmt.Errorf("%w: end %d beyond source size %d", ErrInvalidSpan, last, len(src))
	}

	out := slices.Clone(src)
	for i := len(f.Edits) - 1; i >= 0; i-- {
		e := f.Edits[i]
		out = slices.Concat(out[:e.Span.Start], []byte(e.NewText), out[e.Span.End:])
	}

	return out, nil
}

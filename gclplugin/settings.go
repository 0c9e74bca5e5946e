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

package gclplugin

import rulekit "fillmore-labs.com/rulekit/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Generated enables diagnostics in generated files.
	Generated *bool `json:"generated,omitzero"`
	// Fixes enables suggested fixes on diagnostics.
	Fixes *bool `json:"fixes,omitzero"`
}

// Options converts [Settings] into a list of [rulekit.Option] for the
// rulekit analyzer. It applies settings only when explicitly set (non-nil).
func (s Settings) Options() []rulekit.Option {
	var opts []rulekit.Option

	opts = appendOption(opts, s.Generated, rulekit.WithGenerated)
	opts = appendOption(opts, s.Fixes, rulekit.WithFixes)

	return opts
}

// appendOption appends a non-nil setting to a [rulekit.Option] list.
func appendOption[T any](opts []rulekit.Option, value *T, constructor func(T) rulekit.Option) []rulekit.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}

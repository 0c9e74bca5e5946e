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

// Package config holds the engine's behavioral flags.
package config

// Flags represents configuration options for the engine.
type Flags uint8

const (
	// IncludeGenerated lifts the whole-unit suppression of generated
	// files.
	IncludeGenerated Flags = 1 << iota

	// NoFixes drops all suggested fixes, keeping the diagnostics.
	NoFixes

	// InternalDiagnostics surfaces rule failures as diagnostics about
	// the rule itself.
	InternalDiagnostics
)

// Default returns the flags of a freshly constructed engine.
func Default() BitMask[Flags] {
	return NewBitMask(InternalDiagnostics)
}

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

package engine

import (
	"log/slog"

	"fillmore-labs.com/rulekit/internal/config"
	"fillmore-labs.com/rulekit/resolve"
)

// Option configures specific behavior of a [New] engine.
type Option interface {
	apply(e *Engine)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option]
// interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	for _, opt := range o {
		if opt == nil {
			continue
		}

		as = append(as, opt.LogAttr())
	}

	return slog.GroupValue(as...)
}

func (o Options) apply(e *Engine) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(e)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to include machine-generated units instead
// of suppressing them whole.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(e *Engine) {
	e.flags.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithFixes is an [Option] to control whether suggested fixes are built.
func WithFixes(fixes bool) Option { return fixesOption{fixes: fixes} }

type fixesOption struct{ fixes bool }

func (o fixesOption) apply(e *Engine) {
	e.flags.Set(config.NoFixes, !o.fixes)
}

func (o fixesOption) LogAttr() slog.Attr {
	return slog.Bool("fixes", o.fixes)
}

// WithInternalDiagnostics is an [Option] to control whether rule failures
// surface as diagnostics about the rule itself.
func WithInternalDiagnostics(internal bool) Option {
	return internalOption{internal: internal}
}

type internalOption struct{ internal bool }

func (o internalOption) apply(e *Engine) {
	e.flags.Set(config.InternalDiagnostics, o.internal)
}

func (o internalOption) LogAttr() slog.Attr {
	return slog.Bool("internal-diagnostics", o.internal)
}

// WithProvenance is an [Option] to replace the generation-provenance
// mechanism consulted during suppression.
func WithProvenance(p resolve.Provenance) Option { return provenanceOption{prov: p} }

type provenanceOption struct{ prov resolve.Provenance }

func (o provenanceOption) apply(e *Engine) {
	e.prov = o.prov
}

func (o provenanceOption) LogAttr() slog.Attr {
	return slog.Any("provenance", o.prov)
}

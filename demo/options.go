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

package demo

import (
	"log/slog"

	"fillmore-labs.com/sumdemo/arith"
)

// Option configures specific behavior of a [Run].
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

// appendOptions flattens nested option lists, skipping nil entries.
func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		if nested, ok := opt.(Options); ok {
			as = appendOptions(as, nested)
		} else if opt != nil {
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithPolicy is an [Option] to select the overflow policy of the addition.
func WithPolicy(policy arith.Policy) Option { return policyOption{policy: policy} }

type policyOption struct{ policy arith.Policy }

func (o policyOption) apply(r *runOptions) {
	r.policy = o.policy
}

func (o policyOption) LogAttr() slog.Attr {
	return slog.String("policy", o.policy.String())
}

// WithOperands is an [Option] to replace the operands 1 and 2.
func WithOperands(a, b int8) Option { return operandsOption{a: a, b: b} }

type operandsOption struct{ a, b int8 }

func (o operandsOption) apply(r *runOptions) {
	r.a, r.b = o.a, o.b
}

func (o operandsOption) LogAttr() slog.Attr {
	return slog.Group("operands", slog.Int("a", int(o.a)), slog.Int("b", int(o.b)))
}

// WithLogger is an [Option] to set the logger for debug output.
// A nil logger discards.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *runOptions) {
	if o.logger == nil {
		r.logger = discard()

		return
	}

	r.logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}

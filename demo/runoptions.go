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

// Fixed values of the demo.
const (
	operandA int8 = 1
	operandB int8 = 2
	newTotal int8 = -100
)

// runOptions represent the configuration of a single [Run].
type runOptions struct {
	// a and b are the operands of the addition.
	a, b int8

	// policy decides what happens when a + b overflows.
	policy arith.Policy

	logger *slog.Logger
}

// makeRunOptions returns a [runOptions] struct with overriding [Options] applied.
func makeRunOptions(opts Options) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	return r
}

// defaultRunOptions initializes and returns a new runOptions instance with default values.
func defaultRunOptions() *runOptions {
	return &runOptions{
		a:      operandA,
		b:      operandB,
		policy: arith.Abort,
		logger: discard(),
	}
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

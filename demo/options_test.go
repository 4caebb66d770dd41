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

package demo_test

import (
	"log/slog"
	"strings"
	"testing"

	"fillmore-labs.com/sumdemo/arith"
	. "fillmore-labs.com/sumdemo/demo"
)

func TestOptionsLogValue(t *testing.T) {
	t.Parallel()

	opts := Options{
		WithPolicy(arith.Wrap),
		nil,
		Options{WithOperands(3, 4)},
		WithLogger(nil),
	}

	var b strings.Builder

	logger := slog.New(slog.NewTextHandler(&b, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}

			return a
		},
	}))
	logger.LogAttrs(t.Context(), slog.LevelInfo, "test", opts.LogAttr())

	const want = `level=INFO msg=test options.policy=wrap options.operands.a=3 options.operands.b=4 options.logger=false` + "\n"
	if got := b.String(); got != want {
		t.Errorf("Got log %q, want %q", got, want)
	}
}

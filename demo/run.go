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
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Run executes the demo, writing two lines to w.
// It fails without writing when the sum overflows under [arith.Abort].
func Run(w io.Writer, opts ...Option) error {
	r := makeRunOptions(opts)

	return r.run(context.Background(), w, opts)
}

func (r *runOptions) run(ctx context.Context, w io.Writer, opts Options) error {
	r.logger.LogAttrs(ctx, slog.LevelDebug, "Starting demo", opts.LogAttr())

	a, b := r.a, r.b

	total, err := r.policy.Sum(a, b)
	if err != nil {
		return fmt.Errorf("sum: %w", err)
	}

	if _, err := fmt.Fprintf(w, "a = %d, b = %d, a+b = %d\n", a, b, total); err != nil {
		return fmt.Errorf("write sum: %w", err)
	}

	total = newTotal

	if _, err := fmt.Fprintf(w, "New total = %d\n", total); err != nil {
		return fmt.Errorf("write total: %w", err)
	}

	r.logger.LogAttrs(ctx, slog.LevelDebug, "Demo finished", slog.Int("total", int(total)))

	return nil
}

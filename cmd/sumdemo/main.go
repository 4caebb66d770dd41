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

// Sumdemo adds two int8 values, prints the sum, then prints a reassigned total.
//
// Usage:
//
//	sumdemo
//
// The program takes no arguments. An overflowing sum terminates it with exit code 1.
package main

import (
	"io"
	"log/slog"
	"os"

	"fillmore-labs.com/sumdemo/demo"
)

func main() {
	os.Exit(run(os.Stdout, os.Stderr))
}

func run(stdout, stderr io.Writer) int {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	if err := demo.Run(stdout, demo.WithLogger(logger)); err != nil {
		logger.Error("Demo failed", "error", err)

		return 1
	}

	return 0
}

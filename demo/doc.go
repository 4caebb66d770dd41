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

// Package demo implements the int8 summation demo.
//
// # Overview
//
// [Run] adds two fixed int8 operands, prints them together with their sum,
// overwrites the total with a fixed value and prints it again:
//
//	a = 1, b = 2, a+b = 3
//	New total = -100
//
// # Overflow
//
// The addition is checked by default ([arith.Abort]): a sum outside the int8
// range fails the run with [arith.ErrOverflow] before anything is written.
// Use [WithPolicy] to select [arith.Wrap] instead.
package demo

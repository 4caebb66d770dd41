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

// Package arith implements addition of 8-bit signed integers with an explicit overflow policy.
//
// Go's int8 arithmetic wraps silently. [Sum] keeps that behavior, while
// [Policy.Sum] lets a caller decide once whether an out-of-range result
// wraps or fails with [ErrOverflow].
package arith

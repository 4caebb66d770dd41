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

package arith

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned when the exact sum does not fit into an int8.
var ErrOverflow = errors.New("int8 overflow")

// OverflowError records the operands of an addition that overflowed.
type OverflowError struct {
	X, Y int8
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%d + %d: %v", e.X, e.Y, ErrOverflow)
}

// Unwrap returns [ErrOverflow].
func (e *OverflowError) Unwrap() error { return ErrOverflow }

// Sum returns x + y with two's-complement wraparound.
func Sum(x, y int8) int8 {
	return x + y
}

// Overflows reports whether x + y lies outside [math.MinInt8, math.MaxInt8].
func Overflows(x, y int8) bool {
	s := int16(x) + int16(y)

	return s < math.MinInt8 || s > math.MaxInt8
}

// Sum adds x and y according to the policy.
// Under [Abort] an out-of-range result yields an *[OverflowError] and a zero sum.
func (p Policy) Sum(x, y int8) (int8, error) {
	switch p {
	case Abort:
		if Overflows(x, y) {
			return 0, &OverflowError{X: x, Y: y}
		}

		return x + y, nil

	case Wrap:
		return Sum(x, y), nil

	default:
		return 0, fmt.Errorf("unknown overflow policy %d", p)
	}
}

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
	"fmt"
	"strings"
)

// Policy specifies how an int8 addition handles a result outside the representable range.
type Policy uint8

//go:generate go tool stringer -type Policy -linecomment
const (
	// Abort fails the addition with [ErrOverflow].
	Abort Policy = iota // abort

	// Wrap wraps the result using two's-complement arithmetic.
	Wrap // wrap
)

// MarshalText implements [encoding.TextMarshaler].
func (p Policy) MarshalText() ([]byte, error) {
	switch p {
	case Abort, Wrap:
		return []byte(p.String()), nil

	default:
		return nil, fmt.Errorf("unknown overflow policy %d", p)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (p *Policy) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "abort", "checked", "on", "true":
		*p = Abort

	case "wrap", "off", "false":
		*p = Wrap

	default:
		return fmt.Errorf("unknown overflow policy %q", string(text))
	}

	return nil
}

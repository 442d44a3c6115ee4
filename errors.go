/*
 * SignedMath - Checked signed fixed-width integer arithmetic
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package signedmath

import (
	"fmt"
	"runtime/debug"
)

// OverflowError

// OverflowError is returned when the exact mathematical result of an
// operation falls outside the representable range of the fixed-width type,
// in either direction.
type OverflowError struct{}

func (e OverflowError) Error() string {
	return "overflow"
}

// DivisionByZeroError

// DivisionByZeroError is returned when the divisor of a division or
// remainder operation is zero.
type DivisionByZeroError struct{}

func (e DivisionByZeroError) Error() string {
	return "division by zero"
}

// UnreachableError

// UnreachableError is an internal error in the arithmetic implementation:
// an invariant was broken. It should never be returned or observed.
type UnreachableError struct {
	Stack []byte
}

func (e UnreachableError) Error() string {
	return fmt.Sprintf("unreachable\n%s", e.Stack)
}

func NewUnreachableError() *UnreachableError {
	return &UnreachableError{Stack: debug.Stack()}
}

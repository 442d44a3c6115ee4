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
	"math"
)

// Checked arithmetic over native int64 values.
//
// Unlike the big.Int-backed Int256 operations, these cannot compute the
// exact result first and check its range afterwards: the pre-checks below
// must reject every operand pair whose exact result is unrepresentable,
// before the wrapping native operation is performed.

// AddInt64 returns the exact sum of a and b,
// or OverflowError when the sum falls outside the int64 range.
func AddInt64(a, b int64) (int64, error) {
	// INT32-C
	if (b > 0) && (a > (math.MaxInt64 - b)) {
		return 0, OverflowError{}
	} else if (b < 0) && (a < (math.MinInt64 - b)) {
		return 0, OverflowError{}
	}
	return a + b, nil
}

// SubInt64 returns the exact difference of a and b,
// or OverflowError when the difference falls outside the int64 range.
// The checks avoid negating b, so b == math.MinInt64 is handled exactly.
func SubInt64(a, b int64) (int64, error) {
	// INT32-C
	if (b > 0) && (a < (math.MinInt64 + b)) {
		return 0, OverflowError{}
	} else if (b < 0) && (a > (math.MaxInt64 + b)) {
		return 0, OverflowError{}
	}
	return a - b, nil
}

// MulInt64 returns the exact product of a and b,
// or OverflowError when the product falls outside the int64 range.
func MulInt64(a, b int64) (int64, error) {
	// INT32-C
	if a > 0 {
		if b > 0 {
			// positive * positive = positive. overflow?
			if a > (math.MaxInt64 / b) {
				return 0, OverflowError{}
			}
		} else {
			// positive * negative = negative. overflow?
			if b < (math.MinInt64 / a) {
				return 0, OverflowError{}
			}
		}
	} else {
		if b > 0 {
			// negative * positive = negative. overflow?
			if a < (math.MinInt64 / b) {
				return 0, OverflowError{}
			}
		} else {
			// negative * negative = positive. overflow?
			if (a != 0) && (b < (math.MaxInt64 / a)) {
				return 0, OverflowError{}
			}
		}
	}
	return a * b, nil
}

// DivInt64 returns the quotient of a and b, truncated toward zero.
// It returns DivisionByZeroError when b is zero,
// and OverflowError when a is math.MinInt64 and b is -1.
func DivInt64(a, b int64) (int64, error) {
	// INT33-C
	if b == 0 {
		return 0, DivisionByZeroError{}
	}
	if (a == math.MinInt64) && (b == -1) {
		return 0, OverflowError{}
	}
	return a / b, nil
}

// NegateInt64 returns the negation of a,
// or OverflowError when a is math.MinInt64.
func NegateInt64(a int64) (int64, error) {
	// INT32-C
	if a == math.MinInt64 {
		return 0, OverflowError{}
	}
	return -a, nil
}

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

// Package signedmath provides checked arithmetic over signed fixed-width
// integers. Operations either return the exact mathematical result, or fail
// with OverflowError / DivisionByZeroError. Results never wrap or truncate.
package signedmath

import (
	"fmt"
	"math/big"
)

var Int256TypeMinIntBig = func() *big.Int {
	int256TypeMin := big.NewInt(-1)
	int256TypeMin.Lsh(int256TypeMin, 255)
	return int256TypeMin
}()

var Int256TypeMaxIntBig = func() *big.Int {
	int256TypeMax := big.NewInt(1)
	int256TypeMax.Lsh(int256TypeMax, 255)
	int256TypeMax.Sub(int256TypeMax, big.NewInt(1))
	return int256TypeMax
}()

// Int256

// An Int256 is a signed integer in the range [-2^255, 2^255-1].
//
// The zero value is ready to use and represents 0.
// Values are immutable: operations never modify their operands.
type Int256 struct {
	value *big.Int
}

func NewInt256(value int64) Int256 {
	return Int256{value: big.NewInt(value)}
}

// NewInt256FromBig returns the Int256 with the given value,
// or an error if the value is outside the Int256 range.
// The given big integer is not retained.
func NewInt256FromBig(value *big.Int) (Int256, error) {
	if value.Cmp(Int256TypeMinIntBig) < 0 {
		return Int256{}, fmt.Errorf("value exceeds min of Int256: %s", value.String())
	}
	if value.Cmp(Int256TypeMaxIntBig) > 0 {
		return Int256{}, fmt.Errorf("value exceeds max of Int256: %s", value.String())
	}
	return Int256{value: new(big.Int).Set(value)}, nil
}

// big returns the backing big integer, or a shared zero when the value
// was not constructed through a constructor. Callers must not modify it.
func (v Int256) big() *big.Int {
	if v.value == nil {
		return bigZero
	}
	return v.value
}

var bigZero = new(big.Int)
var bigMinusOne = big.NewInt(-1)

// Big returns a copy of the value as a big integer.
func (v Int256) Big() *big.Int {
	return new(big.Int).Set(v.big())
}

func (v Int256) String() string {
	return v.big().String()
}

// Cmp compares v and other, returning -1, 0, or 1.
func (v Int256) Cmp(other Int256) int {
	return v.big().Cmp(other.big())
}

func (v Int256) Equal(other Int256) bool {
	return v.Cmp(other) == 0
}

// Sign returns -1 for negative values, 0 for zero, and 1 for positive values.
func (v Int256) Sign() int {
	return v.big().Sign()
}

// Negate returns the negation of v,
// or OverflowError when v is the minimum value,
// whose negation exceeds the maximum.
func (v Int256) Negate() (Int256, error) {
	// INT32-C
	if v.big().Cmp(Int256TypeMinIntBig) == 0 {
		return Int256{}, OverflowError{}
	}
	return Int256{value: new(big.Int).Neg(v.big())}, nil
}

// Plus returns the exact sum of v and other,
// or OverflowError when the sum falls outside the Int256 range.
func (v Int256) Plus(other Int256) (Int256, error) {
	// Given that this value is backed by an arbitrary size integer,
	// we can just add and check the range of the result.
	//
	// If Go gains a native int256 type and we switch this value
	// to be based on it, then we need to follow INT32-C:
	//
	//   if (o > 0) && (v > (Int256TypeMaxIntBig - o)) {
	//       ...
	//   } else if (o < 0) && (v < (Int256TypeMinIntBig - o)) {
	//       ...
	//   }
	//
	res := new(big.Int)
	res.Add(v.big(), other.big())
	if res.Cmp(Int256TypeMinIntBig) < 0 || res.Cmp(Int256TypeMaxIntBig) > 0 {
		return Int256{}, OverflowError{}
	}
	return Int256{value: res}, nil
}

// SaturatingPlus returns the sum of v and other,
// clamped to the Int256 range.
func (v Int256) SaturatingPlus(other Int256) Int256 {
	res := new(big.Int)
	res.Add(v.big(), other.big())
	if res.Cmp(Int256TypeMinIntBig) < 0 {
		return Int256{value: new(big.Int).Set(Int256TypeMinIntBig)}
	} else if res.Cmp(Int256TypeMaxIntBig) > 0 {
		return Int256{value: new(big.Int).Set(Int256TypeMaxIntBig)}
	}
	return Int256{value: res}
}

// Minus returns the exact difference of v and other,
// or OverflowError when the difference falls outside the Int256 range.
// In particular, subtracting the minimum value never wraps:
// the range of the exact result is checked before narrowing.
func (v Int256) Minus(other Int256) (Int256, error) {
	// Given that this value is backed by an arbitrary size integer,
	// we can just subtract and check the range of the result.
	//
	// If Go gains a native int256 type and we switch this value
	// to be based on it, then we need to follow INT32-C:
	//
	//   if (o > 0) && (v < (Int256TypeMinIntBig + o)) {
	//       ...
	//   } else if (o < 0) && (v > (Int256TypeMaxIntBig + o)) {
	//       ...
	//   }
	//
	res := new(big.Int)
	res.Sub(v.big(), other.big())
	if res.Cmp(Int256TypeMinIntBig) < 0 || res.Cmp(Int256TypeMaxIntBig) > 0 {
		return Int256{}, OverflowError{}
	}
	return Int256{value: res}, nil
}

// SaturatingMinus returns the difference of v and other,
// clamped to the Int256 range.
func (v Int256) SaturatingMinus(other Int256) Int256 {
	res := new(big.Int)
	res.Sub(v.big(), other.big())
	if res.Cmp(Int256TypeMinIntBig) < 0 {
		return Int256{value: new(big.Int).Set(Int256TypeMinIntBig)}
	} else if res.Cmp(Int256TypeMaxIntBig) > 0 {
		return Int256{value: new(big.Int).Set(Int256TypeMaxIntBig)}
	}
	return Int256{value: res}
}

// Mul returns the exact product of v and other,
// or OverflowError when the product falls outside the Int256 range.
// MIN * -1 fails, as its exact result exceeds the maximum.
func (v Int256) Mul(other Int256) (Int256, error) {
	res := new(big.Int)
	if v.big().Sign() == 0 || other.big().Sign() == 0 {
		return Int256{value: res}, nil
	}
	res.Mul(v.big(), other.big())
	if res.Cmp(Int256TypeMinIntBig) < 0 || res.Cmp(Int256TypeMaxIntBig) > 0 {
		return Int256{}, OverflowError{}
	}
	return Int256{value: res}, nil
}

// SaturatingMul returns the product of v and other,
// clamped to the Int256 range.
func (v Int256) SaturatingMul(other Int256) Int256 {
	res := new(big.Int)
	res.Mul(v.big(), other.big())
	if res.Cmp(Int256TypeMinIntBig) < 0 {
		return Int256{value: new(big.Int).Set(Int256TypeMinIntBig)}
	} else if res.Cmp(Int256TypeMaxIntBig) > 0 {
		return Int256{value: new(big.Int).Set(Int256TypeMaxIntBig)}
	}
	return Int256{value: res}
}

// Div returns the quotient of v and other, truncated toward zero.
// It returns DivisionByZeroError when other is zero,
// and OverflowError when v is the minimum value and other is -1,
// whose exact quotient exceeds the maximum.
func (v Int256) Div(other Int256) (Int256, error) {
	// INT33-C
	if other.big().Sign() == 0 {
		return Int256{}, DivisionByZeroError{}
	}
	if (v.big().Cmp(Int256TypeMinIntBig) == 0) && (other.big().Cmp(bigMinusOne) == 0) {
		return Int256{}, OverflowError{}
	}
	// Quo truncates toward zero, matching Go's native integer division.
	// big.Int's Div would round toward negative infinity.
	res := new(big.Int)
	res.Quo(v.big(), other.big())
	return Int256{value: res}, nil
}

// SaturatingDiv returns the quotient of v and other, truncated toward zero
// and clamped to the Int256 range.
// It returns DivisionByZeroError when other is zero.
func (v Int256) SaturatingDiv(other Int256) (Int256, error) {
	// INT33-C
	if other.big().Sign() == 0 {
		return Int256{}, DivisionByZeroError{}
	}
	if (v.big().Cmp(Int256TypeMinIntBig) == 0) && (other.big().Cmp(bigMinusOne) == 0) {
		return Int256{value: new(big.Int).Set(Int256TypeMaxIntBig)}, nil
	}
	res := new(big.Int)
	res.Quo(v.big(), other.big())
	return Int256{value: res}, nil
}

// Mod returns the remainder of v divided by other, with the sign of v,
// or DivisionByZeroError when other is zero.
// The identity v == (v.Div(other)).Mul(other).Plus(v.Mod(other)) holds
// for all v and nonzero other for which Div succeeds.
func (v Int256) Mod(other Int256) (Int256, error) {
	// INT33-C
	if other.big().Sign() == 0 {
		return Int256{}, DivisionByZeroError{}
	}
	res := new(big.Int)
	res.Rem(v.big(), other.big())
	return Int256{value: res}, nil
}

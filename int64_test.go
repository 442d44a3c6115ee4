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

package signedmath_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/onflow/signedmath"
)

func TestAddInt64(t *testing.T) {

	t.Parallel()

	res, err := AddInt64(1234, 5678)
	require.NoError(t, err)
	assert.Equal(t, int64(6912), res)

	res, err = AddInt64(math.MaxInt64, math.MinInt64)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), res)

	_, err = AddInt64(math.MaxInt64, 1)
	assert.ErrorIs(t, err, OverflowError{})

	_, err = AddInt64(math.MinInt64, -1)
	assert.ErrorIs(t, err, OverflowError{})
}

func TestSubInt64(t *testing.T) {

	t.Parallel()

	res, err := SubInt64(5678, 1234)
	require.NoError(t, err)
	assert.Equal(t, int64(4444), res)

	res, err = SubInt64(1234, 5678)
	require.NoError(t, err)
	assert.Equal(t, int64(-4444), res)

	_, err = SubInt64(math.MaxInt64, -1)
	assert.ErrorIs(t, err, OverflowError{})

	_, err = SubInt64(math.MinInt64, 1)
	assert.ErrorIs(t, err, OverflowError{})

	// 0 - MIN would wrap with a negation-based implementation
	_, err = SubInt64(0, math.MinInt64)
	assert.ErrorIs(t, err, OverflowError{})

	res, err = SubInt64(-1, math.MinInt64)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), res)
}

func TestMulInt64(t *testing.T) {

	t.Parallel()

	res, err := MulInt64(5678, -1234)
	require.NoError(t, err)
	assert.Equal(t, int64(-7006652), res)

	res, err = MulInt64(0, math.MinInt64)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res)

	_, err = MulInt64(math.MaxInt64, 2)
	assert.ErrorIs(t, err, OverflowError{})

	_, err = MulInt64(math.MinInt64, -1)
	assert.ErrorIs(t, err, OverflowError{})

	_, err = MulInt64(-1, math.MinInt64)
	assert.ErrorIs(t, err, OverflowError{})

	res, err = MulInt64(math.MinInt64, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), res)
}

func TestDivInt64(t *testing.T) {

	t.Parallel()

	res, err := DivInt64(-5678, 5678)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), res)

	res, err = DivInt64(7000, 5678)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res)

	_, err = DivInt64(1, 0)
	assert.ErrorIs(t, err, DivisionByZeroError{})

	_, err = DivInt64(math.MinInt64, -1)
	assert.ErrorIs(t, err, OverflowError{})

	res, err = DivInt64(0, -42)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res)
}

func TestNegateInt64(t *testing.T) {

	t.Parallel()

	_, err := NegateInt64(math.MinInt64)
	assert.ErrorIs(t, err, OverflowError{})

	res, err := NegateInt64(math.MaxInt64)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64+1), res)
}

func TestInt64Properties(t *testing.T) {

	t.Parallel()

	properties := gopter.NewProperties(nil)

	// Each checked operation must agree with arbitrary-precision arithmetic:
	// the exact result when it is representable, an overflow otherwise.
	matchesExact := func(
		op func(a, b int64) (int64, error),
		exact func(a, b, res *big.Int) *big.Int,
	) func(a, b int64) bool {
		return func(a, b int64) bool {
			res, err := op(a, b)
			expected := exact(big.NewInt(a), big.NewInt(b), new(big.Int))
			if !expected.IsInt64() {
				return err == OverflowError{}
			}
			return err == nil && res == expected.Int64()
		}
	}

	properties.Property("addition matches arbitrary-precision addition", prop.ForAll(
		matchesExact(
			AddInt64,
			func(a, b, res *big.Int) *big.Int { return res.Add(a, b) },
		),
		gen.Int64(),
		gen.Int64(),
	))

	properties.Property("subtraction matches arbitrary-precision subtraction", prop.ForAll(
		matchesExact(
			SubInt64,
			func(a, b, res *big.Int) *big.Int { return res.Sub(a, b) },
		),
		gen.Int64(),
		gen.Int64(),
	))

	properties.Property("multiplication matches arbitrary-precision multiplication", prop.ForAll(
		matchesExact(
			MulInt64,
			func(a, b, res *big.Int) *big.Int { return res.Mul(a, b) },
		),
		gen.Int64(),
		gen.Int64(),
	))

	properties.Property("division matches arbitrary-precision truncated division", prop.ForAll(
		func(a, b int64) bool {
			res, err := DivInt64(a, b)
			if b == 0 {
				return err == DivisionByZeroError{}
			}
			expected := new(big.Int).Quo(big.NewInt(a), big.NewInt(b))
			if !expected.IsInt64() {
				return err == OverflowError{}
			}
			return err == nil && res == expected.Int64()
		},
		gen.Int64(),
		gen.Int64(),
	))

	properties.Property("addition is commutative", prop.ForAll(
		func(a, b int64) bool {
			res1, err1 := AddInt64(a, b)
			res2, err2 := AddInt64(b, a)
			return res1 == res2 && err1 == err2
		},
		gen.Int64(),
		gen.Int64(),
	))

	properties.Property("multiplication is commutative", prop.ForAll(
		func(a, b int64) bool {
			res1, err1 := MulInt64(a, b)
			res2, err2 := MulInt64(b, a)
			return res1 == res2 && err1 == err2
		},
		gen.Int64(),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

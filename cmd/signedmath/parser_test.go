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

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/signedmath"
)

func TestEvaluate(t *testing.T) {

	t.Parallel()

	tests := map[string]string{
		"1234 + 5678":       "6912",
		"5678 - 1234":       "4444",
		"1234 - 5678":       "-4444",
		"5678 * -1234":      "-7006652",
		"-5678 / 5678":      "-1",
		"7000 / 5678":       "1",
		"7000 % 5678":       "1322",
		"1 + 2 * 3":         "7",
		"(1 + 2) * 3":       "9",
		"-(1 + 2)":          "-3",
		"--1":               "1",
		"1_000_000 / 1_000": "1000",
		"2 - -3":            "5",
	}

	for input, expected := range tests {
		t.Run(input, func(t *testing.T) {
			result, err := evaluate(input)
			require.NoError(t, err)
			assert.Equal(t, expected, result.String())
		})
	}
}

func TestEvaluateErrors(t *testing.T) {

	t.Parallel()

	t.Run("division by zero", func(t *testing.T) {
		_, err := evaluate("1 / 0")
		assert.ErrorIs(t, err, signedmath.DivisionByZeroError{})
	})

	t.Run("overflow", func(t *testing.T) {
		max := signedmath.Int256TypeMaxIntBig.String()
		_, err := evaluate(max + " + 1")
		assert.ErrorIs(t, err, signedmath.OverflowError{})
	})

	t.Run("negating min overflows", func(t *testing.T) {
		// The literal's magnitude exceeds the maximum,
		// so even -(MIN) is rejected while parsing the literal
		min := signedmath.Int256TypeMinIntBig.String()
		_, err := evaluate(min[1:] + " * -1")
		assert.Error(t, err)
	})

	t.Run("unexpected character", func(t *testing.T) {
		_, err := evaluate("1 + $")
		assert.ErrorContains(t, err, "unexpected character")
	})

	t.Run("unexpected end of expression", func(t *testing.T) {
		_, err := evaluate("1 +")
		assert.ErrorContains(t, err, "unexpected end of expression")
	})

	t.Run("missing closing parenthesis", func(t *testing.T) {
		_, err := evaluate("(1 + 2")
		assert.ErrorContains(t, err, "missing ')'")
	})

	t.Run("trailing input", func(t *testing.T) {
		_, err := evaluate("1 2")
		assert.ErrorContains(t, err, "unexpected")
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := evaluate("")
		assert.Error(t, err)
	})
}

func TestEvaluateMinLiteral(t *testing.T) {

	t.Parallel()

	// MIN itself is representable when computed, rather than written
	// as a negated out-of-range literal
	min := signedmath.Int256TypeMinIntBig.String()
	max := signedmath.Int256TypeMaxIntBig.String()

	result, err := evaluate("-" + max + " - 1")
	require.NoError(t, err)
	assert.Equal(t, min, result.String())

	_, err = evaluate("(" + "-" + max + " - 1) / -1")
	assert.ErrorIs(t, err, signedmath.OverflowError{})
}

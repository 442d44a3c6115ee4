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

// Package json provides a JSON codec for signedmath values.
//
// Values are encoded as type-tagged objects with the numeric value
// as a decimal string, so that arbitrary 256-bit values survive
// JSON implementations that parse numbers as 64-bit floats:
//
//	{"type": "Int256", "value": "-123"}
package json

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/onflow/signedmath"
)

// An Encoder converts signedmath values into JSON-encoded bytes.
type Encoder struct {
	enc *json.Encoder
}

// Encode returns the JSON-encoded representation of the given value.
func Encode(value signedmath.Int256) ([]byte, error) {
	var w bytes.Buffer
	enc := NewEncoder(&w)

	err := enc.Encode(value)
	if err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// NewEncoder initializes an Encoder that will write JSON-encoded bytes to the
// given io.Writer.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{enc: json.NewEncoder(w)}
}

// Encode writes the JSON-encoded representation of the given value to this
// encoder's io.Writer.
func (e *Encoder) Encode(value signedmath.Int256) error {
	return e.enc.Encode(prepareInt256(value))
}

// JSON struct definitions

const int256TypeStr = "Int256"

type valueObject struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

func prepareInt256(value signedmath.Int256) valueObject {
	return valueObject{
		Type:  int256TypeStr,
		Value: value.String(),
	}
}

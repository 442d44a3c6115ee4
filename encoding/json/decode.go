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

package json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/big"

	"github.com/onflow/signedmath"
)

// A Decoder converts JSON-encoded bytes into signedmath values.
type Decoder struct {
	dec *json.Decoder
}

// Decode returns a signedmath value decoded from its JSON-encoded
// representation.
func Decode(b []byte) (signedmath.Int256, error) {
	r := bytes.NewReader(b)
	dec := NewDecoder(r)
	return dec.Decode()
}

// NewDecoder initializes a Decoder that will decode JSON-encoded bytes from
// the given io.Reader.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{dec: json.NewDecoder(r)}
}

// Decode reads JSON-encoded bytes from this decoder's io.Reader and returns
// the decoded value.
//
// It returns an error if the bytes represent JSON that is malformed, has an
// unexpected type tag, or encodes a value outside the Int256 range.
func (d *Decoder) Decode() (signedmath.Int256, error) {
	var obj valueObject
	err := d.dec.Decode(&obj)
	if err != nil {
		return signedmath.Int256{}, fmt.Errorf("failed to decode value: %w", err)
	}

	if obj.Type != int256TypeStr {
		return signedmath.Int256{}, fmt.Errorf("invalid type: %s", obj.Type)
	}

	value, ok := new(big.Int).SetString(obj.Value, 10)
	if !ok {
		return signedmath.Int256{}, fmt.Errorf("invalid integer literal: %s", obj.Value)
	}

	return signedmath.NewInt256FromBig(value)
}

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

package cbor

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/onflow/signedmath"
)

// CBORDecMode
//
// See https://github.com/fxamacker/cbor:
// "For best performance, reuse EncMode and DecMode after creating them."
var CBORDecMode = func() cbor.DecMode {
	decMode, err := cbor.DecOptions{
		IndefLength: cbor.IndefLengthForbidden,
		IntDec:      cbor.IntDecConvertNone,
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return decMode
}()

// A Decoder converts CBOR-encoded bytes into signedmath values.
type Decoder struct {
	dec *cbor.StreamDecoder
}

// Decode returns a signedmath value decoded from its CBOR-encoded
// representation.
func Decode(b []byte) (signedmath.Int256, error) {
	dec := NewDecoder(b)
	return dec.Decode()
}

// NewDecoder initializes a Decoder that will decode the given
// CBOR-encoded bytes.
func NewDecoder(b []byte) *Decoder {
	return &Decoder{dec: CBORDecMode.NewByteStreamDecoder(b)}
}

// Decode reads CBOR-encoded bytes from this decoder and returns the decoded
// value.
//
// It returns an error if the bytes are malformed CBOR, do not encode an
// integer, or encode a value outside the Int256 range.
func (d *Decoder) Decode() (signedmath.Int256, error) {
	bigInt, err := d.dec.DecodeBigInt()
	if err != nil {
		return signedmath.Int256{}, fmt.Errorf("failed to decode value: %w", err)
	}

	return signedmath.NewInt256FromBig(bigInt)
}

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

// Package cbor provides a CBOR codec for signedmath values.
//
// Values are encoded as CBOR bignums (RFC 8949 tags 2 and 3),
// regardless of magnitude, so the encoding of a value is independent
// of whether it happens to fit a smaller integer type.
package cbor

import (
	"bytes"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/onflow/signedmath"
)

// CBOREncMode
//
// See https://github.com/fxamacker/cbor:
// "For best performance, reuse EncMode and DecMode after creating them."
var CBOREncMode = func() cbor.EncMode {
	options := cbor.CoreDetEncOptions()
	options.BigIntConvert = cbor.BigIntConvertNone
	encMode, err := options.EncMode()
	if err != nil {
		panic(err)
	}
	return encMode
}()

// An Encoder converts signedmath values into CBOR-encoded bytes.
type Encoder struct {
	enc *cbor.StreamEncoder
}

// Encode returns the CBOR-encoded representation of the given value.
func Encode(value signedmath.Int256) ([]byte, error) {
	var w bytes.Buffer
	enc := NewEncoder(&w)

	err := enc.Encode(value)
	if err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// NewEncoder initializes an Encoder that will write CBOR-encoded bytes to the
// given io.Writer.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{enc: CBOREncMode.NewStreamEncoder(w)}
}

// Encode writes the CBOR-encoded representation of the given value to this
// encoder's io.Writer.
func (e *Encoder) Encode(value signedmath.Int256) error {
	err := e.enc.EncodeBigInt(value.Big())
	if err != nil {
		return err
	}
	return e.enc.Flush()
}

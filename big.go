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
	"math/big"
)

// SignedBigIntToBigEndianBytes returns the minimal two's-complement
// big-endian representation of the given big integer.
func SignedBigIntToBigEndianBytes(bigInt *big.Int) []byte {

	switch bigInt.Sign() {
	case -1:
		// Encode as two's complement
		twosComplement := new(big.Int).Neg(bigInt)
		twosComplement.Sub(twosComplement, big.NewInt(1))
		bytes := twosComplement.Bytes()
		for i := range bytes {
			bytes[i] ^= 0xff
		}
		// Pad with 0xFF to prevent misinterpretation as positive
		if len(bytes) == 0 || bytes[0]&0x80 == 0 {
			return append([]byte{0xff}, bytes...)
		}
		return bytes

	case 0:
		return []byte{0}

	case 1:
		bytes := bigInt.Bytes()
		// Pad with 0x0 to prevent misinterpretation as negative
		if len(bytes) > 0 && bytes[0]&0x80 != 0 {
			return append([]byte{0x0}, bytes...)
		}
		return bytes

	default:
		panic(NewUnreachableError())
	}
}

// BigEndianBytesToSignedBigInt interprets the given bytes as a
// two's-complement big-endian signed integer of len(b)*8 bits.
func BigEndianBytesToSignedBigInt(b []byte) *big.Int {
	if len(b) == 0 {
		return new(big.Int)
	}

	if b[0]&0x80 == 0 {
		return new(big.Int).SetBytes(b)
	}

	// Negative: subtract 2^(len*8) from the unsigned interpretation
	res := new(big.Int).SetBytes(b)
	shifted := new(big.Int).Lsh(big.NewInt(1), uint(len(b))*8)
	return res.Sub(res, shifted)
}

// ToBigEndianBytes returns the minimal two's-complement
// big-endian representation of the value.
func (v Int256) ToBigEndianBytes() []byte {
	return SignedBigIntToBigEndianBytes(v.big())
}

// NewInt256FromBigEndianBytes returns the Int256 whose two's-complement
// big-endian representation is the given bytes,
// or an error if the encoded value is outside the Int256 range.
func NewInt256FromBigEndianBytes(b []byte) (Int256, error) {
	return NewInt256FromBig(BigEndianBytesToSignedBigInt(b))
}

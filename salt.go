// Copyright 2026 The phc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package phc

import "encoding/base64"

// Encoding is the base64 variant used throughout the PHC format: the
// standard alphabet, no padding. The strict mode rejects encodings with
// non-zero trailing padding bits; accepting them would break the guarantee
// that parsing and re-encoding a string reproduces it exactly.
var Encoding = base64.RawStdEncoding.Strict()

// Salt is a salt value used in hashing, either an ASCII string or a binary
// value. The two forms are never inferred from content: a salt is ascii or
// binary depending on how it was constructed. Salts are immutable, the two
// implementations AsciiSalt and BinarySalt are the only ones.
type Salt interface {
	// String returns the textual form of the salt as it appears in a PHC
	// string: ascii salts verbatim, binary salts base64 encoded.
	String() string

	// AsBinary returns a version of this salt interpreted as binary.
	// An ascii salt that is not valid base64 is returned without change.
	AsBinary() Salt

	saltVariant()
}

// AsciiSalt is a salt string with characters in the range [a-zA-Z0-9/+.-].
// The string is used literally, it is not decoded.
type AsciiSalt string

// String returns the salt text verbatim.
func (salt AsciiSalt) String() string {
	return string(salt)
}

// AsBinary attempts to base64 decode the salt text and returns the decoded
// BinarySalt. If the text is not valid base64 the salt itself is returned,
// reinterpretation is advisory and never fails.
func (salt AsciiSalt) AsBinary() Salt {
	decoded, err := Encoding.DecodeString(string(salt))
	if err != nil {
		return salt
	}
	return BinarySalt(decoded)
}

func (salt AsciiSalt) saltVariant() {}

// BinarySalt is an opaque binary salt value, encoded as base64 in the
// textual form.
type BinarySalt []byte

// String returns the unpadded base64 encoding of the salt bytes.
func (salt BinarySalt) String() string {
	return Encoding.EncodeToString(salt)
}

// AsBinary returns the salt unchanged.
func (salt BinarySalt) AsBinary() Salt {
	return salt
}

func (salt BinarySalt) saltVariant() {}

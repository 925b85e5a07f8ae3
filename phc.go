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

// Package phc parses and serializes strings in the PHC string format, see
// https://github.com/P-H-C/phc-string-format/blob/master/phc-sf-spec.md
//
// A PHC string encodes a hash function id, its parameters and an optional
// salt / hash pair in a single token like
//
//	$scrypt$ln=16,r=8,p=1$aM15713r3Xsvxbi31lqr1Q$nFNh2CVHVjNldFVKDHDlm4CmdRSCdEBsjjJxD+iCs5E
//
// Parsing produces a RawPHC, the raw, unassociated form: it knows the
// syntactic structure but nothing about any specific hash function. Hash
// function implementations declare their expected parameters as Param
// values and use ExtractN / SerializeParamsN to move between the raw
// key/value list and typed values.
//
// All values in this package are immutable after construction and safe for
// concurrent use.
package phc

import (
	"fmt"
	"strings"
)

// ParamPair is a single name=value parameter of a PHC string. Name is
// restricted to [a-z0-9-], Value to [a-zA-Z0-9/+.-].
type ParamPair struct {
	Name, Value string
}

// SaltAndHash describes the salt and hash encoded in a PHC string. A hash
// can never appear without an accompanying salt, so the three possible
// states are: neither salt nor hash, salt only, or both. The type can only
// be built through Neither, WithSalt and WithSaltAndHash, which makes the
// fourth state unrepresentable.
type SaltAndHash struct {
	salt Salt
	hash []byte
}

// Neither returns a SaltAndHash with no salt and no hash.
func Neither() SaltAndHash {
	return SaltAndHash{}
}

// WithSalt returns a SaltAndHash holding only a salt. A nil salt yields
// Neither(). The salt must render to a non-empty string, an empty salt
// segment is not valid PHC syntax and won't parse back.
func WithSalt(salt Salt) SaltAndHash {
	return SaltAndHash{salt: salt}
}

// WithSaltAndHash returns a SaltAndHash holding both a salt and a hash.
// A hash without a salt is invalid in the PHC format and rejected with a
// SyntaxError; a salt rendering to the empty string (for example a nil
// BinarySalt) counts as absent. A nil or empty hash yields the same result
// as WithSalt.
func WithSaltAndHash(salt Salt, hash []byte) (SaltAndHash, error) {
	if salt == nil || salt.String() == "" {
		return SaltAndHash{}, NewSyntaxError("hash can't be present without a salt")
	}
	if len(hash) == 0 {
		return SaltAndHash{salt: salt}, nil
	}
	return SaltAndHash{salt: salt, hash: hash}, nil
}

// Salt returns the salt and true if one is present.
func (sh SaltAndHash) Salt() (Salt, bool) {
	return sh.salt, sh.salt != nil
}

// Hash returns the hash bytes and true if a hash is present. The returned
// slice must not be modified.
func (sh SaltAndHash) Hash() ([]byte, bool) {
	return sh.hash, sh.hash != nil
}

// appendTo writes the textual form of the salt / hash segments, including
// their leading separators. Nothing is written if no salt is present.
func (sh SaltAndHash) appendTo(b *strings.Builder) {
	if sh.salt == nil {
		return
	}
	fmt.Fprint(b, "$", sh.salt.String())
	if sh.hash != nil {
		fmt.Fprint(b, "$", Encoding.EncodeToString(sh.hash))
	}
}

// RawPHC is a parsed PHC string that has not been associated with a hash
// function. It holds the hash function id, the ordered parameter list and
// the salt / hash state. The parameter list keeps the order of the input;
// duplicate names are not rejected at this level.
//
// A RawPHC is immutable; it is built either by Parse or by FromParts.
type RawPHC struct {
	id          string
	params      []ParamPair
	saltAndHash SaltAndHash
}

// FromParts creates a RawPHC from its parts, usually to serialize it
// afterwards. The id must be a non-empty string over [a-z0-9-] and the
// parameter names / values must lie in the charsets documented on
// ParamPair; FromParts does not re-validate them. The params slice is
// owned by the returned value and must not be modified.
func FromParts(id string, params []ParamPair, saltAndHash SaltAndHash) *RawPHC {
	return &RawPHC{
		id:          id,
		params:      params,
		saltAndHash: saltAndHash,
	}
}

// ID returns the hash function id, for example "scrypt".
func (phc *RawPHC) ID() string {
	return phc.id
}

// Params returns the parameters in the order they appeared in the input.
// The returned slice must not be modified.
func (phc *RawPHC) Params() []ParamPair {
	return phc.params
}

// SaltAndHash returns the salt / hash state of the value.
func (phc *RawPHC) SaltAndHash() SaltAndHash {
	return phc.saltAndHash
}

// Salt returns the salt and true if one is present.
func (phc *RawPHC) Salt() (Salt, bool) {
	return phc.saltAndHash.Salt()
}

// Hash returns the hash bytes and true if a hash is present. The returned
// slice must not be modified.
func (phc *RawPHC) Hash() ([]byte, bool) {
	return phc.saltAndHash.Hash()
}

// String encodes the value to its PHC string form. The result always
// starts with "$" followed by the id. An empty parameter list produces no
// parameter segment at all. For every string accepted by Parse this is the
// exact input string again.
func (phc *RawPHC) String() string {
	var result strings.Builder
	fmt.Fprint(&result, "$", phc.id)
	for i, param := range phc.params {
		if i == 0 {
			fmt.Fprintf(&result, "$%s=%s", param.Name, param.Value)
		} else {
			fmt.Fprintf(&result, ",%s=%s", param.Name, param.Value)
		}
	}
	phc.saltAndHash.appendTo(&result)
	return result.String()
}

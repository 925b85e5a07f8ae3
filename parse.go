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

import (
	"fmt"
	"strings"
)

// The following functions implement the char classes of the PHC grammar.
// The grammar is pure ASCII, so they work on bytes; any non-ASCII byte
// fails every class.

func isNameChar(c byte) bool {
	return ('a' <= c && c <= 'z') || ('0' <= c && c <= '9') || c == '-'
}

func isValueChar(c byte) bool {
	return isNameChar(c) || ('A' <= c && c <= 'Z') || c == '/' || c == '+' || c == '.'
}

func isBase64Char(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9') || c == '+' || c == '/'
}

// takeWhile1 splits s into its longest prefix of characters accepted by
// valid and the remaining string. The prefix must be non-empty, otherwise
// ok is false and the input is returned unconsumed.
func takeWhile1(s string, valid func(byte) bool) (token, rest string, ok bool) {
	i := 0
	for i < len(s) && valid(s[i]) {
		i++
	}
	if i == 0 {
		return "", s, false
	}
	return s[:i], s[i:], true
}

// Parse parses a PHC string into a RawPHC. The whole input must match the
// grammar
//
//	phc           := '$' id params? saltAndHash?
//	id            := [a-z0-9-]+
//	params        := '$' param (',' param)*
//	param         := [a-z0-9-]+ '=' [a-zA-Z0-9/+.-]+
//	saltAndHash   := '$' [a-zA-Z0-9/+.-]+ ('$' [a-zA-Z0-9/+]+)?
//
// where the hash segment is unpadded standard base64 and is decoded during
// parsing; an invalid encoding there fails the whole parse. Both optional
// segments start with '$', so a missing params segment is not an error: a
// salt string is itself a legal looking '$' token, the parser first tries
// the parameter list and falls back to an empty one. Trailing characters
// after the grammar are rejected. On failure the returned error is a
// SyntaxError.
func Parse(s string) (*RawPHC, error) {
	if !strings.HasPrefix(s, "$") {
		return nil, NewSyntaxError("PHC string must start with \"$\"")
	}
	id, rest, ok := takeWhile1(s[len("$"):], isNameChar)
	if !ok {
		return nil, NewSyntaxError("missing or invalid hash function id")
	}
	params, rest := parseParams(rest)
	saltAndHash, rest, err := parseSaltAndHash(rest)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, NewSyntaxError(fmt.Sprintf("unexpected trailing input %q", rest))
	}
	return FromParts(id, params, saltAndHash), nil
}

// parseParams parses the optional parameter segment. A failed parse is not
// an error: the input is returned unconsumed together with an empty list,
// because the segment that looked like parameters may be the salt instead.
func parseParams(s string) ([]ParamPair, string) {
	if !strings.HasPrefix(s, "$") {
		return nil, s
	}
	param, rest, ok := parseParamPair(s[len("$"):])
	if !ok {
		return nil, s
	}
	params := []ParamPair{param}
	for strings.HasPrefix(rest, ",") {
		param, afterParam, ok := parseParamPair(rest[len(","):])
		if !ok {
			// The comma stays unconsumed; since nothing else may follow a
			// dangling comma the caller rejects the string.
			break
		}
		params = append(params, param)
		rest = afterParam
	}
	return params, rest
}

func parseParamPair(s string) (ParamPair, string, bool) {
	name, rest, ok := takeWhile1(s, isNameChar)
	if !ok {
		return ParamPair{}, s, false
	}
	if !strings.HasPrefix(rest, "=") {
		return ParamPair{}, s, false
	}
	value, rest, ok := takeWhile1(rest[len("="):], isValueChar)
	if !ok {
		return ParamPair{}, s, false
	}
	return ParamPair{Name: name, Value: value}, rest, true
}

// parseSaltAndHash parses the optional salt and hash segments. An absent
// or malformed salt segment consumes nothing and yields Neither; once a
// hash segment is started its base64 content must decode, there is no
// other legal interpretation at that point.
func parseSaltAndHash(s string) (SaltAndHash, string, error) {
	if !strings.HasPrefix(s, "$") {
		return Neither(), s, nil
	}
	salt, rest, ok := takeWhile1(s[len("$"):], isValueChar)
	if !ok {
		return Neither(), s, nil
	}
	if !strings.HasPrefix(rest, "$") {
		return WithSalt(AsciiSalt(salt)), rest, nil
	}
	encoded, afterHash, ok := takeWhile1(rest[len("$"):], isBase64Char)
	if !ok {
		return WithSalt(AsciiSalt(salt)), rest, nil
	}
	hash, err := Encoding.DecodeString(encoded)
	if err != nil {
		return Neither(), "", NewSyntaxError(fmt.Sprintf("invalid base64 in hash segment: %v", err))
	}
	saltAndHash, err := WithSaltAndHash(AsciiSalt(salt), hash)
	if err != nil {
		return Neither(), "", err
	}
	return saltAndHash, afterHash, nil
}

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

import "strconv"

// Param describes one parameter of a hash function and transforms its
// values to and from the raw serialized form. Implementations must be
// stateless; a Param value is a description, not a container for a value.
type Param[T any] interface {
	// Name returns the parameter's name as it appears in the PHC string.
	Name() string

	// Default returns the value used when the parameter is absent from the
	// input and true, or false if the parameter is required.
	Default() (T, bool)

	// Extract parses the parameter's value from its serialized form. It
	// returns false if the text can't be parsed.
	Extract(raw string) (T, bool)

	// Serialize renders a value to its serialized form. It returns false
	// if the parameter should be omitted from the output entirely, which
	// is the case when the value equals the declared default.
	Serialize(value T) (string, bool)
}

// GenParam is a generic parameter over any comparable type with a parse
// and a format function, suitable for most uses. The zero value is not
// usable, create values with NewParam or one of the typed constructors
// (UintParam, BoolParam, ...).
type GenParam[T comparable] struct {
	name       string
	def        T
	hasDefault bool
	parse      func(string) (T, error)
	format     func(T) string
}

// NewParam creates a required parameter from a parse and a format
// function. The functions must be inverses of each other over the valid
// textual forms, otherwise serialized output won't parse back to the same
// value.
func NewParam[T comparable](name string, parse func(string) (T, error), format func(T) string) GenParam[T] {
	return GenParam[T]{
		name:   name,
		parse:  parse,
		format: format,
	}
}

// WithDefault returns a copy of the parameter that uses def when absent
// from the input and omits values equal to def when serializing.
func (p GenParam[T]) WithDefault(def T) GenParam[T] {
	p.def = def
	p.hasDefault = true
	return p
}

// Name returns the parameter's name.
func (p GenParam[T]) Name() string {
	return p.name
}

// Default returns the declared default value, if any.
func (p GenParam[T]) Default() (T, bool) {
	return p.def, p.hasDefault
}

// Extract parses raw with the parameter's parse function.
func (p GenParam[T]) Extract(raw string) (T, bool) {
	value, err := p.parse(raw)
	if err != nil {
		var zero T
		return zero, false
	}
	return value, true
}

// Serialize formats the value, or reports that it should be omitted
// because it equals the default.
func (p GenParam[T]) Serialize(value T) (string, bool) {
	if p.hasDefault && value == p.def {
		return "", false
	}
	return p.format(value), true
}

// UintParam returns a parameter holding a base 10 uint.
func UintParam(name string) GenParam[uint] {
	return NewParam(name,
		func(raw string) (uint, error) {
			value, err := strconv.ParseUint(raw, 10, strconv.IntSize)
			return uint(value), err
		},
		func(value uint) string {
			return strconv.FormatUint(uint64(value), 10)
		})
}

// Uint32Param returns a parameter holding a base 10 uint32.
func Uint32Param(name string) GenParam[uint32] {
	return NewParam(name,
		func(raw string) (uint32, error) {
			value, err := strconv.ParseUint(raw, 10, 32)
			return uint32(value), err
		},
		func(value uint32) string {
			return strconv.FormatUint(uint64(value), 10)
		})
}

// Uint8Param returns a parameter holding a base 10 uint8.
func Uint8Param(name string) GenParam[uint8] {
	return NewParam(name,
		func(raw string) (uint8, error) {
			value, err := strconv.ParseUint(raw, 10, 8)
			return uint8(value), err
		},
		func(value uint8) string {
			return strconv.FormatUint(uint64(value), 10)
		})
}

// IntParam returns a parameter holding a base 10 int.
func IntParam(name string) GenParam[int] {
	return NewParam(name, strconv.Atoi, strconv.Itoa)
}

// BoolParam returns a parameter holding a bool, serialized as "true" /
// "false".
func BoolParam(name string) GenParam[bool] {
	return NewParam(name, strconv.ParseBool, strconv.FormatBool)
}

// StringParam returns a parameter holding the raw text itself. The text
// must lie in the value charset [a-zA-Z0-9/+.-] to serialize into a valid
// PHC string; this is not checked here.
func StringParam(name string) GenParam[string] {
	return NewParam(name,
		func(raw string) (string, error) {
			return raw, nil
		},
		func(value string) string {
			return value
		})
}

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

import "fmt"

// SyntaxError is used if a string does not conform to the PHC grammar.
type SyntaxError string

// NewSyntaxError returns a new SyntaxError.
func NewSyntaxError(cause string) SyntaxError {
	return SyntaxError(cause)
}

// Error returns the string representation of the error.
func (err SyntaxError) Error() string {
	return "Syntax error: " + string(err)
}

// String returns the string representation of the error.
func (err SyntaxError) String() string {
	return err.Error()
}

// ExtractError is returned if a declared parameter set can't be extracted
// from the parameter list of a raw PHC value. Name is the name of the
// parameter that failed to resolve.
type ExtractError struct {
	Name  string
	Cause string
}

// NewExtractError returns a new ExtractError.
func NewExtractError(name, cause string) ExtractError {
	return ExtractError{
		Name:  name,
		Cause: cause,
	}
}

// Error returns the string representation of the error.
func (err ExtractError) Error() string {
	return fmt.Sprintf("Can't extract parameter %s: %s", err.Name, err.Cause)
}

// String returns the string representation of the error.
func (err ExtractError) String() string {
	return err.Error()
}

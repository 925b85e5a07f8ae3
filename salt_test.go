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

package phc_test

import (
	"bytes"
	"testing"

	"github.com/kstrohbeck/phc"
)

func TestAsciiSaltString(t *testing.T) {
	salt := phc.AsciiSalt("abcdefg")
	if s := salt.String(); s != "abcdefg" {
		t.Errorf("expected %q, got %q", "abcdefg", s)
	}
}

func TestBinarySaltString(t *testing.T) {
	salt := phc.BinarySalt([]byte("some salt"))
	if s := salt.String(); s != "c29tZSBzYWx0" {
		t.Errorf("expected %q, got %q", "c29tZSBzYWx0", s)
	}
}

func TestAsciiSaltAsBinary(t *testing.T) {
	binary := phc.AsciiSalt("c29tZSBzYWx0").AsBinary()
	decoded, ok := binary.(phc.BinarySalt)
	if !ok {
		t.Fatalf("expected a binary salt, got %T", binary)
	}
	if !bytes.Equal(decoded, []byte("some salt")) {
		t.Errorf("expected %q, got %q", "some salt", decoded)
	}
}

// Reinterpretation is advisory: a salt that isn't base64 stays as it is.
func TestAsciiSaltAsBinaryFallback(t *testing.T) {
	salt := phc.AsciiSalt("ab-c")
	if got := salt.AsBinary(); got != salt {
		t.Errorf("expected the salt unchanged, got %v", got)
	}
}

func TestBinarySaltAsBinary(t *testing.T) {
	salt := phc.BinarySalt([]byte("some salt"))
	binary, ok := salt.AsBinary().(phc.BinarySalt)
	if !ok {
		t.Fatalf("expected a binary salt, got %T", salt.AsBinary())
	}
	if !bytes.Equal(binary, salt) {
		t.Errorf("expected %q, got %q", salt, binary)
	}
}

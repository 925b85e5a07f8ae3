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
	"reflect"
	"testing"

	"github.com/kstrohbeck/phc"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		id     string
		params []phc.ParamPair
		salt   string // textual salt, "" means no salt present
		hash   string // decoded hash bytes, "" means no hash present
	}{
		{in: "$abc-123", id: "abc-123"},
		{
			in: "$abc-123$i=10000", id: "abc-123",
			params: []phc.ParamPair{{Name: "i", Value: "10000"}},
		},
		{
			in: "$abc-123$i=10000,mem=heap", id: "abc-123",
			params: []phc.ParamPair{{Name: "i", Value: "10000"}, {Name: "mem", Value: "heap"}},
		},
		{
			in: "$abc-123$i=10000,mem=heap$abcdefg", id: "abc-123",
			params: []phc.ParamPair{{Name: "i", Value: "10000"}, {Name: "mem", Value: "heap"}},
			salt:   "abcdefg",
		},
		{in: "$abc-123$abcdefg", id: "abc-123", salt: "abcdefg"},
		{in: "$abc-123$abcdefg$aGVsbG8", id: "abc-123", salt: "abcdefg", hash: "hello"},
		// A salt may contain characters a parameter value may contain but
		// a name may not, here the dot.
		{in: "$abc-123$salt.value", id: "abc-123", salt: "salt.value"},
		// A lone name without "=" is a salt, not a parameter list.
		{in: "$abc-123$i", id: "abc-123", salt: "i"},
		{
			in: "$scrypt$ln=16,r=8,p=1$aM15713r3Xsvxbi31lqr1Q", id: "scrypt",
			params: []phc.ParamPair{{Name: "ln", Value: "16"}, {Name: "r", Value: "8"}, {Name: "p", Value: "1"}},
			salt:   "aM15713r3Xsvxbi31lqr1Q",
		},
	}
	for _, tc := range tests {
		parsed, err := phc.Parse(tc.in)
		if err != nil {
			t.Errorf("Parse(%q) returned error: %v", tc.in, err)
			continue
		}
		if parsed.ID() != tc.id {
			t.Errorf("Parse(%q): expected id %q, got %q", tc.in, tc.id, parsed.ID())
		}
		if !reflect.DeepEqual(parsed.Params(), tc.params) {
			t.Errorf("Parse(%q): expected params %v, got %v", tc.in, tc.params, parsed.Params())
		}
		salt, hasSalt := parsed.Salt()
		if hasSalt != (tc.salt != "") {
			t.Errorf("Parse(%q): expected salt presence %v", tc.in, tc.salt != "")
		} else if hasSalt {
			if _, isAscii := salt.(phc.AsciiSalt); !isAscii {
				t.Errorf("Parse(%q): expected an ascii salt, got %T", tc.in, salt)
			}
			if salt.String() != tc.salt {
				t.Errorf("Parse(%q): expected salt %q, got %q", tc.in, tc.salt, salt.String())
			}
		}
		hash, hasHash := parsed.Hash()
		if hasHash != (tc.hash != "") {
			t.Errorf("Parse(%q): expected hash presence %v", tc.in, tc.hash != "")
		} else if hasHash && string(hash) != tc.hash {
			t.Errorf("Parse(%q): expected hash %q, got %q", tc.in, tc.hash, hash)
		}
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	tests := []string{
		"",
		"abc",
		"$",
		"$abc_123",         // underscore not in the id charset
		"$ABC",             // ids are lowercase
		"$abc$",            // a "$" must introduce a non-empty segment
		"$abc$i=",          // empty parameter value
		"$abc$i=1,",        // dangling comma
		"$abc$i=1,mem",     // comma not followed by a parameter
		"$abc$salt$",       // empty hash segment
		"$abc$salt$aGVsb",  // base64 with length 5 mod 4 == 1, invalid
		"$abc$salt$hash$x", // nothing may follow the hash
		"$abc$Foo=1",       // uppercase name: parsed as salt, "=1" remains
		"$abc$salt!",       // "!" outside every charset
		" $abc",
	}
	for _, in := range tests {
		if parsed, err := phc.Parse(in); err == nil {
			t.Errorf("Parse(%q): expected error, got %v", in, parsed)
		}
	}
}

// A hash segment with non-zero trailing padding bits ("aGVsbG9" decodes to
// the same bytes as "aGVsbG8") would re-encode differently, so it must be
// rejected to keep parse / encode an exact round trip.
func TestParseRejectsNonCanonicalBase64(t *testing.T) {
	if parsed, err := phc.Parse("$abc-123$abcdefg$aGVsbG9"); err == nil {
		t.Errorf("expected error for non-canonical base64, got %v", parsed)
	}
}

var (
	phcStr1      = "$scrypt$ln=16,r=8,p=1$UmleFePI42glSzbKObHKIgVEE8JZLQXFTWC9Hb7IB97wRgiZvk3TdCJr0vCAj1OD1p42gbI8bDMTYvsQgUYSDg$Hn9Bm8nVoSH4/tTzS6gpKWuEaQMce7P3yN2eNrG4SUb7X3R+uQWEgOwSGMVKsqncz/8LSRfjg0VtQ2YA1mi7Sg"
	phcParseSink *phc.RawPHC
)

func BenchmarkParse(b *testing.B) {
	for n := 0; n < b.N; n++ {
		res, err := phc.Parse(phcStr1)
		if err != nil {
			panic(err)
		}
		phcParseSink = res
	}
}

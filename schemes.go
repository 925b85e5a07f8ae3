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

// Predeclared parameter descriptors for common schemes. These only
// describe the syntactic parameter sets; the hash computations themselves
// live outside this package.

// Parameters of argon2i / argon2id strings, declared in the order they
// appear in the string: memory in KiB, number of passes, parallelism and
// the optional algorithm version.
var (
	Argon2Memory  = Uint32Param("m")
	Argon2Time    = Uint32Param("t")
	Argon2Threads = Uint8Param("p")

	// Version 19 (0x13) is what current implementations emit, so it is
	// elided from serialized output.
	Argon2Version = IntParam("v").WithDefault(19)
)

// Parameters of scrypt strings: the base 2 logarithm of the cost, the
// block size and the parallelism.
var (
	ScryptCost        = UintParam("ln")
	ScryptBlockSize   = Uint32Param("r")
	ScryptParallelism = Uint32Param("p")
)

// Copyright 2014 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fountain

import "encoding/binary"

// xorBytes XORs rhs into lhs in place: lhs[i] ^= rhs[i] for every i. Both
// slices must have equal length; it panics otherwise, mirroring the panic
// semantics of the standard library's crypto/subtle.XORBytes.
//
// Batches the first len - len%8 bytes in 8-byte words (no memory-alignment
// check is made) to get some of the benefit of SIMD batching (spec §4.5) without resorting
// to architecture-specific assembly; falls back to a byte-at-a-time loop for
// the remainder.
func xorBytes(lhs, rhs []byte) {
	if len(lhs) != len(rhs) {
		panic("fountain: xorBytes: mismatched lengths")
	}

	n := len(lhs)
	w := n - n%8
	for i := 0; i < w; i += 8 {
		a := binary.NativeEndian.Uint64(lhs[i : i+8])
		b := binary.NativeEndian.Uint64(rhs[i : i+8])
		binary.NativeEndian.PutUint64(lhs[i:i+8], a^b)
	}
	for i := w; i < n; i++ {
		lhs[i] ^= rhs[i]
	}
}

// Copyright 2025 streamvbyte Authors
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

// Package streamvbyte encodes and decodes uint32 sequences in the Stream
// VByte format, with SIMD-accelerated decoding.
//
// Stream VByte splits length metadata from payload bytes. Every group of 4
// values gets one control byte holding four 2-bit length codes; the values
// themselves are stored as little-endian bytes, truncated to their minimal
// width (1-4 bytes each), concatenated with no padding. Keeping the control
// stream separate lets a decoder look up a per-control-byte shuffle mask and
// reconstruct 4 values with a single byte-shuffle instruction.
//
// The format does not record the element count. Callers must carry n out of
// band and pass it back to Decode; framing the two streams (length prefixes,
// count headers) is the caller's concern.
//
//	control, data := streamvbyte.Encode(values)
//	decoded, err := streamvbyte.Decode(control, data, len(values))
//
// Encode and Decode are package-level function variables, bound at init to
// the fastest implementation the CPU supports: shuffle-table decode on SSSE3
// or NEON, shuffle-table encode on SSE4.1 or NEON, portable scalar code
// everywhere else. Set HWY_NO_SIMD to force the scalar path. The Base*
// functions are always the scalar implementations and produce bit-identical
// streams to every accelerated path.
//
// All functions are pure transforms over their inputs: no shared mutable
// state beyond read-only lookup tables, so concurrent use is safe.
package streamvbyte

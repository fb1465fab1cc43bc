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

package streamvbyte

import "errors"

// Recognized backend names, as reported by EncodeBackend and DecodeBackend.
const (
	BackendScalar = "scalar"
	BackendSSSE3  = "x86_ssse3"
	BackendSSE41  = "x86_sse41"
	BackendNEON   = "aarch64_neon"
)

// Decode errors. The format is not self-describing, so a wrong caller-supplied
// count or a truncated stream is detected by bounds checks rather than
// surfacing as an out-of-range read.
var (
	// ErrControlShort reports a control stream shorter than the
	// ceil(n/4) bytes the requested count implies.
	ErrControlShort = errors.New("streamvbyte: control stream too short")

	// ErrDataShort reports a data stream that ends before the lengths in
	// the control stream are satisfied.
	ErrDataShort = errors.New("streamvbyte: data stream too short")
)

// ControlLen returns the control stream length for n values: one byte per
// group of 4, including a trailing partial group.
func ControlLen(n int) int {
	return (n + 3) / 4
}

// MaxDataLen returns the worst-case data stream length for n values
// (4 bytes per value). Useful for preallocating EncodeInto buffers.
func MaxDataLen(n int) int {
	return 4 * n
}

// DataLen returns the exact data stream length implied by a control stream.
// Note this counts all 4 codes of every control byte; for a stream whose
// final group is partial it is only an upper bound, since padding codes
// carry no data bytes.
func DataLen(control []byte) int {
	total := 0
	for _, ctrl := range control {
		total += int(quadDataLen[ctrl])
	}
	return total
}

var (
	encodeBackend = BackendScalar
	decodeBackend = BackendScalar
)

// EncodeBackend returns the name of the encode implementation selected at
// init: BackendScalar, BackendSSE41, or BackendNEON.
func EncodeBackend() string {
	return encodeBackend
}

// DecodeBackend returns the name of the decode implementation selected at
// init: BackendScalar, BackendSSSE3, or BackendNEON.
func DecodeBackend() string {
	return decodeBackend
}

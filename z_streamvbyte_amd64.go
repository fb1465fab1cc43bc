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

//go:build !noasm && amd64

package streamvbyte

import (
	"os"

	"golang.org/x/sys/cpu"
)

// AMD64 dispatch. The decode shuffle needs PSHUFB (SSSE3); the encode
// classification additionally wants SSE4.1, matching the original split of
// the two accelerated paths. The z_ prefix makes this init() run after the
// one in dispatch.go, which binds the scalar defaults.

func init() {
	// Respect HWY_NO_SIMD to allow fallback testing.
	if os.Getenv("HWY_NO_SIMD") != "" {
		return
	}

	if cpu.X86.HasSSSE3 {
		Decode = shuffleDecode
		DecodeInto = shuffleDecodeInto
		decodeBackend = BackendSSSE3
	}
	if cpu.X86.HasSSE41 {
		Encode = shuffleEncode
		EncodeInto = shuffleEncodeInto
		encodeBackend = BackendSSE41
	}
}

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

//go:build !noasm && arm64

package streamvbyte

import (
	"os"

	"golang.org/x/sys/cpu"
)

// ARM64 dispatch. NEON TBL covers both the decode scatter and the encode
// pack, so one feature check binds both directions.

func init() {
	// Respect HWY_NO_SIMD to allow fallback testing.
	if os.Getenv("HWY_NO_SIMD") != "" {
		return
	}

	// ASIMD is part of the ARMv8-A baseline; the check mirrors the
	// go-highway dispatch and guards hypothetical no-NEON targets.
	if cpu.ARM64.HasASIMD {
		Encode = shuffleEncode
		EncodeInto = shuffleEncodeInto
		Decode = shuffleDecode
		DecodeInto = shuffleDecodeInto
		encodeBackend = BackendNEON
		decodeBackend = BackendNEON
	}
}

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

// Dispatch function variables.
// These are initialized to the base (pure Go) implementations and may be
// overridden by architecture-specific implementations in the init() of the
// z_streamvbyte_*.go files.

var (
	// Encode encodes values into a freshly allocated control stream and
	// data stream. Every uint32 is encodable; Encode cannot fail.
	Encode func(values []uint32) (control, data []byte)

	// EncodeInto is Encode reusing the provided buffers when they have
	// sufficient capacity. It returns the sliced buffers holding the
	// encoded streams.
	EncodeInto func(values []uint32, controlBuf, dataBuf []byte) (control, data []byte)

	// Decode decodes n values from the control and data streams. n must
	// be the count originally encoded; the streams do not record it.
	Decode func(control, data []byte, n int) ([]uint32, error)

	// DecodeInto decodes len(dst) values into dst and returns the number
	// of data bytes consumed.
	DecodeInto func(control, data []byte, dst []uint32) (consumed int, err error)
)

func init() {
	Encode = BaseEncode
	EncodeInto = BaseEncodeInto
	Decode = BaseDecode
	DecodeInto = BaseDecodeInto
}

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

import "fmt"

// Base (pure Go, scalar) implementations. These run on every platform and
// are the correctness reference for the shuffle-table paths: identical
// inputs must produce identical streams and identical decoded values.

// BaseEncode encodes values to Stream VByte format using scalar code.
// Returns (control bytes, data bytes); both are nil for empty input.
func BaseEncode(values []uint32) (control, data []byte) {
	return BaseEncodeInto(values, nil, nil)
}

// BaseEncodeInto is BaseEncode reusing the provided buffers when they have
// sufficient capacity.
func BaseEncodeInto(values []uint32, controlBuf, dataBuf []byte) (control, data []byte) {
	if len(values) == 0 {
		return nil, nil
	}

	controlBuf, dataBuf = sliceBuffers(len(values), controlBuf, dataBuf)

	// Complete quads first, then the trailing partial group. Codes for
	// unused slots of a partial group stay 0 and contribute no data
	// bytes; the decoder never consumes them (decoding is count-driven).
	quads := len(values) / 4
	for g := 0; g < quads; g++ {
		q := values[g*4 : g*4+4]
		len0 := encodedLength(q[0])
		len1 := encodedLength(q[1])
		len2 := encodedLength(q[2])
		len3 := encodedLength(q[3])
		controlBuf[g] = controlByte(len0, len1, len2, len3)
		dataBuf = appendValue(dataBuf, q[0], len0)
		dataBuf = appendValue(dataBuf, q[1], len1)
		dataBuf = appendValue(dataBuf, q[2], len2)
		dataBuf = appendValue(dataBuf, q[3], len3)
	}
	if quads*4 < len(values) {
		var ctrl byte
		for i, v := range values[quads*4:] {
			length := encodedLength(v)
			ctrl |= byte(length-1) << (i * 2)
			dataBuf = appendValue(dataBuf, v, length)
		}
		controlBuf[quads] = ctrl
	}

	return controlBuf, dataBuf
}

// sliceBuffers sizes the reused control and data buffers for n values.
func sliceBuffers(n int, controlBuf, dataBuf []byte) ([]byte, []byte) {
	groups := ControlLen(n)
	if cap(controlBuf) < groups {
		controlBuf = make([]byte, groups)
	} else {
		controlBuf = controlBuf[:groups]
	}
	if cap(dataBuf) < MaxDataLen(n) {
		dataBuf = make([]byte, 0, MaxDataLen(n))
	} else {
		dataBuf = dataBuf[:0]
	}
	return controlBuf, dataBuf
}

// appendValue appends the low `length` bytes of v, little-endian.
func appendValue(data []byte, v uint32, length int) []byte {
	switch length {
	case 1:
		return append(data, byte(v))
	case 2:
		return append(data, byte(v), byte(v>>8))
	case 3:
		return append(data, byte(v), byte(v>>8), byte(v>>16))
	default:
		return append(data, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	}
}

// BaseDecode decodes n values from the control and data streams using
// scalar code. Returns ErrControlShort or ErrDataShort if the streams are
// shorter than n implies.
func BaseDecode(control, data []byte, n int) ([]uint32, error) {
	if n <= 0 {
		return nil, nil
	}
	dst := make([]uint32, n)
	if _, err := BaseDecodeInto(control, data, dst); err != nil {
		return nil, err
	}
	return dst, nil
}

// BaseDecodeInto decodes len(dst) values into dst using scalar code and
// returns the number of data bytes consumed.
func BaseDecodeInto(control, data []byte, dst []uint32) (consumed int, err error) {
	n := len(dst)
	if n == 0 {
		return 0, nil
	}
	groups := ControlLen(n)
	if len(control) < groups {
		return 0, fmt.Errorf("decoding %d values needs %d control bytes, have %d: %w",
			n, groups, len(control), ErrControlShort)
	}

	dataPos := 0
	produced := 0
	for g := 0; g < groups; g++ {
		ctrl := control[g]
		for i := 0; i < 4 && produced < n; i++ {
			length := int((ctrl>>(i*2))&0x3) + 1
			if dataPos+length > len(data) {
				return dataPos, fmt.Errorf("value %d needs %d data bytes at offset %d, stream has %d: %w",
					produced, length, dataPos, len(data), ErrDataShort)
			}
			dst[produced] = decodeValue(data[dataPos:], length)
			dataPos += length
			produced++
		}
	}
	return dataPos, nil
}

// decodeValue reads `length` little-endian bytes and zero-extends to uint32.
// The caller has already bounds-checked data.
func decodeValue(data []byte, length int) uint32 {
	switch length {
	case 1:
		return uint32(data[0])
	case 2:
		return uint32(data[0]) | uint32(data[1])<<8
	case 3:
		return uint32(data[0]) | uint32(data[1])<<8 | uint32(data[2])<<16
	default:
		return uint32(data[0]) | uint32(data[1])<<8 | uint32(data[2])<<16 | uint32(data[3])<<24
	}
}

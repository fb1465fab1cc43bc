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

import (
	"encoding/binary"
	"fmt"

	"github.com/ajroetker/go-highway/hwy"
)

// Shuffle-table codec paths, built on the hwy vector API. TableLookupBytes
// lowers to PSHUFB on x86 and TBL on NEON; the z_streamvbyte_*.go files bind
// these as the Encode/Decode dispatch targets when the CPU qualifies.
//
// The decode quad loads 16 bytes at the data cursor, which may over-read
// past the bytes the control byte actually consumes. The group loop only
// takes the vector path while a full 16-byte window fits in the data stream;
// trailing groups without that slack go through the scalar lane loop, so no
// load ever passes the end of the buffer.

// shuffleDecode is the allocating form of shuffleDecodeInto.
func shuffleDecode(control, data []byte, n int) ([]uint32, error) {
	if n <= 0 {
		return nil, nil
	}
	dst := make([]uint32, n)
	if _, err := shuffleDecodeInto(control, data, dst); err != nil {
		return nil, err
	}
	return dst, nil
}

// shuffleDecodeInto decodes len(dst) values, 4 per shuffle for every group
// with 16 bytes of input slack, scalar for the rest.
func shuffleDecodeInto(control, data []byte, dst []uint32) (consumed int, err error) {
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
		if n-produced >= 4 && dataPos+16 <= len(data) {
			decodeQuadShuffle(ctrl, data[dataPos:dataPos+16], dst[produced:produced+4])
			dataPos += int(quadDataLen[ctrl])
			produced += 4
			continue
		}
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

// decodeQuadShuffle expands one full quad: a single table lookup scatters
// the packed bytes into four little-endian uint32 lanes, zero-filling the
// high bytes of short values.
func decodeQuadShuffle(ctrl byte, src []uint8, dst []uint32) {
	data := hwy.Load[uint8](src[:16])
	mask := hwy.Load[uint8](decodeShuffle[ctrl][:])
	shuffled := hwy.TableLookupBytes(data, mask)

	var lanes [16]uint8
	hwy.Store(shuffled, lanes[:])

	dst[0] = uint32(lanes[0]) | uint32(lanes[1])<<8 | uint32(lanes[2])<<16 | uint32(lanes[3])<<24
	dst[1] = uint32(lanes[4]) | uint32(lanes[5])<<8 | uint32(lanes[6])<<16 | uint32(lanes[7])<<24
	dst[2] = uint32(lanes[8]) | uint32(lanes[9])<<8 | uint32(lanes[10])<<16 | uint32(lanes[11])<<24
	dst[3] = uint32(lanes[12]) | uint32(lanes[13])<<8 | uint32(lanes[14])<<16 | uint32(lanes[15])<<24
}

// shuffleEncode is the allocating form of shuffleEncodeInto.
func shuffleEncode(values []uint32) (control, data []byte) {
	return shuffleEncodeInto(values, nil, nil)
}

// shuffleEncodeInto encodes complete quads with vector length
// classification and a pack shuffle; the trailing partial group uses the
// scalar path. The pack writes into a local 16-byte array and only the
// consumed prefix is appended, so the data buffer needs no slack.
func shuffleEncodeInto(values []uint32, controlBuf, dataBuf []byte) (control, data []byte) {
	if len(values) == 0 {
		return nil, nil
	}

	controlBuf, dataBuf = sliceBuffers(len(values), controlBuf, dataBuf)

	quads := len(values) / 4
	for g := 0; g < quads; g++ {
		ctrl, packed := encodeQuadShuffle(values[g*4 : g*4+4])
		controlBuf[g] = ctrl
		dataBuf = append(dataBuf, packed[:quadDataLen[ctrl]]...)
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

// encodeQuadShuffle classifies and packs one full quad. Lane widths come
// from the vector leading-zero count: width = 4 - clz/8, so the length code
// is 3 saturating-minus clz/8 (value 0 has clz 32, saturating to code 0,
// width 1).
func encodeQuadShuffle(quad []uint32) (ctrl byte, packed [16]uint8) {
	v := hwy.Load[uint32](quad[:4])
	clzBytes := hwy.ShiftRight(hwy.LeadingZeroCount(v), 3)
	codes := hwy.SaturatedSub(hwy.Set[uint32](3), clzBytes)

	var code [4]uint32
	hwy.Store(codes, code[:])
	ctrl = byte(code[0] | code[1]<<2 | code[2]<<4 | code[3]<<6)

	var lanes [16]uint8
	binary.LittleEndian.PutUint32(lanes[0:4], quad[0])
	binary.LittleEndian.PutUint32(lanes[4:8], quad[1])
	binary.LittleEndian.PutUint32(lanes[8:12], quad[2])
	binary.LittleEndian.PutUint32(lanes[12:16], quad[3])

	src := hwy.Load[uint8](lanes[:])
	mask := hwy.Load[uint8](encodeShuffle[ctrl][:])
	hwy.Store(hwy.TableLookupBytes(src, mask), packed[:])
	return ctrl, packed
}

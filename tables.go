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

// Lookup tables shared by every codec path. Built once in init() and never
// written again, so concurrent readers need no synchronization.
//
// A control byte packs four 2-bit length codes, one per value in the quad.
// Each code stores (length - 1): code 0 means 1 data byte, code 3 means 4.
// The code for value i of the quad lives in bits [2i+1 : 2i].

// zeroFill is the shuffle-mask sentinel for "write a zero byte". Any index
// >= 16 zeroes the destination lane in SSSE3 PSHUFB (high bit set), NEON TBL
// (out of range), and hwy.TableLookupBytes (out of range), so one table
// serves all backends.
const zeroFill = 255

var (
	// quadDataLen[control] = total data bytes consumed by the quad.
	quadDataLen [256]uint8

	// decodeShuffle[control] scatters the quad's packed data bytes into
	// four little-endian uint32 lanes. Entry k is the source offset
	// (relative to the quad's first data byte) for destination byte k,
	// or zeroFill for the high bytes of values shorter than 4 bytes.
	decodeShuffle [256][16]uint8

	// encodeShuffle[control] is the inverse gather: entry k is the source
	// byte within a register holding four full uint32 lanes that lands at
	// packed output position k. Entries at and past quadDataLen[control]
	// are zeroFill.
	encodeShuffle [256][16]uint8
)

func init() {
	for control := 0; control < 256; control++ {
		var lens [4]int
		for i := range lens {
			lens[i] = int((control>>(i*2))&0x3) + 1
		}
		quadDataLen[control] = uint8(lens[0] + lens[1] + lens[2] + lens[3])

		var dec, enc [16]uint8
		for i := range enc {
			dec[i] = zeroFill
			enc[i] = zeroFill
		}
		offset := 0
		for value := 0; value < 4; value++ {
			for b := 0; b < lens[value]; b++ {
				// Lane `value` occupies register bytes 4*value..4*value+3.
				dec[value*4+b] = uint8(offset + b)
				enc[offset+b] = uint8(value*4 + b)
			}
			offset += lens[value]
		}
		decodeShuffle[control] = dec
		encodeShuffle[control] = enc
	}
}

// controlByte packs four length codes into one control byte.
func controlByte(len0, len1, len2, len3 int) byte {
	return byte((len0 - 1) | (len1-1)<<2 | (len2-1)<<4 | (len3-1)<<6)
}

// encodedLength returns the minimal byte width for v. Zero still takes one
// byte; the format has no zero-width code.
func encodedLength(v uint32) int {
	switch {
	case v < 1<<8:
		return 1
	case v < 1<<16:
		return 2
	case v < 1<<24:
		return 3
	default:
		return 4
	}
}

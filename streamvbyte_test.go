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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_KnownBytes(t *testing.T) {
	// Worked example: codes 0,1,2,0 packed low bits first, data bytes are
	// the little-endian minimal widths 1+2+3+1.
	control, data := BaseEncode([]uint32{1, 300, 70000, 0})

	require.Equal(t, []byte{0x24}, control)
	require.Equal(t, []byte{0x01, 0x2C, 0x01, 0x70, 0x11, 0x01, 0x00}, data)

	decoded, err := BaseDecode(control, data, 4)
	require.NoError(t, err)
	require.Equal(t, []uint32{1, 300, 70000, 0}, decoded)
}

func TestEncode_BoundaryWidths(t *testing.T) {
	tests := []struct {
		value uint32
		width int
	}{
		{0, 1},
		{0xFF, 1},
		{0x100, 2},
		{0xFFFF, 2},
		{0x10000, 3},
		{0xFFFFFF, 3},
		{0x1000000, 4},
		{0xFFFFFFFF, 4},
	}

	for _, tt := range tests {
		control, data := BaseEncode([]uint32{tt.value})

		assert.Len(t, control, 1, "value %#x", tt.value)
		assert.Len(t, data, tt.width, "value %#x", tt.value)

		decoded, err := BaseDecode(control, data, 1)
		require.NoError(t, err)
		assert.Equal(t, []uint32{tt.value}, decoded, "value %#x", tt.value)
	}
}

func TestRoundTrip_GroupBoundaries(t *testing.T) {
	// Empty, sub-group, exact-group, and multi-group-with-remainder counts.
	rng := rand.New(rand.NewSource(42))
	for _, n := range []int{0, 1, 2, 3, 4, 5, 8, 9} {
		values := randomValues(rng, n)

		control, data := Encode(values)
		require.Len(t, control, ControlLen(n), "n=%d", n)
		require.LessOrEqual(t, len(data), MaxDataLen(n), "n=%d", n)

		wantDataLen := 0
		for _, v := range values {
			wantDataLen += encodedLength(v)
		}
		require.Equal(t, wantDataLen, len(data), "n=%d", n)

		decoded, err := Decode(control, data, n)
		require.NoError(t, err, "n=%d", n)
		if n == 0 {
			require.Empty(t, decoded)
			continue
		}
		require.Equal(t, values, decoded, "n=%d", n)
	}
}

func TestRoundTrip_LargeMixed(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	values := randomValues(rng, 10000)

	control, data := Encode(values)
	decoded, err := Decode(control, data, len(values))
	require.NoError(t, err)
	require.Equal(t, values, decoded)

	// The scalar reference must agree byte for byte.
	baseControl, baseData := BaseEncode(values)
	require.Equal(t, baseControl, control)
	require.Equal(t, baseData, data)
}

func TestDecodeInto_Consumed(t *testing.T) {
	values := []uint32{300, 5, 1000, 2, 7, 128, 50, 1}
	control, data := BaseEncode(values)

	dst := make([]uint32, len(values))
	consumed, err := DecodeInto(control, data, dst)
	require.NoError(t, err)
	require.Equal(t, len(data), consumed)
	require.Equal(t, values, dst)
}

func TestDecode_PartialGroupWithLargeValues(t *testing.T) {
	// The last 3 values sit in a partial group and need multi-byte
	// widths, which forces the scalar tail past the shuffle loop.
	values := []uint32{
		0, 1, 0, 5, 0, 0, 2, 5, 10, 2, 0, 1, 1, 3, 10, 20, 3, 0, 1, 2,
		0, 100, 500, 600, 1, 5, 2, 1000,
		5000, 6000, 0,
	}
	control, data := BaseEncode(values)

	for name, decode := range map[string]func(control, data []byte, n int) ([]uint32, error){
		"Base":     BaseDecode,
		"Dispatch": Decode,
	} {
		t.Run(name, func(t *testing.T) {
			decoded, err := decode(control, data, len(values))
			require.NoError(t, err)
			require.Equal(t, values, decoded)
		})
	}
}

func TestDecode_ShortControl(t *testing.T) {
	control, data := BaseEncode([]uint32{1, 2, 3, 4, 5})

	_, err := Decode(control[:1], data, 5)
	require.ErrorIs(t, err, ErrControlShort)

	_, err = BaseDecode(nil, data, 5)
	require.ErrorIs(t, err, ErrControlShort)
}

func TestDecode_ShortData(t *testing.T) {
	values := []uint32{1, 300, 70000, 0xFFFFFFFF, 9}
	control, data := BaseEncode(values)

	for cut := 1; cut <= len(data); cut++ {
		_, err := Decode(control, data[:len(data)-cut], len(values))
		require.ErrorIs(t, err, ErrDataShort, "cut=%d", cut)

		_, err = BaseDecode(control, data[:len(data)-cut], len(values))
		require.ErrorIs(t, err, ErrDataShort, "cut=%d", cut)
	}
}

func TestDecode_ZeroCount(t *testing.T) {
	decoded, err := Decode(nil, nil, 0)
	require.NoError(t, err)
	require.Empty(t, decoded)

	consumed, err := DecodeInto(nil, nil, nil)
	require.NoError(t, err)
	require.Zero(t, consumed)
}

func TestEncodeInto_ReusesBuffers(t *testing.T) {
	values := []uint32{1, 300, 70000, 0, 12, 99999}
	controlBuf := make([]byte, 0, 16)
	dataBuf := make([]byte, 0, 64)

	control, data := EncodeInto(values, controlBuf, dataBuf)

	wantControl, wantData := BaseEncode(values)
	require.Equal(t, wantControl, control)
	require.Equal(t, wantData, data)

	// Capacity was sufficient, so the encoded streams must alias the
	// provided buffers.
	require.Same(t, &controlBuf[:1][0], &control[0])
	require.Same(t, &dataBuf[:1][0], &data[0])
}

func TestDataLen(t *testing.T) {
	values := []uint32{300, 5, 1000, 2, 70000, 1, 0xFFFFFFFF, 8}
	control, data := BaseEncode(values)
	require.Equal(t, len(data), DataLen(control))
}

func TestSizeHelpers(t *testing.T) {
	require.Equal(t, 0, ControlLen(0))
	require.Equal(t, 1, ControlLen(1))
	require.Equal(t, 1, ControlLen(4))
	require.Equal(t, 2, ControlLen(5))
	require.Equal(t, 3, ControlLen(9))
	require.Equal(t, 40, MaxDataLen(10))
}

func TestBackendNames(t *testing.T) {
	recognized := map[string]bool{
		BackendScalar: true,
		BackendSSSE3:  true,
		BackendSSE41:  true,
		BackendNEON:   true,
	}
	assert.True(t, recognized[EncodeBackend()], "EncodeBackend() = %q", EncodeBackend())
	assert.True(t, recognized[DecodeBackend()], "DecodeBackend() = %q", DecodeBackend())
}

// randomValues generates n values spread across all four byte widths.
func randomValues(rng *rand.Rand, n int) []uint32 {
	values := make([]uint32, n)
	for i := range values {
		// Pick a width class first so short and long values mix evenly.
		shift := uint(rng.Intn(4)) * 8
		values[i] = rng.Uint32() >> shift
	}
	return values
}

// ============================================================================
// Benchmarks
// ============================================================================

func benchValues(n int) []uint32 {
	rng := rand.New(rand.NewSource(7))
	return randomValues(rng, n)
}

func BenchmarkBaseEncode(b *testing.B) {
	values := benchValues(1024)
	var control, data []byte

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		control, data = BaseEncodeInto(values, control, data)
	}
}

func BenchmarkEncode_Dispatch(b *testing.B) {
	values := benchValues(1024)
	var control, data []byte

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		control, data = EncodeInto(values, control, data)
	}
}

func BenchmarkBaseDecodeInto(b *testing.B) {
	values := benchValues(1024)
	control, data := BaseEncode(values)
	dst := make([]uint32, len(values))

	b.SetBytes(int64(len(values) * 4))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := BaseDecodeInto(control, data, dst); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeInto_Dispatch(b *testing.B) {
	values := benchValues(1024)
	control, data := Encode(values)
	dst := make([]uint32, len(values))

	b.SetBytes(int64(len(values) * 4))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := DecodeInto(control, data, dst); err != nil {
			b.Fatal(err)
		}
	}
}

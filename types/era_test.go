package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wireforge/go-subwire/scale"
)

func encodeEra(t *testing.T, e Era) []byte {
	t.Helper()
	w := scale.NewWriter()
	require.NoError(t, e.EncodeScale(w))
	return w.Bytes()
}

func TestImmortalEra(t *testing.T) {
	raw := encodeEra(t, ImmortalEra())
	require.Equal(t, []byte{0x00}, raw)

	var back Era
	require.NoError(t, back.DecodeScale(scale.NewReader(raw)))
	assert.False(t, back.IsMortal)
}

func TestMortalEraKnownVector(t *testing.T) {
	// period 64 packs as log2(64)-1 = 5 in the low nibble, phase 49 in the
	// high twelve bits: 5 | 49<<4 = 0x0315, little-endian 15 03.
	era := NewMortalEra(64, 49)
	assert.Equal(t, uint64(64), era.Period)
	assert.Equal(t, uint64(49), era.Phase)
	assert.Equal(t, []byte{0x15, 0x03}, encodeEra(t, era))
}

func TestMortalEraRoundTrip(t *testing.T) {
	cases := []struct {
		period  uint64
		current uint64
	}{
		{4, 0},
		{4, 3},
		{64, 42},
		{64, 65}, // phase wraps: 65 % 64 = 1
		{4096, 4000},
		{8192, 10000},
		{65536, 123456},
	}
	for _, tc := range cases {
		era := NewMortalEra(tc.period, tc.current)
		raw := encodeEra(t, era)
		require.Equal(t, 2, len(raw), "period %d", tc.period)

		var back Era
		r := scale.NewReader(raw)
		require.NoError(t, back.DecodeScale(r))
		assert.Equal(t, era, back, "period %d current %d", tc.period, tc.current)
		assert.True(t, r.Empty())
	}
}

func TestMortalEraClampsPeriod(t *testing.T) {
	cases := []struct {
		in   uint64
		want uint64
	}{
		{0, 4},
		{1, 4},
		{3, 4},
		{5, 8},
		{100, 128},
		{65536, 65536},
		{1 << 20, 65536},
	}
	for _, tc := range cases {
		era := NewMortalEra(tc.in, 0)
		assert.Equal(t, tc.want, era.Period, "period %d", tc.in)
	}
}

func TestMortalEraQuantizesPhase(t *testing.T) {
	// period 65536 has quantize factor 16, so the phase floors to a
	// multiple of 16.
	era := NewMortalEra(65536, 100003)
	assert.Equal(t, uint64(0), era.Phase%16)

	raw := encodeEra(t, era)
	var back Era
	require.NoError(t, back.DecodeScale(scale.NewReader(raw)))
	assert.Equal(t, era.Phase, back.Phase)
}

func TestEraEncodeRejectsInvalid(t *testing.T) {
	cases := []Era{
		{IsMortal: true, Period: 3, Phase: 0},     // not a power of two
		{IsMortal: true, Period: 2, Phase: 0},     // below minimum
		{IsMortal: true, Period: 1 << 17, Phase: 0},
		{IsMortal: true, Period: 64, Phase: 64},   // phase not below period
		{IsMortal: true, Period: 65536, Phase: 3}, // unaligned phase
	}
	for _, e := range cases {
		w := scale.NewWriter()
		assert.ErrorIs(t, e.EncodeScale(w), scale.ErrRange, e.String())
	}
}

func TestEraDecodeRejectsInvalid(t *testing.T) {
	// Low nibble 0 decodes to period 2, below the minimum.
	var e Era
	err := e.DecodeScale(scale.NewReader([]byte{0x10, 0x00}))
	assert.ErrorIs(t, err, scale.ErrFormat)

	// Truncated mortal form.
	err = e.DecodeScale(scale.NewReader([]byte{0x15}))
	assert.ErrorIs(t, err, scale.ErrBounds)
}

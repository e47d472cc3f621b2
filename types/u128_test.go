package types

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wireforge/go-subwire/scale"
)

func TestU128DecimalRoundTrip(t *testing.T) {
	for _, s := range []string{
		"0",
		"1",
		"9",
		"10",
		"255",
		"256",
		"100000000000",
		"1000000000000",
		"18446744073709551615",              // 2^64 - 1
		"18446744073709551616",              // 2^64
		"123456789012345678901234567890",
		"340282366920938463463374607431768211455", // 2^128 - 1
	} {
		v, err := U128FromDecimal(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, v.String(), s)
	}
}

func TestU128DecimalLeadingZeros(t *testing.T) {
	v, err := U128FromDecimal("000123")
	require.NoError(t, err)
	assert.Equal(t, "123", v.String())
}

func TestU128DecimalRejects(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"", scale.ErrFormat},
		{"12a4", scale.ErrFormat},
		{"-5", scale.ErrFormat},
		{"1.5", scale.ErrFormat},
		{"340282366920938463463374607431768211456", scale.ErrArithmetic}, // 2^128
	}
	for _, tc := range cases {
		_, err := U128FromDecimal(tc.in)
		assert.ErrorIs(t, err, tc.want, "input %q", tc.in)
	}
}

func TestU128Arithmetic(t *testing.T) {
	five, _ := U128FromDecimal("5")
	three, _ := U128FromDecimal("3")
	eight, _ := U128FromDecimal("8")

	sum, err := five.Add(three)
	require.NoError(t, err)
	assert.Equal(t, eight, sum)

	diff, err := eight.Sub(three)
	require.NoError(t, err)
	assert.Equal(t, five, diff)

	_, err = three.Sub(five)
	assert.ErrorIs(t, err, scale.ErrArithmetic)

	max, _ := U128FromDecimal("340282366920938463463374607431768211455")
	one := U128FromUint64(1)
	_, err = max.Add(one)
	assert.ErrorIs(t, err, scale.ErrArithmetic)
}

func TestU128CarryPropagation(t *testing.T) {
	// 2^64 - 1 + 1 carries across the word boundary.
	low, _ := U128FromDecimal("18446744073709551615")
	sum, err := low.Add(U128FromUint64(1))
	require.NoError(t, err)
	assert.Equal(t, "18446744073709551616", sum.String())

	back, err := sum.Sub(U128FromUint64(1))
	require.NoError(t, err)
	assert.Equal(t, low, back)
}

func TestU128Cmp(t *testing.T) {
	small, _ := U128FromDecimal("99")
	big, _ := U128FromDecimal("18446744073709551616")

	assert.Equal(t, -1, small.Cmp(big))
	assert.Equal(t, 1, big.Cmp(small))
	assert.Equal(t, 0, small.Cmp(small))
}

// The byte-wise arithmetic is checked against an independent 256-bit
// implementation over a corpus of boundary values.
func TestU128MatchesUint256(t *testing.T) {
	corpus := []string{
		"0",
		"1",
		"9",
		"10",
		"4095",
		"65536",
		"4294967296",
		"18446744073709551615",
		"18446744073709551616",
		"170141183460469231731687303715884105728", // 2^127
		"340282366920938463463374607431768211455", // 2^128 - 1
		"12345678901234567890123456789012345678",
	}
	for _, s := range corpus {
		mine, err := U128FromDecimal(s)
		require.NoError(t, err, s)
		ref := uint256.MustFromDecimal(s)
		assert.Equal(t, ref.Dec(), mine.String(), s)
	}

	for _, a := range corpus {
		for _, b := range corpus {
			av, _ := U128FromDecimal(a)
			bv, _ := U128FromDecimal(b)
			ar := uint256.MustFromDecimal(a)
			br := uint256.MustFromDecimal(b)

			refSum := new(uint256.Int)
			refSum.Add(ar, br)
			overflows := refSum.BitLen() > 128
			sum, err := av.Add(bv)
			if overflows {
				assert.ErrorIs(t, err, scale.ErrArithmetic, "%s + %s", a, b)
			} else {
				require.NoError(t, err, "%s + %s", a, b)
				assert.Equal(t, refSum.Dec(), sum.String(), "%s + %s", a, b)
			}

			diff, err := av.Sub(bv)
			if ar.Lt(br) {
				assert.ErrorIs(t, err, scale.ErrArithmetic, "%s - %s", a, b)
			} else {
				refDiff := new(uint256.Int).Sub(ar, br)
				require.NoError(t, err, "%s - %s", a, b)
				assert.Equal(t, refDiff.Dec(), diff.String(), "%s - %s", a, b)
			}

			assert.Equal(t, ar.Cmp(br), av.Cmp(bv), "cmp %s %s", a, b)
		}
	}
}

func TestU128ScaleForms(t *testing.T) {
	v, _ := U128FromDecimal("1000000000000")

	w := scale.NewWriter()
	v.EncodeScale(w)
	require.Equal(t, 16, len(w.Bytes()))

	var back U128
	r := scale.NewReader(w.Bytes())
	require.NoError(t, back.DecodeScale(r))
	assert.Equal(t, v, back)

	w = scale.NewWriter()
	v.EncodeCompact(w)
	r = scale.NewReader(w.Bytes())
	dec, err := DecodeCompactU128(r)
	require.NoError(t, err)
	assert.Equal(t, v, dec)
}

func TestU128Text(t *testing.T) {
	v, _ := U128FromDecimal("18446744073709551616")
	text, err := v.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "18446744073709551616", string(text))

	var back U128
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, v, back)
}

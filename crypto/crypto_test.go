package crypto

import (
	"crypto/ed25519"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wireforge/go-subwire/scale"
	"github.com/wireforge/go-subwire/types"
)

func TestBlake2b256EmptyInput(t *testing.T) {
	got := Blake2b256(nil)
	want := hexutil.MustDecode("0x0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8")
	assert.Equal(t, want, got[:])
}

func TestBlake2bSizes(t *testing.T) {
	for _, size := range []int{1, 16, 32, 64} {
		out, err := Blake2b([]byte("abc"), size)
		require.NoError(t, err)
		assert.Len(t, out, size)
	}

	full := Blake2b256([]byte("abc"))
	out, err := Blake2b([]byte("abc"), 32)
	require.NoError(t, err)
	assert.Equal(t, full[:], out)

	_, err = Blake2b(nil, 0)
	assert.ErrorIs(t, err, scale.ErrRange)
	_, err = Blake2b(nil, 65)
	assert.ErrorIs(t, err, scale.ErrRange)
}

func TestEd25519SignerKnownKey(t *testing.T) {
	// RFC 8032 test vector 1.
	seed := hexutil.MustDecode("0x9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60")
	signer, err := NewEd25519Signer(seed)
	require.NoError(t, err)

	wantPub := "0xd75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a"
	assert.Equal(t, wantPub, signer.PublicKey().Hex())
	assert.Equal(t, types.SchemeEd25519, signer.Scheme())
}

func TestEd25519SignerSigns(t *testing.T) {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i)
	}
	signer, err := NewEd25519Signer(seed)
	require.NoError(t, err)

	msg := []byte("payload under test")
	sig, err := signer.Sign(msg)
	require.NoError(t, err)
	assert.Equal(t, types.SchemeEd25519, sig.Scheme)
	require.Len(t, sig.Raw, 64)

	pub := signer.PublicKey()
	assert.True(t, ed25519.Verify(ed25519.PublicKey(pub[:]), msg, sig.Raw))

	// Deterministic for fixed key and message.
	again, err := signer.Sign(msg)
	require.NoError(t, err)
	assert.Equal(t, sig.Raw, again.Raw)
}

func TestEd25519SignerRejectsBadSeed(t *testing.T) {
	_, err := NewEd25519Signer(make([]byte, 31))
	assert.ErrorIs(t, err, scale.ErrRange)
}

package crypto

import (
	"bytes"
	"crypto/rand"
	"errors"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	gethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomKeysKnownVector(t *testing.T) {
	seed := make([]byte, 32)
	seed[31] = 1

	g := NewRandomKeys(bytes.NewReader(seed))
	kp, err := g.Next()
	require.NoError(t, err)

	assert.Equal(t, "0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf", kp.Address)
	assert.Equal(t, "0x"+strings.Repeat("0", 63)+"1", kp.PrivateHex())
	assert.Empty(t, kp.Mnemonic)
}

func TestRandomKeysChecksumAndConsistency(t *testing.T) {
	g := NewRandomKeys(nil)
	seen := make(map[string]struct{})
	for i := 0; i < 32; i++ {
		kp, err := g.Next()
		require.NoError(t, err)

		require.Len(t, kp.Address, 42)
		assert.Equal(t, common.HexToAddress(kp.Address).Hex(), kp.Address, "address must be EIP-55 checksummed")

		priv, err := gethcrypto.ToECDSA(kp.PrivateKey[:])
		require.NoError(t, err)
		assert.Equal(t, kp.Address, AddressHex(priv))
		assert.Equal(t, kp.PrivateKey, PrivToBytes(priv))

		_, dup := seen[kp.Address]
		assert.False(t, dup)
		seen[kp.Address] = struct{}{}
	}
}

func TestRandomKeysIndependentInstances(t *testing.T) {
	a, err := NewRandomKeys(rand.Reader).Next()
	require.NoError(t, err)
	b, err := NewRandomKeys(rand.Reader).Next()
	require.NoError(t, err)
	assert.NotEqual(t, a.PrivateKey, b.PrivateKey)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy source gone") }

func TestRandomKeysFailures(t *testing.T) {
	_, err := NewRandomKeys(failingReader{}).Next()
	assert.ErrorIs(t, err, ErrGeneration)

	// zero is not a valid secp256k1 scalar
	_, err = NewRandomKeys(bytes.NewReader(make([]byte, 32))).Next()
	assert.ErrorIs(t, err, ErrGeneration)

	// short read
	_, err = NewRandomKeys(bytes.NewReader(make([]byte, 8))).Next()
	assert.ErrorIs(t, err, ErrGeneration)
}

package mnemonic

import (
	"strings"
	"testing"

	gethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bip39 "github.com/tyler-smith/go-bip39"
)

func TestDeriveKnownVector(t *testing.T) {
	// Hardhat / Ganache default test mnemonic.
	mn := "test test test test test test test test test test test junk"

	kp, err := Derive(mn, "", "m/44'/60'/0'/0/0")
	require.NoError(t, err)
	assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", kp.Address)
	assert.Equal(t, "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80", kp.PrivateHex())
	assert.Equal(t, mn, kp.Mnemonic)
}

func TestKeysNext(t *testing.T) {
	g := NewKeys(128, "pass", 2)

	kp, err := g.Next()
	require.NoError(t, err)

	assert.Len(t, strings.Fields(kp.Mnemonic), 12)
	assert.True(t, bip39.IsMnemonicValid(kp.Mnemonic))
	assert.Equal(t, "m/44'/60'/0'/0/2", kp.Path)

	priv, err := gethcrypto.ToECDSA(kp.PrivateKey[:])
	require.NoError(t, err)
	assert.Equal(t, gethcrypto.PubkeyToAddress(priv.PublicKey).Hex(), kp.Address)

	again, err := Derive(kp.Mnemonic, "pass", kp.Path)
	require.NoError(t, err)
	assert.Equal(t, kp.Address, again.Address)

	other, err := Derive(kp.Mnemonic, "", kp.Path)
	require.NoError(t, err)
	assert.NotEqual(t, kp.Address, other.Address, "passphrase changes the seed")
}

func TestKeysBadStrength(t *testing.T) {
	_, err := NewKeys(100, "", 0).Next()
	assert.Error(t, err)
}

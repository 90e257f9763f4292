package mnemonic

import (
	"fmt"

	hdwallet "github.com/miguelmota/go-ethereum-hdwallet"
	bip39 "github.com/tyler-smith/go-bip39"

	"VanityGen/internal/crypto"
)

// Keys generates one fresh BIP-39 mnemonic per candidate and derives a
// single account from it.
type Keys struct {
	strength   int
	passphrase string
	path       string
}

func NewKeys(strength int, passphrase string, account int) *Keys {
	if strength == 0 {
		strength = 128 // 12 words
	}
	return &Keys{
		strength:   strength,
		passphrase: passphrase,
		path:       fmt.Sprintf("m/44'/60'/0'/0/%d", account),
	}
}

func (k *Keys) Next() (crypto.KeyPair, error) {
	mn, err := NewMnemonic(k.strength)
	if err != nil {
		return crypto.KeyPair{}, fmt.Errorf("%w: mnemonic: %w", crypto.ErrGeneration, err)
	}
	kp, err := Derive(mn, k.passphrase, k.path)
	if err != nil {
		return crypto.KeyPair{}, fmt.Errorf("%w: derive %s: %w", crypto.ErrGeneration, k.path, err)
	}
	return kp, nil
}

func NewMnemonic(strength int) (string, error) {
	entropy, err := bip39.NewEntropy(strength)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

// Derive returns the key pair at path for mnemonic mn.
func Derive(mn, passphrase, path string) (crypto.KeyPair, error) {
	seed := bip39.NewSeed(mn, passphrase)
	w, err := hdwallet.NewFromSeed(seed)
	if err != nil {
		return crypto.KeyPair{}, err
	}
	dp, err := hdwallet.ParseDerivationPath(path)
	if err != nil {
		return crypto.KeyPair{}, err
	}
	acct, err := w.Derive(dp, false)
	if err != nil {
		return crypto.KeyPair{}, err
	}
	priv, err := w.PrivateKey(acct)
	if err != nil {
		return crypto.KeyPair{}, err
	}
	return crypto.KeyPair{
		PrivateKey: crypto.PrivToBytes(priv),
		Address:    acct.Address.Hex(),
		Mnemonic:   mn,
		Path:       path,
	}, nil
}

package crypto

import (
	"crypto/ecdsa"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	gethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// ErrGeneration marks a failure of the random source or of key derivation.
var ErrGeneration = errors.New("candidate generation failed")

// KeyPair is one generated candidate. Mnemonic and Path are set only by
// mnemonic based generators.
type KeyPair struct {
	PrivateKey [32]byte
	Address    string // EIP-55 checksummed, 0x-prefixed

	Mnemonic string
	Path     string
}

func (k KeyPair) PrivateHex() string {
	return "0x" + hex.EncodeToString(k.PrivateKey[:])
}

// Generator produces candidates. Instances are not safe for concurrent use;
// every worker owns its own.
type Generator interface {
	Next() (KeyPair, error)
}

// RandomKeys draws each private key from its own CSPRNG reader.
type RandomKeys struct {
	rnd io.Reader
	buf [32]byte
}

// NewRandomKeys returns a generator reading from r, or from crypto/rand when r is nil.
func NewRandomKeys(r io.Reader) *RandomKeys {
	if r == nil {
		r = rand.Reader
	}
	return &RandomKeys{rnd: r}
}

func (g *RandomKeys) Next() (KeyPair, error) {
	if _, err := io.ReadFull(g.rnd, g.buf[:]); err != nil {
		return KeyPair{}, fmt.Errorf("%w: read random: %w", ErrGeneration, err)
	}
	priv, err := gethcrypto.ToECDSA(g.buf[:])
	if err != nil {
		return KeyPair{}, fmt.Errorf("%w: %w", ErrGeneration, err)
	}
	return KeyPair{
		PrivateKey: g.buf,
		Address:    AddressHex(priv),
	}, nil
}

func PrivToBytes(priv *ecdsa.PrivateKey) [32]byte {
	var out [32]byte
	copy(out[:], gethcrypto.FromECDSA(priv))
	return out
}

func AddressHex(priv *ecdsa.PrivateKey) string {
	return gethcrypto.PubkeyToAddress(priv.PublicKey).Hex()
}

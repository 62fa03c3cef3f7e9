package verifier

import (
	"crypto/ed25519"
	"fmt"

	"github.com/zkvoting/exovote/types"
)

// Signer issues attestations: ed25519 signatures over the canonical
// (address, country code) message. The key is loaded once at startup and
// never changes, so a Signer is safe for unbounded concurrent use.
type Signer struct {
	key ed25519.PrivateKey
}

// NewSigner wraps the given ed25519 private key.
func NewSigner(key ed25519.PrivateKey) (*Signer, error) {
	if len(key) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("invalid signing key length %d, expected %d", len(key), ed25519.PrivateKeySize)
	}
	return &Signer{key: key}, nil
}

// NewSignerFromSeed derives the signing key from a 32-byte seed, the format
// secret key files are stored in.
func NewSignerFromSeed(seed []byte) (*Signer, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("invalid signing key seed length %d, expected %d", len(seed), ed25519.SeedSize)
	}
	return &Signer{key: ed25519.NewKeyFromSeed(seed)}, nil
}

// Attest signs the canonical message binding the address to the country
// code the account proved it does not reside in. The signature is
// deterministic: a pure function of the key and the two inputs.
func (s *Signer) Attest(addr types.AccountAddress, code types.CountryCode) types.HexBytes {
	return ed25519.Sign(s.key, types.CanonicalMessage(addr, code))
}

// PublicKey returns the verification half of the signing key, which is
// what elections are initialized with.
func (s *Signer) PublicKey() ed25519.PublicKey {
	return s.key.Public().(ed25519.PublicKey)
}

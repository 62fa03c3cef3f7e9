package verifier

import (
	"crypto/ed25519"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/zkvoting/exovote/types"
)

func testSigner(c *qt.C) *Signer {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = byte(i)
	}
	signer, err := NewSignerFromSeed(seed)
	c.Assert(err, qt.IsNil)
	return signer
}

func TestAttest(t *testing.T) {
	c := qt.New(t)
	signer := testSigner(c)

	addr := types.AccountAddress{42}
	code, err := types.CountryCodeFromString("DK")
	c.Assert(err, qt.IsNil)

	signature := signer.Attest(addr, code)
	c.Assert(signature, qt.HasLen, types.SignatureLength)

	// The signature is deterministic and verifies against the canonical
	// message under the published key.
	c.Assert(signer.Attest(addr, code), qt.DeepEquals, signature)
	ok := ed25519.Verify(signer.PublicKey(), types.CanonicalMessage(addr, code), signature)
	c.Assert(ok, qt.IsTrue)

	// A different address yields a different attestation.
	other := signer.Attest(types.AccountAddress{43}, code)
	c.Assert(other, qt.Not(qt.DeepEquals), signature)
}

func TestNewSignerRejectsBadKeys(t *testing.T) {
	c := qt.New(t)

	_, err := NewSignerFromSeed([]byte{1, 2, 3})
	c.Assert(err, qt.IsNotNil)
	_, err = NewSigner(make([]byte, 12))
	c.Assert(err, qt.IsNotNil)
}

package zkproof

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/zkvoting/exovote/types"
)

func TestNewRejectsBadKeys(t *testing.T) {
	c := qt.New(t)

	_, err := New(nil)
	c.Assert(err, qt.IsNotNil)
	_, err = New([]byte(`not json`))
	c.Assert(err, qt.IsNotNil)

	g, err := New([]byte(`{"protocol":"groth16"}`))
	c.Assert(err, qt.IsNil)
	c.Assert(g, qt.IsNotNil)
}

func TestNewFromFileMissing(t *testing.T) {
	c := qt.New(t)
	_, err := NewFromFile("/nonexistent/verification_key.json")
	c.Assert(err, qt.IsNotNil)
}

func TestPublicSignals(t *testing.T) {
	c := qt.New(t)

	code, err := types.CountryCodeFromString("DK")
	c.Assert(err, qt.IsNil)
	credID := types.HexBytes{0xaa, 0xbb}
	commitments := []types.HexBytes{{0x01}, {0x02, 0x00}}

	signals, err := PublicSignals(types.ProofChallenge[:], credID, commitments, code)
	c.Assert(err, qt.IsNil)
	c.Assert(signals, qt.HasLen, 4)

	// Commitments and country code appear as decimal strings, in order,
	// after the challenge binding.
	c.Assert(signals[1], qt.Equals, "1")
	c.Assert(signals[2], qt.Equals, "512")
	c.Assert(signals[3], qt.Equals, "17483") // 'D'<<8 | 'K'

	// The first signal binds the credential id: a different credential
	// yields a different binding.
	other, err := PublicSignals(types.ProofChallenge[:], types.HexBytes{0xaa, 0xbc}, commitments, code)
	c.Assert(err, qt.IsNil)
	c.Assert(other[0], qt.Not(qt.Equals), signals[0])

	// Derivation is deterministic.
	again, err := PublicSignals(types.ProofChallenge[:], credID, commitments, code)
	c.Assert(err, qt.IsNil)
	c.Assert(again, qt.DeepEquals, signals)
}

func TestVerifyRejectsMalformedProof(t *testing.T) {
	c := qt.New(t)
	g, err := New([]byte(`{"protocol":"groth16"}`))
	c.Assert(err, qt.IsNil)

	code, err := types.CountryCodeFromString("DK")
	c.Assert(err, qt.IsNil)

	// A proof payload that is not proof JSON is an invalid proof, not a
	// crash.
	ok := g.Verify(types.ProofChallenge[:], types.HexBytes{0x01}, nil, code, []byte(`not json`))
	c.Assert(ok, qt.IsFalse)

	// A decodable but meaningless proof fails verification against a
	// meaningless key.
	ok = g.Verify(types.ProofChallenge[:], types.HexBytes{0x01}, nil, code,
		[]byte(`{"pi_a":["1","2","1"],"pi_b":[["1","0"],["0","1"],["1","0"]],"pi_c":["1","2","1"]}`))
	c.Assert(ok, qt.IsFalse)
}

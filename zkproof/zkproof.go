// Package zkproof provides the production proof primitive: a circom
// Groth16 verifier for the residency-exclusion circuit. The proof math is
// delegated entirely to go-rapidsnark; this package only derives the
// public signals that bind a proof to one (challenge, credential,
// commitments, country) tuple.
package zkproof

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	"github.com/iden3/go-iden3-crypto/poseidon"
	prooftypes "github.com/iden3/go-rapidsnark/types"
	rapidsnark "github.com/iden3/go-rapidsnark/verifier"

	"github.com/zkvoting/exovote/log"
	"github.com/zkvoting/exovote/types"
)

// Groth16 verifies residency-exclusion proofs against a fixed circuit
// verification key. The key is the cryptographic global context of the
// service: loaded once at startup and read-only afterwards, so a Groth16
// value is safe for concurrent use.
type Groth16 struct {
	vkey []byte
}

// New wraps a circom verification key (JSON encoded).
func New(vkey []byte) (*Groth16, error) {
	if len(vkey) == 0 {
		return nil, fmt.Errorf("empty verification key")
	}
	if !json.Valid(vkey) {
		return nil, fmt.Errorf("verification key is not valid JSON")
	}
	return &Groth16{vkey: vkey}, nil
}

// NewFromFile loads the verification key from disk.
func NewFromFile(path string) (*Groth16, error) {
	vkey, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read verification key: %w", err)
	}
	return New(vkey)
}

// Verify reports whether the proof is valid for the given context. The
// proof payload is the circom proof JSON; anything that fails to decode is
// simply an invalid proof, never an internal error.
func (g *Groth16) Verify(challenge []byte, credentialID types.HexBytes, commitments []types.HexBytes,
	code types.CountryCode, proof []byte,
) bool {
	var proofData prooftypes.ProofData
	if err := json.Unmarshal(proof, &proofData); err != nil {
		log.Debugw("malformed proof payload", "error", err.Error())
		return false
	}
	signals, err := PublicSignals(challenge, credentialID, commitments, code)
	if err != nil {
		log.Debugw("could not derive public signals", "error", err.Error())
		return false
	}
	zkp := prooftypes.ZKProof{Proof: &proofData, PubSignals: signals}
	if err := rapidsnark.VerifyGroth16(zkp, g.vkey); err != nil {
		log.Debugw("proof verification failed", "error", err.Error())
		return false
	}
	return true
}

// PublicSignals derives the circuit's public inputs as decimal strings:
// the poseidon hash of challenge||credentialID, then the credential
// commitments in order, then the excluded country code. The prover derives
// the same list inside the wallet; a proof is only accepted if both sides
// agree on every element.
func PublicSignals(challenge []byte, credentialID types.HexBytes, commitments []types.HexBytes,
	code types.CountryCode,
) ([]string, error) {
	bound, err := poseidon.HashBytes(append(append([]byte{}, challenge...), credentialID...))
	if err != nil {
		return nil, fmt.Errorf("could not hash challenge and credential: %w", err)
	}
	signals := make([]string, 0, len(commitments)+2)
	signals = append(signals, bound.String())
	for _, commitment := range commitments {
		signals = append(signals, new(big.Int).SetBytes(commitment).String())
	}
	signals = append(signals, new(big.Int).SetBytes(code[:]).String())
	return signals, nil
}

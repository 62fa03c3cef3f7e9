// Package verifier implements the off-chain core of the election: it
// validates residency-exclusion statements, verifies the zero-knowledge
// proof against the voter's on-chain credential commitments, and issues
// the signed attestation the voting contract requires.
package verifier

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/zkvoting/exovote/log"
	"github.com/zkvoting/exovote/types"
)

// CredentialSource is the node collaborator: it resolves the credentials
// currently registered on an account.
type CredentialSource interface {
	// AccountCredentials returns the account's credentials in registration
	// order. An error means the node could not be queried.
	AccountCredentials(ctx context.Context, addr types.AccountAddress) ([]types.AccountCredential, error)
}

// ProofPrimitive is the opaque cryptographic check: it decides whether the
// proof demonstrates, against the credential commitments, that the hidden
// residency attribute is outside the excluded set. The implementation owns
// whatever global cryptographic context it needs.
type ProofPrimitive interface {
	Verify(challenge []byte, credentialID types.HexBytes, commitments []types.HexBytes,
		code types.CountryCode, proof []byte) bool
}

// ProofWithContext is the proof part of a prove request: the credential it
// was created against plus the opaque proof payload.
type ProofWithContext struct {
	Credential types.HexBytes  `json:"credential"`
	Proof      json.RawMessage `json:"proof"`
}

// ProveRequest is the payload a voter submits to obtain an attestation.
type ProveRequest struct {
	Statement types.Statement      `json:"statement"`
	Address   types.AccountAddress `json:"address"`
	Proof     ProofWithContext     `json:"proof"`
}

// Verifier glues the three off-chain components together. All fields are
// read-only after construction, so requests can be served with unbounded
// parallelism.
type Verifier struct {
	source    CredentialSource
	primitive ProofPrimitive
	signer    *Signer
}

// New builds a Verifier from its collaborators.
func New(source CredentialSource, primitive ProofPrimitive, signer *Signer) (*Verifier, error) {
	if source == nil {
		return nil, fmt.Errorf("missing credential source")
	}
	if primitive == nil {
		return nil, fmt.Errorf("missing proof primitive")
	}
	if signer == nil {
		return nil, fmt.Errorf("missing signer")
	}
	return &Verifier{source: source, primitive: primitive, signer: signer}, nil
}

// Signer returns the attestation signer, mainly so callers can publish the
// verification public key.
func (v *Verifier) Signer() *Signer {
	return v.signer
}

// CheckAndAttest runs the full trust handoff for one request: statement
// shape, credential lookup, proof verification, attestation. It performs at
// most one node query and never retries; every failure is terminal for the
// request and typed by the package error taxonomy.
func (v *Verifier) CheckAndAttest(ctx context.Context, req *ProveRequest) (types.HexBytes, error) {
	// Statement shape first: no network or proof work for malformed
	// statements.
	code, err := ValidateStatement(req.Statement)
	if err != nil {
		return nil, err
	}

	credentials, err := v.source.AccountCredentials(ctx, req.Address)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNodeAccess, err)
	}

	// Only the first credential is checked. An account can hold further
	// credentials that this service never looks at; that is a documented
	// limitation of the protocol, not an oversight to fix here.
	if len(credentials) == 0 {
		return nil, ErrCredential
	}
	credential := credentials[0]
	if !credential.ID.Equal(req.Proof.Credential) {
		return nil, ErrCredential
	}
	switch credential.Kind {
	case types.CredentialKindInitial:
		// Initial credentials carry no commitments, so there is nothing
		// to verify a proof against.
		return nil, ErrNotAllowed
	case types.CredentialKindNormal:
	default:
		return nil, ErrCredential
	}

	if !v.primitive.Verify(types.ProofChallenge[:], credential.ID, credential.Commitments, code, req.Proof.Proof) {
		return nil, ErrInvalidProofs
	}

	signature := v.signer.Attest(req.Address, code)
	log.Debugw("issued attestation", "address", req.Address.String(), "countryCode", code.String())
	return signature, nil
}

package types

// CredentialKind distinguishes the two on-chain credential flavours.
type CredentialKind string

const (
	// CredentialKindInitial is created by the identity provider when the
	// account is opened. It carries no attribute commitments, so nothing
	// can be proven against it.
	CredentialKindInitial CredentialKind = "initial"
	// CredentialKindNormal is a deployed credential holding the attribute
	// commitments proofs are checked against.
	CredentialKindNormal CredentialKind = "normal"
)

// AccountCredential is one credential registered on an account, as returned
// by the node's account query interface.
type AccountCredential struct {
	ID          HexBytes       `json:"id"`
	Kind        CredentialKind `json:"kind"`
	Commitments []HexBytes     `json:"commitments,omitempty"`
}

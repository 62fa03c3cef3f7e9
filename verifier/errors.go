package verifier

import "errors"

// Error taxonomy of the verification service. All of these are terminal
// for the request: the service never retries on behalf of the caller.
var (
	// ErrStatementNotAllowed rejects a statement whose shape is anything
	// other than a single residency-exclusion claim over one country.
	ErrStatementNotAllowed = errors.New("statement not allowed")
	// ErrCredential rejects a proof whose credential id does not match
	// the credential registered on the account.
	ErrCredential = errors.New("credential mismatch")
	// ErrNotAllowed rejects proofs against an initial credential, which
	// carries no commitments to verify against.
	ErrNotAllowed = errors.New("credential has no usable commitments")
	// ErrInvalidProofs rejects a proof that fails the cryptographic
	// check.
	ErrInvalidProofs = errors.New("invalid proofs")
	// ErrNodeAccess wraps a failure to query the node; the underlying
	// cause is attached with %w formatting at the call site.
	ErrNodeAccess = errors.New("cannot access the node")
)

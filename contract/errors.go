package contract

import "errors"

// Typed rejections returned by the election entry points. Each one maps to
// a distinct rejection the host reports to the caller; the election state
// is left untouched whenever any of them is returned.
var (
	// ErrParsingFailed is returned when a binary parameter cannot be
	// decoded.
	ErrParsingFailed = errors.New("parsing failed")
	// ErrVotingFinished is returned when a vote arrives after the end
	// time of the election.
	ErrVotingFinished = errors.New("voting finished")
	// ErrInvalidVotingOption is returned when voting for an option that
	// does not exist.
	ErrInvalidVotingOption = errors.New("invalid voting option")
	// ErrContractVoter is returned when a contract instance tries to
	// vote. Only accounts are allowed to participate.
	ErrContractVoter = errors.New("contract voter")
	// ErrInvalidSignature is returned when the verifier attestation does
	// not match the (sender, country code) pair.
	ErrInvalidSignature = errors.New("invalid signature")
)

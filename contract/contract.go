// Package contract implements the on-chain side of the election: a voting
// state machine that only accepts ballots carrying a valid attestation from
// the off-chain verification service.
//
// The host guarantees strictly serial execution of state transitions, so
// the election state is mutated without any internal locking. Every entry
// point either completes its mutation or returns a typed rejection with the
// state untouched.
package contract

import (
	"crypto/ed25519"
	"fmt"
	"time"

	"github.com/zkvoting/exovote/types"
)

// InitParameter carries everything needed to start an election.
type InitParameter struct {
	// Description of the election, free text.
	Description string `json:"description"`
	// Options is the ordered list of voting options (country codes). It
	// is immutable once the election exists; ballots reference options by
	// index into this list.
	Options []string `json:"options"`
	// EndTime is the last slot time at which a vote is accepted.
	EndTime time.Time `json:"endTime"`
	// VerifierKey is the ed25519 public key of the verification service.
	VerifierKey types.HexBytes `json:"verifierKey"`
}

// VoteParameter is a single vote: the chosen option plus the attestation
// signature issued by the verification service over
// (sender address, country code).
type VoteParameter struct {
	CountryCode string         `json:"countryCode"`
	Signature   types.HexBytes `json:"signature"`
}

// VotingView is the read-only projection of the election returned by View.
type VotingView struct {
	Description string            `json:"description"`
	EndTime     time.Time         `json:"endTime"`
	Tally       map[string]uint32 `json:"tally"`
}

// Election is the state of one election instance. It is created once by
// Init and afterwards mutated only by successful Vote transitions.
type Election struct {
	description string
	verifierKey ed25519.PublicKey
	options     []string
	endTime     time.Time
	ballots     map[types.AccountAddress]uint32
}

// Init creates the election state from the given parameter. The options
// list is not checked for emptiness: an election initialized with no
// options is valid but can never receive a vote.
func Init(p InitParameter) (*Election, error) {
	if len(p.VerifierKey) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: verifier key length %d, expected %d",
			ErrParsingFailed, len(p.VerifierKey), ed25519.PublicKeySize)
	}
	options := make([]string, len(p.Options))
	copy(options, p.Options)
	return &Election{
		description: p.Description,
		verifierKey: ed25519.PublicKey(append([]byte{}, p.VerifierKey...)),
		options:     options,
		endTime:     p.EndTime,
		ballots:     make(map[types.AccountAddress]uint32),
	}, nil
}

// Vote records (or replaces) the ballot of the sending account. The checks
// run in a fixed order and the first failure aborts the transition with the
// state unchanged:
//
//  1. the election must still be open at the current slot time,
//  2. the sender must be an account, not a contract instance,
//  3. the country code must be one of the voting options,
//  4. the attestation signature must match the canonical message derived
//     from (sender, country code) under the verifier public key.
//
// Only then is the ballot upserted, overwriting any previous vote by the
// same account.
func (e *Election) Vote(ctx ReceiveContext, p VoteParameter) error {
	if ctx.SlotTime.After(e.endTime) {
		return ErrVotingFinished
	}

	sender, ok := ctx.Sender.Account()
	if !ok {
		return ErrContractVoter
	}

	voteIndex := -1
	for i, option := range e.options {
		if option == p.CountryCode {
			voteIndex = i
			break
		}
	}
	if voteIndex < 0 {
		return ErrInvalidVotingOption
	}

	// A code that is not exactly two bytes can never have been attested,
	// since the canonical message format requires the fixed width.
	code, err := types.CountryCodeFromString(p.CountryCode)
	if err != nil {
		return ErrInvalidVotingOption
	}

	message := types.CanonicalMessage(sender, code)
	if len(p.Signature) != types.SignatureLength ||
		!ed25519.Verify(e.verifierKey, message, p.Signature) {
		return ErrInvalidSignature
	}

	e.ballots[sender] = uint32(voteIndex)
	return nil
}

// View returns the election description, the end time and the current
// tally. It never mutates state.
func (e *Election) View() VotingView {
	return VotingView{
		Description: e.description,
		EndTime:     e.endTime,
		Tally:       Tally(e.options, e.ballots),
	}
}

// Options returns a copy of the ordered voting options.
func (e *Election) Options() []string {
	options := make([]string, len(e.options))
	copy(options, e.options)
	return options
}

// EndTime returns the closing time of the election.
func (e *Election) EndTime() time.Time {
	return e.endTime
}

// Ballot returns the vote index currently stored for the given account,
// with ok reporting whether the account has voted at all.
func (e *Election) Ballot(addr types.AccountAddress) (uint32, bool) {
	index, ok := e.ballots[addr]
	return index, ok
}

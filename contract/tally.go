package contract

import "github.com/zkvoting/exovote/types"

// Tally folds the ballot store into per-option vote counts, keyed by the
// option name. Options with zero votes are not present in the result.
//
// The fold is linear in the number of ballots, which users control by
// voting. That is acceptable for a read-only view invoked off the critical
// path, but it does not scale to unbounded ballot counts.
func Tally(options []string, ballots map[types.AccountAddress]uint32) map[string]uint32 {
	tally := make(map[string]uint32)
	for _, voteIndex := range ballots {
		tally[options[voteIndex]]++
	}
	return tally
}

package contract

import (
	"time"

	"github.com/zkvoting/exovote/types"
)

// InstanceAddress identifies a deployed contract instance on the host
// chain.
type InstanceAddress struct {
	Index    uint64 `json:"index"`
	Subindex uint64 `json:"subindex"`
}

// Sender is the origin of a state transition: either an account or another
// contract instance. Exactly one of the two is set.
type Sender struct {
	account  *types.AccountAddress
	instance *InstanceAddress
}

// AccountSender builds a Sender for an individual account.
func AccountSender(addr types.AccountAddress) Sender {
	return Sender{account: &addr}
}

// InstanceSender builds a Sender for a contract instance.
func InstanceSender(addr InstanceAddress) Sender {
	return Sender{instance: &addr}
}

// Account returns the account address behind the sender, or false when the
// sender is a contract instance.
func (s Sender) Account() (types.AccountAddress, bool) {
	if s.account == nil {
		return types.AccountAddress{}, false
	}
	return *s.account, true
}

// ReceiveContext carries the host-provided execution metadata for a single
// state transition: the slot time of the enclosing block and the sender of
// the transaction. The host executes transitions strictly serially, so a
// context is never shared between concurrent calls.
type ReceiveContext struct {
	SlotTime time.Time
	Sender   Sender
}

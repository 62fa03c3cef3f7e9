package types

import (
	"fmt"
)

// AccountAddress is the fixed-length identifier of a voter account. It is
// treated as opaque: never derived from, never mutated.
type AccountAddress [AddressLength]byte

// AccountAddressFromBytes builds an AccountAddress from a byte slice,
// enforcing the exact length.
func AccountAddressFromBytes(b []byte) (AccountAddress, error) {
	var addr AccountAddress
	if len(b) != AddressLength {
		return addr, fmt.Errorf("invalid address length %d, expected %d", len(b), AddressLength)
	}
	copy(addr[:], b)
	return addr, nil
}

// Bytes returns the address as a byte slice.
func (a AccountAddress) Bytes() []byte {
	return a[:]
}

// String returns the address as a 0x-prefixed hex string.
func (a AccountAddress) String() string {
	b := HexBytes(a[:])
	return b.String()
}

// MarshalJSON encodes the address as a hex string.
func (a AccountAddress) MarshalJSON() ([]byte, error) {
	return HexBytes(a[:]).MarshalJSON()
}

// UnmarshalJSON decodes the address from a hex string, enforcing the exact
// length.
func (a *AccountAddress) UnmarshalJSON(data []byte) error {
	var b HexBytes
	if err := b.UnmarshalJSON(data); err != nil {
		return err
	}
	addr, err := AccountAddressFromBytes(b)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

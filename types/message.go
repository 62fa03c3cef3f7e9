package types

// CanonicalMessage builds the exact byte sequence the verification service
// signs and the voting contract later re-derives: the 32 address bytes
// followed by the 2 raw country code bytes. There is no length prefix or
// delimiter, which is unambiguous only because both parts are fixed-width.
// The two sides never share memory, so any divergence here breaks every
// attestation; keep this as the single definition of the layout.
func CanonicalMessage(addr AccountAddress, code CountryCode) []byte {
	msg := make([]byte, 0, AddressLength+CountryCodeLength)
	msg = append(msg, addr[:]...)
	msg = append(msg, code[:]...)
	return msg
}

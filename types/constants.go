package types

const (
	// AddressLength is the byte length of an account address.
	AddressLength = 32
	// CountryCodeLength is the byte length of an ISO 3166-1 alpha-2
	// country code. The canonical signature message relies on this being
	// fixed, since the country code is appended with no length prefix.
	CountryCodeLength = 2
	// SignatureLength is the byte length of an ed25519 attestation
	// signature.
	SignatureLength = 64
	// ResidencyAttributeTag is the identity attribute holding the
	// country of residency.
	ResidencyAttributeTag = 4
)

// ProofChallenge is the fixed challenge the residency proof is verified
// against. There is no temporal aspect to the proof, so the challenge never
// changes, but it must match the one the wallet used when creating the
// proof. A consequence is that an issued attestation is not bound to a
// particular session beyond the (address, country code) pair it signs.
var ProofChallenge = [4]byte{0, 0, 0, 0}

package types

// ClaimKind discriminates the atomic claim variants a wallet can prove.
// The set is closed: anything outside it is an unsupported statement shape.
type ClaimKind string

const (
	// ClaimRevealAttribute discloses an attribute in the clear.
	ClaimRevealAttribute ClaimKind = "RevealAttribute"
	// ClaimAttributeInSet proves the attribute belongs to a set.
	ClaimAttributeInSet ClaimKind = "AttributeInSet"
	// ClaimAttributeNotInSet proves the attribute is outside a set.
	ClaimAttributeNotInSet ClaimKind = "AttributeNotInSet"
	// ClaimAttributeInRange proves the attribute lies in a range.
	ClaimAttributeInRange ClaimKind = "AttributeInRange"
)

// AtomicClaim is a single claim about a hidden identity attribute. The
// meaning of Set, Lower and Upper depends on Type.
type AtomicClaim struct {
	Type         ClaimKind `json:"type"`
	AttributeTag uint8     `json:"attributeTag"`
	Set          []string  `json:"set,omitempty"`
	Lower        string    `json:"lower,omitempty"`
	Upper        string    `json:"upper,omitempty"`
}

// Statement is an ordered sequence of atomic claims, submitted together
// with a zero-knowledge proof over all of them.
type Statement []AtomicClaim

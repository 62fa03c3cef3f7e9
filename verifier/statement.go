package verifier

import (
	"github.com/zkvoting/exovote/types"
)

// ValidateStatement checks that the submitted statement has exactly the
// shape this protocol attests to: a single "attribute not in set" claim
// over the residency attribute, excluding exactly one two-byte country
// code. On success it returns the extracted country code.
//
// The check is purely structural and runs before any network or proof
// work, so malformed statements are rejected cheaply. Every other claim
// shape, including otherwise well-formed statements with extra claims,
// fails with ErrStatementNotAllowed.
func ValidateStatement(statement types.Statement) (types.CountryCode, error) {
	if len(statement) != 1 {
		return types.CountryCode{}, ErrStatementNotAllowed
	}
	claim := statement[0]
	switch claim.Type {
	case types.ClaimAttributeNotInSet:
		if claim.AttributeTag != types.ResidencyAttributeTag {
			return types.CountryCode{}, ErrStatementNotAllowed
		}
		if len(claim.Set) != 1 {
			return types.CountryCode{}, ErrStatementNotAllowed
		}
		code, err := types.CountryCodeFromString(claim.Set[0])
		if err != nil {
			return types.CountryCode{}, ErrStatementNotAllowed
		}
		return code, nil
	case types.ClaimRevealAttribute, types.ClaimAttributeInSet, types.ClaimAttributeInRange:
		// Recognized claim kinds, but none of them states residency
		// exclusion, so there is nothing this service may attest to.
		return types.CountryCode{}, ErrStatementNotAllowed
	default:
		return types.CountryCode{}, ErrStatementNotAllowed
	}
}

package types

import "fmt"

// CountryCode is a two-byte ASCII country code. It doubles as a voting
// option and as the excluded residency claimed by the voter.
type CountryCode [CountryCodeLength]byte

// CountryCodeFromString builds a CountryCode from its string form,
// enforcing the exact two-byte length.
func CountryCodeFromString(s string) (CountryCode, error) {
	var cc CountryCode
	if len(s) != CountryCodeLength {
		return cc, fmt.Errorf("invalid country code %q: length %d, expected %d", s, len(s), CountryCodeLength)
	}
	copy(cc[:], s)
	return cc, nil
}

// Bytes returns the raw two bytes of the country code.
func (c CountryCode) Bytes() []byte {
	return c[:]
}

// String returns the country code as a string, e.g. "DK".
func (c CountryCode) String() string {
	return string(c[:])
}

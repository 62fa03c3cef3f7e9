package types

import (
	"bytes"
	"encoding/json"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestCanonicalMessage(t *testing.T) {
	c := qt.New(t)

	var addr AccountAddress
	for i := range addr {
		addr[i] = byte(i)
	}
	code, err := CountryCodeFromString("DK")
	c.Assert(err, qt.IsNil)

	msg := CanonicalMessage(addr, code)

	// The layout is fixed: 32 address bytes followed by the 2 country code
	// bytes, no delimiters. Both signer and contract depend on it.
	c.Assert(msg, qt.HasLen, AddressLength+CountryCodeLength)
	c.Assert(msg[:AddressLength], qt.DeepEquals, addr.Bytes())
	c.Assert(string(msg[AddressLength:]), qt.Equals, "DK")

	// The message is a copy, not a view into the inputs.
	msg[0] ^= 0xff
	c.Assert(addr[0], qt.Equals, byte(0))
}

func TestCountryCodeFromString(t *testing.T) {
	c := qt.New(t)

	code, err := CountryCodeFromString("IT")
	c.Assert(err, qt.IsNil)
	c.Assert(code.String(), qt.Equals, "IT")

	for _, s := range []string{"", "D", "DEU"} {
		_, err := CountryCodeFromString(s)
		c.Assert(err, qt.IsNotNil, qt.Commentf("code %q", s))
	}
}

func TestAccountAddressJSON(t *testing.T) {
	c := qt.New(t)

	addr := AccountAddress{0xab, 0xcd}
	data, err := json.Marshal(addr)
	c.Assert(err, qt.IsNil)
	c.Assert(bytes.HasPrefix(data, []byte(`"0xabcd`)), qt.IsTrue)

	var decoded AccountAddress
	c.Assert(json.Unmarshal(data, &decoded), qt.IsNil)
	c.Assert(decoded, qt.Equals, addr)

	// Anything that is not exactly AddressLength bytes is rejected.
	c.Assert(json.Unmarshal([]byte(`"0xabcd"`), &decoded), qt.IsNotNil)
}

func TestHexBytesJSON(t *testing.T) {
	c := qt.New(t)

	b := HexBytes{0x01, 0xff}
	data, err := json.Marshal(b)
	c.Assert(err, qt.IsNil)
	c.Assert(string(data), qt.Equals, `"0x01ff"`)

	var decoded HexBytes
	c.Assert(json.Unmarshal(data, &decoded), qt.IsNil)
	c.Assert(decoded, qt.DeepEquals, b)

	// The 0x prefix is optional on input.
	c.Assert(json.Unmarshal([]byte(`"01ff"`), &decoded), qt.IsNil)
	c.Assert(decoded, qt.DeepEquals, b)

	c.Assert(json.Unmarshal([]byte(`"0xzz"`), &decoded), qt.IsNotNil)
	c.Assert(json.Unmarshal([]byte(`42`), &decoded), qt.IsNotNil)
}

func TestHexStringToHexBytes(t *testing.T) {
	c := qt.New(t)

	b, err := HexStringToHexBytes("0xdeadbeef")
	c.Assert(err, qt.IsNil)
	c.Assert(b.String(), qt.Equals, "0xdeadbeef")

	_, err = HexStringToHexBytes("xyz")
	c.Assert(err, qt.IsNotNil)
}

package domain

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Address is a stable account identifier on the asset ledger:
// "0x" followed by 40 lowercase hex characters (a 20-byte account id).
type Address string

// ZeroAddress is the empty account identifier.
const ZeroAddress Address = "0x0000000000000000000000000000000000000000"

const addressHexLen = 40

// ParseAddress validates and normalizes an account identifier.
func ParseAddress(s string) (Address, error) {
	if len(s) != 2+addressHexLen || (s[:2] != "0x" && s[:2] != "0X") {
		return "", fmt.Errorf("address %q: want 0x followed by %d hex chars", s, addressHexLen)
	}
	body := strings.ToLower(s[2:])
	if _, err := hex.DecodeString(body); err != nil {
		return "", fmt.Errorf("address %q: %w", s, err)
	}
	return Address("0x" + body), nil
}

// MustAddress parses an address and panics on failure. For tests and
// configuration constants only.
func MustAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// IsZero reports whether the address is unset or all-zero.
func (a Address) IsZero() bool {
	return a == "" || a == ZeroAddress
}

// Bytes returns the 20-byte account id. The address must be well-formed.
func (a Address) Bytes() []byte {
	b, err := hex.DecodeString(string(a[2:]))
	if err != nil {
		panic(fmt.Sprintf("malformed address %q", string(a)))
	}
	return b
}

func (a Address) String() string { return string(a) }

// AddressFromBytes builds an address from a 20-byte account id.
func AddressFromBytes(b []byte) Address {
	return Address("0x" + hex.EncodeToString(b))
}

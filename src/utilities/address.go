package utilities

import (
	"math/big"
	"regexp"
	"strings"

	"github.com/KaushikKC/VeilPay/src/reasoncodes"
)

// Address is a 20-byte EVM-style account identifier, held lowercase
// with the 0x prefix. All domain layers operate on normalized addresses.
type Address = string

const ZeroAddress Address = "0x0000000000000000000000000000000000000000"

var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// NormalizeAddress validates the 0x+40-hex shape and lowercases.
func NormalizeAddress(raw string) (Address, error) {
	if !addressPattern.MatchString(raw) {
		return "", reasoncodes.NewErrorf(reasoncodes.ErrInvalidInput, "malformed address %q", raw)
	}
	return strings.ToLower(raw), nil
}

func IsZeroAddress(addr Address) bool {
	return strings.EqualFold(addr, ZeroAddress)
}

// AddressToDecimal converts an address to the decimal field-element
// encoding the circuit consumes. Addresses are 160 bits, well inside
// the BN254 scalar field.
func AddressToDecimal(addr Address) string {
	n := new(big.Int)
	n.SetString(strings.TrimPrefix(addr, "0x"), 16)
	return n.String()
}

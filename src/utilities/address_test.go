package utilities

import (
	"testing"

	"github.com/KaushikKC/VeilPay/src/reasoncodes"
)

func TestNormalizeAddress(t *testing.T) {
	addr, err := NormalizeAddress("0xABCDEFabcdef0123456789ABCDEFabcdef012345")
	if err != nil {
		t.Fatalf("NormalizeAddress failed: %v", err)
	}
	if addr != "0xabcdefabcdef0123456789abcdefabcdef012345" {
		t.Errorf("Expected a lowercased address, got %s", addr)
	}
}

func TestNormalizeAddressRejectsMalformedInputs(t *testing.T) {
	tests := []string{
		"",
		"0x123",
		"abcdefabcdef0123456789abcdefabcdef012345",
		"0xabcdefabcdef0123456789abcdefabcdef01234g",
		"0xabcdefabcdef0123456789abcdefabcdef0123456",
	}
	for _, raw := range tests {
		if _, err := NormalizeAddress(raw); reasoncodes.CodeOf(err) != reasoncodes.ErrInvalidInput {
			t.Errorf("Expected InvalidInput for %q, got %v", raw, err)
		}
	}
}

func TestIsZeroAddress(t *testing.T) {
	if !IsZeroAddress(ZeroAddress) {
		t.Error("Expected the zero address to be recognized")
	}
	if IsZeroAddress("0x0000000000000000000000000000000000000001") {
		t.Error("Expected a non-zero address to pass")
	}
}

func TestAddressToDecimal(t *testing.T) {
	if got := AddressToDecimal("0x000000000000000000000000000000000000000a"); got != "10" {
		t.Errorf("Expected 10, got %s", got)
	}
	if got := AddressToDecimal(ZeroAddress); got != "0" {
		t.Errorf("Expected 0, got %s", got)
	}
}

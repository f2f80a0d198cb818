package commitment

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/poseidon2"

	"github.com/KaushikKC/VeilPay/src/reasoncodes"
	"github.com/KaushikKC/VeilPay/src/utilities"
)

// NonceBytes is the entropy drawn per commitment (128 bits).
const NonceBytes = 16

// Commit computes Poseidon2(subject, salary, nonce) over the BN254 scalar
// field. Pure and deterministic: the same inputs always yield the same
// field element. The in-circuit hash uses the same Merkle-Damgard
// construction, so commitments computed here are provable later.
func Commit(subject utilities.Address, salary uint64, nonce *big.Int) (*big.Int, error) {
	addr, err := utilities.NormalizeAddress(subject)
	if err != nil {
		return nil, err
	}
	subjectInt := new(big.Int)
	subjectInt.SetString(utilities.AddressToDecimal(addr), 10)
	return CommitField(subjectInt, salary, nonce)
}

// CommitField is the field-level core of Commit for callers that already
// hold the subject as a field element (the proof path accepts both hex
// and decimal subject encodings).
func CommitField(subject *big.Int, salary uint64, nonce *big.Int) (*big.Int, error) {
	if salary == 0 {
		return nil, reasoncodes.NewError(reasoncodes.ErrInvalidInput, "salary must be a positive integer")
	}
	if nonce == nil || nonce.Sign() < 0 || nonce.Cmp(fr.Modulus()) >= 0 {
		return nil, reasoncodes.NewError(reasoncodes.ErrInvalidInput, "nonce outside the scalar field")
	}
	if subject == nil || subject.Sign() < 0 || subject.Cmp(fr.Modulus()) >= 0 {
		return nil, reasoncodes.NewError(reasoncodes.ErrInvalidInput, "subject outside the scalar field")
	}

	hasher := poseidon2.NewMerkleDamgardHasher()
	for _, v := range []*big.Int{subject, new(big.Int).SetUint64(salary), nonce} {
		var el fr.Element
		el.SetBigInt(v)
		b := el.Bytes()
		hasher.Write(b[:])
	}
	return new(big.Int).SetBytes(hasher.Sum(nil)), nil
}

// NewNonce draws a fresh 128-bit blinding value from the system CSPRNG.
// Nonces are only ever generated here; the create path never accepts one
// from a caller, so reuse across commitments is a 2^-128 event.
func NewNonce() (*big.Int, error) {
	buf := make([]byte, NonceBytes)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("draw nonce: %w", err)
	}
	return new(big.Int).SetBytes(buf), nil
}

// ToBytes32Hex renders a field element as the 0x-prefixed 32-byte hex
// form used for ledger storage.
func ToBytes32Hex(commitment *big.Int) string {
	return fmt.Sprintf("0x%064x", commitment)
}

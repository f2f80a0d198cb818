package circuit

import (
	"math/big"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/poseidon2"
)

// IncomeCircuit proves knowledge of a salary under a Poseidon2
// commitment together with whether it meets a public threshold.
//
// Public variable declaration order is wire format and must not change:
// [Valid, Threshold, Commitment]. Every consumer of public signals
// indexes into that order.
type IncomeCircuit struct {
	Valid      frontend.Variable `gnark:",public"`
	Threshold  frontend.Variable `gnark:",public"`
	Commitment frontend.Variable `gnark:",public"`

	Salary  frontend.Variable `gnark:",secret"`
	Nonce   frontend.Variable `gnark:",secret"`
	Subject frontend.Variable `gnark:",secret"`
}

// Define implements the frontend.Circuit interface.
func (c *IncomeCircuit) Define(api frontend.API) error {
	hasher, err := poseidon2.New(api)
	if err != nil {
		return err
	}
	hasher.Write(c.Subject, c.Salary, c.Nonce)
	api.AssertIsEqual(hasher.Sum(), c.Commitment)

	// Bound both operands to 64 bits so the comparison below is sound.
	api.ToBinary(c.Salary, 64)
	api.ToBinary(c.Threshold, 64)

	// salary - threshold + 2^64 fits in 65 bits; the top bit is set
	// exactly when salary >= threshold. The prover must assign Valid to
	// that bit or constraint satisfaction fails, so a generated proof
	// always carries an honest flag.
	shift := new(big.Int).Lsh(big.NewInt(1), 64)
	diff := api.Add(api.Sub(c.Salary, c.Threshold), shift)
	bits := api.ToBinary(diff, 65)
	api.AssertIsEqual(c.Valid, bits[64])

	return nil
}

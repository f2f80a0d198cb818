package zkp

import (
	"github.com/consensys/gnark/backend/groth16"
	groth16bn254 "github.com/consensys/gnark/backend/groth16/bn254"

	"github.com/KaushikKC/VeilPay/src/reasoncodes"
)

// pointsFromProof extracts the A, B, C group elements from a BN254
// Groth16 proof as decimal affine coordinates.
func pointsFromProof(p groth16.Proof) (ProofPoints, error) {
	bp, ok := p.(*groth16bn254.Proof)
	if !ok {
		return ProofPoints{}, reasoncodes.NewError(reasoncodes.ErrInvalidProof, "proof is not a BN254 Groth16 proof")
	}
	return ProofPoints{
		A: [2]string{bp.Ar.X.String(), bp.Ar.Y.String()},
		B: [2][2]string{
			{bp.Bs.X.A0.String(), bp.Bs.X.A1.String()},
			{bp.Bs.Y.A0.String(), bp.Bs.Y.A1.String()},
		},
		C: [2]string{bp.Krs.X.String(), bp.Krs.Y.String()},
	}, nil
}

package zkp

import (
	"encoding/hex"
	"fmt"

	"github.com/near/borsh-go"
)

// ProofPoints exposes the three Groth16 group elements as decimal
// coordinate strings for JSON consumers.
type ProofPoints struct {
	A [2]string    `json:"pi_a"`
	B [2][2]string `json:"pi_b"`
	C [2]string    `json:"pi_c"`
}

// ProofArtifact is the full output of proof generation: the structured
// proof, the raw gnark encoding, the fixed-order public signals and the
// ledger-call-ready envelope.
type ProofArtifact struct {
	Proof          ProofPoints `json:"proof"`
	ProofBytes     []byte      `json:"proofBytes"`
	PublicSignals  []string    `json:"publicSignals"`
	LedgerEncoding string      `json:"ledgerEncoding"`
}

// ledgerEnvelope is the borsh wire struct submitted to the verification
// gate: gnark-serialized proof plus public witness.
type ledgerEnvelope struct {
	Proof         []byte
	PublicWitness []byte
}

// EncodeLedgerCall packs proof and public witness bytes into the hex
// borsh envelope used for gate submission.
func EncodeLedgerCall(proofBytes, publicWitnessBytes []byte) (string, error) {
	raw, err := borsh.Serialize(ledgerEnvelope{
		Proof:         proofBytes,
		PublicWitness: publicWitnessBytes,
	})
	if err != nil {
		return "", fmt.Errorf("borsh serialize: %w", err)
	}
	return "0x" + hex.EncodeToString(raw), nil
}

// DecodeLedgerCall is the inverse of EncodeLedgerCall.
func DecodeLedgerCall(encoded string) ([]byte, []byte, error) {
	if len(encoded) < 2 || encoded[:2] != "0x" {
		return nil, nil, fmt.Errorf("ledger encoding missing 0x prefix")
	}
	raw, err := hex.DecodeString(encoded[2:])
	if err != nil {
		return nil, nil, fmt.Errorf("ledger encoding hex: %w", err)
	}
	var env ledgerEnvelope
	if err := borsh.Deserialize(&env, raw); err != nil {
		return nil, nil, fmt.Errorf("borsh deserialize: %w", err)
	}
	return env.Proof, env.PublicWitness, nil
}

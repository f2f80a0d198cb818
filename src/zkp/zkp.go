package zkp

import (
	"github.com/consensys/gnark-crypto/ecc"
)

const (
	CurveID = ecc.BN254
)

// Public-signal indexes. The order is fixed wire format shared with the
// circuit's public variable declaration order.
const (
	SignalValid      = 0
	SignalThreshold  = 1
	SignalCommitment = 2
)

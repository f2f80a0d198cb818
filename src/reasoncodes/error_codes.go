package reasoncodes

type ReasonCode string

const (
	ErrInvalidInput        ReasonCode = "InvalidInput"
	ErrZeroAddress         ReasonCode = "ZeroAddress"
	ErrZeroAmount          ReasonCode = "ZeroAmount"
	ErrArrayLengthMismatch ReasonCode = "ArrayLengthMismatch"
	ErrNotEmployer         ReasonCode = "NotEmployer"
	ErrUnauthorized        ReasonCode = "Unauthorized"
	ErrAlreadyRegistered   ReasonCode = "AlreadyRegistered"
	ErrNotRegistered       ReasonCode = "NotRegistered"
	ErrProverUnavailable   ReasonCode = "ProverUnavailable"
	ErrWitnessInvalid      ReasonCode = "WitnessInvalid"
	ErrInvalidProof        ReasonCode = "InvalidProof"
	ErrProofOutputInvalid  ReasonCode = "ProofOutputInvalid"
	ErrNotFound            ReasonCode = "NotFound"
	ErrInsufficientFunds   ReasonCode = "InsufficientFunds"
)

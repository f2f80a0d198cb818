package verification

// VerificationRecord is a persisted income credential: subject proved,
// at some point in time, an income of at least Threshold bound to the
// given commitment. Only accepted proofs are recorded, so Valid is
// always true; the column exists for forward compatibility with
// revocation.
type VerificationRecord struct {
	Id         int    `gorm:"primaryKey;autoIncrement"`
	Subject    string `gorm:"index"`
	Threshold  uint64
	Commitment string
	Timestamp  int64
	Valid      bool
}

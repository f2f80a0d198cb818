package commitment

// EmployeeSecret is the off-chain record an employer keeps so the
// employee can generate proofs later. The salary and nonce never reach
// the ledger; only CommitmentHex does.
type EmployeeSecret struct {
	Id            int    `gorm:"primaryKey;autoIncrement"`
	Subject       string `gorm:"uniqueIndex"`
	Salary        string
	Nonce         string
	Commitment    string // decimal field element, circuit input encoding
	CommitmentHex string // 0x + 64 hex, ledger storage encoding
	Timestamp     int64
}

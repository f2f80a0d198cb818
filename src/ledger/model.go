package ledger

// LedgerEntry is one committed payroll run for a subject. Entries are
// append-only; per-subject order is the auto-increment id.
type LedgerEntry struct {
	Id         int    `gorm:"primaryKey;autoIncrement"`
	Subject    string `gorm:"index"`
	Employer   string
	Commitment string // 0x + 64 hex
	Timestamp  int64
}

// Registration is the employer→employee relation. A subject may be held
// by the same employer at most once at a time; removal does not touch
// prior LedgerEntries.
type Registration struct {
	Id       int    `gorm:"primaryKey;autoIncrement"`
	Employer string `gorm:"uniqueIndex:idx_employer_subject"`
	Subject  string `gorm:"uniqueIndex:idx_employer_subject"`
}

// AuthorizedWriter marks addresses allowed to append on behalf of
// employers (normally just the settlement executor).
type AuthorizedWriter struct {
	Id      int    `gorm:"primaryKey;autoIncrement"`
	Address string `gorm:"uniqueIndex"`
	Enabled bool
}

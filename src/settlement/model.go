package settlement

// Balance tracks a token holding per address. The default token is the
// mock USDC ledger used for payroll settlement.
type Balance struct {
	Id      int    `gorm:"primaryKey;autoIncrement"`
	Token   string `gorm:"uniqueIndex:idx_token_address"`
	Address string `gorm:"uniqueIndex:idx_token_address"`
	Amount  uint64
}

// StablecoinConfig is the single-row owner-controlled selection of the
// settlement token.
type StablecoinConfig struct {
	Id    int `gorm:"primaryKey"`
	Token string
}

const DefaultStablecoin = "musdc"

package settlement

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/KaushikKC/VeilPay/src/reasoncodes"
)

type Repository interface {
	BalanceOf(token, address string) (uint64, error)
	Credit(token, address string, amount uint64) error
	Debit(token, address string, amount uint64) error
	ActiveToken() (string, error)
	SetActiveToken(token string) error
	WithTx(tx *gorm.DB) Repository
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

type repository struct {
	db *gorm.DB
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) BalanceOf(token, address string) (uint64, error) {
	var balance Balance
	err := r.db.Where("token = ? AND address = ?", token, address).First(&balance).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return balance.Amount, nil
}

func (r *repository) Credit(token, address string, amount uint64) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token"}, {Name: "address"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"amount": gorm.Expr("amount + ?", amount),
		}),
	}).Create(&Balance{Token: token, Address: address, Amount: amount}).Error
}

func (r *repository) Debit(token, address string, amount uint64) error {
	var balance Balance
	err := r.db.Where("token = ? AND address = ?", token, address).First(&balance).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && balance.Amount < amount) {
		return reasoncodes.NewErrorf(reasoncodes.ErrInsufficientFunds, "%s holds less than the transfer amount", address)
	}
	if err != nil {
		return err
	}
	balance.Amount -= amount
	return r.db.Save(&balance).Error
}

func (r *repository) ActiveToken() (string, error) {
	var cfg StablecoinConfig
	err := r.db.First(&cfg, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return DefaultStablecoin, nil
	}
	if err != nil {
		return "", err
	}
	return cfg.Token, nil
}

func (r *repository) SetActiveToken(token string) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"token"}),
	}).Create(&StablecoinConfig{Id: 1, Token: token}).Error
}

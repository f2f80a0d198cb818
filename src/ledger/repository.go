package ledger

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	CreateRegistration(reg *Registration) error
	DeleteRegistration(employer, subject string) (bool, error)
	HasRegistration(employer, subject string) (bool, error)
	EmployeesOf(employer string) ([]string, error)

	AppendEntry(entry *LedgerEntry) error
	EntriesOf(subject string) ([]LedgerEntry, error)
	LatestEntry(subject string) (*LedgerEntry, error)
	CountEntries(subject string) (int64, error)

	SetWriter(address string, enabled bool) error
	IsWriter(address string) (bool, error)

	// WithTx returns a repository bound to tx so the settlement
	// executor can append inside its own transaction.
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

func (r *repository) CreateRegistration(reg *Registration) error {
	return r.db.Create(reg).Error
}

func (r *repository) DeleteRegistration(employer, subject string) (bool, error) {
	res := r.db.Where("employer = ? AND subject = ?", employer, subject).Delete(&Registration{})
	return res.RowsAffected > 0, res.Error
}

func (r *repository) HasRegistration(employer, subject string) (bool, error) {
	var count int64
	err := r.db.Model(&Registration{}).
		Where("employer = ? AND subject = ?", employer, subject).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) EmployeesOf(employer string) ([]string, error) {
	var subjects []string
	err := r.db.Model(&Registration{}).
		Where("employer = ?", employer).
		Order("id").
		Pluck("subject", &subjects).Error
	return subjects, err
}

func (r *repository) AppendEntry(entry *LedgerEntry) error {
	return r.db.Create(entry).Error
}

func (r *repository) EntriesOf(subject string) ([]LedgerEntry, error) {
	var entries []LedgerEntry
	err := r.db.Where("subject = ?", subject).Order("id").Find(&entries).Error
	return entries, err
}

func (r *repository) LatestEntry(subject string) (*LedgerEntry, error) {
	var entry LedgerEntry
	err := r.db.Where("subject = ?", subject).Order("id DESC").First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *repository) CountEntries(subject string) (int64, error) {
	var count int64
	err := r.db.Model(&LedgerEntry{}).Where("subject = ?", subject).Count(&count).Error
	return count, err
}

func (r *repository) SetWriter(address string, enabled bool) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}},
		DoUpdates: clause.AssignmentColumns([]string{"enabled"}),
	}).Create(&AuthorizedWriter{Address: address, Enabled: enabled}).Error
}

func (r *repository) IsWriter(address string) (bool, error) {
	var writer AuthorizedWriter
	err := r.db.Where("address = ? AND enabled = ?", address, true).First(&writer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

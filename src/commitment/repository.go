package commitment

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/KaushikKC/VeilPay/src/reasoncodes"
)

type Repository interface {
	Save(secret *EmployeeSecret) error
	GetBySubject(subject string) (*EmployeeSecret, error)
	GetAll() ([]EmployeeSecret, error)
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

type repository struct {
	db *gorm.DB
}

func (r *repository) Save(secret *EmployeeSecret) error {
	// Latest payroll run wins, mirroring the per-subject keyed store.
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "subject"}},
		UpdateAll: true,
	}).Create(secret).Error
}

func (r *repository) GetBySubject(subject string) (*EmployeeSecret, error) {
	var secret EmployeeSecret
	err := r.db.Where("subject = ?", subject).First(&secret).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, reasoncodes.NewErrorf(reasoncodes.ErrNotFound, "no commitment for %s", subject)
	}
	if err != nil {
		return nil, err
	}
	return &secret, nil
}

func (r *repository) GetAll() ([]EmployeeSecret, error) {
	var secrets []EmployeeSecret
	err := r.db.Order("id").Find(&secrets).Error
	return secrets, err
}

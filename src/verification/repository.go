package verification

import (
	"gorm.io/gorm"
)

type Repository interface {
	Save(record *VerificationRecord) error
	Exists(subject string, threshold uint64, commitment string) (bool, error)
	HasAtLeast(subject string, threshold uint64) (bool, error)
	FindBySubject(subject string) ([]VerificationRecord, error)
	CountBySubject(subject string) (int64, error)
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

type repository struct {
	db *gorm.DB
}

func (r *repository) Save(record *VerificationRecord) error {
	return r.db.Create(record).Error
}

func (r *repository) Exists(subject string, threshold uint64, commitment string) (bool, error) {
	var count int64
	err := r.db.Model(&VerificationRecord{}).
		Where("subject = ? AND threshold = ? AND commitment = ?", subject, threshold, commitment).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) HasAtLeast(subject string, threshold uint64) (bool, error) {
	var count int64
	err := r.db.Model(&VerificationRecord{}).
		Where("subject = ? AND threshold >= ? AND valid = ?", subject, threshold, true).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindBySubject(subject string) ([]VerificationRecord, error) {
	var records []VerificationRecord
	err := r.db.Where("subject = ?", subject).Order("id asc").Find(&records).Error
	return records, err
}

func (r *repository) CountBySubject(subject string) (int64, error) {
	var count int64
	err := r.db.Model(&VerificationRecord{}).Where("subject = ?", subject).Count(&count).Error
	return count, err
}

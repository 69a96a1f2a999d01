package repositories

import (
	"errors"
	"time"

	"autobuy_backend/internal/models"

	"gorm.io/gorm"
)

var ErrOTPNotFound = errors.New("otp record not found")

type OTPRepository interface {
	// Replace drops any previous code for the account before saving
	// the new one, so only the latest code is ever valid.
	Replace(record *models.OTPRecord) error
	FindByAccount(accountID string) (*models.OTPRecord, error)
	FindByEmail(role models.Role, email string) (*models.OTPRecord, error)
	// ProbeByEmail checks roles in models.ProbeOrder and returns the
	// first pending code whose email matches.
	ProbeByEmail(email string) (*models.OTPRecord, error)
	DeleteByAccount(accountID string) error
	DeleteExpired(now time.Time) (int64, error)
}

type OTPRepositoryImpl struct {
	db *gorm.DB
}

func NewOTPRepository(db *gorm.DB) OTPRepository {
	return &OTPRepositoryImpl{db: db}
}

func (r *OTPRepositoryImpl) Replace(record *models.OTPRecord) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id = ?", record.AccountID).
			Delete(&models.OTPRecord{}).Error; err != nil {
			return err
		}
		return tx.Create(record).Error
	})
}

func (r *OTPRepositoryImpl) FindByAccount(accountID string) (*models.OTPRecord, error) {
	var record models.OTPRecord
	err := r.db.First(&record, "account_id = ?", accountID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOTPNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *OTPRepositoryImpl) FindByEmail(role models.Role, email string) (*models.OTPRecord, error) {
	var record models.OTPRecord
	err := r.db.First(&record, "role = ? AND email = ?", role, email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOTPNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *OTPRepositoryImpl) ProbeByEmail(email string) (*models.OTPRecord, error) {
	for _, role := range models.ProbeOrder {
		record, err := r.FindByEmail(role, email)
		if errors.Is(err, ErrOTPNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return record, nil
	}
	return nil, ErrOTPNotFound
}

func (r *OTPRepositoryImpl) DeleteByAccount(accountID string) error {
	return r.db.Where("account_id = ?", accountID).Delete(&models.OTPRecord{}).Error
}

func (r *OTPRepositoryImpl) DeleteExpired(now time.Time) (int64, error) {
	result := r.db.Where("expires_at < ?", now).Delete(&models.OTPRecord{})
	return result.RowsAffected, result.Error
}

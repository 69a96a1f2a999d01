package repositories

import (
	"errors"

	"autobuy_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	GetBuyerProfile(accountID string) (*models.BuyerProfile, error)
	UpsertBuyerProfile(accountID string, fields map[string]interface{}) error
	GetBrokerProfile(accountID string) (*models.BrokerProfile, error)
	UpsertBrokerProfile(accountID string, fields map[string]interface{}) error
	ListBrokerProfiles(limit, offset int) ([]models.BrokerProfile, error)
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) GetBuyerProfile(accountID string) (*models.BuyerProfile, error) {
	var profile models.BuyerProfile
	err := r.db.First(&profile, "account_id = ?", accountID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpsertBuyerProfile(accountID string, fields map[string]interface{}) error {
	return r.upsert(&models.BuyerProfile{AccountID: accountID}, accountID, fields)
}

func (r *ProfileRepositoryImpl) GetBrokerProfile(accountID string) (*models.BrokerProfile, error) {
	var profile models.BrokerProfile
	err := r.db.First(&profile, "account_id = ?", accountID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpsertBrokerProfile(accountID string, fields map[string]interface{}) error {
	return r.upsert(&models.BrokerProfile{AccountID: accountID}, accountID, fields)
}

func (r *ProfileRepositoryImpl) ListBrokerProfiles(limit, offset int) ([]models.BrokerProfile, error) {
	var profiles []models.BrokerProfile
	query := r.db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	err := query.Find(&profiles).Error
	return profiles, err
}

func (r *ProfileRepositoryImpl) upsert(blank interface{}, accountID string, fields map[string]interface{}) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(blank).Where("account_id = ?", accountID).Updates(fields)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			return nil
		}
		if err := tx.Create(blank).Error; err != nil {
			return err
		}
		if len(fields) == 0 {
			return nil
		}
		return tx.Model(blank).Where("account_id = ?", accountID).Updates(fields).Error
	})
}

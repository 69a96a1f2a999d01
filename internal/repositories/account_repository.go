package repositories

import (
	"errors"
	"time"

	"autobuy_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account already exists")
)

type AccountRepository interface {
	FindByID(id string) (*models.Account, error)
	FindByEmail(role models.Role, email string) (*models.Account, error)
	// ProbeByEmail checks roles in models.ProbeOrder and returns the
	// first account whose email matches.
	ProbeByEmail(email string) (*models.Account, error)
	ExistsByEmail(role models.Role, email string) (bool, error)
	ExistsByUsername(role models.Role, username string) (bool, error)
	Create(account *models.Account) error
	UpdateFields(id string, fields map[string]interface{}) error
	SetApproved(id string, approved bool) error
	SetActive(role models.Role, id string, active bool) error
	UpdatePassword(id string, passwordHash string, changedAt time.Time) error
	FindByRole(role models.Role, limit, offset int) ([]models.Account, error)
	CountByRole(role models.Role) (int64, error)
}

type AccountRepositoryImpl struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &AccountRepositoryImpl{db: db}
}

func (r *AccountRepositoryImpl) FindByID(id string) (*models.Account, error) {
	var account models.Account
	err := r.db.First(&account, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepositoryImpl) FindByEmail(role models.Role, email string) (*models.Account, error) {
	var account models.Account
	err := r.db.First(&account, "role = ? AND email = ?", role, email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepositoryImpl) ProbeByEmail(email string) (*models.Account, error) {
	for _, role := range models.ProbeOrder {
		account, err := r.FindByEmail(role, email)
		if errors.Is(err, ErrAccountNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return account, nil
	}
	return nil, ErrAccountNotFound
}

func (r *AccountRepositoryImpl) ExistsByEmail(role models.Role, email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Account{}).
		Where("role = ? AND email = ?", role, email).
		Count(&count).Error
	return count > 0, err
}

func (r *AccountRepositoryImpl) ExistsByUsername(role models.Role, username string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Account{}).
		Where("role = ? AND username = ?", role, username).
		Count(&count).Error
	return count > 0, err
}

func (r *AccountRepositoryImpl) Create(account *models.Account) error {
	taken, err := r.ExistsByEmail(account.Role, account.Email)
	if err != nil {
		return err
	}
	if taken {
		return ErrAccountExists
	}
	return r.db.Create(account).Error
}

func (r *AccountRepositoryImpl) UpdateFields(id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	result := r.db.Model(&models.Account{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepositoryImpl) SetApproved(id string, approved bool) error {
	return r.UpdateFields(id, map[string]interface{}{"approved": approved})
}

func (r *AccountRepositoryImpl) SetActive(role models.Role, id string, active bool) error {
	result := r.db.Model(&models.Account{}).
		Where("id = ? AND role = ?", id, role).
		Update("active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepositoryImpl) UpdatePassword(id string, passwordHash string, changedAt time.Time) error {
	return r.UpdateFields(id, map[string]interface{}{
		"password_hash":         passwordHash,
		"last_changed_password": changedAt,
	})
}

func (r *AccountRepositoryImpl) FindByRole(role models.Role, limit, offset int) ([]models.Account, error) {
	var accounts []models.Account
	query := r.db.Where("role = ?", role).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	err := query.Find(&accounts).Error
	return accounts, err
}

func (r *AccountRepositoryImpl) CountByRole(role models.Role) (int64, error) {
	var count int64
	err := r.db.Model(&models.Account{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

package repositories

import (
	"errors"

	"autobuy_backend/internal/models"

	"gorm.io/gorm"
)

var ErrUploadNotFound = errors.New("upload not found")

type UploadRepository interface {
	Create(upload *models.Upload) error
	FindByID(id string) (*models.Upload, error)
	FindByOwner(ownerID string) ([]models.Upload, error)
	Delete(id string) error
}

type UploadRepositoryImpl struct {
	db *gorm.DB
}

func NewUploadRepository(db *gorm.DB) UploadRepository {
	return &UploadRepositoryImpl{db: db}
}

func (r *UploadRepositoryImpl) Create(upload *models.Upload) error {
	return r.db.Create(upload).Error
}

func (r *UploadRepositoryImpl) FindByID(id string) (*models.Upload, error) {
	var upload models.Upload
	err := r.db.First(&upload, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUploadNotFound
	}
	if err != nil {
		return nil, err
	}
	return &upload, nil
}

func (r *UploadRepositoryImpl) FindByOwner(ownerID string) ([]models.Upload, error) {
	var uploads []models.Upload
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&uploads).Error
	return uploads, err
}

func (r *UploadRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.Upload{}, "id = ?", id).Error
}

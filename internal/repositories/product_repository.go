package repositories

import (
	"errors"

	"autobuy_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductExists   = errors.New("product already exists")
)

type ProductRepository interface {
	Create(product *models.Product) error
	FindBySellerAndTag(sellerID string, tag string) (*models.Product, error)
	FindBySeller(sellerID string) ([]models.Product, error)
	FindByCategory(category string, limit, offset int) ([]models.Product, error)
	FindAll(limit, offset int) ([]models.Product, error)
	CountBySeller(sellerID string) (int64, error)
	UpdateFields(sellerID string, tag string, fields map[string]interface{}) error
	Delete(sellerID string, tag string) error
}

type ProductRepositoryImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

func (r *ProductRepositoryImpl) Create(product *models.Product) error {
	err := r.db.Create(product).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrProductExists
	}
	return err
}

func (r *ProductRepositoryImpl) FindBySellerAndTag(sellerID string, tag string) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, "seller_id = ? AND tag = ?", sellerID, tag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepositoryImpl) FindBySeller(sellerID string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("seller_id = ?", sellerID).Order("created_at DESC").Find(&products).Error
	return products, err
}

func (r *ProductRepositoryImpl) FindByCategory(category string, limit, offset int) ([]models.Product, error) {
	var products []models.Product
	query := r.db.Where("category = ?", category).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	err := query.Find(&products).Error
	return products, err
}

func (r *ProductRepositoryImpl) FindAll(limit, offset int) ([]models.Product, error) {
	var products []models.Product
	query := r.db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	err := query.Find(&products).Error
	return products, err
}

func (r *ProductRepositoryImpl) CountBySeller(sellerID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Product{}).
		Where("seller_id = ?", sellerID).
		Count(&count).Error
	return count, err
}

func (r *ProductRepositoryImpl) UpdateFields(sellerID string, tag string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	result := r.db.Model(&models.Product{}).
		Where("seller_id = ? AND tag = ?", sellerID, tag).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *ProductRepositoryImpl) Delete(sellerID string, tag string) error {
	result := r.db.Where("seller_id = ? AND tag = ?", sellerID, tag).Delete(&models.Product{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

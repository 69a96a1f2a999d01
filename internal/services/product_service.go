package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"autobuy_backend/internal/imageprocessor"
	"autobuy_backend/internal/logger"
	"autobuy_backend/internal/models"
	"autobuy_backend/internal/repositories"
	"autobuy_backend/internal/services/dto"
	"autobuy_backend/internal/storage"
	"autobuy_backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type ProductService interface {
	Add(sellerID string, req *dto.AddProductRequest) (*models.Product, error)
	Edit(sellerID string, req *dto.EditProductRequest) error
	Delete(sellerID, tag string) error
	ListBySeller(sellerID string) ([]models.Product, error)
	ListAll(limit, offset int) ([]models.Product, error)
	ListByCategory(category string, limit, offset int) ([]models.Product, error)

	// UploadPhotos downscales and stores product images, returning
	// their public URLs.
	UploadPhotos(ctx context.Context, sellerID string, files []*multipart.FileHeader) ([]dto.UploadedPhoto, error)
	DeletePhoto(ctx context.Context, sellerID, uploadID string) error
}

type ProductServiceImpl struct {
	productRepo repositories.ProductRepository
	uploadRepo  repositories.UploadRepository
	store       storage.Storage
	processor   *imageprocessor.Processor
}

func NewProductService(
	productRepo repositories.ProductRepository,
	uploadRepo repositories.UploadRepository,
	store storage.Storage,
	processor *imageprocessor.Processor,
) *ProductServiceImpl {
	return &ProductServiceImpl{
		productRepo: productRepo,
		uploadRepo:  uploadRepo,
		store:       store,
		processor:   processor,
	}
}

func (s *ProductServiceImpl) Add(sellerID string, req *dto.AddProductRequest) (*models.Product, error) {
	if req.Name == "" || req.ShortDescription == "" || len(req.Images) == 0 {
		return nil, apperrors.ErrMissingFields("Please provide all product details", http.StatusBadRequest)
	}

	tag, err := s.nextTag(sellerID, req.Name)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	product := &models.Product{
		SellerID:         sellerID,
		Tag:              tag,
		Name:             req.Name,
		Category:         req.Category,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
		CostPrice:        req.CostPrice,
		SellingPrice:     req.SellingPrice,
		Color:            req.Color,
		Condition:        req.Condition,
		Make:             req.Make,
		Model:            req.Model,
		Year:             req.Year,
		Mileage:          req.Mileage,
		Quantity:         req.Quantity,
		Discount:         req.Discount,
		DiscountType:     req.DiscountType,
		DiscountValue:    req.DiscountValue,
		Images:           pq.StringArray(req.Images),
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("product added", "seller_id", sellerID, "tag", tag)
	return product, nil
}

func (s *ProductServiceImpl) Edit(sellerID string, req *dto.EditProductRequest) error {
	if req.Tag == "" {
		return apperrors.ErrMissingFields("Please provide the product tag.", http.StatusBadRequest)
	}

	fields := productPatchFields(req)
	if len(fields) == 0 {
		return nil
	}

	if err := s.productRepo.UpdateFields(sellerID, req.Tag, fields); err != nil {
		if apperrors.Is(err, repositories.ErrProductNotFound) {
			return apperrors.ErrProductNotFound
		}
		return apperrors.InternalError(err)
	}

	logger.Info("product updated", "seller_id", sellerID, "tag", req.Tag)
	return nil
}

func (s *ProductServiceImpl) Delete(sellerID, tag string) error {
	if tag == "" {
		return apperrors.ErrMissingFields("Please provide the product tag.", http.StatusBadRequest)
	}
	if err := s.productRepo.Delete(sellerID, tag); err != nil {
		if apperrors.Is(err, repositories.ErrProductNotFound) {
			return apperrors.ErrProductNotFound
		}
		return apperrors.InternalError(err)
	}
	logger.Info("product deleted", "seller_id", sellerID, "tag", tag)
	return nil
}

func (s *ProductServiceImpl) ListBySeller(sellerID string) ([]models.Product, error) {
	products, err := s.productRepo.FindBySeller(sellerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return products, nil
}

func (s *ProductServiceImpl) ListAll(limit, offset int) ([]models.Product, error) {
	products, err := s.productRepo.FindAll(limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return products, nil
}

func (s *ProductServiceImpl) ListByCategory(category string, limit, offset int) ([]models.Product, error) {
	products, err := s.productRepo.FindByCategory(category, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return products, nil
}

func (s *ProductServiceImpl) UploadPhotos(ctx context.Context, sellerID string, files []*multipart.FileHeader) ([]dto.UploadedPhoto, error) {
	if len(files) == 0 {
		return nil, apperrors.ErrMissingFields("Please provide at least one image", http.StatusBadRequest)
	}

	out := make([]dto.UploadedPhoto, 0, len(files))
	for _, header := range files {
		photo, err := s.uploadOne(ctx, sellerID, header)
		if err != nil {
			return nil, err
		}
		out = append(out, *photo)
	}
	return out, nil
}

func (s *ProductServiceImpl) uploadOne(ctx context.Context, sellerID string, header *multipart.FileHeader) (*dto.UploadedPhoto, error) {
	file, err := header.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !imageprocessor.IsValidImage(bytes.NewReader(raw)) {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("%s is not a valid image", header.Filename))
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(header.Filename)), ".")
	processed, err := s.processor.Process(bytes.NewReader(raw), imageprocessor.SizeListing, format)
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	body, err := io.ReadAll(processed)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	id := uuid.NewString()
	path := fmt.Sprintf("products/%s/%s%s", sellerID, id, filepath.Ext(header.Filename))
	contentType := header.Header.Get("Content-Type")
	if err := s.store.Save(ctx, path, bytes.NewReader(body), contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	url, err := s.store.GetURL(ctx, path)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	upload := &models.Upload{
		BaseModel:    models.BaseModel{ID: id},
		OwnerID:      sellerID,
		OriginalName: header.Filename,
		Path:         path,
		URL:          url,
		MimeType:     contentType,
		Size:         int64(len(body)),
		Metadata:     datatypes.JSON([]byte(fmt.Sprintf(`{"size":"%s","processed_at":%q}`, imageprocessor.SizeListing.Name, time.Now().UTC().Format(time.RFC3339)))),
	}
	if err := s.uploadRepo.Create(upload); err != nil {
		// The stored object is orphaned if bookkeeping fails.
		_ = s.store.Delete(ctx, path)
		return nil, apperrors.InternalError(err)
	}

	logger.Info("photo uploaded", "seller_id", sellerID, "path", path)
	return &dto.UploadedPhoto{
		ID:           upload.ID,
		URL:          url,
		OriginalName: header.Filename,
		Size:         upload.Size,
	}, nil
}

func (s *ProductServiceImpl) DeletePhoto(ctx context.Context, sellerID, uploadID string) error {
	upload, err := s.uploadRepo.FindByID(uploadID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUploadNotFound) {
			return apperrors.New(apperrors.CodeNotFound, "upload", "Photo not found", http.StatusNotFound)
		}
		return apperrors.InternalError(err)
	}
	if upload.OwnerID != sellerID {
		return apperrors.NewForbiddenError("You do not own this photo")
	}

	if err := s.store.Delete(ctx, upload.Path); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.uploadRepo.Delete(upload.ID); err != nil {
		return apperrors.InternalError(err)
	}

	logger.Info("photo deleted", "seller_id", sellerID, "path", upload.Path)
	return nil
}

// nextTag builds the per-seller product tag from the first three
// letters of the name and the running product count.
func (s *ProductServiceImpl) nextTag(sellerID, name string) (string, error) {
	prefix := strings.ToUpper(name)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	count, err := s.productRepo.CountBySeller(sellerID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d", prefix, count+1), nil
}

func productPatchFields(req *dto.EditProductRequest) map[string]interface{} {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.ShortDescription != nil {
		fields["short_description"] = *req.ShortDescription
	}
	if req.LongDescription != nil {
		fields["long_description"] = *req.LongDescription
	}
	if req.CostPrice != nil {
		fields["cost_price"] = *req.CostPrice
	}
	if req.SellingPrice != nil {
		fields["selling_price"] = *req.SellingPrice
	}
	if req.Color != nil {
		fields["color"] = *req.Color
	}
	if req.Condition != nil {
		fields["condition"] = *req.Condition
	}
	if req.Make != nil {
		fields["make"] = *req.Make
	}
	if req.Model != nil {
		fields["model"] = *req.Model
	}
	if req.Year != nil {
		fields["year"] = *req.Year
	}
	if req.Mileage != nil {
		fields["mileage"] = *req.Mileage
	}
	if req.Quantity != nil {
		fields["quantity"] = *req.Quantity
	}
	if req.Discount != nil {
		fields["discount"] = *req.Discount
	}
	if req.DiscountType != nil {
		fields["discount_type"] = *req.DiscountType
	}
	if req.DiscountValue != nil {
		fields["discount_value"] = *req.DiscountValue
	}
	if req.Images != nil {
		fields["images"] = pq.StringArray(*req.Images)
	}
	return fields
}

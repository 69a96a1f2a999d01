package handlers

import (
	"autobuy_backend/internal/services"
	"autobuy_backend/internal/services/dto"
	"autobuy_backend/internal/validator"
	"autobuy_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// ProductHandler serves the seller catalog and the buyer browse
// endpoints.
type ProductHandler struct {
	*BaseHandler
	productService services.ProductService
}

func NewProductHandler(v *validator.Validator, productService services.ProductService) *ProductHandler {
	return &ProductHandler{
		BaseHandler:    NewBaseHandler(v),
		productService: productService,
	}
}

// AddProduct handles POST /seller/add-product.
func (h *ProductHandler) AddProduct(c *gin.Context) {
	account := h.Account(c)
	if account == nil {
		return
	}

	var req dto.AddProductRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	product, err := h.productService.Add(account.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, gin.H{
		"message": "Product added successfully.",
		"product": product,
	})
}

// EditProduct handles PUT /seller/edit-product.
func (h *ProductHandler) EditProduct(c *gin.Context) {
	account := h.Account(c)
	if account == nil {
		return
	}

	var req dto.EditProductRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.productService.Edit(account.ID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"message": "Product updated successfully"})
}

// DeleteProduct handles DELETE /seller/delete-product.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	account := h.Account(c)
	if account == nil {
		return
	}

	var req dto.DeleteProductRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.productService.Delete(account.ID, req.Tag); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"message": "Product deleted successfully."})
}

// ListOwn handles GET /seller/products.
func (h *ProductHandler) ListOwn(c *gin.Context) {
	account := h.Account(c)
	if account == nil {
		return
	}

	products, err := h.productService.ListBySeller(account.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"data": products})
}

// ListAll handles GET /buyer/products.
func (h *ProductHandler) ListAll(c *gin.Context) {
	if account := h.Account(c); account == nil {
		return
	}

	products, err := h.productService.ListAll(0, 0)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"data": products})
}

// ListByCategory handles GET /buyer/products/category/:category.
func (h *ProductHandler) ListByCategory(c *gin.Context) {
	if account := h.Account(c); account == nil {
		return
	}

	category := c.Param("category")
	products, err := h.productService.ListByCategory(category, 0, 0)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"data": products})
}

// UploadPhoto handles POST /seller/upload-photo (multipart form,
// field "images").
func (h *ProductHandler) UploadPhoto(c *gin.Context) {
	account := h.Account(c)
	if account == nil {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid multipart form: "+err.Error()))
		return
	}

	files := form.File["images"]
	photos, err := h.productService.UploadPhotos(c.Request.Context(), account.ID, files)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, gin.H{"data": photos})
}

// DeletePhoto handles DELETE /seller/delete-photo.
func (h *ProductHandler) DeletePhoto(c *gin.Context) {
	account := h.Account(c)
	if account == nil {
		return
	}

	var req dto.DeletePhotoRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	if req.ID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Please provide the photo id"))
		return
	}

	if err := h.productService.DeletePhoto(c.Request.Context(), account.ID, req.ID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"message": "Photo deleted successfully."})
}

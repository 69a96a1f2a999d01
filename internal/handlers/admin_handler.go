package handlers

import (
	"autobuy_backend/internal/models"
	"autobuy_backend/internal/services"
	"autobuy_backend/internal/validator"
	"autobuy_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves admin-only account management.
type AdminHandler struct {
	*BaseHandler
	accountService services.AccountService
}

func NewAdminHandler(v *validator.Validator, accountService services.AccountService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:    NewBaseHandler(v),
		accountService: accountService,
	}
}

type setActiveRequest struct {
	Active *bool `json:"active"`
}

// SetActive handles PUT /admin/accounts/:role/:id/active.
func (h *AdminHandler) SetActive(c *gin.Context) {
	if account := h.Account(c); account == nil {
		return
	}

	role, err := models.ParseRole(c.Param("role"))
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid role"))
		return
	}

	var req setActiveRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	if req.Active == nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Please provide the active flag"))
		return
	}

	if err := h.accountService.SetActive(role, c.Param("id"), *req.Active); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	message := "Account deactivated"
	if *req.Active {
		message = "Account activated"
	}
	h.OK(c, gin.H{"message": message})
}

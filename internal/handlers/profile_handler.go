package handlers

import (
	"autobuy_backend/internal/services"
	"autobuy_backend/internal/services/dto"
	"autobuy_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the gated profile endpoints shared by all
// roles.
type ProfileHandler struct {
	*BaseHandler
	accountService services.AccountService
}

func NewProfileHandler(v *validator.Validator, accountService services.AccountService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    NewBaseHandler(v),
		accountService: accountService,
	}
}

// Profile handles GET /{role}/profile.
func (h *ProfileHandler) Profile(c *gin.Context) {
	account := h.Account(c)
	if account == nil {
		return
	}

	profile, err := h.accountService.Profile(account)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"responseMessage": profile})
}

// UpdateProfile handles PUT /{role}/edit-profile.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	account := h.Account(c)
	if account == nil {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.accountService.UpdateProfile(account, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"responseMessage": "Update successful"})
}

// ListBrokers handles GET /buyer/brokers.
func (h *ProfileHandler) ListBrokers(c *gin.Context) {
	if account := h.Account(c); account == nil {
		return
	}

	brokers, err := h.accountService.ListBrokers(0, 0)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"data": brokers})
}

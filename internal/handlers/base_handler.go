package handlers

import (
	"net/http"

	"autobuy_backend/internal/logger"
	"autobuy_backend/internal/middleware"
	"autobuy_backend/internal/models"
	"autobuy_backend/internal/validator"
	"autobuy_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBind(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// Account returns the gate-resolved account or aborts with 401.
func (h *BaseHandler) Account(c *gin.Context) *models.Account {
	account := middleware.AccountFromContext(c)
	if account == nil {
		apperrors.HandleError(c, apperrors.ErrAuthFailed)
	}
	return account
}

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "Service error",
			"error", appErr.Message,
			"details", appErr.Details,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}

func (h *BaseHandler) OK(c *gin.Context, body gin.H) {
	body["success"] = true
	c.JSON(http.StatusOK, body)
}

func (h *BaseHandler) Created(c *gin.Context, body gin.H) {
	body["success"] = true
	c.JSON(http.StatusCreated, body)
}

// SetAuthCookie installs the session token for maxAge seconds.
func SetAuthCookie(c *gin.Context, token string, maxAge int) {
	c.SetCookie(middleware.AuthCookieName, token, maxAge, "/", "", true, true)
}

// ClearAuthCookie drops the session cookie.
func ClearAuthCookie(c *gin.Context) {
	c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", true, true)
}

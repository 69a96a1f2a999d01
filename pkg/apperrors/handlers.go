package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the wire shape of every failed request:
// {"success": false, "error": "<message>"}.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// GinErrorHandler converts errors into the JSON error envelope.
type GinErrorHandler struct {
	Debug bool
}

// HandleGinError converts err to an AppError and writes the envelope.
// No error is allowed to escape a handler and crash the process.
func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	msg := appErr.Message
	if appErr.HTTPCode >= 500 {
		slog.Error("server error", "code", appErr.Code, "error", appErr.Error())
		if !h.Debug {
			msg = "An error occurred"
		}
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Success: false, Error: msg})
}

// HandleError is the helper used by handlers.
func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{Debug: gin.Mode() != gin.ReleaseMode}
	handler.HandleGinError(c, err)
}

// AsAppError attempts to unwrap err into an *AppError.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

package handlers

import (
	"net/http"
	"runtime/debug"
	"strconv"

	"capi-onboarding-backend/internal/api/middleware"
	apperrors "capi-onboarding-backend/internal/errors"
	"capi-onboarding-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the message carried by every error response
type ErrorBody struct {
	Message string `json:"message" example:"client not found"`
	// Stack is only set on 5xx responses outside production
	Stack   string `json:"stack,omitempty"`
}

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// SuccessResponse acknowledges a mutation without a payload
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// respondError writes err with the status its type maps to. The message is
// passed through; server errors are logged and, when ErrorDetail allows it,
// answered with the stack as well.
func respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	body := ErrorBody{Message: err.Error()}
	if status >= http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).
			WithError(err).
			WithField("path", c.FullPath()).
			Error("Request failed")
		if c.GetBool(middleware.ExposeStackKey) {
			body.Stack = string(debug.Stack())
		}
	}
	_ = c.Error(err)
	c.JSON(status, ErrorResponse{Error: body})
}

// badRequest answers 400 for malformed input that never reached a service
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: ErrorBody{Message: message}})
}

// NotFound answers unknown routes in the standard error shape
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: ErrorBody{Message: "route not found: " + c.Request.Method + " " + c.Request.URL.Path}})
}

// parseItemIndex reads a checklist item index, which must be a non-negative integer
func parseItemIndex(raw string) (int, bool) {
	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}

// optionalItemIndex reads ?itemIndex, returning nil when absent
func optionalItemIndex(c *gin.Context) (*int, bool) {
	raw, ok := c.GetQuery("itemIndex")
	if !ok || raw == "" {
		return nil, true
	}
	idx, valid := parseItemIndex(raw)
	if !valid {
		return nil, false
	}
	return &idx, true
}

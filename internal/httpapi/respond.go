package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"unigather-backend/pkg/apperrors"
	"unigather-backend/pkg/logger"
)

func jsonError(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"error": msg})
}

// handleError maps a controller/policy error to its HTTP status. Internal
// errors are logged and returned as an opaque message.
func handleError(c *gin.Context, err error) {
	code := apperrors.Code(err)
	status := apperrors.HTTPStatus(code)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "path", c.FullPath(), "error", err)
		jsonError(c, status, "internal error")
		return
	}
	jsonError(c, status, apperrors.Message(err))
}

// uintParam parses a positive integer path parameter.
func uintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		jsonError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(value), true
}

// uintQuery parses an optional positive integer query parameter; absent
// means zero.
func uintQuery(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		jsonError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(value), true
}

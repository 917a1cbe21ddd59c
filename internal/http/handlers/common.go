package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"travelapi/internal/config"
	"travelapi/internal/http/middleware"
	"travelapi/internal/services"

	"github.com/gin-gonic/gin"
)

var (
	jwtSecret []byte
	imageRoot string
	mailer    services.Mailer
)

// Configure wires handler-level settings once at startup.
func Configure(env config.Env) {
	jwtSecret = []byte(env.JWTSecret)
	imageRoot = env.UploadDir

	smtp := services.NewSMTPMailer(env)
	if smtp.Enabled() {
		mailer = smtp
	} else {
		mailer = nil
	}
}

// JWTSecret exposes the configured signing key for the auth middleware.
func JWTSecret() []byte {
	return jwtSecret
}

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"error":      message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["details"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}

// idParam parses the :id segment; 0 means invalid.
func idParam(c *gin.Context) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

// pagination reads optional ?page=&limit= query params. Both absent (or
// malformed) yields 0,0: the full-table legacy behavior.
func pagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(strings.TrimSpace(c.Query("page")))
	limit, _ = strconv.Atoi(strings.TrimSpace(c.Query("limit")))
	if page < 0 {
		page = 0
	}
	if limit < 0 {
		limit = 0
	}
	return page, limit
}

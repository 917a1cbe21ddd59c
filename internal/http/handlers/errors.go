package handlers

import (
	"net/http"

	"travelapi/internal/domain"
	"travelapi/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// RespondDomainError maps domain errors to HTTP responses. Every handler
// returns DB and validation failures through here, so no route leaks a bare
// framework 500.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong")
	}
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"error":      message,
		"code":       code,
		"request_id": middleware.GetRequestID(c),
	})
}

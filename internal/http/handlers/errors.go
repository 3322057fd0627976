package handlers

import (
	"log"
	"net/http"

	"backend/internal/domain"
	"backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// RespondDomainError maps domain errors to HTTP responses. Store failures are
// logged with their original detail and surface as a generic message; tiered
// partial failures keep their exact message because callers rely on it to
// know which step persisted.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		RespondError(c, http.StatusBadRequest, err.Error(), nil)
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, err.Error(), nil)
	case domain.IsConflict(err):
		// 400, not 409: the API contract distinguishes duplicates from
		// missing fields by message only
		RespondError(c, http.StatusBadRequest, err.Error(), nil)
	case domain.IsInsufficientPoints(err):
		RespondError(c, http.StatusBadRequest, err.Error(), nil)
	case domain.IsPartialFailure(err):
		log.Printf("[HTTP] request_id=%s partial failure: %v", middleware.GetRequestID(c), err)
		RespondError(c, http.StatusInternalServerError, err.Error(), nil)
	default:
		log.Printf("[HTTP] request_id=%s store error: %v", middleware.GetRequestID(c), err)
		RespondError(c, http.StatusInternalServerError, "internal error", nil)
	}
}

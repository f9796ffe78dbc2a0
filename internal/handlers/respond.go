package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"studio-backoffice/internal/adsapi"
	"studio-backoffice/internal/storage"
	"studio-backoffice/internal/validate"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers with the same envelope:
// {"success": true, "data": ...} or {"success": false, "error": {...}}.

func respondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   gin.H{"code": code, "message": message},
	})
}

func respondValidation(c *gin.Context, errs validate.Errors) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "validation_error",
			"message": "validation failed",
			"fields":  errs,
		},
	})
}

// paramID parses the :id route parameter, answering 400 itself on garbage.
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "bad_request", "invalid id")
		return 0, false
	}
	return uint(id), true
}

// optionalID parses a numeric query parameter; empty or garbage means absent.
func optionalID(s string) (uint, bool) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// respondStoreError maps the storage error taxonomy to HTTP. Anything not in
// the taxonomy is an internal error; the detail stays in the server log.
func respondStoreError(c *gin.Context, err error) {
	var upstream *adsapi.UpstreamError

	switch {
	case errors.Is(err, storage.ErrNotFound):
		respondError(c, http.StatusNotFound, "not_found", "record not found")
	case errors.Is(err, storage.ErrAlreadyAssigned):
		respondError(c, http.StatusConflict, "already_assigned", "item is already assigned")
	case errors.Is(err, storage.ErrNotOwner):
		respondError(c, http.StatusForbidden, "not_owner", "only the current assignee may release this item")
	case errors.Is(err, storage.ErrAlreadyResolved):
		respondError(c, http.StatusConflict, "already_resolved", "recommendation is already resolved")
	case errors.Is(err, storage.ErrConflict):
		respondError(c, http.StatusConflict, "conflict", "operation conflicts with current state")
	case errors.As(err, &upstream):
		respondError(c, http.StatusBadGateway, "upstream_error", "upstream service failed, please retry")
	default:
		respondError(c, http.StatusInternalServerError, "internal", "internal error")
	}
}

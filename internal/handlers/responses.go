package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/backend/internal/services"
)

// Every mutation answers with the same envelope: {success, error, ...}.
// Failed guards and lookups are ordinary results, not transport faults.

func statusForKind(kind services.Kind) int {
	switch kind {
	case services.KindValidation:
		return http.StatusBadRequest
	case services.KindConflict:
		return http.StatusConflict
	case services.KindNotFound:
		return http.StatusNotFound
	case services.KindPermission:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusForKind(services.KindOf(err)), gin.H{
		"success": false,
		"error":   err.Error(),
	})
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   "Invalid request data: " + err.Error(),
	})
}

func respondSuccess(c *gin.Context, status int, fields gin.H) {
	body := gin.H{"success": true, "error": nil}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(status, body)
}

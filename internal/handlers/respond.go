// Package handlers contains the HTTP request handlers of the contact
// management service. Success responses are wrapped in {"data": ...} and
// failures in {"errors": {...}}.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mrifkiw/contact-management/internal/apierr"
	"go.uber.org/zap"
)

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"data": data})
}

// respondError maps an *apierr.Error onto its status and envelope. Anything
// else is logged and surfaced as an opaque 500.
func respondError(c *gin.Context, log *zap.SugaredLogger, err error) {
	var apiErr *apierr.Error
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, gin.H{"errors": apiErr.Fields})
		return
	}
	log.Errorw("request failed", "error", err, "method", c.Request.Method, "path", c.FullPath())
	c.JSON(http.StatusInternalServerError, gin.H{
		"errors": gin.H{"message": []string{"internal server error"}},
	})
}

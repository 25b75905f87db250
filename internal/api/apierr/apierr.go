package apierr

import (
	"errors"
	"net/http"

	"gallery-app/internal/gallery"

	"github.com/gin-gonic/gin"
)

// Render maps domain errors onto HTTP: validation failures are the
// caller's fault, missing entities are 404, duplicates and blocked
// deletes are conflicts, storage faults stay opaque.
func Render(c *gin.Context, err error) {
	var ve *gallery.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
		return
	}

	var de *gallery.DatabaseError
	if errors.As(err, &de) {
		switch de.Kind {
		case gallery.KindNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": de.Msg})
		case gallery.KindConflict:
			c.JSON(http.StatusConflict, gin.H{"error": de.Msg})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage failure"})
		}
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "Unexpected error"})
}

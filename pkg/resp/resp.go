package resp

import (
	"errors"
	"log"
	"net/http"

	"github.com/fatouibra/Projet-Fatou-sub001/pkg/apperr"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}

// Error maps a service error to its HTTP status. Storage errors are logged
// with the full cause and answered with the generic message only.
func Error(c *gin.Context, err error) {
	var e *apperr.Error
	if !errors.As(err, &e) {
		e = apperr.Storage(err)
	}
	switch e.Kind {
	case apperr.KindValidation:
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": e.Msg})
	case apperr.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": e.Msg})
	case apperr.KindForbidden:
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": e.Msg})
	case apperr.KindConflict:
		c.JSON(http.StatusConflict, gin.H{"ok": false, "error": e.Msg})
	default:
		log.Printf("storage error: %s %s: %v", c.Request.Method, c.FullPath(), e)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": e.Msg})
	}
}

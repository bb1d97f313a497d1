package api

import (
	"net/http"

	"github.com/Domenick1991/airport/internal/api/apierrors"
	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, err error) {
	code := apierrors.HTTPStatus(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = "internal error"
	}
	_ = c.Error(err)
	c.JSON(code, gin.H{"error": msg})
}

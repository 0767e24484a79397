package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/keksobooking/api/internal/apperr"
	"github.com/keksobooking/api/pkg/logger"
)

// ErrorRenderer is the single place response bodies for domain errors are
// produced. Handlers attach errors via c.Error and return; after the chain
// unwinds, the last error is rendered in the negotiated representation: a
// flattened string for text/html clients, a JSON array otherwise.
func ErrorRenderer() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		e := apperr.From(c.Errors.Last().Err)
		if e.Code >= 500 {
			logger.Error(c.Request.Context(), "request failed: %v", c.Errors.Last().Err)
		}
		render(c, e)
	}
}

// render writes the content-negotiated error body.
func render(c *gin.Context, e *apperr.Error) {
	switch c.NegotiateFormat(gin.MIMEJSON, gin.MIMEHTML) {
	case gin.MIMEHTML:
		c.String(e.Code, apperr.HTMLBody(e))
	default:
		c.JSON(e.Code, apperr.JSONBody(e))
	}
}

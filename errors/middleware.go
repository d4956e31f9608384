package errors

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Translate is the single place mapping application errors to wire
// responses. Handlers attach errors via c.Error and never write error
// bodies themselves. Stages run most specific first; the first match
// responds and ends the chain.
func Translate() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var validationErr *ValidationError
		if stderrors.As(err, &validationErr) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": validationErr.Message})
			return
		}

		var notFoundErr *NotFoundError
		if stderrors.As(err, &notFoundErr) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": notFoundErr.Error()})
			return
		}

		zap.L().Error("Unhandled error",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Generic error"})
	}
}

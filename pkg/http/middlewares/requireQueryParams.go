package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireQueryParams aborts with 400 and msg unless every param is
// present and non-empty.
func RequireQueryParams(msg string, params ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, param := range params {
			if c.Query(param) == "" {
				c.String(http.StatusBadRequest, msg)
				c.Abort()
				return
			}
		}

		c.Next()
	}
}

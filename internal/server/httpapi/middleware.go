package httpapi

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/postmeapp/postme/internal/common"
)

// accessKeyMiddleware rejects requests that don't present the configured
// access key. This is the hosted-backend anon-key check, not user auth.
func (s *Server) accessKeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(common.AccessKeyHeaderName)
		if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(s.accessKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing or invalid access key"})
			return
		}
		c.Next()
	}
}

package httpapi

import (
	"strings"
	"time"

	"github.com/fundunity/cmsdash/internal/common"
	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// accessTokenMiddleware requires "Authorization: Bearer <token>" and stores
// the token's user id in the gin context.
func (s *HTTPServer) accessTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(common.AuthorizationHeaderName)
		if !strings.HasPrefix(header, common.BearerPrefix) {
			abortWithError(c, s.logger, common.ErrorUnauthorized)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, common.BearerPrefix))
		if token == "" {
			abortWithError(c, s.logger, common.ErrorUnauthorized)
			return
		}

		userID, err := s.users.Authenticate(token)
		if err != nil {
			abortWithError(c, s.logger, err)
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func (s *HTTPServer) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.logger.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

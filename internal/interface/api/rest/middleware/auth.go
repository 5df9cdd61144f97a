package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"party-manager-api/internal/infrastructure/jwt"
	"party-manager-api/internal/interface/api/rest/dto/apierror"
)

const (
	CtxRole    = "role"
	CtxSubject = "subject"
)

// AuthMiddleware requires a valid bearer token. With a nil jwtService auth is
// disabled and every request passes.
func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if jwtService == nil {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing Authorization header")
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			abortUnauthorized(c, "invalid token format")
			return
		}

		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			abortUnauthorized(c, "invalid token")
			return
		}

		c.Set(CtxRole, claims.Role)
		c.Set(CtxSubject, claims.Subject)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(
		http.StatusUnauthorized,
		apierror.New(http.StatusUnauthorized, apierror.KindAuth, msg),
	)
}

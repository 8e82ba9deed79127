package middlewares

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Lulu77Donc/reggie-take-out/pkg/resp"
	"github.com/Lulu77Donc/reggie-take-out/utils"
)

// Authenticator resolves a bearer token to a live session.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (utils.Identity, error)
}

// AuthMiddleware requires a valid token and, when roles are given, one of them.
// The token comes from the Authorization header or, for websocket upgrades,
// the token query parameter. The identity is attached to the request context.
func AuthMiddleware(auth Authenticator, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearer(c)
		if tokenStr == "" {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}
		ident, err := auth.Authenticate(c.Request.Context(), tokenStr)
		if err != nil {
			resp.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}
		if len(roles) > 0 && !hasRole(ident.Role, roles) {
			resp.Forbidden(c, "forbidden")
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(utils.WithIdentity(c.Request.Context(), ident))
		c.Set("identity", ident)
		c.Next()
	}
}

func bearer(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return c.Query("token")
}

func hasRole(role string, roles []string) bool {
	for _, r := range roles {
		if role == r {
			return true
		}
	}
	return false
}

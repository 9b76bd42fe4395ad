package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/wangari/glowdesk-api/internal/presentation/http/dto/response"
	"github.com/wangari/glowdesk-api/pkg/utils"
)

// Authenticate validates the bearer token and stores the caller's
// identity, roles and permissions on the gin context.
func Authenticate(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			response.Unauthorized(c, "A bearer token is required")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(token)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_roles", claims.Roles)
		c.Set("user_permissions", claims.Permissions)

		c.Next()
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

// RequirePermission rejects callers whose token does not carry the given permission.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !contextHas(c, "user_permissions", permission) {
			response.Forbidden(c, "You do not have permission to perform this action")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole rejects callers that hold none of the given roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, role := range roles {
			if contextHas(c, "user_roles", role) {
				c.Next()
				return
			}
		}
		response.Forbidden(c, "Insufficient role privileges")
		c.Abort()
	}
}

func contextHas(c *gin.Context, key, want string) bool {
	raw, exists := c.Get(key)
	if !exists {
		return false
	}
	values, ok := raw.([]string)
	if !ok {
		return false
	}
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"atithi-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const (
	CtxOwnerID   = "owner_id"
	CtxPrincipal = "principal"
	CtxRole      = "role"
)

// Staff roles, highest to lowest.
const (
	RoleOwner        = "OWNER"
	RoleManager      = "MANAGER"
	RoleReceptionist = "RECEPTIONIST"
)

// Auth validates the bearer token and stashes the tenant identity in the
// request context. Every /api route below /health goes through here.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "missing bearer token")
			c.Abort()
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			utils.JSONError(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "invalid token claims")
			c.Abort()
			return
		}

		ownerID, ok := claims["owner_id"].(float64)
		if !ok || ownerID <= 0 {
			utils.JSONError(c, http.StatusUnauthorized, "token missing tenant")
			c.Abort()
			return
		}

		c.Set(CtxOwnerID, uint(ownerID))
		if sub, ok := claims["sub"].(string); ok {
			c.Set(CtxPrincipal, sub)
		}
		role, _ := claims["role"].(string)
		if role == "" {
			role = RoleReceptionist
		}
		c.Set(CtxRole, role)

		c.Next()
	}
}

// RequireRole guards privileged operations (forced checkout, maintenance
// holds). Roles not in the allow list get a 403.
func RequireRole(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxRole)
		for _, a := range allowed {
			if role == a {
				c.Next()
				return
			}
		}
		utils.JSONError(c, http.StatusForbidden, "insufficient role for this operation")
		c.Abort()
	}
}

// OwnerID returns the tenant id set by Auth.
func OwnerID(c *gin.Context) uint {
	v, _ := c.Get(CtxOwnerID)
	id, _ := v.(uint)
	return id
}

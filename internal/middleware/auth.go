package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/srashed001/pug-backend-sub000/internal/apperrors"
	"github.com/srashed001/pug-backend-sub000/internal/constants"
	"github.com/srashed001/pug-backend-sub000/internal/utils"
)

// Authenticate decodes a bearer token when one is present and stores the
// caller identity on the context. It never rejects the request; routes
// that need an identity layer RequireLogin on top.
func Authenticate(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			c.Next()
			return
		}

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			c.Next()
			return
		}

		c.Set(constants.ContextKeyUsername, claims.Username)
		c.Set(constants.ContextKeyIsAdmin, claims.IsAdmin)
		c.Next()
	}
}

// RequireLogin aborts with 401 unless Authenticate stored an identity.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetUsername(c); !ok {
			apperrors.Respond(c, apperrors.Unauthorized("login required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSelfOrAdmin aborts with 401 unless the caller is the user named
// by the route parameter or an admin.
func RequireSelfOrAdmin(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := GetUsername(c)
		if !ok {
			apperrors.Respond(c, apperrors.Unauthorized("login required"))
			c.Abort()
			return
		}
		if username != c.Param(param) && !IsAdmin(c) {
			apperrors.Respond(c, apperrors.Unauthorized("access denied"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUsername returns the authenticated username, if any.
func GetUsername(c *gin.Context) (string, bool) {
	value, exists := c.Get(constants.ContextKeyUsername)
	if !exists {
		return "", false
	}
	username, ok := value.(string)
	return username, ok && username != ""
}

// IsAdmin reports whether the authenticated caller is an admin.
func IsAdmin(c *gin.Context) bool {
	value, exists := c.Get(constants.ContextKeyIsAdmin)
	if !exists {
		return false
	}
	isAdmin, ok := value.(bool)
	return ok && isAdmin
}

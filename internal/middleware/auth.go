package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoolpad/schoolpad-backend/internal/model"
	"github.com/schoolpad/schoolpad-backend/internal/response"
	"github.com/schoolpad/schoolpad-backend/internal/service"
)

// ContextKeyUser is the Gin context key for the authenticated account.
const ContextKeyUser = "user"

// RequireAuth resolves the calling account from the Authorization header
// (or, for WebSocket upgrades that cannot send headers, the ?token= query
// param) and stores it in the context. The account lookup is what cuts a
// live token short after its account is deleted.
func RequireAuth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			if token := c.Query("token"); token != "" {
				header = "Bearer " + token
			}
		}
		if header == "" {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), header)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
			return
		}

		c.Set(ContextKeyUser, user)
		c.Next()
	}
}

// RequireRoles checks the authenticated account against an allowed role
// set, case-insensitively. It must run after RequireAuth.
func RequireRoles(auth *service.AuthService, allowed ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetUser(c)
		if user == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		if _, err := auth.Authorize(user, allowed...); err != nil {
			response.AbortFail(c, http.StatusForbidden, response.ErrForbidden)
			return
		}
		c.Next()
	}
}

// GetUser retrieves the authenticated account from the Gin context.
func GetUser(c *gin.Context) *model.User {
	val, exists := c.Get(ContextKeyUser)
	if !exists {
		return nil
	}
	user, ok := val.(*model.User)
	if !ok {
		return nil
	}
	return user
}

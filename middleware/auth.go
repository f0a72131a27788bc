package middleware

import (
	"net/http"
	"strings"

	"dogspot/models"
	"dogspot/utils"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// JWTAuthMiddleware requires a valid bearer token and puts the resolved
// CurrentUser on the context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cu, ok := resolveCurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		c.Set(currentUserKey, cu)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the caller when a valid token is present
// and continues anonymously otherwise. The feeds use it: the pin rules
// only apply to signed-in callers.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if cu, ok := resolveCurrentUser(c); ok {
			c.Set(currentUserKey, cu)
		}
		c.Next()
	}
}

// CurrentUserFrom returns the authenticated caller, or nil for anonymous
// requests.
func CurrentUserFrom(c *gin.Context) *models.CurrentUser {
	if v, exists := c.Get(currentUserKey); exists {
		if cu, ok := v.(models.CurrentUser); ok {
			return &cu
		}
	}
	return nil
}

func resolveCurrentUser(c *gin.Context) (models.CurrentUser, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return models.CurrentUser{}, false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	// Cached session first; it avoids re-parsing claims on every request.
	if session, err := utils.GetSession(utils.GetAuthCacheClient(), utils.HashToken(tokenString)); err == nil {
		return models.CurrentUser{ID: session.UserID, UserType: session.UserType}, true
	}

	sub, userType, err := utils.ClaimsFromToken(tokenString)
	if err != nil {
		return models.CurrentUser{}, false
	}
	return models.CurrentUser{ID: sub, UserType: userType}, true
}
